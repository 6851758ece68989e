package service

import (
	"context"
	"errors"
	"fmt"

	"wexel-ledger/internal/core/domain"
	"wexel-ledger/internal/core/ports"
	"wexel-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DepositServiceImpl implements ports.DepositService.
type DepositServiceImpl struct {
	store    ports.LedgerStore
	notifier ports.Notifier
	log      zerolog.Logger
}

// NewDepositService creates a new DepositServiceImpl.
func NewDepositService(store ports.LedgerStore, notifier ports.Notifier, log zerolog.Logger) *DepositServiceImpl {
	return &DepositServiceImpl{
		store:    store,
		notifier: notifier,
		log:      log,
	}
}

// CreatePool registers a deposit product. Unset boost parameters take the
// defaults (30% target, +5% max).
func (s *DepositServiceImpl) CreatePool(ctx context.Context, req ports.CreatePoolRequest) (*domain.Pool, error) {
	if err := requireNow(req.Now); err != nil {
		return nil, err
	}
	pool := &domain.Pool{
		ID:            req.ID,
		APYBaseBP:     req.APYBaseBP,
		LockMonths:    req.LockMonths,
		MinDeposit:    req.MinDeposit,
		BoostTargetBP: domain.DefaultBoostTargetBP,
		BoostMaxBP:    domain.DefaultBoostMaxBP,
		IsActive:      true,
		CreatedAt:     req.Now,
		UpdatedAt:     req.Now,
	}
	if req.BoostTargetBP != nil {
		pool.BoostTargetBP = *req.BoostTargetBP
	}
	if req.BoostMaxBP != nil {
		pool.BoostMaxBP = *req.BoostMaxBP
	}
	if err := pool.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	if err := s.store.CreatePool(ctx, pool); err != nil {
		if errors.Is(err, ports.ErrUniqueViolation) {
			return nil, apperror.ErrPoolExists()
		}
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create pool: %w", err))
	}

	s.log.Info().
		Int64("pool_id", pool.ID).
		Int("apy_base_bp", pool.APYBaseBP).
		Int("lock_months", pool.LockMonths).
		Msg("pool created successfully")

	return pool, nil
}

// SetPoolActive opens or closes a pool for new deposits. Existing wexels are
// unaffected.
func (s *DepositServiceImpl) SetPoolActive(ctx context.Context, id int64, active bool) (*domain.Pool, error) {
	pool, err := s.GetPool(ctx, id)
	if err != nil {
		return nil, err
	}
	pool.IsActive = active
	if err := s.store.UpdatePool(ctx, pool); err != nil {
		if errors.Is(err, ports.ErrRowNotFound) {
			return nil, apperror.ErrPoolNotFound()
		}
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update pool: %w", err))
	}
	s.log.Info().Int64("pool_id", id).Bool("active", active).Msg("pool status updated")
	return pool, nil
}

func (s *DepositServiceImpl) GetPool(ctx context.Context, id int64) (*domain.Pool, error) {
	pool, err := s.store.GetPool(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get pool: %w", err))
	}
	if pool == nil {
		return nil, apperror.ErrPoolNotFound()
	}
	return pool, nil
}

func (s *DepositServiceImpl) ListPools(ctx context.Context, activeOnly bool) ([]domain.Pool, error) {
	pools, err := s.store.ListPools(ctx, activeOnly)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list pools: %w", err))
	}
	return pools, nil
}

// ConfirmDeposit mints the wexel for a confirmed on-chain deposit. The term
// ends lock_months × 30 days after start.
func (s *DepositServiceImpl) ConfirmDeposit(ctx context.Context, req ports.DepositRequest) (*ports.DepositResult, error) {
	if err := requireNow(req.Now); err != nil {
		return nil, err
	}
	switch {
	case req.WexelID <= 0:
		return nil, apperror.Validation("wexel_id must be > 0")
	case req.Owner == "":
		return nil, apperror.Validation("owner is required")
	case req.Principal <= 0:
		return nil, apperror.Validation("principal must be > 0")
	}
	start := req.StartTs
	if start.IsZero() {
		start = req.Now
	}

	var (
		result ports.DepositResult
		box    outbox
	)
	err := s.store.WithinWexel(ctx, req.WexelID, func(ctx context.Context, tx ports.LedgerTx) error {
		dup, err := alreadyApplied(ctx, tx, domain.EventDepositConfirmed, req.WexelID, req.TxHash)
		if err != nil {
			return err
		}
		existing, err := tx.GetWexel(ctx, req.WexelID)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("get wexel: %w", err))
		}
		if dup {
			result = ports.DepositResult{Wexel: existing, Duplicate: true}
			return nil
		}
		if existing != nil {
			return apperror.ErrWexelExists()
		}

		pool, err := tx.GetPool(ctx, req.PoolID)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("get pool: %w", err))
		}
		if pool == nil {
			return apperror.ErrPoolNotFound()
		}
		if !pool.IsActive {
			return apperror.ErrPoolInactive()
		}
		if req.Principal < pool.MinDeposit {
			return apperror.ErrBelowMinDeposit()
		}

		w := &domain.Wexel{
			ID:        req.WexelID,
			PoolID:    pool.ID,
			Principal: req.Principal,
			APYBaseBP: pool.APYBaseBP,
			StartTs:   start,
			EndTs:     start.Add(pool.LockDuration()),
			CreatedAt: req.Now,
			UpdatedAt: req.Now,
		}
		w.SetOwner(req.Owner)
		if err := w.Validate(); err != nil {
			return apperror.Validation(err.Error())
		}

		if err := tx.CreateWexel(ctx, w); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("create wexel: %w", err))
		}
		if err := markApplied(ctx, tx, domain.EventDepositConfirmed, w.ID, req.TxHash, req.Now); err != nil {
			return err
		}

		box.add(domain.NotifyWexelCreated, w, w, req.Now)
		result.Wexel = w
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}
	if result.Duplicate {
		s.log.Info().Int64("wexel_id", req.WexelID).Str("tx_hash", req.TxHash).Msg("duplicate deposit ignored")
		return &result, nil
	}

	box.flush(ctx, s.notifier, s.log)

	s.log.Info().
		Int64("wexel_id", req.WexelID).
		Int64("pool_id", req.PoolID).
		Int64("principal", req.Principal).
		Msg("deposit confirmed successfully")

	return &result, nil
}

// Redeem finalizes a matured, uncollateralized wexel. Rewards still pending
// are settled as a final claim and any active listing is cancelled in the
// same commit. A finalized wexel accepts no further mutation.
func (s *DepositServiceImpl) Redeem(ctx context.Context, req ports.RedeemRequest) (*ports.DepositResult, error) {
	if err := requireNow(req.Now); err != nil {
		return nil, err
	}

	var (
		result ports.DepositResult
		box    outbox
	)
	err := s.store.WithinWexel(ctx, req.WexelID, func(ctx context.Context, tx ports.LedgerTx) error {
		dup, err := alreadyApplied(ctx, tx, domain.EventRedeemed, req.WexelID, req.TxHash)
		if err != nil {
			return err
		}
		if dup {
			w, err := tx.GetWexel(ctx, req.WexelID)
			if err != nil {
				return apperror.ErrDatabaseError(fmt.Errorf("get wexel: %w", err))
			}
			result = ports.DepositResult{Wexel: w, Duplicate: true}
			return nil
		}

		w, err := loadMutableWexel(ctx, tx, req.WexelID)
		if err != nil {
			return err
		}
		if err := requireOwner(w, req.Caller); err != nil {
			return err
		}
		if !w.IsMatured(req.Now) {
			return apperror.ErrNotMatured()
		}
		if w.IsCollateralized {
			return apperror.ErrCollateralizedWexel()
		}

		acc, err := domain.ComputeAccrual(w, req.Now)
		if err != nil {
			return arithmetic(s.log, "accrual", err)
		}
		if acc.Pending > 0 {
			claim := &domain.Claim{
				ID:        uuid.New(),
				WexelID:   w.ID,
				Amount:    acc.Pending,
				ClaimType: domain.ClaimTypeManual,
				CreatedAt: req.Now,
			}
			if w.TotalClaimed, err = domain.Add(w.TotalClaimed, acc.Pending); err != nil {
				return arithmetic(s.log, "total_claimed", err)
			}
			if err := tx.CreateClaim(ctx, claim); err != nil {
				return apperror.ErrDatabaseError(fmt.Errorf("create final claim: %w", err))
			}
			box.add(domain.NotifyClaimCreated, w, claim, req.Now)
		}

		listing, err := tx.GetActiveListing(ctx, w.ID)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("get active listing: %w", err))
		}
		if listing != nil {
			listing.Status = domain.ListingStatusCancelled
			listing.UpdatedAt = req.Now
			if err := tx.UpdateListing(ctx, listing); err != nil {
				return apperror.ErrDatabaseError(fmt.Errorf("cancel listing: %w", err))
			}
			box.add(domain.NotifyListingCancelled, w, listing, req.Now)
		}

		finalizedAt := req.Now
		w.FinalizedAt = &finalizedAt
		w.UpdatedAt = req.Now
		if err := tx.UpdateWexel(ctx, w); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("update wexel: %w", err))
		}
		if err := markApplied(ctx, tx, domain.EventRedeemed, w.ID, req.TxHash, req.Now); err != nil {
			return err
		}

		box.add(domain.NotifyWexelRedeemed, w, w, req.Now)
		result.Wexel = w
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}
	if result.Duplicate {
		s.log.Info().Int64("wexel_id", req.WexelID).Str("tx_hash", req.TxHash).Msg("duplicate redemption ignored")
		return &result, nil
	}

	box.flush(ctx, s.notifier, s.log)

	s.log.Info().
		Int64("wexel_id", req.WexelID).
		Int64("total_claimed", result.Wexel.TotalClaimed).
		Msg("wexel redeemed successfully")

	return &result, nil
}
