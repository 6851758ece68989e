package service

import (
	"context"
	"fmt"
	"time"

	"wexel-ledger/internal/core/domain"
	"wexel-ledger/internal/core/ports"
	"wexel-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AccrualServiceImpl implements ports.AccrualService.
type AccrualServiceImpl struct {
	store    ports.LedgerStore
	notifier ports.Notifier
	log      zerolog.Logger
}

// NewAccrualService creates a new AccrualServiceImpl.
func NewAccrualService(store ports.LedgerStore, notifier ports.Notifier, log zerolog.Logger) *AccrualServiceImpl {
	return &AccrualServiceImpl{
		store:    store,
		notifier: notifier,
		log:      log,
	}
}

// PendingRewards returns total_rewards(now) − total_claimed, never negative.
func (s *AccrualServiceImpl) PendingRewards(w *domain.Wexel, now time.Time) (int64, error) {
	acc, err := domain.ComputeAccrual(w, now)
	if err != nil {
		return 0, arithmetic(s.log, "accrual", err)
	}
	return acc.Pending, nil
}

// TotalRewards returns daily_reward × days_elapsed at now.
func (s *AccrualServiceImpl) TotalRewards(w *domain.Wexel, now time.Time) (int64, error) {
	acc, err := domain.ComputeAccrual(w, now)
	if err != nil {
		return 0, arithmetic(s.log, "accrual", err)
	}
	return acc.TotalRewards, nil
}

// Claim settles pending rewards in one unit of work: the Claim row and the
// total_claimed increment commit together or not at all.
func (s *AccrualServiceImpl) Claim(ctx context.Context, req ports.ClaimRequest) (*ports.ClaimResult, error) {
	if err := requireNow(req.Now); err != nil {
		return nil, err
	}
	if req.Amount != nil && *req.Amount <= 0 {
		return nil, apperror.Validation("amount must be > 0")
	}
	claimType := req.ClaimType
	if claimType == "" {
		claimType = domain.ClaimTypeManual
	}
	if !claimType.Valid() {
		return nil, apperror.Validation("claim_type must be one of daily, manual")
	}

	var (
		result ports.ClaimResult
		box    outbox
	)
	err := s.store.WithinWexel(ctx, req.WexelID, func(ctx context.Context, tx ports.LedgerTx) error {
		if req.TxHash != "" {
			existing, err := tx.GetClaimByTxHash(ctx, req.TxHash)
			if err != nil {
				return apperror.ErrDatabaseError(fmt.Errorf("get claim by tx hash: %w", err))
			}
			if existing != nil {
				if existing.WexelID != req.WexelID {
					return apperror.Validation("tx_hash already recorded for another wexel")
				}
				result = ports.ClaimResult{Claim: existing, Duplicate: true}
				return nil
			}
		}

		w, err := loadMutableWexel(ctx, tx, req.WexelID)
		if err != nil {
			return err
		}
		if err := requireOwner(w, req.Caller); err != nil {
			return err
		}

		acc, err := domain.ComputeAccrual(w, req.Now)
		if err != nil {
			return arithmetic(s.log, "accrual", err)
		}
		if acc.Pending <= 0 {
			return apperror.ErrNothingToClaim()
		}
		amount := acc.Pending
		if req.Amount != nil {
			if *req.Amount > acc.Pending {
				return apperror.ErrClaimExceedsPending()
			}
			amount = *req.Amount
		}

		claimed, err := domain.Add(w.TotalClaimed, amount)
		if err != nil {
			return arithmetic(s.log, "total_claimed", err)
		}
		w.TotalClaimed = claimed
		w.UpdatedAt = req.Now

		claim := &domain.Claim{
			ID:        uuid.New(),
			WexelID:   w.ID,
			Amount:    amount,
			ClaimType: claimType,
			TxHash:    strPtr(req.TxHash),
			CreatedAt: req.Now,
		}
		if err := tx.UpdateWexel(ctx, w); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("update wexel: %w", err))
		}
		if err := tx.CreateClaim(ctx, claim); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("create claim: %w", err))
		}
		if err := markApplied(ctx, tx, domain.EventClaimRequested, w.ID, req.TxHash, req.Now); err != nil {
			return err
		}

		box.add(domain.NotifyClaimCreated, w, claim, req.Now)
		result.Claim = claim
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}
	if result.Duplicate {
		s.log.Info().Int64("wexel_id", req.WexelID).Str("tx_hash", req.TxHash).Msg("duplicate claim ignored")
		return &result, nil
	}

	box.flush(ctx, s.notifier, s.log)

	s.log.Info().
		Str("claim_id", result.Claim.ID.String()).
		Int64("wexel_id", req.WexelID).
		Int64("amount", result.Claim.Amount).
		Msg("claim processed successfully")

	return &result, nil
}
