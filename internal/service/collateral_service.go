package service

import (
	"context"
	"fmt"

	"wexel-ledger/internal/core/domain"
	"wexel-ledger/internal/core/ports"
	"wexel-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CollateralServiceImpl implements ports.CollateralService.
type CollateralServiceImpl struct {
	store    ports.LedgerStore
	notifier ports.Notifier
	ltvBP    int
	log      zerolog.Logger
}

// NewCollateralService creates a new CollateralServiceImpl. A non-positive
// ltvBP falls back to domain.DefaultLTVBP.
func NewCollateralService(store ports.LedgerStore, notifier ports.Notifier, ltvBP int, log zerolog.Logger) *CollateralServiceImpl {
	if ltvBP <= 0 {
		ltvBP = domain.DefaultLTVBP
	}
	return &CollateralServiceImpl{
		store:    store,
		notifier: notifier,
		ltvBP:    ltvBP,
		log:      log,
	}
}

// Quote returns the loan available against the wexel's principal.
func (s *CollateralServiceImpl) Quote(ctx context.Context, wexelID int64) (*ports.LoanQuote, error) {
	w, err := s.store.GetWexel(ctx, wexelID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get wexel: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrWexelNotFound()
	}
	return s.quote(w)
}

func (s *CollateralServiceImpl) quote(w *domain.Wexel) (*ports.LoanQuote, error) {
	loan, err := domain.LoanAmount(w.Principal, s.ltvBP)
	if err != nil {
		return nil, arithmetic(s.log, "loan amount", err)
	}
	return &ports.LoanQuote{
		WexelID:          w.ID,
		Principal:        w.Principal,
		LTVBP:            s.ltvBP,
		LoanAmount:       loan,
		IsCollateralized: w.IsCollateralized,
	}, nil
}

// Open creates the position and sets is_collateralized in one commit.
func (s *CollateralServiceImpl) Open(ctx context.Context, req ports.OpenCollateralRequest) (*ports.CollateralResult, error) {
	if err := requireNow(req.Now); err != nil {
		return nil, err
	}

	var (
		result ports.CollateralResult
		box    outbox
	)
	err := s.store.WithinWexel(ctx, req.WexelID, func(ctx context.Context, tx ports.LedgerTx) error {
		dup, err := alreadyApplied(ctx, tx, domain.EventCollateralOpened, req.WexelID, req.TxHash)
		if err != nil {
			return err
		}
		if dup {
			pos, err := tx.GetLatestPosition(ctx, req.WexelID)
			if err != nil {
				return apperror.ErrDatabaseError(fmt.Errorf("get position: %w", err))
			}
			result = ports.CollateralResult{Position: pos, Duplicate: true}
			return nil
		}

		w, err := loadMutableWexel(ctx, tx, req.WexelID)
		if err != nil {
			return err
		}
		if err := requireOwner(w, req.Caller); err != nil {
			return err
		}
		if w.IsCollateralized {
			return apperror.ErrAlreadyCollateralized()
		}
		latest, err := tx.GetLatestPosition(ctx, w.ID)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("get position: %w", err))
		}
		if latest != nil && latest.IsOpen() {
			return apperror.ErrAlreadyCollateralized()
		}
		listing, err := tx.GetActiveListing(ctx, w.ID)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("get active listing: %w", err))
		}
		if listing != nil {
			return apperror.ErrListedWexel()
		}

		quote, err := s.quote(w)
		if err != nil {
			return err
		}
		pos := &domain.CollateralPosition{
			ID:         uuid.New(),
			WexelID:    w.ID,
			LoanAmount: quote.LoanAmount,
			StartTs:    req.Now,
			TxHash:     strPtr(req.TxHash),
			CreatedAt:  req.Now,
			UpdatedAt:  req.Now,
		}
		w.IsCollateralized = true
		w.UpdatedAt = req.Now

		if err := tx.CreatePosition(ctx, pos); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("create position: %w", err))
		}
		if err := tx.UpdateWexel(ctx, w); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("update wexel: %w", err))
		}
		if err := markApplied(ctx, tx, domain.EventCollateralOpened, w.ID, req.TxHash, req.Now); err != nil {
			return err
		}

		box.add(domain.NotifyCollateralOpened, w, pos, req.Now)
		result.Position = pos
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}
	if result.Duplicate {
		s.log.Info().Int64("wexel_id", req.WexelID).Str("tx_hash", req.TxHash).Msg("duplicate collateral open ignored")
		return &result, nil
	}

	box.flush(ctx, s.notifier, s.log)

	s.log.Info().
		Str("position_id", result.Position.ID.String()).
		Int64("wexel_id", req.WexelID).
		Int64("loan_amount", result.Position.LoanAmount).
		Msg("collateral opened successfully")

	return &result, nil
}

// Repay closes the open position and clears is_collateralized in one commit.
func (s *CollateralServiceImpl) Repay(ctx context.Context, req ports.RepayRequest) (*ports.CollateralResult, error) {
	if err := requireNow(req.Now); err != nil {
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, apperror.Validation("amount must be > 0")
	}

	var (
		result ports.CollateralResult
		box    outbox
	)
	err := s.store.WithinWexel(ctx, req.WexelID, func(ctx context.Context, tx ports.LedgerTx) error {
		dup, err := alreadyApplied(ctx, tx, domain.EventCollateralRepaid, req.WexelID, req.TxHash)
		if err != nil {
			return err
		}
		if dup {
			pos, err := tx.GetLatestPosition(ctx, req.WexelID)
			if err != nil {
				return apperror.ErrDatabaseError(fmt.Errorf("get position: %w", err))
			}
			result = ports.CollateralResult{Position: pos, Duplicate: true}
			return nil
		}

		w, err := loadMutableWexel(ctx, tx, req.WexelID)
		if err != nil {
			return err
		}
		if err := requireOwner(w, req.Caller); err != nil {
			return err
		}
		pos, err := tx.GetLatestPosition(ctx, w.ID)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("get position: %w", err))
		}
		if pos == nil {
			return apperror.ErrPositionNotFound()
		}
		if !pos.IsOpen() {
			return apperror.ErrAlreadyRepaid()
		}
		if req.Amount < pos.LoanAmount {
			return apperror.ErrInsufficientRepayment()
		}

		repaidAt := req.Now
		pos.Repaid = true
		pos.RepaidAmount = req.Amount
		pos.RepaidAt = &repaidAt
		pos.UpdatedAt = req.Now
		w.IsCollateralized = false
		w.UpdatedAt = req.Now

		if err := tx.UpdatePosition(ctx, pos); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("update position: %w", err))
		}
		if err := tx.UpdateWexel(ctx, w); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("update wexel: %w", err))
		}
		if err := markApplied(ctx, tx, domain.EventCollateralRepaid, w.ID, req.TxHash, req.Now); err != nil {
			return err
		}

		box.add(domain.NotifyCollateralRepaid, w, pos, req.Now)
		result.Position = pos
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}
	if result.Duplicate {
		s.log.Info().Int64("wexel_id", req.WexelID).Str("tx_hash", req.TxHash).Msg("duplicate repayment ignored")
		return &result, nil
	}

	box.flush(ctx, s.notifier, s.log)

	s.log.Info().
		Str("position_id", result.Position.ID.String()).
		Int64("wexel_id", req.WexelID).
		Int64("repaid_amount", req.Amount).
		Msg("loan repaid successfully")

	return &result, nil
}
