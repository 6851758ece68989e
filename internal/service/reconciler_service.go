package service

import (
	"context"
	"time"

	"wexel-ledger/internal/core/domain"
	"wexel-ledger/internal/core/ports"
	"wexel-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// ReconcilerServiceImpl implements ports.Reconciler. Each event is applied
// through the owning service with its tx hash, so the ProcessedEvent row is
// written in the same commit as the mutation. The cache only short-circuits
// redeliveries.
type ReconcilerServiceImpl struct {
	deposits    ports.DepositService
	accrual     ports.AccrualService
	boosts      ports.BoostService
	collateral  ports.CollateralService
	marketplace ports.MarketplaceService
	cache       ports.ProcessedEventCache
	cacheTTL    time.Duration
	log         zerolog.Logger
}

// ReconcilerDeps groups the services the reconciler dispatches to.
type ReconcilerDeps struct {
	Deposits    ports.DepositService
	Accrual     ports.AccrualService
	Boosts      ports.BoostService
	Collateral  ports.CollateralService
	Marketplace ports.MarketplaceService
	Cache       ports.ProcessedEventCache // optional
	CacheTTL    time.Duration
}

// NewReconcilerService creates a new ReconcilerServiceImpl.
func NewReconcilerService(deps ReconcilerDeps, log zerolog.Logger) *ReconcilerServiceImpl {
	return &ReconcilerServiceImpl{
		deposits:    deps.Deposits,
		accrual:     deps.Accrual,
		boosts:      deps.Boosts,
		collateral:  deps.Collateral,
		marketplace: deps.Marketplace,
		cache:       deps.Cache,
		cacheTTL:    deps.CacheTTL,
		log:         log,
	}
}

// Apply applies ev exactly once. A redelivered event returns a Duplicate
// outcome and a nil error.
func (s *ReconcilerServiceImpl) Apply(ctx context.Context, ev domain.LedgerEvent) (domain.Outcome, error) {
	if err := ev.Validate(); err != nil {
		return domain.Outcome{}, apperror.Validation(err.Error())
	}
	key := ev.Key()
	out := domain.Outcome{Key: key}

	if s.cache != nil {
		seen, err := s.cache.Seen(ctx, key)
		if err != nil {
			s.log.Warn().Err(err).Str("key", key.String()).Msg("processed cache lookup failed")
		} else if seen {
			out.Duplicate = true
			s.log.Debug().Str("key", key.String()).Msg("event already processed (cache)")
			return out, nil
		}
	}

	dup, err := s.dispatch(ctx, ev)
	if err != nil {
		s.log.Warn().Err(err).
			Str("kind", string(ev.Kind)).
			Int64("wexel_id", ev.WexelID).
			Str("tx_hash", ev.TxHash).
			Msg("event rejected")
		return out, err
	}
	out.Duplicate = dup

	if s.cache != nil {
		if err := s.cache.Mark(ctx, key, s.cacheTTL); err != nil {
			s.log.Warn().Err(err).Str("key", key.String()).Msg("failed to mark processed cache")
		}
	}

	s.log.Info().
		Str("kind", string(ev.Kind)).
		Int64("wexel_id", ev.WexelID).
		Str("tx_hash", ev.TxHash).
		Bool("duplicate", dup).
		Msg("event reconciled successfully")

	return out, nil
}

func (s *ReconcilerServiceImpl) dispatch(ctx context.Context, ev domain.LedgerEvent) (bool, error) {
	now := ev.ObservedAt

	switch ev.Kind {
	case domain.EventDepositConfirmed:
		var p domain.DepositConfirmedPayload
		if err := ev.DecodePayload(&p); err != nil {
			return false, apperror.Validation(err.Error())
		}
		req := ports.DepositRequest{
			WexelID:   ev.WexelID,
			PoolID:    p.PoolID,
			Owner:     p.Owner,
			Principal: p.Principal,
			TxHash:    ev.TxHash,
			Now:       now,
		}
		if p.StartTs != nil {
			req.StartTs = *p.StartTs
		}
		res, err := s.deposits.ConfirmDeposit(ctx, req)
		if err != nil {
			return false, err
		}
		return res.Duplicate, nil

	case domain.EventBoostApplied:
		var p domain.BoostAppliedPayload
		if err := ev.DecodePayload(&p); err != nil {
			return false, apperror.Validation(err.Error())
		}
		res, err := s.boosts.ApplyBoost(ctx, ports.ApplyBoostRequest{
			WexelID:   ev.WexelID,
			Caller:    p.Signer,
			TokenMint: p.TokenMint,
			Amount:    p.Amount,
			TxHash:    ev.TxHash,
			Now:       now,
		})
		if err != nil {
			return false, err
		}
		return res.Duplicate, nil

	case domain.EventClaimRequested:
		var p domain.ClaimRequestedPayload
		if err := ev.DecodePayload(&p); err != nil {
			return false, apperror.Validation(err.Error())
		}
		res, err := s.accrual.Claim(ctx, ports.ClaimRequest{
			WexelID:   ev.WexelID,
			Caller:    p.Signer,
			Amount:    p.Amount,
			ClaimType: p.ClaimType,
			TxHash:    ev.TxHash,
			Now:       now,
		})
		if err != nil {
			return false, err
		}
		return res.Duplicate, nil

	case domain.EventCollateralOpened:
		var p domain.CollateralOpenedPayload
		if err := ev.DecodePayload(&p); err != nil {
			return false, apperror.Validation(err.Error())
		}
		res, err := s.collateral.Open(ctx, ports.OpenCollateralRequest{
			WexelID: ev.WexelID,
			Caller:  p.Signer,
			TxHash:  ev.TxHash,
			Now:     now,
		})
		if err != nil {
			return false, err
		}
		return res.Duplicate, nil

	case domain.EventCollateralRepaid:
		var p domain.CollateralRepaidPayload
		if err := ev.DecodePayload(&p); err != nil {
			return false, apperror.Validation(err.Error())
		}
		res, err := s.collateral.Repay(ctx, ports.RepayRequest{
			WexelID: ev.WexelID,
			Caller:  p.Signer,
			Amount:  p.Amount,
			TxHash:  ev.TxHash,
			Now:     now,
		})
		if err != nil {
			return false, err
		}
		return res.Duplicate, nil

	case domain.EventListingSold:
		var p domain.ListingSoldPayload
		if err := ev.DecodePayload(&p); err != nil {
			return false, apperror.Validation(err.Error())
		}
		res, err := s.marketplace.Buy(ctx, ports.BuyRequest{
			ListingID: p.ListingID,
			WexelID:   ev.WexelID,
			Buyer:     p.Buyer,
			Price:     p.Price,
			TxHash:    ev.TxHash,
			Now:       now,
		})
		if err != nil {
			return false, err
		}
		return res.Duplicate, nil

	case domain.EventRedeemed:
		var p domain.RedeemedPayload
		if err := ev.DecodePayload(&p); err != nil {
			return false, apperror.Validation(err.Error())
		}
		res, err := s.deposits.Redeem(ctx, ports.RedeemRequest{
			WexelID: ev.WexelID,
			Caller:  p.Signer,
			TxHash:  ev.TxHash,
			Now:     now,
		})
		if err != nil {
			return false, err
		}
		return res.Duplicate, nil
	}

	return false, apperror.Validation("unknown event kind " + string(ev.Kind))
}
