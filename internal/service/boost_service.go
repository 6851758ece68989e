package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wexel-ledger/internal/core/domain"
	"wexel-ledger/internal/core/ports"
	"wexel-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// BoostServiceImpl implements ports.BoostService.
type BoostServiceImpl struct {
	store       ports.LedgerStore
	prices      ports.PriceSource
	tokens      ports.TokenRegistry
	notifier    ports.Notifier
	maxPriceAge time.Duration
	log         zerolog.Logger
}

// NewBoostService creates a new BoostServiceImpl. Quotes older than
// maxPriceAge are rejected as stale.
func NewBoostService(
	store ports.LedgerStore,
	prices ports.PriceSource,
	tokens ports.TokenRegistry,
	notifier ports.Notifier,
	maxPriceAge time.Duration,
	log zerolog.Logger,
) *BoostServiceImpl {
	return &BoostServiceImpl{
		store:       store,
		prices:      prices,
		tokens:      tokens,
		notifier:    notifier,
		maxPriceAge: maxPriceAge,
		log:         log,
	}
}

// CalculateBoost prices a prospective deposit without mutating anything.
func (s *BoostServiceImpl) CalculateBoost(ctx context.Context, req ports.BoostQuoteRequest) (*domain.BoostQuote, error) {
	if err := validateBoostInput(req.TokenMint, req.Amount, req.Now); err != nil {
		return nil, err
	}
	token, ok := s.tokens.Token(req.TokenMint)
	if !ok {
		return nil, apperror.ErrUnsupportedToken(req.TokenMint)
	}

	snap, err := s.store.Snapshot(ctx, req.WexelID)
	if err != nil {
		return nil, storeError(s.log, "snapshot", err)
	}
	if snap == nil {
		return nil, apperror.ErrWexelNotFound()
	}
	if snap.Wexel.IsFinalized() {
		return nil, apperror.ErrWexelFinalized()
	}
	if snap.Pool == nil {
		return nil, apperror.ErrPoolNotFound()
	}

	quote, err := s.fetchQuote(ctx, token)
	if err != nil {
		return nil, err
	}
	price, err := s.effectivePrice(token, quote, req.Now)
	if err != nil {
		return nil, err
	}
	value, err := domain.BoostValue(req.Amount, price)
	if err != nil {
		return nil, arithmetic(s.log, "boost value", err)
	}
	bq, err := domain.ComputeBoostQuote(&snap.Wexel, snap.Pool, snap.BoostValueUSD, value)
	if err != nil {
		return nil, arithmetic(s.log, "boost quote", err)
	}
	bq.TokenMint = req.TokenMint
	bq.Amount = req.Amount
	bq.PriceUSD = price
	return &bq, nil
}

// ApplyBoost records a boost deposit and raises the wexel's apy_boost_bp to
// the new capped total. The boost APY never decreases.
//
// The market price is fetched before the wexel's unit of work so a slow price
// source never holds the lock. Staleness is checked against req.Now inside it.
func (s *BoostServiceImpl) ApplyBoost(ctx context.Context, req ports.ApplyBoostRequest) (*ports.BoostResult, error) {
	if err := validateBoostInput(req.TokenMint, req.Amount, req.Now); err != nil {
		return nil, err
	}
	token, ok := s.tokens.Token(req.TokenMint)
	if !ok {
		return nil, apperror.ErrUnsupportedToken(req.TokenMint)
	}

	var (
		quote    *domain.PriceQuote
		priceErr error
	)
	if token.NeedsMarketPrice() && !s.seen(ctx, req.WexelID, req.TxHash) {
		quote, priceErr = s.fetchQuote(ctx, token)
	}

	var (
		result ports.BoostResult
		box    outbox
	)
	err := s.store.WithinWexel(ctx, req.WexelID, func(ctx context.Context, tx ports.LedgerTx) error {
		dup, err := alreadyApplied(ctx, tx, domain.EventBoostApplied, req.WexelID, req.TxHash)
		if err != nil {
			return err
		}
		if dup {
			w, err := tx.GetWexel(ctx, req.WexelID)
			if err != nil {
				return apperror.ErrDatabaseError(fmt.Errorf("get wexel: %w", err))
			}
			result = ports.BoostResult{Wexel: w, Duplicate: true}
			return nil
		}

		w, err := loadMutableWexel(ctx, tx, req.WexelID)
		if err != nil {
			return err
		}
		if err := requireOwner(w, req.Caller); err != nil {
			return err
		}
		pool, err := tx.GetPool(ctx, w.PoolID)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("get pool: %w", err))
		}
		if pool == nil {
			return apperror.ErrPoolNotFound()
		}

		if priceErr != nil {
			return priceErr
		}
		price, err := s.effectivePrice(token, quote, req.Now)
		if err != nil {
			return err
		}
		value, err := domain.BoostValue(req.Amount, price)
		if err != nil {
			return arithmetic(s.log, "boost value", err)
		}
		if value == 0 {
			return apperror.Validation("boost amount is worth less than one micro-unit")
		}
		existing, err := tx.SumBoostValue(ctx, w.ID)
		if err != nil {
			return storeError(s.log, "sum boost value", err)
		}

		bq, err := domain.ComputeBoostQuote(w, pool, existing, value)
		if err != nil {
			return arithmetic(s.log, "boost quote", err)
		}
		if bq.NewBoostBP > pool.BoostMaxBP {
			s.log.Error().
				Int64("wexel_id", w.ID).
				Int("new_boost_bp", bq.NewBoostBP).
				Int("boost_max_bp", pool.BoostMaxBP).
				Msg("boost cap exceeded")
			return apperror.ErrBoostCapExceeded()
		}

		boost := &domain.Boost{
			ID:         uuid.New(),
			WexelID:    w.ID,
			TokenMint:  req.TokenMint,
			Amount:     req.Amount,
			PriceUSD:   price,
			ValueUSD:   value,
			APYBoostBP: bq.IncrementalBP,
			TxHash:     strPtr(req.TxHash),
			CreatedAt:  req.Now,
		}
		w.APYBoostBP = bq.NewBoostBP
		w.UpdatedAt = req.Now

		if err := tx.UpdateWexel(ctx, w); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("update wexel: %w", err))
		}
		if err := tx.CreateBoost(ctx, boost); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("create boost: %w", err))
		}
		if err := markApplied(ctx, tx, domain.EventBoostApplied, w.ID, req.TxHash, req.Now); err != nil {
			return err
		}

		box.add(domain.NotifyBoostApplied, w, boost, req.Now)
		result = ports.BoostResult{Boost: boost, Wexel: w}
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}
	if result.Duplicate {
		s.log.Info().Int64("wexel_id", req.WexelID).Str("tx_hash", req.TxHash).Msg("duplicate boost ignored")
		return &result, nil
	}

	box.flush(ctx, s.notifier, s.log)

	s.log.Info().
		Str("boost_id", result.Boost.ID.String()).
		Int64("wexel_id", req.WexelID).
		Int64("value_usd", result.Boost.ValueUSD).
		Int("apy_boost_bp", result.Wexel.APYBoostBP).
		Msg("boost applied successfully")

	return &result, nil
}

// seen peeks at committed dedup state so a redelivered boost skips pricing.
// Lookup errors fall through to the authoritative check.
func (s *BoostServiceImpl) seen(ctx context.Context, wexelID int64, txHash string) bool {
	if txHash == "" {
		return false
	}
	ok, err := s.store.IsProcessed(ctx, domain.ProcessedKey{WexelID: wexelID, Kind: domain.EventBoostApplied, TxHash: txHash})
	if err != nil {
		s.log.Warn().Err(err).Int64("wexel_id", wexelID).Str("tx_hash", txHash).Msg("processed lookup failed")
		return false
	}
	return ok
}

// fetchQuote asks the price source for the token's market price. Fixed-internal
// tokens never consult it.
func (s *BoostServiceImpl) fetchQuote(ctx context.Context, token domain.BoostToken) (*domain.PriceQuote, error) {
	if !token.NeedsMarketPrice() {
		return nil, nil
	}
	quote, err := s.prices.Price(ctx, token.Mint)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Kind == apperror.KindPriceUnavailable {
			return nil, appErr
		}
		return nil, apperror.ErrPriceUnavailable(token.Mint, err)
	}
	return quote, nil
}

// effectivePrice applies the token's pricing policy to quote as of now.
func (s *BoostServiceImpl) effectivePrice(token domain.BoostToken, quote *domain.PriceQuote, now time.Time) (int64, error) {
	if !token.NeedsMarketPrice() {
		return token.FixedPriceUSD, nil
	}
	if quote == nil || quote.PriceUSD <= 0 {
		return 0, apperror.ErrPriceUnavailable(token.Mint, errors.New("no price"))
	}
	if quote.IsStale(now, s.maxPriceAge) {
		return 0, apperror.ErrPriceUnavailable(token.Mint,
			fmt.Errorf("price observed at %s is older than %s", quote.ObservedAt.Format(time.RFC3339), s.maxPriceAge))
	}

	price, err := token.EffectivePrice(quote.PriceUSD)
	if err != nil {
		return 0, arithmetic(s.log, "effective price", err)
	}
	return price, nil
}

func validateBoostInput(mint string, amount int64, now time.Time) error {
	if mint == "" {
		return apperror.Validation("token_mint is required")
	}
	if amount <= 0 {
		return apperror.Validation("amount must be > 0")
	}
	return requireNow(now)
}
