package service

import (
	"context"
	"fmt"
	"time"

	"wexel-ledger/internal/core/domain"
	"wexel-ledger/internal/core/ports"
	"wexel-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

const defaultManualPriceTTL = time.Hour

// PriceAdminServiceImpl implements ports.PriceAdminService. Overrides are
// written into the price cache, so boosts read them ahead of the upstream
// feeds until they expire.
type PriceAdminServiceImpl struct {
	tokens ports.TokenRegistry
	cache  ports.PriceCache
	ttl    time.Duration
	log    zerolog.Logger
}

// NewPriceAdminService creates a new PriceAdminServiceImpl. ttl bounds how
// long an override is served; a non-positive ttl means one hour.
func NewPriceAdminService(tokens ports.TokenRegistry, cache ports.PriceCache, ttl time.Duration, log zerolog.Logger) *PriceAdminServiceImpl {
	if ttl <= 0 {
		ttl = defaultManualPriceTTL
	}
	return &PriceAdminServiceImpl{tokens: tokens, cache: cache, ttl: ttl, log: log}
}

func (s *PriceAdminServiceImpl) SetManualPrice(ctx context.Context, req ports.ManualPriceRequest) (*domain.PriceQuote, error) {
	if err := requireNow(req.Now); err != nil {
		return nil, err
	}
	switch {
	case req.Mint == "":
		return nil, apperror.Validation("mint is required")
	case req.PriceUSD <= 0:
		return nil, apperror.Validation("price_usd must be > 0")
	case req.Reason == "":
		return nil, apperror.Validation("reason is required")
	}
	token, ok := s.tokens.Token(req.Mint)
	if !ok {
		return nil, apperror.ErrUnsupportedToken(req.Mint)
	}
	if !token.NeedsMarketPrice() {
		return nil, apperror.Validation("token " + token.Symbol + " has a fixed internal price")
	}

	quote := &domain.PriceQuote{
		Mint:       req.Mint,
		PriceUSD:   req.PriceUSD,
		ObservedAt: req.Now,
		Source:     domain.PriceSourceManual,
	}
	if err := s.cache.Set(ctx, quote, s.ttl); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("store manual price: %w", err))
	}

	s.log.Warn().
		Str("mint", req.Mint).
		Str("symbol", token.Symbol).
		Int64("price_usd", req.PriceUSD).
		Str("operator", req.Operator).
		Str("reason", req.Reason).
		Dur("ttl", s.ttl).
		Msg("manual price override set")

	return quote, nil
}
