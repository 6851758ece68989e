package pricing

import (
	"context"
	"time"

	"wexel-ledger/internal/core/domain"
	"wexel-ledger/internal/core/ports"

	"github.com/rs/zerolog"
)

// CachedSource puts a PriceCache in front of a PriceSource. Cache failures
// fall through to the source.
type CachedSource struct {
	source ports.PriceSource
	cache  ports.PriceCache
	ttl    time.Duration
	log    zerolog.Logger
}

func NewCachedSource(source ports.PriceSource, cache ports.PriceCache, ttl time.Duration, log zerolog.Logger) *CachedSource {
	return &CachedSource{source: source, cache: cache, ttl: ttl, log: log}
}

func (s *CachedSource) Price(ctx context.Context, mint string) (*domain.PriceQuote, error) {
	cached, err := s.cache.Get(ctx, mint)
	if err != nil {
		s.log.Warn().Err(err).Str("mint", mint).Msg("price cache lookup failed")
	} else if cached != nil {
		return cached, nil
	}

	quote, err := s.source.Price(ctx, mint)
	if err != nil {
		return nil, err
	}

	if s.ttl > 0 {
		if err := s.cache.Set(ctx, quote, s.ttl); err != nil {
			s.log.Warn().Err(err).Str("mint", mint).Msg("failed to cache price")
		}
	}
	return quote, nil
}
