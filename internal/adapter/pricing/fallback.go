package pricing

import (
	"context"
	"errors"
	"fmt"

	"wexel-ledger/internal/core/domain"
	"wexel-ledger/internal/core/ports"

	"github.com/rs/zerolog"
)

// NamedSource labels a PriceSource for logs and errors.
type NamedSource struct {
	Name   string
	Source ports.PriceSource
}

// FallbackSource asks each source in order and returns the first quote. A
// source answering with a non-positive price counts as a failure.
type FallbackSource struct {
	sources []NamedSource
	log     zerolog.Logger
}

func NewFallbackSource(log zerolog.Logger, sources ...NamedSource) *FallbackSource {
	return &FallbackSource{sources: sources, log: log}
}

func (s *FallbackSource) Price(ctx context.Context, mint string) (*domain.PriceQuote, error) {
	var errs []error
	for _, src := range s.sources {
		quote, err := src.Source.Price(ctx, mint)
		if err == nil && (quote == nil || quote.PriceUSD <= 0) {
			err = errors.New("empty quote")
		}
		if err == nil {
			if len(errs) > 0 {
				s.log.Info().Str("mint", mint).Str("source", src.Name).Msg("price served by fallback source")
			}
			return quote, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.log.Warn().Err(err).Str("mint", mint).Str("source", src.Name).Msg("price source failed")
		errs = append(errs, fmt.Errorf("%s: %w", src.Name, err))
	}
	if len(errs) == 0 {
		return nil, fmt.Errorf("no price source configured for %s", mint)
	}
	return nil, errors.Join(errs...)
}
