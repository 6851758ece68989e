// Package pricing resolves boost token prices: the configured token policy,
// CoinGecko and Jupiter clients chained by fallback, and a Redis-backed cache
// in front of them.
package pricing

import (
	"fmt"
	"sort"

	"wexel-ledger/config"
	"wexel-ledger/internal/core/domain"
)

// Registry implements ports.TokenRegistry over the configured boost tokens.
type Registry struct {
	tokens map[string]domain.BoostToken
	ids    map[string]string // mint -> coingecko id
}

// NewRegistry validates cfgs and builds the registry.
func NewRegistry(cfgs []config.BoostTokenConfig) (*Registry, error) {
	r := &Registry{
		tokens: make(map[string]domain.BoostToken, len(cfgs)),
		ids:    make(map[string]string, len(cfgs)),
	}
	for _, c := range cfgs {
		if c.Mint == "" {
			return nil, fmt.Errorf("boost token %q: mint is required", c.Symbol)
		}
		if _, dup := r.tokens[c.Mint]; dup {
			return nil, fmt.Errorf("boost token %s: duplicate mint", c.Mint)
		}
		t := domain.BoostToken{
			Mint:          c.Mint,
			Symbol:        c.Symbol,
			Class:         domain.TokenClass(c.Class),
			DiscountBP:    c.DiscountBP,
			FixedPriceUSD: c.FixedPriceUSD,
		}
		switch t.Class {
		case domain.TokenClassDiscountedMarket:
			if c.CoinGeckoID == "" {
				return nil, fmt.Errorf("boost token %s: coingecko_id is required for market pricing", c.Mint)
			}
			if c.DiscountBP < 0 || c.DiscountBP >= domain.BPDenominator {
				return nil, fmt.Errorf("boost token %s: discount_bp must be in [0, %d)", c.Mint, domain.BPDenominator)
			}
			r.ids[c.Mint] = c.CoinGeckoID
		case domain.TokenClassFixedInternal:
			if c.FixedPriceUSD <= 0 {
				return nil, fmt.Errorf("boost token %s: fixed_price_usd must be > 0", c.Mint)
			}
		default:
			return nil, fmt.Errorf("boost token %s: unknown class %q", c.Mint, c.Class)
		}
		r.tokens[c.Mint] = t
	}
	return r, nil
}

func (r *Registry) Token(mint string) (domain.BoostToken, bool) {
	t, ok := r.tokens[mint]
	return t, ok
}

// Tokens returns every registered token ordered by symbol.
func (r *Registry) Tokens() []domain.BoostToken {
	out := make([]domain.BoostToken, 0, len(r.tokens))
	for _, t := range r.tokens {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// CoinGeckoIDs maps market-priced mints to their CoinGecko ids.
func (r *Registry) CoinGeckoIDs() map[string]string {
	out := make(map[string]string, len(r.ids))
	for k, v := range r.ids {
		out[k] = v
	}
	return out
}
