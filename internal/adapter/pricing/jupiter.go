package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"wexel-ledger/config"
	"wexel-ledger/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const sourceJupiter = "jupiter"

// JupiterClient implements ports.PriceSource against the Jupiter price API.
// Jupiter keys prices by SPL mint, so no id mapping is needed.
type JupiterClient struct {
	fetcher
	baseURL string
	now     func() time.Time
}

func NewJupiterClient(cfg config.PricingConfig, log zerolog.Logger) *JupiterClient {
	return &JupiterClient{
		fetcher: newFetcher(sourceJupiter, cfg, log),
		baseURL: cfg.JupiterURL,
		now:     time.Now,
	}
}

type jupiterResponse struct {
	Data map[string]*struct {
		ID    string          `json:"id"`
		Price decimal.Decimal `json:"price"`
	} `json:"data"`
}

func (c *JupiterClient) Price(ctx context.Context, mint string) (*domain.PriceQuote, error) {
	q := url.Values{}
	q.Set("ids", mint)

	body, err := c.get(ctx, c.baseURL+"?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var resp jupiterResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding jupiter response: %w", err)
	}
	p := resp.Data[mint]
	if p == nil {
		return nil, fmt.Errorf("jupiter returned no price for %s", mint)
	}
	micro, err := toMicro(p.Price)
	if err != nil {
		return nil, fmt.Errorf("jupiter price for %s: %w", mint, err)
	}

	c.log.Debug().Str("mint", mint).Str("usd", p.Price.String()).Int64("price_usd", micro).Msg("price fetched")

	return &domain.PriceQuote{
		Mint:       mint,
		PriceUSD:   micro,
		ObservedAt: c.now().UTC(),
		Source:     sourceJupiter,
	}, nil
}
