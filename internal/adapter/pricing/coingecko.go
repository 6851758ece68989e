package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"
	"time"

	"wexel-ledger/config"
	"wexel-ledger/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const sourceCoinGecko = "coingecko"

// ErrUnknownToken is returned for mints without a CoinGecko id.
var ErrUnknownToken = errors.New("token has no market price feed")

var maxMicro = decimal.NewFromInt(math.MaxInt64)

// CoinGeckoClient implements ports.PriceSource against the CoinGecko
// simple/price endpoint.
type CoinGeckoClient struct {
	fetcher
	baseURL string
	ids     map[string]string
	now     func() time.Time
}

// NewCoinGeckoClient creates a client for the mints in ids.
func NewCoinGeckoClient(cfg config.PricingConfig, ids map[string]string, log zerolog.Logger) *CoinGeckoClient {
	return &CoinGeckoClient{
		fetcher: newFetcher(sourceCoinGecko, cfg, log),
		baseURL: cfg.CoinGeckoURL,
		ids:     ids,
		now:     time.Now,
	}
}

type simplePrice struct {
	USD           decimal.Decimal `json:"usd"`
	LastUpdatedAt int64           `json:"last_updated_at"`
}

// Price fetches the USD price of mint in micro-USD.
func (c *CoinGeckoClient) Price(ctx context.Context, mint string) (*domain.PriceQuote, error) {
	id, ok := c.ids[mint]
	if !ok {
		return nil, fmt.Errorf("%s: %w", mint, ErrUnknownToken)
	}

	q := url.Values{}
	q.Set("ids", id)
	q.Set("vs_currencies", "usd")
	q.Set("include_last_updated_at", "true")
	endpoint := c.baseURL + "/simple/price?" + q.Encode()

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var resp map[string]simplePrice
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding coingecko response: %w", err)
	}
	p, ok := resp[id]
	if !ok {
		return nil, fmt.Errorf("coingecko returned no price for %s", id)
	}

	micro, err := toMicro(p.USD)
	if err != nil {
		return nil, fmt.Errorf("coingecko price for %s: %w", id, err)
	}

	observed := c.now().UTC()
	if p.LastUpdatedAt > 0 {
		observed = time.Unix(p.LastUpdatedAt, 0).UTC()
	}

	c.log.Debug().
		Str("mint", mint).
		Str("usd", p.USD.String()).
		Int64("price_usd", micro).
		Msg("price fetched")

	return &domain.PriceQuote{
		Mint:       mint,
		PriceUSD:   micro,
		ObservedAt: observed,
		Source:     sourceCoinGecko,
	}, nil
}

// toMicro converts a USD decimal to micro-USD, rounding half away from zero.
func toMicro(usd decimal.Decimal) (int64, error) {
	micro := usd.Shift(6).Round(0)
	if !micro.IsPositive() {
		return 0, fmt.Errorf("non-positive price %s", usd)
	}
	if micro.GreaterThan(maxMicro) {
		return 0, fmt.Errorf("price %s overflows micro-USD", usd)
	}
	return micro.IntPart(), nil
}
