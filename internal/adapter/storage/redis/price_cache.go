package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wexel-ledger/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// PriceCache implements ports.PriceCache using Redis.
type PriceCache struct {
	client goredis.UniversalClient
	prefix string
}

// NewPriceCache creates a new Redis-backed price cache.
func NewPriceCache(client goredis.UniversalClient) *PriceCache {
	return &PriceCache{
		client: client,
		prefix: "price:",
	}
}

// Get returns the cached quote for mint, or nil on a miss.
func (c *PriceCache) Get(ctx context.Context, mint string) (*domain.PriceQuote, error) {
	val, err := c.client.Get(ctx, c.prefix+mint).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis price get: %w", err)
	}
	var q domain.PriceQuote
	if err := json.Unmarshal(val, &q); err != nil {
		return nil, fmt.Errorf("decoding cached price: %w", err)
	}
	return &q, nil
}

func (c *PriceCache) Set(ctx context.Context, quote *domain.PriceQuote, ttl time.Duration) error {
	val, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("encoding price: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+quote.Mint, val, ttl).Err(); err != nil {
		return fmt.Errorf("redis price set: %w", err)
	}
	return nil
}
