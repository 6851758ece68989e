package redis

import (
	"context"
	"fmt"
	"time"

	"wexel-ledger/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// ProcessedEventCache implements ports.ProcessedEventCache. Entries expire;
// the ledger's processed_events rows remain the source of truth.
type ProcessedEventCache struct {
	client goredis.UniversalClient
	prefix string
}

// NewProcessedEventCache creates a new Redis-backed processed event cache.
func NewProcessedEventCache(client goredis.UniversalClient) *ProcessedEventCache {
	return &ProcessedEventCache{
		client: client,
		prefix: "processed:",
	}
}

func (c *ProcessedEventCache) key(k domain.ProcessedKey) string {
	return fmt.Sprintf("%s%d:%s:%s", c.prefix, k.WexelID, k.Kind, k.TxHash)
}

// Seen reports whether the event was marked within the TTL.
func (c *ProcessedEventCache) Seen(ctx context.Context, k domain.ProcessedKey) (bool, error) {
	n, err := c.client.Exists(ctx, c.key(k)).Result()
	if err != nil {
		return false, fmt.Errorf("redis processed exists: %w", err)
	}
	return n > 0, nil
}

// Mark records the event. An existing mark keeps its original expiry.
func (c *ProcessedEventCache) Mark(ctx context.Context, k domain.ProcessedKey, ttl time.Duration) error {
	err := c.client.SetArgs(ctx, c.key(k), 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Err()
	if err != nil && err != goredis.Nil {
		return fmt.Errorf("redis processed mark: %w", err)
	}
	return nil
}
