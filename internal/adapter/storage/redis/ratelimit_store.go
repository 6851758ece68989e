package redis

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RateLimitStore implements sliding-window request counters backed by Redis.
// Each key is a sorted set of request timestamps in microseconds.
type RateLimitStore struct {
	client goredis.UniversalClient
	prefix string
	now    func() time.Time
	seq    atomic.Uint64
}

// NewRateLimitStore creates a new Redis-backed rate limit store.
func NewRateLimitStore(client goredis.UniversalClient) *RateLimitStore {
	return &RateLimitStore{
		client: client,
		prefix: "ratelimit:",
		now:    time.Now,
	}
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// Allow records one request against key and reports whether the number of
// requests in the trailing window stays within limit. Rejected requests are
// not counted.
func (s *RateLimitStore) Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error) {
	if window < time.Second {
		window = time.Second
	}
	now := s.now()
	nowMicros := now.UnixMicro()
	floor := nowMicros - window.Microseconds()
	redisKey := s.prefix + key
	member := strconv.FormatInt(nowMicros, 10) + "-" + strconv.FormatUint(s.seq.Add(1), 10)

	pipe := s.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "-inf", strconv.FormatInt(floor, 10))
	card := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, goredis.Z{Score: float64(nowMicros), Member: member})
	oldest := pipe.ZRangeWithScores(ctx, redisKey, 0, 0)
	pipe.PExpire(ctx, redisKey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("redis rate limit window: %w", err)
	}

	count := card.Val() + 1
	allowed := count <= limit
	if !allowed {
		if err := s.client.ZRem(ctx, redisKey, member).Err(); err != nil {
			return nil, fmt.Errorf("redis rate limit rollback: %w", err)
		}
		count = card.Val()
	}

	resetAt := now.Add(window).Unix()
	if first := oldest.Val(); len(first) > 0 {
		resetAt = time.UnixMicro(int64(first[0].Score)).Add(window).Unix()
	}

	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}

	return &RateLimitResult{
		Allowed:   allowed,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}
