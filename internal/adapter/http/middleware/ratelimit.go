package middleware

import (
	"context"
	"strconv"
	"time"

	redisStore "wexel-ledger/internal/adapter/storage/redis"
	"wexel-ledger/pkg/apperror"
	"wexel-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Limiter counts requests against a key over a sliding window.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*redisStore.RateLimitResult, error)
}

// RateLimitRule is the request budget for one endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

var defaultLimits = map[string]int64{
	"reads":       300,
	"claims":      30,
	"boosts":      30,
	"collateral":  20,
	"marketplace": 60,
	"redeem":      10,
	"admin":       600,
}

// RateLimitRules builds the per-group rules for window. Entries in overrides
// replace the built-in budget of a group; unknown groups are added.
func RateLimitRules(window time.Duration, overrides map[string]int64) map[string]RateLimitRule {
	if window <= 0 {
		window = time.Minute
	}
	rules := make(map[string]RateLimitRule, len(defaultLimits)+len(overrides))
	for group, limit := range defaultLimits {
		rules[group] = RateLimitRule{Limit: limit, Window: window}
	}
	for group, limit := range overrides {
		rules[group] = RateLimitRule{Limit: limit, Window: window}
	}
	return rules
}

// RateLimiter enforces rule for group. Authenticated callers are limited per
// wallet, everyone else per client IP. A limiter failure lets the request
// through.
func RateLimiter(limiter Limiter, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := bucket(c) + ":" + group

		result, err := limiter.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		h := c.Writer.Header()
		h.Set("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		h.Set("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if result.Allowed {
			c.Next()
			return
		}

		retryAfter := max(result.ResetAt-time.Now().Unix(), 1)
		h.Set("Retry-After", strconv.FormatInt(retryAfter, 10))
		log.Debug().Str("group", group).Str("key", key).Msg("rate limit exceeded")
		response.Error(c, apperror.ErrRateLimitExceeded())
		c.Abort()
	}
}

func bucket(c *gin.Context) string {
	if wallet := Wallet(c); wallet != "" {
		return "wallet:" + wallet
	}
	return "ip:" + c.ClientIP()
}
