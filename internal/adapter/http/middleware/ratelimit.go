package middleware

import (
	"fmt"
	"strconv"
	"time"

	redisStore "marketplace-ledger/internal/adapter/storage/redis"
	"marketplace-ledger/pkg/apperror"
	"marketplace-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the limits per endpoint group.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"checkout":           {Limit: 300, Window: time.Minute},
		"vendor":             {Limit: 60, Window: time.Minute},
		"vendor_withdrawals": {Limit: 10, Window: time.Minute},
		"admin":              {Limit: 120, Window: time.Minute},
		"admin_approval":     {Limit: 20, Window: time.Minute},
	}
}

// RateLimiter creates a fixed-window rate limiter for a given endpoint group.
// When the store is unreachable requests are let through.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", extractIdentifier(c), group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := time.Until(time.Unix(result.ResetAt, 0))
			if retryAfter < time.Second {
				retryAfter = time.Second
			}
			response.Error(c, apperror.ErrRateLimited(retryAfter))
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier keys authenticated callers by actor and everyone else
// by address.
func extractIdentifier(c *gin.Context) string {
	if id, ok := ActorID(c); ok {
		return id.String()
	}
	return c.ClientIP()
}
