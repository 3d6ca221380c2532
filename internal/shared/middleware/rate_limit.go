package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-backend/pkg/cache"
)

// RateLimitConfig bounds requests per client ip within a rolling window.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Requests: 100,
		Window:   time.Minute,
	}
}

// RateLimit counts requests per client ip in the shared counter store.
// Fails open: if the store is unreachable the request is let through.
func RateLimit(counter cache.Counter, cfg RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())

		count, err := counter.Increment(c.Request.Context(), key)
		if err != nil {
			log.Warn().Err(err).Msg("rate limit store unavailable, allowing request")
			c.Next()
			return
		}

		if count == 1 {
			if err := counter.Expire(c.Request.Context(), key, cfg.Window); err != nil {
				log.Warn().Err(err).Msg("failed to arm rate limit window")
			}
		}

		if count > int64(cfg.Requests) {
			retryAfter := cfg.Window
			if ttl, err := counter.TTL(c.Request.Context(), key); err == nil && ttl > 0 {
				retryAfter = ttl
			}
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": "Too many requests.",
			})
			return
		}

		c.Next()
	}
}
