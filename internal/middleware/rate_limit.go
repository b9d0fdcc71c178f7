package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/click-ai/cal.com/internal/config"
)

// RateLimitMiddleware creates a per-IP rate limiting middleware. Seeding is
// expensive, so runaway suites are throttled instead of saturating the
// database.
func RateLimitMiddleware(cfg *config.Config) gin.HandlerFunc {
	if !cfg.RateLimit.Enabled {
		// No-op middleware when rate limiting is disabled
		return gin.HandlerFunc(func(c *gin.Context) {
			c.Next()
		})
	}

	rate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  int64(cfg.RateLimit.RequestsPerMinute),
	}

	// In-memory store; the service runs as a single instance in CI.
	store := memory.NewStore()
	rateLimiter := limiter.New(store, rate)

	return ginlimiter.NewMiddleware(rateLimiter)
}
