package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"studio_api/internal/infrastructure/ratelimit"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimit limits a route group per client IP. A limiter error lets the
// request through.
func RateLimit(limiter ratelimit.Limiter, group string, rule ratelimit.Rule, log *zap.Logger) gin.HandlerFunc {
	log = log.Named("http.ratelimit")
	return func(c *gin.Context) {
		key := group + ":" + c.ClientIP()
		d, err := limiter.Allow(c.Request.Context(), key, rule)
		if err != nil {
			log.Error("rate limiter failed", zap.String("group", group), zap.Error(err))
			c.Next()
			return
		}
		if d.Allowed {
			c.Next()
			return
		}

		retryAfterMs := int(d.RetryAfter / time.Millisecond)
		if retryAfterMs <= 0 {
			retryAfterMs = 1000
		}
		retryAfterSeconds := int(math.Ceil(float64(retryAfterMs) / 1000.0))
		log.Info("rate limited",
			zap.String("request_id", RequestIDFromContext(c)),
			zap.String("group", group),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("retry_after_ms", retryAfterMs))

		c.Header("Retry-After", strconv.Itoa(retryAfterSeconds))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"code":         "RATE_LIMITED",
			"message":      "Too many requests",
			"retryAfterMs": retryAfterMs,
		})
	}
}
