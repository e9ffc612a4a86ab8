package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/subvault/subvault-api/internal/logger"
	"github.com/subvault/subvault-api/internal/ratelimit"
)

// RateLimit returns a gin middleware that applies policy per client IP.
// A nil limiter disables the check. Limiter errors let the request through.
func RateLimit(limiter ratelimit.Limiter, policy string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		decision, err := limiter.Allow(c.Request.Context(), policy, c.ClientIP())
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Rate limit check failed",
				zap.String("policy", policy),
				zap.Error(err),
			)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

		if !decision.Allowed {
			seconds := int(math.Ceil(decision.RetryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(seconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}

		c.Next()
	}
}
