package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"fractalyx/internal/infrastructure/ratelimit"
	"fractalyx/internal/shared/logger"
	"fractalyx/internal/shared/utils"
)

// ChatRateLimit throttles chat message posts per authenticated customer,
// falling back to the client IP before authentication. Limiter failures fail
// open so a Redis outage never blocks chat.
func ChatRateLimit(limiter ratelimit.RateLimiter, cfg ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if customerID, ok := CustomerID(c); ok {
			key = fmt.Sprintf("customer:%d", customerID)
		}

		allowed, err := limiter.Allow("chat:"+key, cfg)
		if err != nil {
			log.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
