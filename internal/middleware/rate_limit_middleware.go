package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	apperrors "github.com/yms2/bizinfo-backend/internal/errors"
	"github.com/yms2/bizinfo-backend/pkg/redis"
)

// RateLimitMiddleware caps requests per client IP with a Redis fixed-window
// counter. Counter failures let the request through; the limiter protects the
// search routes but must never take them down with it.
func RateLimitMiddleware(limitPerMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		key := fmt.Sprintf("ratelimit:search:%s", c.ClientIP())
		count, err := redis.IncrementWindow(c.Request.Context(), key, time.Minute)
		if err != nil {
			log.Warn("Rate limit counter unavailable, allowing request", map[string]interface{}{
				"error": err.Error(),
			})
			c.Next()
			return
		}

		if count > int64(limitPerMinute) {
			log.Warn("Search rate limit exceeded", map[string]interface{}{
				"ip":    c.ClientIP(),
				"count": count,
				"limit": limitPerMinute,
			})
			apperrors.TooManyRequests(c, "")
			c.Abort()
			return
		}

		c.Next()
	}
}
