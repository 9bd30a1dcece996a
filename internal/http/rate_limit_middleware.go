package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"passion-match/internal/service"
)

// RateLimitMiddleware corta con 429 cuando el cliente supera su cupo de analisis.
// Sin limiter configurado deja pasar todo.
func RateLimitMiddleware(limiter service.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		key := c.ClientIP()
		if claims, ok := GetAuthClaims(c); ok {
			key = "user:" + claims.UserID
		}

		if !limiter.Allow(key) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}
