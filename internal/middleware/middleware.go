package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ebsuite/claimsportal/internal/pkg/logger"
)

// RequestLogger logs each request with its method, path, status and latency.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("clientIP", c.ClientIP()).
			Msg("Request handled")
	}
}
