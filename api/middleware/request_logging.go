package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"tweetsmith/logger"
	"tweetsmith/trace"
)

// RequestLogging logs one line per request with method, path, status and
// duration, tagged with the request id.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.InfoWithFields("api_request", logger.Fields{
			"method":      method,
			"path":        path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  trace.RequestIDFromContext(c.Request.Context()),
		})
	}
}
