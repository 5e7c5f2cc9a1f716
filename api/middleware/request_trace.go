package middleware

import (
	"github.com/gin-gonic/gin"

	"tweetsmith/trace"
)

const headerRequestID = "X-Request-Id"

// RequestTrace guarantees every inbound request has a request id, stored on
// the context and echoed in the response header.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Request.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}

		c.Request = c.Request.WithContext(trace.WithRequestID(c.Request.Context(), requestID))
		c.Writer.Header().Set(headerRequestID, requestID)

		c.Next()
	}
}
