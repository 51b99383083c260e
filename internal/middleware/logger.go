package middleware

import (
	"time" // Request latency

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Request ids
	"github.com/sirupsen/logrus" // Logging library
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestLogger assigns a request id and logs every request once it completes
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		// Reuse the caller's id if present, otherwise generate one
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("requestID", requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next() // Run the handlers

		status := c.Writer.Status()
		entry := logrus.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       RoutePath(c),
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})
		// Server errors at error level, everything else at info
		if status >= 500 {
			entry.Error("Request failed")
			return
		}
		entry.Info("Request handled")
	}
}

// RoutePath returns the matched route pattern, or the raw URL path when no
// route matched.
func RoutePath(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return c.Request.URL.Path
}
