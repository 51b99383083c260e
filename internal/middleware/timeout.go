package middleware

import (
	"context" // Request deadline
	"time"    // Durations

	"github.com/gin-gonic/gin" // Gin web framework
)

// Timeout bounds the request context so store calls give up after d.
// A non-positive d leaves the request untouched.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), d) // Derive a bounded context
		defer cancel()
		c.Request = c.Request.WithContext(ctx) // Handlers read it via c.Request.Context()
		c.Next()
	}
}
