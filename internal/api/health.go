package api

import (
	"context"  // Ping context
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Pinger reports whether the store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler answers 200 while the store responds and 503 otherwise
func HealthHandler(store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.PingContext(c.Request.Context()); err != nil {
			logrus.WithField("error", err.Error()).Warn("Health check failed")
			respond(c, http.StatusServiceUnavailable, msgUnavailable)
			return
		}
		respond(c, http.StatusOK, msgOK)
	}
}
