package api

import (
	"net/http" // HTTP status codes

	"mindspace/internal/domain"     // Error kinds
	"mindspace/internal/middleware" // Route path for logs

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Response messages
const (
	msgRegistered         = "User registered successfully"
	msgUserExists         = "User already exists"
	msgLoginSuccessful    = "Login successful"
	msgInvalidCredentials = "Invalid credentials"
	msgInvalidRequest     = "Invalid request"
	msgServerError        = "Server error"
	msgOK                 = "ok"
	msgUnavailable        = "Service unavailable"
)

// StatusResponse is the body of every non-data response
type StatusResponse struct {
	StatusCode int    `json:"statusCode"` // Mirrors the HTTP status
	Message    string `json:"message"`    // Human readable outcome
}

// respond writes a StatusResponse with the given status
func respond(c *gin.Context, status int, message string) {
	c.JSON(status, StatusResponse{StatusCode: status, Message: message})
}

// respondError maps an error kind to a status; causes are logged, never returned
func respondError(c *gin.Context, err error) {
	switch domain.KindOf(err) {
	case domain.KindDuplicateUser:
		respond(c, http.StatusBadRequest, msgUserExists)
	case domain.KindInvalidCredentials:
		respond(c, http.StatusBadRequest, msgInvalidCredentials)
	default:
		// Store, hashing and unclassified failures
		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString("requestID"),
			"path":       middleware.RoutePath(c),
			"kind":       domain.KindOf(err).String(),
			"error":      err.Error(),
		}).Error("Request failed")
		respond(c, http.StatusInternalServerError, msgServerError)
	}
}
