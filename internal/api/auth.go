package api

import (
	"context"  // Request context
	"net/http" // HTTP status codes

	"mindspace/internal/domain" // Importing domain models
	"mindspace/internal/utils"  // Password limits

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// AccountService is what the handlers need from the account layer
type AccountService interface {
	Register(ctx context.Context, email, username, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// RegisterRequest is the body of POST /register
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// LoginRequest is the body of POST /login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// LoginResult is the user summary returned on a successful login
type LoginResult struct {
	UserID uint   `json:"userId"` // User ID
	Name   string `json:"name"`   // Username
	Email  string `json:"email"`  // Email as stored
}

// LoginResponse is the body of a successful POST /login
type LoginResponse struct {
	StatusCode  int         `json:"statusCode"`  // Always 200
	Message     string      `json:"message"`     // "Login successful"
	LoginResult LoginResult `json:"loginResult"` // Authenticated user
}

// RegisterHandler creates a user unless the email is already taken
func RegisterHandler(svc AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// Missing field or malformed JSON
			respond(c, http.StatusBadRequest, msgInvalidRequest)
			return
		}
		if len(req.Password) > utils.MaxPasswordBytes {
			// bcrypt would refuse it
			respond(c, http.StatusBadRequest, msgInvalidRequest)
			return
		}
		user, err := svc.Register(c.Request.Context(), req.Email, req.Username, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		// Log successful registration
		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString("requestID"),
			"user_id":    user.ID,
		}).Info("User registered")
		respond(c, http.StatusCreated, msgRegistered)
	}
}

// LoginHandler verifies an email/password pair and returns a user summary
func LoginHandler(svc AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respond(c, http.StatusBadRequest, msgInvalidRequest)
			return
		}
		user, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err) // Unknown email and wrong password look the same
			return
		}
		c.JSON(http.StatusOK, LoginResponse{
			StatusCode: http.StatusOK,
			Message:    msgLoginSuccessful,
			LoginResult: LoginResult{
				UserID: user.ID,
				Name:   user.Username,
				Email:  user.Email,
			},
		})
	}
}
