package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// UserResponse is one entry of the user listing. Password hashes are left out.
type UserResponse struct {
	ID       uint   `json:"id"`       // User ID
	Email    string `json:"email"`    // Email
	Username string `json:"username"` // Username
}

// UsersResponse is the body of GET /users
type UsersResponse struct {
	StatusCode int            `json:"statusCode"` // Always 200
	Users      []UserResponse `json:"users"`      // Every registered user
}

// ListUsersHandler returns all users
func ListUsersHandler(svc AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.ListUsers(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		// Map users to response format
		resp := make([]UserResponse, len(users))
		for i, u := range users {
			resp[i] = UserResponse{ID: u.ID, Email: u.Email, Username: u.Username}
		}
		c.JSON(http.StatusOK, UsersResponse{StatusCode: http.StatusOK, Users: resp})
	}
}
