package auth

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/innovaedu/portal/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
)

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a login response
type LoginResponse struct {
	Token string          `json:"token"`
	User  *models.Profile `json:"user"`
}

// Authenticator is an interface for authentication providers
type Authenticator interface {
	// Login authenticates a user and returns a session token
	Login(ctx context.Context, email, password string) (*LoginResponse, error)

	// SignOut invalidates the session where the provider supports it
	SignOut(ctx context.Context, token string) error

	// Middleware returns a Gin middleware for authentication
	Middleware() gin.HandlerFunc

	// GetUserFromContext extracts the authenticated profile from the Gin context
	GetUserFromContext(c *gin.Context) (*models.Profile, error)
}
