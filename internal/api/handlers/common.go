package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovaedu/portal/internal/auth"
	"github.com/innovaedu/portal/internal/models"
)

// ErrorResponse is the standard error body
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the standard message body
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthCheck godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// currentProfile extracts the authenticated profile set by the auth middleware.
func currentProfile(c *gin.Context) (*models.Profile, bool) {
	val, exists := c.Get(auth.UserContextKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	profile, ok := val.(*models.Profile)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	return profile, true
}
