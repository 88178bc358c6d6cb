package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovaedu/portal/internal/auth"
	"github.com/innovaedu/portal/internal/roles"
	"gorm.io/gorm"
)

// MeResponse describes the current session for the admin UI: the profile
// plus the derived is_admin flag.
type MeResponse struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Roles     []string `json:"roles"`
	IsAdmin   bool     `json:"is_admin"`
}

// Login godoc
// @Summary User login
// @Description Authenticate against the configured provider and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body auth.LoginRequest true "Login credentials"
// @Success 200 {object} auth.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func Login(authenticator auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req auth.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		resp, err := authenticator.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
				return
			}
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// Me godoc
// @Summary Current session
// @Description Returns the authenticated profile and its role labels
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} MeResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [get]
func Me(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, ok := currentProfile(c)
		if !ok {
			return
		}

		labels, err := roles.RolesFor(db, profile.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch roles"})
			return
		}

		isAdmin, err := roles.IsAdmin(db, profile.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to check admin role"})
			return
		}

		c.JSON(http.StatusOK, MeResponse{
			ID:        profile.ID.String(),
			Email:     profile.Email,
			FirstName: profile.FirstName,
			LastName:  profile.LastName,
			Roles:     labels,
			IsAdmin:   isAdmin,
		})
	}
}

// Logout godoc
// @Summary Sign out
// @Description Ends the session with the auth provider where supported
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/logout [post]
func Logout(authenticator auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := currentProfile(c); !ok {
			return
		}

		token, err := auth.BearerToken(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
			return
		}

		if err := authenticator.SignOut(c.Request.Context(), token); err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "sign-out failed"})
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "signed out"})
	}
}
