package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovaedu/portal/internal/auth"
	"github.com/innovaedu/portal/internal/models"
	"github.com/innovaedu/portal/internal/roles"
	"gorm.io/gorm"
)

// RequireAdmin ensures the authenticated user holds an admin role. The check
// runs server-side on every admin request; the UI's own gate is advisory.
func RequireAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get(auth.UserContextKey)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		profile, ok := val.(*models.Profile)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		isAdmin, err := roles.IsAdmin(db, profile.ID)
		if err != nil || !isAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
