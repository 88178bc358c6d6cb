package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/innovaedu/portal/internal/auth"
	"github.com/innovaedu/portal/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMiddlewareTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(&models.Profile{}, &models.UserRole{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// setUser simulates the auth middleware having populated the context.
func setUser(profile *models.Profile) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.UserContextKey, profile)
		c.Next()
	}
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupMiddlewareTestDB(t)

	profile := models.Profile{ID: uuid.New(), Email: "admin@innovaedu.com"}
	db.Create(&profile)
	db.Create(&models.UserRole{UserID: profile.ID, Role: models.RoleAdmin})

	router := gin.New()
	router.GET("/admin", setUser(&profile), RequireAdmin(db), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestRequireAdmin_ForbidsNonAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupMiddlewareTestDB(t)

	profile := models.Profile{ID: uuid.New(), Email: "viewer@innovaedu.com"}
	db.Create(&profile)

	router := gin.New()
	router.GET("/admin", setUser(&profile), RequireAdmin(db), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}

func TestRequireAdmin_RejectsUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupMiddlewareTestDB(t)

	router := gin.New()
	router.GET("/admin", RequireAdmin(db), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}
