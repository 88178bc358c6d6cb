package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/innovaedu/portal/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(&models.Profile{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func createTestProfile(t *testing.T, db *gorm.DB, email, password string) *models.Profile {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	profile := models.Profile{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}
	return &profile
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !VerifyPassword(hash, "secret123") {
		t.Error("expected password to verify")
	}
	if VerifyPassword(hash, "wrong") {
		t.Error("expected wrong password to fail")
	}
}

func TestLogin_Success(t *testing.T) {
	db := setupAuthTestDB(t)
	createTestProfile(t, db, "admin@innovaedu.com", "secret123")

	a := NewLocalAuthenticator(db, "test-secret")
	resp, err := a.Login(context.Background(), "admin@innovaedu.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected non-empty token")
	}
	if resp.User == nil || resp.User.Email != "admin@innovaedu.com" {
		t.Error("expected profile in response")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	db := setupAuthTestDB(t)
	createTestProfile(t, db, "admin@innovaedu.com", "secret123")

	a := NewLocalAuthenticator(db, "test-secret")
	_, err := a.Login(context.Background(), "admin@innovaedu.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	db := setupAuthTestDB(t)

	a := NewLocalAuthenticator(db, "test-secret")
	_, err := a.Login(context.Background(), "nobody@example.com", "secret123")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestMiddleware_SetsProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupAuthTestDB(t)
	profile := createTestProfile(t, db, "admin@innovaedu.com", "secret123")

	a := NewLocalAuthenticator(db, "test-secret")
	resp, err := a.Login(context.Background(), "admin@innovaedu.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	router := gin.New()
	router.GET("/protected", a.Middleware(), func(c *gin.Context) {
		got, err := a.GetUserFromContext(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": got.ID.String()})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	if want := profile.ID.String(); !strings.Contains(w.Body.String(), want) {
		t.Errorf("expected body to contain profile ID %s, got %s", want, w.Body.String())
	}
}

func TestMiddleware_RejectsMissingAndBadTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupAuthTestDB(t)

	a := NewLocalAuthenticator(db, "test-secret")
	router := gin.New()
	router.GET("/protected", a.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, tc := range []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"malformed header", "Token abc"},
		{"garbage token", "Bearer not-a-jwt"},
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected status %d, got %d", tc.name, http.StatusUnauthorized, w.Code)
		}
	}
}

func TestMiddleware_RejectsTokenSignedWithDifferentSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupAuthTestDB(t)
	createTestProfile(t, db, "admin@innovaedu.com", "secret123")

	issuer := NewLocalAuthenticator(db, "other-secret")
	resp, err := issuer.Login(context.Background(), "admin@innovaedu.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	a := NewLocalAuthenticator(db, "test-secret")
	router := gin.New()
	router.GET("/protected", a.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}
