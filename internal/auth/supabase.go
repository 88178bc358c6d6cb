package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/innovaedu/portal/internal/config"
	"github.com/innovaedu/portal/internal/models"
	supabase "github.com/nedpals/supabase-go"
	"gorm.io/gorm"
)

// SupabaseAuthenticator delegates sign-in/sign-out to a hosted Supabase
// project. Tokens are HS256 JWTs signed with the project secret, so they are
// validated locally without a round trip. Profile rows are owned by the
// provider (created at signup); a local mirror row is kept so role lookups
// and the user manager can join against them.
type SupabaseAuthenticator struct {
	db        *gorm.DB
	client    *supabase.Client
	jwtSecret []byte
}

// NewSupabaseAuthenticator creates an authenticator backed by a Supabase project.
func NewSupabaseAuthenticator(db *gorm.DB, cfg config.AuthConfig) (*SupabaseAuthenticator, error) {
	client := supabase.CreateClient(cfg.Supabase.BaseURL, cfg.Supabase.ServiceKey)
	if client == nil {
		return nil, fmt.Errorf("failed to create supabase client")
	}
	return &SupabaseAuthenticator{
		db:        db,
		client:    client,
		jwtSecret: []byte(cfg.JWTSecret),
	}, nil
}

// Login signs in against the hosted provider and mirrors the profile locally.
func (a *SupabaseAuthenticator) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	details, err := a.client.Auth.SignIn(ctx, supabase.UserCredentials{
		Email:    email,
		Password: password,
	})
	if err != nil {
		slog.Warn("Supabase sign-in failed", "email", email, "error", err)
		return nil, ErrInvalidCredentials
	}

	profile, err := a.mirrorProfile(details.User.ID, details.User.Email)
	if err != nil {
		return nil, err
	}

	slog.Info("User logged in via supabase", "user_id", profile.ID, "email", profile.Email)
	return &LoginResponse{
		Token: details.AccessToken,
		User:  profile,
	}, nil
}

// SignOut revokes the session with the hosted provider.
func (a *SupabaseAuthenticator) SignOut(ctx context.Context, token string) error {
	if err := a.client.Auth.SignOut(ctx, token); err != nil {
		return fmt.Errorf("supabase sign-out: %w", err)
	}
	return nil
}

// validateToken validates a provider JWT and returns the subject and email claims.
func (a *SupabaseAuthenticator) validateToken(tokenString string) (string, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.jwtSecret, nil
	})
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", ErrUnauthorized
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", "", fmt.Errorf("token missing subject")
	}
	email, _ := claims["email"].(string)
	return sub, email, nil
}

// Middleware returns a Gin middleware for authentication.
func (a *SupabaseAuthenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := BearerToken(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		sub, email, err := a.validateToken(tokenString)
		if err != nil {
			slog.Warn("Invalid token", "error", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		profile, err := a.mirrorProfile(sub, email)
		if err != nil {
			slog.Error("Failed to load profile", "error", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "profile lookup failed"})
			c.Abort()
			return
		}

		c.Set(UserContextKey, profile)
		c.Next()
	}
}

// GetUserFromContext extracts the authenticated profile from the Gin context
func (a *SupabaseAuthenticator) GetUserFromContext(c *gin.Context) (*models.Profile, error) {
	return profileFromContext(c)
}

// mirrorProfile loads the local mirror row for a provider account, creating
// it on first sight. Name fields stay empty until the provider supplies them.
func (a *SupabaseAuthenticator) mirrorProfile(id, email string) (*models.Profile, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID from provider: %w", err)
	}

	var profile models.Profile
	err = a.db.Where(models.Profile{ID: userID}).
		Attrs(models.Profile{Email: email}).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, fmt.Errorf("mirroring profile: %w", err)
	}
	return &profile, nil
}
