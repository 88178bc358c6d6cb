package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/innovaedu/portal/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// UserContextKey is the key used to store the profile in Gin context
	UserContextKey = "user"
	// TokenDuration is the validity period for JWT tokens
	TokenDuration = 24 * time.Hour
)

// LocalAuthenticator implements email/password authentication against the
// profiles table with bcrypt hashes and HS256 JWT sessions.
type LocalAuthenticator struct {
	db        *gorm.DB
	jwtSecret []byte
}

// NewLocalAuthenticator creates a new local authenticator
func NewLocalAuthenticator(db *gorm.DB, jwtSecret string) *LocalAuthenticator {
	return &LocalAuthenticator{
		db:        db,
		jwtSecret: []byte(jwtSecret),
	}
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches the hash
func VerifyPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Claims represents JWT claims
type Claims struct {
	UserID string `json:"user_id"` // UUID stored as string
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Login authenticates a user and returns a JWT token
func (a *LocalAuthenticator) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var profile models.Profile
	result := a.db.WithContext(ctx).Where("email = ?", email).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.Warn("Login attempt with unknown email", "email", email)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("database error: %w", result.Error)
	}

	if !VerifyPassword(profile.PasswordHash, password) {
		slog.Warn("Login attempt with incorrect password", "email", email)
		return nil, ErrInvalidCredentials
	}

	token, err := a.generateToken(&profile)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	slog.Info("User logged in", "user_id", profile.ID, "email", profile.Email)
	return &LoginResponse{
		Token: token,
		User:  &profile,
	}, nil
}

// SignOut is a no-op for local auth; JWT sessions expire on their own.
func (a *LocalAuthenticator) SignOut(ctx context.Context, token string) error {
	return nil
}

// generateToken creates a JWT token for a profile
func (a *LocalAuthenticator) generateToken(profile *models.Profile) (string, error) {
	claims := Claims{
		UserID: profile.ID.String(),
		Email:  profile.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "portal",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(a.jwtSecret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// validateToken validates a JWT token and returns claims
func (a *LocalAuthenticator) validateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrUnauthorized
}

// Middleware returns a Gin middleware for authentication.
func (a *LocalAuthenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := BearerToken(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		profile, err := a.validateAndLoadProfile(tokenString)
		if err != nil {
			slog.Warn("Invalid token", "error", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(UserContextKey, profile)
		c.Next()
	}
}

// validateAndLoadProfile validates a JWT and loads the profile from the database.
func (a *LocalAuthenticator) validateAndLoadProfile(tokenString string) (*models.Profile, error) {
	claims, err := a.validateToken(tokenString)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token: %w", err)
	}

	var profile models.Profile
	if err := a.db.First(&profile, "id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("profile not found: %w", err)
	}
	return &profile, nil
}

// GetUserFromContext extracts the authenticated profile from the Gin context
func (a *LocalAuthenticator) GetUserFromContext(c *gin.Context) (*models.Profile, error) {
	return profileFromContext(c)
}

// BearerToken extracts the bearer token from the Authorization header.
func BearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", errors.New("missing authorization")
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errors.New("invalid authorization header format")
	}
	return parts[1], nil
}

func profileFromContext(c *gin.Context) (*models.Profile, error) {
	val, exists := c.Get(UserContextKey)
	if !exists {
		return nil, ErrUnauthorized
	}
	profile, ok := val.(*models.Profile)
	if !ok {
		return nil, ErrUnauthorized
	}
	return profile, nil
}
