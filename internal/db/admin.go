package db

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/innovaedu/portal/internal/config"
	"github.com/innovaedu/portal/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateDefaultAdmin creates a bootstrap admin profile if admin credentials
// are configured and no profiles exist yet. Only meaningful for local auth;
// with a hosted provider profiles arrive from signups.
func CreateDefaultAdmin(db *gorm.DB, cfg config.AuthConfig) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		slog.Info("No admin_email or admin_password set, skipping default admin creation")
		return nil
	}

	var count int64
	if err := db.Model(&models.Profile{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count profiles: %w", err)
	}
	if count > 0 {
		slog.Info("Profiles already exist, skipping default admin creation")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	profile := models.Profile{
		ID:           uuid.New(),
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashedPassword),
	}
	if err := db.Create(&profile).Error; err != nil {
		return fmt.Errorf("failed to create admin profile: %w", err)
	}

	role := models.UserRole{
		UserID: profile.ID,
		Role:   models.RoleAdmin,
	}
	if err := db.Create(&role).Error; err != nil {
		return fmt.Errorf("failed to grant admin role: %w", err)
	}

	slog.Info("Default admin created", "email", cfg.AdminEmail)
	return nil
}
