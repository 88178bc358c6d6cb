package db

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/innovaedu/portal/internal/config"
	"github.com/innovaedu/portal/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAdminTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestCreateDefaultAdmin(t *testing.T) {
	db := setupAdminTestDB(t)

	cfg := config.AuthConfig{AdminEmail: "admin@innovaedu.com", AdminPassword: "secret123"}
	if err := CreateDefaultAdmin(db, cfg); err != nil {
		t.Fatalf("CreateDefaultAdmin failed: %v", err)
	}

	var profile models.Profile
	if err := db.First(&profile, "email = ?", "admin@innovaedu.com").Error; err != nil {
		t.Fatalf("admin profile not created: %v", err)
	}
	if profile.PasswordHash == "" || profile.PasswordHash == "secret123" {
		t.Error("expected hashed password")
	}

	var role models.UserRole
	if err := db.First(&role, "user_id = ?", profile.ID).Error; err != nil {
		t.Fatalf("admin role not created: %v", err)
	}
	if role.Role != models.RoleAdmin {
		t.Errorf("expected admin role, got %s", role.Role)
	}
}

func TestCreateDefaultAdmin_SkipsWhenUnconfigured(t *testing.T) {
	db := setupAdminTestDB(t)

	if err := CreateDefaultAdmin(db, config.AuthConfig{}); err != nil {
		t.Fatalf("CreateDefaultAdmin failed: %v", err)
	}

	var count int64
	db.Model(&models.Profile{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no profiles, got %d", count)
	}
}

func TestCreateDefaultAdmin_SkipsWhenProfilesExist(t *testing.T) {
	db := setupAdminTestDB(t)

	existing := models.Profile{Email: "existing@innovaedu.com"}
	if err := db.Create(&existing).Error; err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}

	cfg := config.AuthConfig{AdminEmail: "admin@innovaedu.com", AdminPassword: "secret123"}
	if err := CreateDefaultAdmin(db, cfg); err != nil {
		t.Fatalf("CreateDefaultAdmin failed: %v", err)
	}

	var count int64
	db.Model(&models.Profile{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 profile, got %d", count)
	}
}
