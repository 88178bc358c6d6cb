package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role labels. Stored as free-form text, so the set is open; these are the
// labels the admin UI assigns.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// UserRole binds a role label to a user. The composite unique index makes
// duplicate assignment a constraint violation rather than a race.
type UserRole struct {
	ID        uuid.UUID `gorm:"type:text;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:text;not null;uniqueIndex:idx_user_roles_user_role" json:"user_id"`
	Role      string    `gorm:"not null;uniqueIndex:idx_user_roles_user_role" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate hook to generate UUID
func (r *UserRole) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
