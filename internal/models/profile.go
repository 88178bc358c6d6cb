package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile mirrors an account created by the auth provider at signup.
// Rows are read-only in this system; the local provider seeds one for the
// bootstrap admin, the hosted provider owns them entirely.
type Profile struct {
	ID           uuid.UUID `gorm:"type:text;primary_key" json:"id"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DisplayName returns the profile's full name, or the empty string when the
// optional name fields were never filled in.
func (p *Profile) DisplayName() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	default:
		return p.LastName
	}
}
