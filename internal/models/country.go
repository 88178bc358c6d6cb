package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Country represents a study destination shown on the public countries page
type Country struct {
	ID           uuid.UUID `gorm:"type:text;primary_key" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	FlagImageURL string    `json:"flag_image_url"`
	Description  string    `json:"description"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate hook to generate UUID
func (c *Country) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
