package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SuccessStory represents a placement story shown on the public success stories page
type SuccessStory struct {
	ID                 uuid.UUID `gorm:"type:text;primary_key" json:"id"`
	Title              string    `gorm:"not null" json:"title"`
	Description        string    `gorm:"not null" json:"description"`
	ImageURL           string    `json:"image_url"`
	ClientName         string    `json:"client_name"`
	DestinationCountry string    `json:"destination_country"`
	IsFeatured         bool      `gorm:"not null;default:false" json:"is_featured"`
	DisplayOrder       int       `gorm:"not null;default:0" json:"display_order"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// BeforeCreate hook to generate UUID
func (s *SuccessStory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
