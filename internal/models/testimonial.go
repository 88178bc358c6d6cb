package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Testimonial represents a client review shown on the public testimonials page
type Testimonial struct {
	ID                 uuid.UUID `gorm:"type:text;primary_key" json:"id"`
	ClientName         string    `gorm:"not null" json:"client_name"`
	Message            string    `gorm:"not null" json:"message"`
	ClientImageURL     string    `json:"client_image_url"`
	DestinationCountry string    `json:"destination_country"`
	Rating             int       `gorm:"not null;default:5" json:"rating"`
	IsFeatured         bool      `gorm:"not null;default:false" json:"is_featured"`
	DisplayOrder       int       `gorm:"not null;default:0" json:"display_order"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// BeforeCreate hook to generate UUID
func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
