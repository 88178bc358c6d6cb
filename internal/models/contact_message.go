package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact message statuses
const (
	MessageUnread  = "unread"
	MessageRead    = "read"
	MessageReplied = "replied"
)

var messageTransitions = map[string][]string{
	MessageUnread: {MessageRead},
	MessageRead:   {MessageReplied},
}

// ContactMessage represents an inquiry submitted through the public contact form
type ContactMessage struct {
	ID        uuid.UUID `gorm:"type:text;primary_key" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `gorm:"not null" json:"message"`
	Status    string    `gorm:"not null;default:unread" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook to generate UUID
func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// CanTransitionTo reports whether an admin may move the message to status.
func (m *ContactMessage) CanTransitionTo(status string) bool {
	for _, next := range messageTransitions[m.Status] {
		if next == status {
			return true
		}
	}
	return false
}

// ValidMessageStatus reports whether s is a known contact message status.
func ValidMessageStatus(s string) bool {
	switch s {
	case MessageUnread, MessageRead, MessageReplied:
		return true
	}
	return false
}
