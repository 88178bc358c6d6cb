package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment statuses
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
)

// appointmentTransitions maps a current status to the statuses an admin may
// move it to. Completed and cancelled are terminal.
var appointmentTransitions = map[string][]string{
	AppointmentPending:   {AppointmentConfirmed, AppointmentCancelled},
	AppointmentConfirmed: {AppointmentCompleted, AppointmentCancelled},
}

// Appointment represents a consultation booking submitted through the public form
type Appointment struct {
	ID            uuid.UUID `gorm:"type:text;primary_key" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Email         string    `gorm:"not null" json:"email"`
	Phone         string    `json:"phone"`
	PreferredDate string    `gorm:"not null" json:"preferred_date"`
	TimeSlot      string    `gorm:"not null" json:"time_slot"`
	Notes         string    `json:"notes"`
	Status        string    `gorm:"not null;default:pending" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BeforeCreate hook to generate UUID
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// CanTransitionTo reports whether an admin may move the appointment to status.
func (a *Appointment) CanTransitionTo(status string) bool {
	for _, next := range appointmentTransitions[a.Status] {
		if next == status {
			return true
		}
	}
	return false
}

// ValidAppointmentStatus reports whether s is a known appointment status.
func ValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCancelled, AppointmentCompleted:
		return true
	}
	return false
}
