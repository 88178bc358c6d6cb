package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovaedu/portal/internal/email"
	"github.com/innovaedu/portal/internal/models"
	"gorm.io/gorm"
)

// AppointmentHandler handles appointment booking and administration
type AppointmentHandler struct {
	db       *gorm.DB
	composer email.Composer
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(db *gorm.DB, composer email.Composer) *AppointmentHandler {
	return &AppointmentHandler{db: db, composer: composer}
}

// BookAppointmentRequest is the public booking form payload. Phone and notes
// are optional; omitted fields store as empty strings.
type BookAppointmentRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone"`
	PreferredDate string `json:"preferred_date" binding:"required,datetime=2006-01-02"`
	TimeSlot      string `json:"time_slot" binding:"required"`
	Notes         string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// BookAppointment godoc
// @Summary Book a consultation
// @Description Creates a pending appointment and composes a confirmation email best-effort
// @Tags public
// @Accept json
// @Produce json
// @Param booking body BookAppointmentRequest true "Booking details"
// @Success 201 {object} models.Appointment
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /appointments [post]
func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	appointment := models.Appointment{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		PreferredDate: req.PreferredDate,
		TimeSlot:      req.TimeSlot,
		Notes:         req.Notes,
		Status:        models.AppointmentPending,
	}

	if err := h.db.Create(&appointment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to book appointment"})
		return
	}

	// Confirmation email is fire-and-forget: the booking succeeded, a
	// composer failure is only logged.
	content, err := h.composer.AppointmentConfirmation(email.AppointmentConfirmationRequest{
		Name:     req.Name,
		Email:    req.Email,
		Date:     req.PreferredDate,
		TimeSlot: req.TimeSlot,
	})
	if err != nil {
		slog.Error("Failed to compose appointment confirmation", "appointment_id", appointment.ID, "error", err)
	} else {
		slog.Info("Appointment confirmation composed", "to", content.To, "subject", content.Subject)
	}

	c.JSON(http.StatusCreated, appointment)
}

// ListAppointments godoc
// @Summary List all appointments
// @Description Returns all appointment requests, newest first (admin only)
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Appointment
// @Failure 500 {object} ErrorResponse
// @Router /admin/appointments [get]
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	var appointments []models.Appointment
	if err := h.db.Order("created_at DESC").Find(&appointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch appointments"})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// UpdateAppointmentStatus godoc
// @Summary Update appointment status
// @Description Moves an appointment along its status lifecycle (admin only)
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} models.Appointment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if !models.ValidAppointmentStatus(req.Status) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown status: " + req.Status})
		return
	}

	var appointment models.Appointment
	if err := h.db.First(&appointment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Appointment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch appointment"})
		return
	}

	if !appointment.CanTransitionTo(req.Status) {
		c.JSON(http.StatusConflict, ErrorResponse{Error: "cannot move appointment from " + appointment.Status + " to " + req.Status})
		return
	}

	appointment.Status = req.Status
	if err := h.db.Model(&appointment).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update appointment"})
		return
	}

	c.JSON(http.StatusOK, appointment)
}
