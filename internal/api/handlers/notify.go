package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovaedu/portal/internal/email"
)

// NotifyHandler exposes the two confirmation composers as endpoints. The
// composed payload is returned in the response and logged; nothing is sent.
type NotifyHandler struct {
	composer email.Composer
}

// NewNotifyHandler creates a new notification handler
func NewNotifyHandler(composer email.Composer) *NotifyHandler {
	return &NotifyHandler{composer: composer}
}

// NotifyResponse carries the composed email back to the caller
type NotifyResponse struct {
	Message      string         `json:"message"`
	EmailContent *email.Content `json:"emailContent"`
}

// AppointmentConfirmation godoc
// @Summary Compose an appointment confirmation email
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body email.AppointmentConfirmationRequest true "Appointment details"
// @Success 200 {object} NotifyResponse
// @Failure 500 {object} ErrorResponse
// @Router /notifications/appointment-confirmation [post]
func (h *NotifyHandler) AppointmentConfirmation(c *gin.Context) {
	var req email.AppointmentConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	content, err := h.composer.AppointmentConfirmation(req)
	if err != nil {
		slog.Error("Appointment confirmation failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	slog.Info("Email content prepared", "to", content.To, "subject", content.Subject)
	c.JSON(http.StatusOK, NotifyResponse{
		Message:      "Appointment confirmation email sent successfully",
		EmailContent: content,
	})
}

// ContactConfirmation godoc
// @Summary Compose a contact confirmation email
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body email.ContactConfirmationRequest true "Contact details"
// @Success 200 {object} NotifyResponse
// @Failure 500 {object} ErrorResponse
// @Router /notifications/contact-confirmation [post]
func (h *NotifyHandler) ContactConfirmation(c *gin.Context) {
	var req email.ContactConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	content, err := h.composer.ContactConfirmation(req)
	if err != nil {
		slog.Error("Contact confirmation failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	slog.Info("Email content prepared", "to", content.To, "subject", content.Subject)
	c.JSON(http.StatusOK, NotifyResponse{
		Message:      "Contact confirmation email sent successfully",
		EmailContent: content,
	})
}
