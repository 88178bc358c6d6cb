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

// ContactHandler handles the public contact form and message administration
type ContactHandler struct {
	db       *gorm.DB
	composer email.Composer
}

// NewContactHandler creates a new contact handler
func NewContactHandler(db *gorm.DB, composer email.Composer) *ContactHandler {
	return &ContactHandler{db: db, composer: composer}
}

// SubmitMessageRequest is the public contact form payload. Phone is optional.
type SubmitMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// SubmitMessage godoc
// @Summary Submit a contact message
// @Description Stores an unread contact message and composes a confirmation email best-effort
// @Tags public
// @Accept json
// @Produce json
// @Param message body SubmitMessageRequest true "Message details"
// @Success 201 {object} models.ContactMessage
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /contact-messages [post]
func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req SubmitMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	message := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		Status:  models.MessageUnread,
	}

	if err := h.db.Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to send message"})
		return
	}

	// Fire-and-forget confirmation; a composer failure never fails the submission.
	content, err := h.composer.ContactConfirmation(email.ContactConfirmationRequest{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		slog.Error("Failed to compose contact confirmation", "message_id", message.ID, "error", err)
	} else {
		slog.Info("Contact confirmation composed", "to", content.To, "subject", content.Subject)
	}

	c.JSON(http.StatusCreated, message)
}

// ListMessages godoc
// @Summary List all contact messages
// @Description Returns all contact messages, newest first (admin only)
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.ContactMessage
// @Failure 500 {object} ErrorResponse
// @Router /admin/contact-messages [get]
func (h *ContactHandler) ListMessages(c *gin.Context) {
	var messages []models.ContactMessage
	if err := h.db.Order("created_at DESC").Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// UpdateMessageStatus godoc
// @Summary Update contact message status
// @Description Marks a message read, or a read message replied (admin only)
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} models.ContactMessage
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/contact-messages/{id}/status [patch]
func (h *ContactHandler) UpdateMessageStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if !models.ValidMessageStatus(req.Status) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown status: " + req.Status})
		return
	}

	var message models.ContactMessage
	if err := h.db.First(&message, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch message"})
		return
	}

	if !message.CanTransitionTo(req.Status) {
		c.JSON(http.StatusConflict, ErrorResponse{Error: "cannot move message from " + message.Status + " to " + req.Status})
		return
	}

	message.Status = req.Status
	if err := h.db.Model(&message).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update message"})
		return
	}

	c.JSON(http.StatusOK, message)
}
