package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gin-gonic/gin"
	"github.com/innovaedu/portal/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupContactTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(&models.ContactMessage{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestSubmitMessage_CreatesUnreadMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupContactTestDB(t)
	handler := NewContactHandler(db, &stubComposer{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/api/v1/contact-messages", SubmitMessageRequest{
		Name:    "Rahim Chowdhury",
		Email:   "rahim@example.com",
		Message: "What are my options for studying in Canada?",
	})

	handler.SubmitMessage(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	var response models.ContactMessage
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if response.Status != models.MessageUnread {
		t.Errorf("expected status %q, got %q", models.MessageUnread, response.Status)
	}
}

func TestSubmitMessage_RequiresMessageBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupContactTestDB(t)
	handler := NewContactHandler(db, &stubComposer{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/api/v1/contact-messages", SubmitMessageRequest{
		Name:  "Rahim Chowdhury",
		Email: "rahim@example.com",
	})

	handler.SubmitMessage(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestUpdateMessageStatus_UnreadToRead(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupContactTestDB(t)
	handler := NewContactHandler(db, &stubComposer{})

	message := models.ContactMessage{Name: "Rahim", Email: "r@example.com", Message: "Hello", Status: models.MessageUnread}
	db.Create(&message)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: message.ID.String()}}
	c.Request = jsonRequest(t, http.MethodPatch, "/status", UpdateStatusRequest{Status: models.MessageRead})

	handler.UpdateMessageStatus(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var stored models.ContactMessage
	db.First(&stored, "id = ?", message.ID)
	if stored.Status != models.MessageRead {
		t.Errorf("expected stored status %q, got %q", models.MessageRead, stored.Status)
	}
}

func TestUpdateMessageStatus_UnreadCannotSkipToReplied(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupContactTestDB(t)
	handler := NewContactHandler(db, &stubComposer{})

	message := models.ContactMessage{Name: "Rahim", Email: "r@example.com", Message: "Hello", Status: models.MessageUnread}
	db.Create(&message)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: message.ID.String()}}
	c.Request = jsonRequest(t, http.MethodPatch, "/status", UpdateStatusRequest{Status: models.MessageReplied})

	handler.UpdateMessageStatus(c)

	if w.Code != http.StatusConflict {
		t.Errorf("expected status %d, got %d", http.StatusConflict, w.Code)
	}
}
