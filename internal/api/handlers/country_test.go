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

func setupCountryTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(&models.Country{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestListPublicCountries_FiltersInactiveAndOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupCountryTestDB(t)
	handler := NewCountryHandler(db)

	db.Create(&models.Country{Name: "Canada", IsActive: true, DisplayOrder: 2})
	db.Create(&models.Country{Name: "Australia", IsActive: true, DisplayOrder: 1})
	db.Create(&models.Country{Name: "Hidden", IsActive: false, DisplayOrder: 0})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/countries", nil)

	handler.ListPublicCountries(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response []models.Country
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(response) != 2 {
		t.Fatalf("expected 2 active countries, got %d", len(response))
	}
	if response[0].Name != "Australia" || response[1].Name != "Canada" {
		t.Errorf("expected display_order ordering, got %s then %s", response[0].Name, response[1].Name)
	}
}

func TestCreateCountry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupCountryTestDB(t)
	handler := NewCountryHandler(db)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/api/v1/admin/countries", CountryRequest{
		Name:         "United Kingdom",
		FlagImageURL: "https://cdn.example.com/flags/uk.png",
		Description:  "World-class universities",
		IsActive:     true,
		DisplayOrder: 1,
	})

	handler.CreateCountry(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	var response models.Country
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if response.Name != "United Kingdom" {
		t.Errorf("expected name United Kingdom, got %s", response.Name)
	}
}

func TestCreateCountry_RequiresName(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupCountryTestDB(t)
	handler := NewCountryHandler(db)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/api/v1/admin/countries", CountryRequest{
		Description: "No name given",
	})

	handler.CreateCountry(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestUpdateCountry_ClearsOptionalFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupCountryTestDB(t)
	handler := NewCountryHandler(db)

	country := models.Country{Name: "Canada", Description: "Old description", IsActive: true}
	db.Create(&country)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: country.ID.String()}}
	c.Request = jsonRequest(t, http.MethodPut, "/", CountryRequest{
		Name:     "Canada",
		IsActive: false,
	})

	handler.UpdateCountry(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var stored models.Country
	db.First(&stored, "id = ?", country.ID)
	if stored.Description != "" {
		t.Errorf("expected cleared description, got %q", stored.Description)
	}
	if stored.IsActive {
		t.Error("expected country to be inactive")
	}
}

func TestUpdateCountry_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupCountryTestDB(t)
	handler := NewCountryHandler(db)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "b3c9a3d0-0000-4000-8000-000000000000"}}
	c.Request = jsonRequest(t, http.MethodPut, "/", CountryRequest{Name: "Nowhere"})

	handler.UpdateCountry(c)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestDeleteCountry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupCountryTestDB(t)
	handler := NewCountryHandler(db)

	country := models.Country{Name: "Canada", IsActive: true}
	db.Create(&country)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: country.ID.String()}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/", nil)

	handler.DeleteCountry(c)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, w.Code)
	}

	var count int64
	db.Model(&models.Country{}).Count(&count)
	if count != 0 {
		t.Errorf("expected 0 countries after delete, got %d", count)
	}
}
