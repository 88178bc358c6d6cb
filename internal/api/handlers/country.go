package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovaedu/portal/internal/models"
	"gorm.io/gorm"
)

// CountryHandler handles the public countries page and its admin manager
type CountryHandler struct {
	db *gorm.DB
}

// NewCountryHandler creates a new country handler
func NewCountryHandler(db *gorm.DB) *CountryHandler {
	return &CountryHandler{db: db}
}

// CountryRequest is the create/update payload. Optional fields are plain
// values so a cleared field round-trips as the empty string / zero, not NULL.
type CountryRequest struct {
	Name         string `json:"name" binding:"required"`
	FlagImageURL string `json:"flag_image_url"`
	Description  string `json:"description"`
	IsActive     bool   `json:"is_active"`
	DisplayOrder int    `json:"display_order" binding:"min=0"`
}

// ListPublicCountries godoc
// @Summary List active countries
// @Description Returns active countries ordered for public display
// @Tags public
// @Produce json
// @Success 200 {array} models.Country
// @Failure 500 {object} ErrorResponse
// @Router /countries [get]
func (h *CountryHandler) ListPublicCountries(c *gin.Context) {
	var countries []models.Country
	err := h.db.Where("is_active = ?", true).
		Order("display_order ASC").
		Find(&countries).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch countries"})
		return
	}
	c.JSON(http.StatusOK, countries)
}

// ListCountries godoc
// @Summary List all countries
// @Description Returns every country including inactive ones (admin only)
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Country
// @Failure 500 {object} ErrorResponse
// @Router /admin/countries [get]
func (h *CountryHandler) ListCountries(c *gin.Context) {
	var countries []models.Country
	if err := h.db.Order("display_order ASC").Find(&countries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch countries"})
		return
	}
	c.JSON(http.StatusOK, countries)
}

// CreateCountry godoc
// @Summary Create a country
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param country body CountryRequest true "Country details"
// @Success 201 {object} models.Country
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/countries [post]
func (h *CountryHandler) CreateCountry(c *gin.Context) {
	var req CountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	country := models.Country{
		Name:         req.Name,
		FlagImageURL: req.FlagImageURL,
		Description:  req.Description,
		IsActive:     req.IsActive,
		DisplayOrder: req.DisplayOrder,
	}

	if err := h.db.Create(&country).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create country"})
		return
	}

	c.JSON(http.StatusCreated, country)
}

// UpdateCountry godoc
// @Summary Update a country
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Country ID"
// @Param country body CountryRequest true "Country details"
// @Success 200 {object} models.Country
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/countries/{id} [put]
func (h *CountryHandler) UpdateCountry(c *gin.Context) {
	id := c.Param("id")

	var req CountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var country models.Country
	if err := h.db.First(&country, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Country not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch country"})
		return
	}

	country.Name = req.Name
	country.FlagImageURL = req.FlagImageURL
	country.Description = req.Description
	country.IsActive = req.IsActive
	country.DisplayOrder = req.DisplayOrder

	if err := h.db.Save(&country).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update country"})
		return
	}

	c.JSON(http.StatusOK, country)
}

// DeleteCountry godoc
// @Summary Delete a country
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Country ID"
// @Success 204
// @Failure 500 {object} ErrorResponse
// @Router /admin/countries/{id} [delete]
func (h *CountryHandler) DeleteCountry(c *gin.Context) {
	id := c.Param("id")
	if err := h.db.Delete(&models.Country{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete country"})
		return
	}
	c.Status(http.StatusNoContent)
}
