package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovaedu/portal/internal/models"
	"gorm.io/gorm"
)

// TestimonialHandler handles the public testimonials page and its admin manager
type TestimonialHandler struct {
	db *gorm.DB
}

// NewTestimonialHandler creates a new testimonial handler
func NewTestimonialHandler(db *gorm.DB) *TestimonialHandler {
	return &TestimonialHandler{db: db}
}

// TestimonialRequest is the create/update payload. A zero rating is
// substituted with the documented default of 5, matching the edit form's
// behavior when the field is cleared.
type TestimonialRequest struct {
	ClientName         string `json:"client_name" binding:"required"`
	Message            string `json:"message" binding:"required"`
	ClientImageURL     string `json:"client_image_url"`
	DestinationCountry string `json:"destination_country"`
	Rating             int    `json:"rating" binding:"omitempty,min=1,max=5"`
	IsFeatured         bool   `json:"is_featured"`
	DisplayOrder       int    `json:"display_order" binding:"min=0"`
}

func (r *TestimonialRequest) rating() int {
	if r.Rating == 0 {
		return 5
	}
	return r.Rating
}

// ListPublicTestimonials godoc
// @Summary List testimonials
// @Description Returns testimonials ordered for public display; filter with ?featured=true|false
// @Tags public
// @Produce json
// @Param featured query bool false "Filter by featured flag"
// @Success 200 {array} models.Testimonial
// @Failure 500 {object} ErrorResponse
// @Router /testimonials [get]
func (h *TestimonialHandler) ListPublicTestimonials(c *gin.Context) {
	query := h.db.Order("display_order ASC")
	if featured := c.Query("featured"); featured != "" {
		query = query.Where("is_featured = ?", featured == "true")
	}

	var testimonials []models.Testimonial
	if err := query.Find(&testimonials).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch testimonials"})
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// ListTestimonials godoc
// @Summary List all testimonials
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Testimonial
// @Failure 500 {object} ErrorResponse
// @Router /admin/testimonials [get]
func (h *TestimonialHandler) ListTestimonials(c *gin.Context) {
	var testimonials []models.Testimonial
	if err := h.db.Order("display_order ASC").Find(&testimonials).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch testimonials"})
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// CreateTestimonial godoc
// @Summary Create a testimonial
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param testimonial body TestimonialRequest true "Testimonial details"
// @Success 201 {object} models.Testimonial
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/testimonials [post]
func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var req TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	testimonial := models.Testimonial{
		ClientName:         req.ClientName,
		Message:            req.Message,
		ClientImageURL:     req.ClientImageURL,
		DestinationCountry: req.DestinationCountry,
		Rating:             req.rating(),
		IsFeatured:         req.IsFeatured,
		DisplayOrder:       req.DisplayOrder,
	}

	if err := h.db.Create(&testimonial).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create testimonial"})
		return
	}

	c.JSON(http.StatusCreated, testimonial)
}

// UpdateTestimonial godoc
// @Summary Update a testimonial
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Param testimonial body TestimonialRequest true "Testimonial details"
// @Success 200 {object} models.Testimonial
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/testimonials/{id} [put]
func (h *TestimonialHandler) UpdateTestimonial(c *gin.Context) {
	id := c.Param("id")

	var req TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var testimonial models.Testimonial
	if err := h.db.First(&testimonial, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Testimonial not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch testimonial"})
		return
	}

	testimonial.ClientName = req.ClientName
	testimonial.Message = req.Message
	testimonial.ClientImageURL = req.ClientImageURL
	testimonial.DestinationCountry = req.DestinationCountry
	testimonial.Rating = req.rating()
	testimonial.IsFeatured = req.IsFeatured
	testimonial.DisplayOrder = req.DisplayOrder

	if err := h.db.Save(&testimonial).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update testimonial"})
		return
	}

	c.JSON(http.StatusOK, testimonial)
}

// DeleteTestimonial godoc
// @Summary Delete a testimonial
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Success 204
// @Failure 500 {object} ErrorResponse
// @Router /admin/testimonials/{id} [delete]
func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	id := c.Param("id")
	if err := h.db.Delete(&models.Testimonial{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete testimonial"})
		return
	}
	c.Status(http.StatusNoContent)
}
