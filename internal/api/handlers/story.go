package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovaedu/portal/internal/models"
	"gorm.io/gorm"
)

// StoryHandler handles the public success stories page and its admin manager
type StoryHandler struct {
	db *gorm.DB
}

// NewStoryHandler creates a new success story handler
func NewStoryHandler(db *gorm.DB) *StoryHandler {
	return &StoryHandler{db: db}
}

// StoryRequest is the create/update payload for a success story.
type StoryRequest struct {
	Title              string `json:"title" binding:"required"`
	Description        string `json:"description" binding:"required"`
	ImageURL           string `json:"image_url"`
	ClientName         string `json:"client_name"`
	DestinationCountry string `json:"destination_country"`
	IsFeatured         bool   `json:"is_featured"`
	DisplayOrder       int    `json:"display_order" binding:"min=0"`
}

// ListPublicStories godoc
// @Summary List success stories
// @Description Returns success stories ordered for public display; filter with ?featured=true|false
// @Tags public
// @Produce json
// @Param featured query bool false "Filter by featured flag"
// @Success 200 {array} models.SuccessStory
// @Failure 500 {object} ErrorResponse
// @Router /success-stories [get]
func (h *StoryHandler) ListPublicStories(c *gin.Context) {
	query := h.db.Order("display_order ASC")
	if featured := c.Query("featured"); featured != "" {
		query = query.Where("is_featured = ?", featured == "true")
	}

	var stories []models.SuccessStory
	if err := query.Find(&stories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch success stories"})
		return
	}
	c.JSON(http.StatusOK, stories)
}

// ListStories godoc
// @Summary List all success stories
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.SuccessStory
// @Failure 500 {object} ErrorResponse
// @Router /admin/success-stories [get]
func (h *StoryHandler) ListStories(c *gin.Context) {
	var stories []models.SuccessStory
	if err := h.db.Order("display_order ASC").Find(&stories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch success stories"})
		return
	}
	c.JSON(http.StatusOK, stories)
}

// CreateStory godoc
// @Summary Create a success story
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param story body StoryRequest true "Story details"
// @Success 201 {object} models.SuccessStory
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/success-stories [post]
func (h *StoryHandler) CreateStory(c *gin.Context) {
	var req StoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	story := models.SuccessStory{
		Title:              req.Title,
		Description:        req.Description,
		ImageURL:           req.ImageURL,
		ClientName:         req.ClientName,
		DestinationCountry: req.DestinationCountry,
		IsFeatured:         req.IsFeatured,
		DisplayOrder:       req.DisplayOrder,
	}

	if err := h.db.Create(&story).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create success story"})
		return
	}

	c.JSON(http.StatusCreated, story)
}

// UpdateStory godoc
// @Summary Update a success story
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Story ID"
// @Param story body StoryRequest true "Story details"
// @Success 200 {object} models.SuccessStory
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/success-stories/{id} [put]
func (h *StoryHandler) UpdateStory(c *gin.Context) {
	id := c.Param("id")

	var req StoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var story models.SuccessStory
	if err := h.db.First(&story, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Success story not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch success story"})
		return
	}

	story.Title = req.Title
	story.Description = req.Description
	story.ImageURL = req.ImageURL
	story.ClientName = req.ClientName
	story.DestinationCountry = req.DestinationCountry
	story.IsFeatured = req.IsFeatured
	story.DisplayOrder = req.DisplayOrder

	if err := h.db.Save(&story).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update success story"})
		return
	}

	c.JSON(http.StatusOK, story)
}

// DeleteStory godoc
// @Summary Delete a success story
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Story ID"
// @Success 204
// @Failure 500 {object} ErrorResponse
// @Router /admin/success-stories/{id} [delete]
func (h *StoryHandler) DeleteStory(c *gin.Context) {
	id := c.Param("id")
	if err := h.db.Delete(&models.SuccessStory{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete success story"})
		return
	}
	c.Status(http.StatusNoContent)
}
