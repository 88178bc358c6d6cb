package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/innovaedu/portal/internal/models"
	"github.com/innovaedu/portal/internal/roles"
	"gorm.io/gorm"
)

// UserHandler handles the admin user/role manager
type UserHandler struct {
	db *gorm.DB
}

// NewUserHandler creates a new user handler
func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// UserWithRoles is a profile annotated with its role labels
type UserWithRoles struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

// AssignRoleRequest is the role assignment payload
type AssignRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// ListUsers godoc
// @Summary List users with their roles
// @Description Joins profiles with their role rows (admin only)
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} UserWithRoles
// @Failure 500 {object} ErrorResponse
// @Router /admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	// Two independent reads joined in memory, mirroring how the roles and
	// profiles tables are kept free of foreign keys to each other.
	var profiles []models.Profile
	if err := h.db.Order("created_at DESC").Find(&profiles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch users"})
		return
	}

	var roleRows []models.UserRole
	if err := h.db.Find(&roleRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch roles"})
		return
	}

	labelsByUser := make(map[uuid.UUID][]string)
	for _, row := range roleRows {
		labelsByUser[row.UserID] = append(labelsByUser[row.UserID], row.Role)
	}

	users := make([]UserWithRoles, len(profiles))
	for i, profile := range profiles {
		labels := labelsByUser[profile.ID]
		if labels == nil {
			labels = []string{}
		}
		users[i] = UserWithRoles{
			ID:        profile.ID,
			Email:     profile.Email,
			FirstName: profile.FirstName,
			LastName:  profile.LastName,
			Roles:     labels,
			CreatedAt: profile.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, users)
}

// AssignRole godoc
// @Summary Assign a role to a user
// @Description Inserts a (user, role) pair; duplicates are reported as a conflict (admin only)
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param role body AssignRoleRequest true "Role label"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/users/{id}/roles [post]
func (h *UserHandler) AssignRole(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID"})
		return
	}

	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := roles.Assign(h.db, userID, req.Role); err != nil {
		if errors.Is(err, roles.ErrAlreadyAssigned) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "User already has this role"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to assign role"})
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{Message: "Role " + req.Role + " assigned"})
}

// RemoveRole godoc
// @Summary Remove a role from a user
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Param role path string true "Role label"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/users/{id}/roles/{role} [delete]
func (h *UserHandler) RemoveRole(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID"})
		return
	}
	role := c.Param("role")

	if err := roles.Remove(h.db, userID, role); err != nil {
		if errors.Is(err, roles.ErrNotAssigned) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User does not have this role"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to remove role"})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Role " + role + " removed"})
}
