// Package roles implements the flat (user_id, role) membership table that
// gates admin access. There is no policy engine: a user is an admin iff a
// row says so.
package roles

import (
	"errors"

	"github.com/google/uuid"
	"github.com/innovaedu/portal/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrAlreadyAssigned is returned when the (user, role) pair already exists.
	ErrAlreadyAssigned = errors.New("user already has this role")
	// ErrNotAssigned is returned when removing a role the user does not hold.
	ErrNotAssigned = errors.New("user does not have this role")
)

// IsAdmin reports whether the user holds the admin or super_admin role.
func IsAdmin(db *gorm.DB, userID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&models.UserRole{}).
		Where("user_id = ? AND role IN ?", userID, []string{models.RoleAdmin, models.RoleSuperAdmin}).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// RolesFor returns the role labels held by the user.
func RolesFor(db *gorm.DB, userID uuid.UUID) ([]string, error) {
	var rows []models.UserRole
	if err := db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row.Role
	}
	return labels, nil
}

// Assign inserts a (user, role) row. The pre-check gives the friendly
// "already has this role" answer on the common path; the composite unique
// index settles the race when two assignments arrive together, and the
// resulting duplicate-key error is reported the same way.
func Assign(db *gorm.DB, userID uuid.UUID, role string) error {
	var count int64
	err := db.Model(&models.UserRole{}).
		Where("user_id = ? AND role = ?", userID, role).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadyAssigned
	}

	row := models.UserRole{UserID: userID, Role: role}
	if err := db.Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyAssigned
		}
		return err
	}
	return nil
}

// Remove deletes the (user, role) row.
func Remove(db *gorm.DB, userID uuid.UUID, role string) error {
	result := db.Where("user_id = ? AND role = ?", userID, role).Delete(&models.UserRole{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotAssigned
	}
	return nil
}
