package cliclient

import (
	"context"
	"fmt"
)

// ListAppointments returns all appointments (admin only).
func (c *Client) ListAppointments(ctx context.Context) ([]Appointment, error) {
	var appointments []Appointment
	_, err := c.Get(ctx, "/admin/appointments", &appointments)
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpdateAppointmentStatus changes an appointment's status (admin only).
func (c *Client) UpdateAppointmentStatus(ctx context.Context, id, status string) (*Appointment, error) {
	var appointment Appointment
	_, err := c.Patch(ctx, fmt.Sprintf("/admin/appointments/%s/status", id), UpdateStatusRequest{Status: status}, &appointment)
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// ListMessages returns all contact messages (admin only).
func (c *Client) ListMessages(ctx context.Context) ([]ContactMessage, error) {
	var messages []ContactMessage
	_, err := c.Get(ctx, "/admin/contact-messages", &messages)
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// UpdateMessageStatus changes a contact message's status (admin only).
func (c *Client) UpdateMessageStatus(ctx context.Context, id, status string) (*ContactMessage, error) {
	var message ContactMessage
	_, err := c.Patch(ctx, fmt.Sprintf("/admin/contact-messages/%s/status", id), UpdateStatusRequest{Status: status}, &message)
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// ListUsers returns all users with their roles (admin only).
func (c *Client) ListUsers(ctx context.Context) ([]AdminUser, error) {
	var users []AdminUser
	_, err := c.Get(ctx, "/admin/users", &users)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// AssignRole grants a role to a user (admin only).
func (c *Client) AssignRole(ctx context.Context, userID, role string) error {
	_, err := c.Post(ctx, fmt.Sprintf("/admin/users/%s/roles", userID), AssignRoleRequest{Role: role}, nil)
	return err
}

// RemoveRole revokes a role from a user (admin only).
func (c *Client) RemoveRole(ctx context.Context, userID, role string) error {
	_, err := c.Delete(ctx, fmt.Sprintf("/admin/users/%s/roles/%s", userID, role))
	return err
}
