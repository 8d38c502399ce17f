package api

import (
	"context"
	"fmt"

	"github.com/careops/shiftctl/internal/rbac"
)

// UserPatch carries partial profile updates; nil fields are unchanged.
type UserPatch struct {
	Name         *string    `json:"name,omitempty"`
	Email        *string    `json:"email,omitempty"`
	Role         *rbac.Role `json:"role,omitempty"`
	DepartmentID *int       `json:"department_id,omitempty"`
	IsActive     *bool      `json:"is_active,omitempty"`
}

// ListUsers returns all staff profiles.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var out []User
	if err := c.doJSON(ctx, "GET", "/users/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetUser returns one profile by id.
func (c *Client) GetUser(ctx context.Context, id int) (*User, error) {
	var out User
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/users/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser patches a profile.
func (c *Client) UpdateUser(ctx context.Context, id int, patch UserPatch) (*User, error) {
	var out User
	if err := c.doJSON(ctx, "PATCH", fmt.Sprintf("/users/%d", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
