package api

import (
	"context"
	"fmt"

	"github.com/careops/shiftctl/internal/errors"
)

// Department groups staff and shifts.
type Department struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DepartmentInput is the payload for creating a department.
type DepartmentInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListDepartments returns all departments.
func (c *Client) ListDepartments(ctx context.Context) ([]Department, error) {
	var out []Department
	if err := c.doJSON(ctx, "GET", "/departments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDepartment returns one department by id.
func (c *Client) GetDepartment(ctx context.Context, id int) (*Department, error) {
	var out Department
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/departments/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDepartment creates a department.
func (c *Client) CreateDepartment(ctx context.Context, input DepartmentInput) (*Department, error) {
	if input.Name == "" {
		return nil, errors.NewRequiredFieldError("department name")
	}

	var out Department
	if err := c.doJSON(ctx, "POST", "/departments", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDepartment deletes a department by id.
func (c *Client) DeleteDepartment(ctx context.Context, id int) error {
	return c.doJSON(ctx, "DELETE", fmt.Sprintf("/departments/%d", id), nil, nil)
}
