package api

import (
	"context"
	"fmt"

	"github.com/careops/shiftctl/internal/errors"
)

// Assignment places a user on a shift.
type Assignment struct {
	ID          int  `json:"id"`
	UserID      int  `json:"user_id"`
	ShiftID     int  `json:"shift_id"`
	IsEmergency bool `json:"is_emergency"`
}

// AssignmentInput is the payload for creating an assignment.
type AssignmentInput struct {
	UserID      int  `json:"user_id"`
	ShiftID     int  `json:"shift_id"`
	IsEmergency bool `json:"is_emergency"`
}

// ListAssignments returns all assignments.
func (c *Client) ListAssignments(ctx context.Context) ([]Assignment, error) {
	var out []Assignment
	if err := c.doJSON(ctx, "GET", "/assignments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAssignment returns one assignment by id.
func (c *Client) GetAssignment(ctx context.Context, id int) (*Assignment, error) {
	var out Assignment
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/assignments/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAssignment places a user on a shift.
func (c *Client) CreateAssignment(ctx context.Context, input AssignmentInput) (*Assignment, error) {
	if input.UserID == 0 {
		return nil, errors.NewRequiredFieldError("user id")
	}
	if input.ShiftID == 0 {
		return nil, errors.NewRequiredFieldError("shift id")
	}

	var out Assignment
	if err := c.doJSON(ctx, "POST", "/assignments", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAssignment removes an assignment by id.
func (c *Client) DeleteAssignment(ctx context.Context, id int) error {
	return c.doJSON(ctx, "DELETE", fmt.Sprintf("/assignments/%d", id), nil, nil)
}
