package api

import (
	"context"
	"fmt"
	"time"

	"github.com/careops/shiftctl/internal/errors"
	"github.com/careops/shiftctl/internal/rbac"
)

// Shift is a staffing slot within a department.
type Shift struct {
	ID                 int       `json:"id"`
	DepartmentID       int       `json:"department_id"`
	StartTime          time.Time `json:"start_time"`
	EndTime            time.Time `json:"end_time"`
	RequiredRole       rbac.Role `json:"required_role"`
	RequiredStaffCount int       `json:"required_staff_count"`
}

// ShiftInput is the payload for creating a shift.
type ShiftInput struct {
	DepartmentID       int       `json:"department_id"`
	StartTime          time.Time `json:"start_time"`
	EndTime            time.Time `json:"end_time"`
	RequiredRole       rbac.Role `json:"required_role"`
	RequiredStaffCount int       `json:"required_staff_count"`
}

// ShiftPatch carries partial updates; nil fields are left unchanged.
type ShiftPatch struct {
	StartTime          *time.Time `json:"start_time,omitempty"`
	EndTime            *time.Time `json:"end_time,omitempty"`
	RequiredRole       *rbac.Role `json:"required_role,omitempty"`
	RequiredStaffCount *int       `json:"required_staff_count,omitempty"`
}

// validate rejects bad shift input before it reaches the network.
func (in ShiftInput) validate() error {
	if in.DepartmentID == 0 {
		return errors.NewRequiredFieldError("department id")
	}
	if in.StartTime.IsZero() {
		return errors.NewRequiredFieldError("start time")
	}
	if in.EndTime.IsZero() {
		return errors.NewRequiredFieldError("end time")
	}
	if !in.EndTime.After(in.StartTime) {
		return errors.NewTimeRangeError()
	}
	if in.RequiredRole == "" {
		return errors.NewRequiredFieldError("required role")
	}
	return nil
}

// ListShifts returns all shifts.
func (c *Client) ListShifts(ctx context.Context) ([]Shift, error) {
	var out []Shift
	if err := c.doJSON(ctx, "GET", "/shifts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetShift returns one shift by id.
func (c *Client) GetShift(ctx context.Context, id int) (*Shift, error) {
	var out Shift
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/shifts/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateShift creates a shift after validating the time range locally.
func (c *Client) CreateShift(ctx context.Context, input ShiftInput) (*Shift, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	var out Shift
	if err := c.doJSON(ctx, "POST", "/shifts", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateShift patches a shift. When both times are given the range is
// validated locally, same as on create.
func (c *Client) UpdateShift(ctx context.Context, id int, patch ShiftPatch) (*Shift, error) {
	if patch.StartTime != nil && patch.EndTime != nil && !patch.EndTime.After(*patch.StartTime) {
		return nil, errors.NewTimeRangeError()
	}

	var out Shift
	if err := c.doJSON(ctx, "PATCH", fmt.Sprintf("/shifts/%d", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteShift deletes a shift by id.
func (c *Client) DeleteShift(ctx context.Context, id int) error {
	return c.doJSON(ctx, "DELETE", fmt.Sprintf("/shifts/%d", id), nil, nil)
}
