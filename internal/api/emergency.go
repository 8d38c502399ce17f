package api

import (
	"context"
	"encoding/json"

	"github.com/careops/shiftctl/internal/errors"
)

// RedAlertInput triggers the emergency reallocation pipeline.
type RedAlertInput struct {
	EmergencyType string `json:"emergency_type"`
	DepartmentID  int    `json:"department_id"`
	Notes         string `json:"notes,omitempty"`
}

// RedAlertResult is the backend's emergency pipeline report. The shape
// varies with what the pipeline managed to do, so everything beyond
// the status line stays raw.
type RedAlertResult struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Plan    json.RawMessage `json:"plan,omitempty"`
}

// TriggerRedAlert activates the emergency pipeline for a department.
// The backend restricts this to admins and managers; the client checks
// the same table first but the server decision is the real one.
func (c *Client) TriggerRedAlert(ctx context.Context, input RedAlertInput) (*RedAlertResult, error) {
	if input.EmergencyType == "" {
		return nil, errors.NewRequiredFieldError("emergency type")
	}
	if input.DepartmentID == 0 {
		return nil, errors.NewRequiredFieldError("department id")
	}

	var out RedAlertResult
	if err := c.doJSON(ctx, "POST", "/emergency/red-alert", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResolveRedAlert marks a department's red alert as resolved.
func (c *Client) ResolveRedAlert(ctx context.Context, departmentID int) (*RedAlertResult, error) {
	if departmentID == 0 {
		return nil, errors.NewRequiredFieldError("department id")
	}

	var out RedAlertResult
	body := map[string]int{"department_id": departmentID}
	if err := c.doJSON(ctx, "POST", "/emergency/resolve", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
