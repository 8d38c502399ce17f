package api

import (
	"context"

	"github.com/careops/shiftctl/internal/errors"
)

// PublicDepartment is the reduced department view exposed without
// authentication for the public announcement page.
type PublicDepartment struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// VoiceUpdateInput requests a spoken status update for a department.
type VoiceUpdateInput struct {
	DepartmentID int    `json:"department_id"`
	Language     string `json:"language"`    // "en" or "es"
	UpdateType   string `json:"update_type"` // wait_time | visiting | directions | safety
	CustomNote   string `json:"custom_note,omitempty"`
}

// VoiceUpdate is the synthesized public update plus its context.
type VoiceUpdate struct {
	Department       string  `json:"department"`
	CoveragePct      float64 `json:"coverage_pct"`
	EstimatedWaitMin int     `json:"estimated_wait_min"`
	Transcript       string  `json:"transcript"`
	AudioPayload
}

// PublicDepartments lists departments without authentication.
func (c *Client) PublicDepartments(ctx context.Context) ([]PublicDepartment, error) {
	var out []PublicDepartment
	if err := c.doJSON(ctx, "GET", "/public/departments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PublicVoiceUpdate generates a spoken status update for visitors.
func (c *Client) PublicVoiceUpdate(ctx context.Context, input VoiceUpdateInput) (*VoiceUpdate, error) {
	if input.DepartmentID == 0 {
		return nil, errors.NewRequiredFieldError("department id")
	}
	if input.Language == "" {
		input.Language = "en"
	}
	if input.UpdateType == "" {
		input.UpdateType = "wait_time"
	}

	var out VoiceUpdate
	if err := c.doJSON(ctx, "POST", "/public/voice-update", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
