package api

import (
	"context"
	"encoding/base64"

	"github.com/careops/shiftctl/internal/errors"
)

// SuggestionResponse wraps a scheduling suggestion from the AI service.
type SuggestionResponse struct {
	Suggestion string `json:"ai_suggestion"`
	Model      string `json:"model"`
}

// WorkloadResponse wraps a workload analysis from the AI service.
type WorkloadResponse struct {
	Analysis string `json:"workload_analysis"`
	Model    string `json:"model"`
}

// TipResponse wraps a one-line scheduling tip.
type TipResponse struct {
	Tip   string `json:"tip"`
	Model string `json:"model"`
}

// AudioPayload is synthesized speech returned inline as base64 rather
// than a file reference, with its MIME type.
type AudioPayload struct {
	AudioBase64 string `json:"audio_base64"`
	ContentType string `json:"content_type"`
	Transcript  string `json:"transcript,omitempty"`
}

// Bytes decodes the base64 audio into raw bytes.
func (p *AudioPayload) Bytes() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(p.AudioBase64)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetworkDecode, "failed to decode audio payload", err)
	}
	return data, nil
}

// ScheduleSuggestions asks the AI service to suggest staff for a shift.
func (c *Client) ScheduleSuggestions(ctx context.Context, shiftID int) (*SuggestionResponse, error) {
	if err := c.waitAI(ctx); err != nil {
		return nil, err
	}

	var out SuggestionResponse
	body := map[string]int{"shift_id": shiftID}
	if err := c.doJSON(ctx, "POST", "/ai/schedule-suggestions", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzeWorkload asks the AI service to analyze staff workload data.
func (c *Client) AnalyzeWorkload(ctx context.Context, staffData []map[string]any) (*WorkloadResponse, error) {
	if err := c.waitAI(ctx); err != nil {
		return nil, err
	}

	var out WorkloadResponse
	body := map[string]any{"staff_data": staffData}
	if err := c.doJSON(ctx, "POST", "/ai/analyze-workload", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SchedulingTip fetches a short scheduling tip.
func (c *Client) SchedulingTip(ctx context.Context) (*TipResponse, error) {
	if err := c.waitAI(ctx); err != nil {
		return nil, err
	}

	var out TipResponse
	if err := c.doJSON(ctx, "GET", "/ai/tip", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateAnnouncement turns a short message into announcement copy.
func (c *Client) GenerateAnnouncement(ctx context.Context, message string) (*SuggestionResponse, error) {
	if message == "" {
		return nil, errors.NewRequiredFieldError("message")
	}
	if err := c.waitAI(ctx); err != nil {
		return nil, err
	}

	var out SuggestionResponse
	body := map[string]string{"message": message}
	if err := c.doJSON(ctx, "POST", "/ai/generate-announcement", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TextToSpeech synthesizes speech for the given text. The audio comes
// back inline as base64, never as a server file path.
func (c *Client) TextToSpeech(ctx context.Context, text string) (*AudioPayload, error) {
	if text == "" {
		return nil, errors.NewRequiredFieldError("text")
	}
	if err := c.waitAI(ctx); err != nil {
		return nil, err
	}

	var out AudioPayload
	body := map[string]string{"text": text}
	if err := c.doJSON(ctx, "POST", "/ai/text-to-speech", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
