package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/careops/shiftctl/internal/errors"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("json") != FormatJSON {
		t.Errorf("json should parse to FormatJSON")
	}
	if ParseFormat("text") != FormatText {
		t.Errorf("text should parse to FormatText")
	}
	if ParseFormat("") != FormatText {
		t.Errorf("default format should be text for a CLI")
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf})

	logger.Info("loading shifts", "count", 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if entry["msg"] != "loading shifts" {
		t.Errorf("msg = %v, want 'loading shifts'", entry["msg"])
	}
	if entry["count"] != float64(3) {
		t.Errorf("count = %v, want 3", entry["count"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelWarn, Format: FormatText, Output: &buf})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below warn should be filtered, got: %s", out)
	}
	if !strings.Contains(out, "warn message") {
		t.Errorf("warn message should be logged, got: %s", out)
	}

	if logger.Enabled(context.Background(), LevelInfo) {
		t.Errorf("info should not be enabled at warn level")
	}
	if !logger.Enabled(context.Background(), LevelError) {
		t.Errorf("error should be enabled at warn level")
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf})

	codedErr := errors.New(errors.ErrCodeAuthSessionExpired, "session token is invalid or expired")
	logger.WithError(codedErr).Error("request failed")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if entry["error_code"] != "AUTH-003" {
		t.Errorf("error_code = %v, want AUTH-003", entry["error_code"])
	}
	if entry["error"] != "session token is invalid or expired" {
		t.Errorf("error = %v", entry["error"])
	}
}

func TestWithErrorNil(t *testing.T) {
	logger := Default()
	if logger.WithError(nil) != logger {
		t.Errorf("WithError(nil) should return the same logger")
	}
}

func TestGlobalLogger(t *testing.T) {
	custom := New(Config{Level: LevelDebug, Format: FormatJSON, Output: &bytes.Buffer{}})
	SetDefault(custom)
	defer SetDefault(nil)

	if L() != custom {
		t.Errorf("L() should return the configured default logger")
	}
}
