package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGetInfo(t *testing.T) {
	origVersion := Version
	origCommit := Commit
	origDate := Date

	Version = "1.2.0"
	Commit = "abc123def456"
	Date = "2026-01-01T12:00:00Z"

	defer func() {
		Version = origVersion
		Commit = origCommit
		Date = origDate
	}()

	info := GetInfo()

	if info.Version != "1.2.0" {
		t.Errorf("GetInfo().Version = %v, want 1.2.0", info.Version)
	}
	if info.Commit != "abc123def456" {
		t.Errorf("GetInfo().Commit = %v, want abc123def456", info.Commit)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GetInfo().GoVersion = %v, want %v", info.GoVersion, runtime.Version())
	}

	expectedPlatform := runtime.GOOS + "/" + runtime.GOARCH
	if info.Platform != expectedPlatform {
		t.Errorf("GetInfo().Platform = %v, want %v", info.Platform, expectedPlatform)
	}
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "1.2.0",
		Commit:    "abc123def456",
		Date:      "2026-01-01T12:00:00Z",
		GoVersion: "go1.24.0",
		Platform:  "linux/amd64",
	}

	got := info.String()

	for _, substr := range []string{
		"shiftctl",
		"1.2.0",
		"abc123de", // Truncated commit
		"2026-01-01T12:00:00Z",
		"go1.24.0",
		"linux/amd64",
	} {
		if !strings.Contains(got, substr) {
			t.Errorf("Info.String() = %v, missing substring %v", got, substr)
		}
	}
}

func TestInfoShort(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "release version",
			info: Info{Version: "1.2.0"},
			want: "1.2.0",
		},
		{
			name: "dev version",
			info: Info{Version: "dev"},
			want: "dev",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.Short(); got != tt.want {
				t.Errorf("Info.Short() = %v, want %v", got, tt.want)
			}
		})
	}
}
