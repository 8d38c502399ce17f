package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SHIFTCTL_API_URL",
		"SHIFTCTL_CREDENTIALS_DIR",
		"SHIFTCTL_TIMEOUT_SECONDS",
		"SHIFTCTL_AI_RATE_SECONDS",
		"SHIFTCTL_LOG_LEVEL",
		"SHIFTCTL_LOG_FORMAT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "http://localhost:8000", cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.NotEmpty(t, cfg.CredentialsDir)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().APIURL, cfg.APIURL)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api_url: https://staffing.hospital.test
timeout_seconds: 10
log_level: debug
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://staffing.hospital.test", cfg.APIURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Unset keys keep their defaults.
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadMalformedYAMLFails(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: [broken"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: https://from-file.test"), 0o600))

	t.Setenv("SHIFTCTL_API_URL", "https://from-env.test")
	t.Setenv("SHIFTCTL_TIMEOUT_SECONDS", "5")
	t.Setenv("SHIFTCTL_LOG_FORMAT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://from-env.test", cfg.APIURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestBadTimeoutEnvIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHIFTCTL_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestEmptyAPIURLRejected(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`api_url: ""`), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}
