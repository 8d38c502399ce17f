// Package config resolves shiftctl settings from, in increasing
// precedence: built-in defaults, an optional YAML config file, a local
// .env file, and SHIFTCTL_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/careops/shiftctl/internal/errors"
)

// Config holds everything the CLI needs to reach the backend and
// manage local state.
type Config struct {
	// APIURL is the staffing backend base URL.
	APIURL string `yaml:"api_url"`

	// CredentialsDir is where the session token and profile persist.
	CredentialsDir string `yaml:"credentials_dir"`

	// TimeoutSeconds bounds each HTTP request, in whole seconds, as
	// written in the config file. Timeout is the resolved value.
	TimeoutSeconds int           `yaml:"timeout_seconds"`
	Timeout        time.Duration `yaml:"-"`

	// AIRateSeconds is the minimum spacing between AI endpoint calls,
	// in whole seconds. Zero keeps the built-in pacing.
	AIRateSeconds int `yaml:"ai_rate_seconds"`

	// LogLevel and LogFormat configure the logger.
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		APIURL:         "http://localhost:8000",
		CredentialsDir: defaultCredentialsDir(),
		Timeout:        30 * time.Second,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "shiftctl", "config.yaml")
	}
	return filepath.Join(".shiftctl", "config.yaml")
}

func defaultCredentialsDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "shiftctl")
	}
	return ".shiftctl"
}

// Load resolves the configuration. path may be empty, in which case
// the default location is tried; a missing file is not an error, a
// malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeConfigInvalid,
				"failed to parse config file "+path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is the common case.
	default:
		return Config{}, errors.Wrap(errors.ErrCodeConfigInvalid,
			"failed to read config file "+path, err)
	}

	if cfg.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	// A .env in the working directory feeds the environment, the way
	// the backend's own tooling expects.
	_ = godotenv.Load()

	applyEnv(&cfg)

	if cfg.APIURL == "" {
		return Config{}, errors.New(errors.ErrCodeConfigInvalid, "api_url must not be empty")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SHIFTCTL_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("SHIFTCTL_CREDENTIALS_DIR"); v != "" {
		cfg.CredentialsDir = v
	}
	if v := os.Getenv("SHIFTCTL_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("SHIFTCTL_AI_RATE_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.AIRateSeconds = secs
		}
	}
	if v := os.Getenv("SHIFTCTL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("SHIFTCTL_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}
