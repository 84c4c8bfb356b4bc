// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Defaults applied when neither the environment nor a config file provides a
// value.
const (
	DefaultBaseURL        = "http://localhost:5000"
	DefaultTimeoutSeconds = 30
)

// Config represents the CLI configuration. Values can come from a JSON file,
// environment variables, or flags; flags win, then environment, then file.
type Config struct {
	BaseURL        string `json:"base_url,omitempty" validate:"omitempty,url"`                  // Portal base URL
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" validate:"omitempty,min=1,max=300"` // HTTP timeout
	SessionPath    string `json:"session_path,omitempty"`                                       // Session file override
	Verbose        bool   `json:"verbose,omitempty"`                                            // Log wire-schema warnings
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from REVIEWDASH_* environment variables. Unset
// variables leave the corresponding field at its zero value.
func FromEnv() Config {
	var cfg Config
	cfg.BaseURL = os.Getenv("REVIEWDASH_BASE_URL")
	cfg.SessionPath = os.Getenv("REVIEWDASH_SESSION_PATH")
	if v := os.Getenv("REVIEWDASH_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("REVIEWDASH_VERBOSE"); v != "" {
		cfg.Verbose = v == "1" || v == "true"
	}
	return cfg
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults, then from the package defaults. Used to layer file values under
// environment and flag values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.SessionPath == "" {
		result.SessionPath = defaults.SessionPath
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so a true in either
	// layer sticks.
	if defaults.Verbose {
		result.Verbose = true
	}

	if result.BaseURL == "" {
		result.BaseURL = DefaultBaseURL
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = DefaultTimeoutSeconds
	}

	return result
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return fmt.Errorf("config error: field %s failed %q validation", first.Field(), first.Tag())
	}
	return fmt.Errorf("config validation: %w", err)
}
