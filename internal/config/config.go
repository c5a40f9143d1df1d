// Package config loads vitrine's user configuration from
// .vitrine/config.json. A missing file is not an error: the page must
// come up with sensible defaults in an empty workspace.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// UserConfig holds all vitrine configuration.
type UserConfig struct {
	// Theme for the TUI ("light", "dark" or "auto")
	Theme string `json:"theme,omitempty"`

	// ReducedMotion replaces the animated smooth scroll with an
	// instant jump.
	ReducedMotion bool `json:"reduced_motion,omitempty"`

	// Watch enables live reload of the content file while authoring.
	Watch *bool `json:"watch,omitempty"`

	// Verbose enables debug-level logging.
	Verbose bool `json:"verbose,omitempty"`
}

// DefaultUserConfig returns the configuration used when no file exists.
func DefaultUserConfig() *UserConfig {
	watch := true
	return &UserConfig{
		Theme: "auto",
		Watch: &watch,
	}
}

// ConfigPath returns the config file location for a workspace.
func ConfigPath(workspace string) string {
	return filepath.Join(workspace, ".vitrine", "config.json")
}

// LoadUserConfig reads the config file at path, applies environment
// overrides and validates the result. A missing file yields defaults
// (with env overrides still applied).
func LoadUserConfig(path string) (*UserConfig, error) {
	cfg := DefaultUserConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// First run, fall through to defaults.
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies VITRINE_* environment variables on top of
// the file-based config.
func (c *UserConfig) applyEnvOverrides() {
	if v := os.Getenv("VITRINE_DARK_MODE"); v == "1" {
		c.Theme = "dark"
	}
	if v := os.Getenv("VITRINE_REDUCED_MOTION"); v == "1" {
		c.ReducedMotion = true
	}
	if v := os.Getenv("VITRINE_NO_WATCH"); v == "1" {
		watch := false
		c.Watch = &watch
	}
	if v := os.Getenv("VITRINE_VERBOSE"); v == "1" {
		c.Verbose = true
	}
}

// Validate checks field values, normalizing where reasonable.
func (c *UserConfig) Validate() error {
	switch c.Theme {
	case "", "auto", "light", "dark":
		if c.Theme == "" {
			c.Theme = "auto"
		}
	default:
		return fmt.Errorf("invalid theme %q (want light, dark or auto)", c.Theme)
	}
	if c.Watch == nil {
		watch := true
		c.Watch = &watch
	}
	return nil
}

// WatchEnabled reports the effective live-reload setting.
func (c *UserConfig) WatchEnabled() bool {
	return c.Watch == nil || *c.Watch
}

// Save writes the config back to path, creating the .vitrine directory
// if needed.
func (c *UserConfig) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
