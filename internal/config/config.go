// Package config provides configuration loading and validation for the
// resume builder server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values are filled from the environment and
// then from Defaults.
type Config struct {
	// Server
	Port              int `json:"port,omitempty"`                // HTTP listen port
	MaxUploadMemoryMB int `json:"max_upload_memory_mb,omitempty"` // Multipart memory for profile image uploads

	// Export
	ChromePath           string `json:"chrome_path,omitempty"`            // Chrome/Chromium executable, auto-detected when empty
	ExportTimeoutSeconds int    `json:"export_timeout_seconds,omitempty"` // Per-export deadline
	MaxConcurrentExports int    `json:"max_concurrent_exports,omitempty"` // Browser instances running at once

	// Sessions
	SessionTTLMinutes int    `json:"session_ttl_minutes,omitempty"` // Idle lifetime of a wizard session
	SessionSecret     string `json:"session_secret,omitempty"`      // Cookie signing key, random per process when empty

	// Rate limiting
	RateLimitPerMinute int `json:"rate_limit_per_minute,omitempty"` // Default requests per client per minute

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Debug logging
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:                 8080,
		MaxUploadMemoryMB:    10,
		ExportTimeoutSeconds: 60,
		MaxConcurrentExports: 2,
		SessionTTLMinutes:    120,
		RateLimitPerMinute:   600,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535, got %d", c.Port)
	}
	if c.MaxUploadMemoryMB < 0 {
		return fmt.Errorf("config error: 'max_upload_memory_mb' must be non-negative")
	}
	if c.ExportTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'export_timeout_seconds' must be non-negative")
	}
	if c.MaxConcurrentExports < 0 {
		return fmt.Errorf("config error: 'max_concurrent_exports' must be non-negative")
	}
	if c.SessionTTLMinutes < 0 {
		return fmt.Errorf("config error: 'session_ttl_minutes' must be non-negative")
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("config error: 'rate_limit_per_minute' must be non-negative")
	}

	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome executable not found: %s", c.ChromePath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.SessionSecret == "" {
		result.SessionSecret = defaults.SessionSecret
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxUploadMemoryMB == 0 {
		result.MaxUploadMemoryMB = defaults.MaxUploadMemoryMB
	}
	if result.ExportTimeoutSeconds == 0 {
		result.ExportTimeoutSeconds = defaults.ExportTimeoutSeconds
	}
	if result.MaxConcurrentExports == 0 {
		result.MaxConcurrentExports = defaults.MaxConcurrentExports
	}
	if result.SessionTTLMinutes == 0 {
		result.SessionTTLMinutes = defaults.SessionTTLMinutes
	}
	if result.RateLimitPerMinute == 0 {
		result.RateLimitPerMinute = defaults.RateLimitPerMinute
	}

	// Bool fields: cannot distinguish unset from false, so either side wins
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// ExportTimeout is ExportTimeoutSeconds as a duration.
func (c *Config) ExportTimeout() time.Duration {
	return time.Duration(c.ExportTimeoutSeconds) * time.Second
}

// SessionTTL is SessionTTLMinutes as a duration.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// MaxUploadMemory is MaxUploadMemoryMB in bytes.
func (c *Config) MaxUploadMemory() int64 {
	return int64(c.MaxUploadMemoryMB) << 20
}
