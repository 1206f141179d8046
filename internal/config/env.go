package config

import (
	"fmt"
	"os"
	"strconv"
)

// FromEnv reads configuration overrides from environment variables. Unset
// variables leave the corresponding field zero so a later MergeWithDefaults
// can fill it.
//
//	PORT, CHROME_PATH, EXPORT_TIMEOUT_SECONDS, MAX_CONCURRENT_EXPORTS,
//	SESSION_SECRET, SESSION_TTL_MINUTES, MAX_UPLOAD_MEMORY_MB,
//	RATE_LIMIT_PER_MINUTE
func FromEnv() (Config, error) {
	cfg := Config{
		ChromePath:    os.Getenv("CHROME_PATH"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"PORT", &cfg.Port},
		{"EXPORT_TIMEOUT_SECONDS", &cfg.ExportTimeoutSeconds},
		{"MAX_CONCURRENT_EXPORTS", &cfg.MaxConcurrentExports},
		{"SESSION_TTL_MINUTES", &cfg.SessionTTLMinutes},
		{"MAX_UPLOAD_MEMORY_MB", &cfg.MaxUploadMemoryMB},
		{"RATE_LIMIT_PER_MINUTE", &cfg.RateLimitPerMinute},
	}
	for _, v := range ints {
		raw := os.Getenv(v.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %v", v.key, err)
		}
		*v.dst = n
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve layers a config file (optional), the environment and Defaults, in
// that order of precedence.
func Resolve(path string) (Config, error) {
	var file Config
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		if err := loaded.Validate(); err != nil {
			return Config{}, err
		}
		file = *loaded
	}

	env, err := FromEnv()
	if err != nil {
		return Config{}, err
	}

	merged := env.MergeWithDefaults(Defaults())
	return file.MergeWithDefaults(merged), nil
}
