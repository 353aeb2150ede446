package classifier

import (
	"os"
	"strconv"
)

// Config holds all configuration for the classifier subsystem.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
}

// DefaultConfig returns a Config with sensible defaults.
// Classification is disabled by default; without it every block is
// prioritized at the fail-soft Medium level.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "http://localhost:8085",
		Model:      "distilbert-base-uncased-finetuned-sst-2-english",
		TimeoutMs:  5000,
		MaxRetries: 1,
	}
}

// LoadConfig reads classifier configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("STUDBUD_CLASSIFIER_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("STUDBUD_CLASSIFIER_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("STUDBUD_CLASSIFIER_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("STUDBUD_CLASSIFIER_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("STUDBUD_CLASSIFIER_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("STUDBUD_CLASSIFIER_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}
