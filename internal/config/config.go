// Package config loads terminal configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds terminal configuration loaded from the environment.
type Config struct {
	AppEnv        string
	APIBaseURL    string
	APIToken      string
	StoreName     string
	TerminalID    string
	HTTPTimeout   time.Duration
	LogFormat     string
	LogLevel      string
	TracingOn     bool
	OTLPEndpoint  string
	SamplingRatio float64
}

// Load reads configuration from environment variables and an optional .env.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:        valueOrDefault(k.String("APP_ENV"), "development"),
		APIBaseURL:    strings.TrimSpace(k.String("POS_API_BASE_URL")),
		APIToken:      strings.TrimSpace(k.String("POS_API_TOKEN")),
		StoreName:     valueOrDefault(k.String("POS_STORE_NAME"), "EXPRESS-POS"),
		TerminalID:    strings.TrimSpace(k.String("POS_TERMINAL_ID")),
		HTTPTimeout:   parseDuration(k.String("POS_HTTP_TIMEOUT"), "10s"),
		LogFormat:     valueOrDefault(k.String("OBS_LOG_FORMAT"), "json"),
		LogLevel:      valueOrDefault(k.String("OBS_LOG_LEVEL"), "info"),
		TracingOn:     parseBool(k.String("OBS_ENABLE_TRACING")),
		OTLPEndpoint:  strings.TrimSpace(k.String("OBS_OTLP_ENDPOINT")),
		SamplingRatio: parseFloat(k.String("OBS_TRACING_SAMPLING_RATIO"), 1.0),
	}

	if cfg.APIBaseURL == "" {
		return nil, errors.New("POS_API_BASE_URL is required")
	}

	return cfg, nil
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func parseDuration(value, fallback string) time.Duration {
	base := strings.TrimSpace(value)
	if base == "" {
		base = fallback
	}
	d, err := time.ParseDuration(base)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func parseFloat(value string, fallback float64) float64 {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

// LoadForTests overrides environment variables for the duration of a Load.
func LoadForTests(envVars map[string]string) (*Config, error) {
	original := make(map[string]string, len(envVars))
	for key := range envVars {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, envVars[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
