package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadForTests(map[string]string{
		"POS_API_BASE_URL": "http://localhost:4000",
		"POS_STORE_NAME":   "",
		"POS_HTTP_TIMEOUT": "",
		"OBS_LOG_FORMAT":   "",
		"OBS_LOG_LEVEL":    "",
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StoreName != "EXPRESS-POS" {
		t.Fatalf("unexpected store name default: %q", cfg.StoreName)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("unexpected timeout default: %s", cfg.HTTPTimeout)
	}
	if cfg.LogFormat != "json" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected log defaults: %q %q", cfg.LogFormat, cfg.LogLevel)
	}
	if cfg.SamplingRatio != 1.0 {
		t.Fatalf("unexpected sampling default: %v", cfg.SamplingRatio)
	}
}

func TestLoadRequiresBaseURL(t *testing.T) {
	if _, err := LoadForTests(map[string]string{"POS_API_BASE_URL": ""}); err == nil {
		t.Fatal("expected error when POS_API_BASE_URL is missing")
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	cfg, err := LoadForTests(map[string]string{
		"POS_API_BASE_URL":           "http://localhost:4000",
		"POS_HTTP_TIMEOUT":           "3s",
		"OBS_ENABLE_TRACING":         "true",
		"OBS_TRACING_SAMPLING_RATIO": "0.25",
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Fatalf("timeout override ignored: %s", cfg.HTTPTimeout)
	}
	if !cfg.TracingOn || cfg.SamplingRatio != 0.25 {
		t.Fatalf("tracing overrides ignored: %+v", cfg)
	}
}
