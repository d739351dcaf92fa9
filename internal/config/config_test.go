package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log_level info, got %q", cfg.LogLevel)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Errorf("expected default request timeout 15s, got %s", cfg.RequestTimeout)
	}
	if cfg.Output != "json" {
		t.Errorf("expected default output json, got %q", cfg.Output)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ADJ_NEWS_API_KEY", "env-key")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "30")
	t.Setenv("OUTPUT", "yaml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIKey != "env-key" {
		t.Errorf("expected api key from env, got %q", cfg.APIKey)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log_level debug, got %q", cfg.LogLevel)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("expected request timeout 30s, got %s", cfg.RequestTimeout)
	}
	if cfg.Output != "yaml" {
		t.Errorf("expected output yaml, got %q", cfg.Output)
	}
}

func TestLoadRejectsInvalidTimeout(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "-1")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-positive timeout")
	}
}

func TestLoadRejectsUnknownOutput(t *testing.T) {
	t.Setenv("OUTPUT", "xml")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unsupported output format")
	}
}
