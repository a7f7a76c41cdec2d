package config

import (
	"testing"
	"time"

	"github.com/eugenc/dialer-dashboard/internal/models"
)

func TestResolveBaseURL(t *testing.T) {
	tests := []struct {
		name        string
		override    string
		environment string
		want        string
	}{
		{
			name:        "explicit override wins over environment",
			override:    "https://staging.example.com",
			environment: "development",
			want:        "https://staging.example.com",
		},
		{
			name:        "development falls back to localhost",
			override:    "",
			environment: "development",
			want:        LocalBaseURL,
		},
		{
			name:        "production falls back to hosted backend",
			override:    "",
			environment: "production",
			want:        ProductionBaseURL,
		},
		{
			name:        "unknown environment defaults to production",
			override:    "",
			environment: "",
			want:        ProductionBaseURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveBaseURL(tt.override, tt.environment)
			if got != tt.want {
				t.Errorf("ResolveBaseURL(%q, %q) = %q, want %q", tt.override, tt.environment, got, tt.want)
			}
		})
	}
}

func TestFromSettingsDefaults(t *testing.T) {
	cfg := FromSettings(models.NewSettings())

	if cfg.BaseURL != ProductionBaseURL {
		t.Errorf("BaseURL = %q, want production default", cfg.BaseURL)
	}
	if cfg.PollInterval != 5*time.Second {
		t.Errorf("PollInterval = %v, want 5s", cfg.PollInterval)
	}
	if cfg.LogLimit != 100 {
		t.Errorf("LogLimit = %d, want 100", cfg.LogLimit)
	}
}

func TestFromSettingsOverrides(t *testing.T) {
	settings := models.NewSettings()
	settings.APIURL = "http://10.0.0.5:3000"
	settings.Environment = "development"
	settings.PollSeconds = 2
	settings.LogLimit = 25

	cfg := FromSettings(settings)

	if cfg.BaseURL != "http://10.0.0.5:3000" {
		t.Errorf("BaseURL = %q, explicit URL should win", cfg.BaseURL)
	}
	if cfg.PollInterval != 2*time.Second {
		t.Errorf("PollInterval = %v, want 2s", cfg.PollInterval)
	}
	if cfg.LogLimit != 25 {
		t.Errorf("LogLimit = %d, want 25", cfg.LogLimit)
	}
}

func TestFromSettingsClampsBadValues(t *testing.T) {
	settings := models.NewSettings()
	settings.PollSeconds = 0
	settings.LogLimit = -1

	cfg := FromSettings(settings)

	if cfg.PollInterval != 5*time.Second {
		t.Errorf("PollInterval = %v, want clamped default 5s", cfg.PollInterval)
	}
	if cfg.LogLimit != 100 {
		t.Errorf("LogLimit = %d, want clamped default 100", cfg.LogLimit)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir()) // no settings file, defaults only
	t.Setenv("DIALER_API_URL", "http://backend.test:9999")
	t.Setenv("DIALER_ENV", "development")
	t.Setenv("DIALER_POLL_SECONDS", "3")
	t.Setenv("DIALER_LOG_LIMIT", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BaseURL != "http://backend.test:9999" {
		t.Errorf("BaseURL = %q, env override should win", cfg.BaseURL)
	}
	if cfg.APIURLOverride != "http://backend.test:9999" {
		t.Errorf("APIURLOverride = %q, the explicit URL should be recorded", cfg.APIURLOverride)
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want development", cfg.Environment)
	}
	if cfg.PollInterval != 3*time.Second {
		t.Errorf("PollInterval = %v, want 3s", cfg.PollInterval)
	}
	if cfg.LogLimit != 10 {
		t.Errorf("LogLimit = %d, want 10", cfg.LogLimit)
	}
}

func TestLoadRejectsBadPollSeconds(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DIALER_POLL_SECONDS", "soon")

	if _, err := Load(); err == nil {
		t.Errorf("expected error for non-numeric DIALER_POLL_SECONDS")
	}
}
