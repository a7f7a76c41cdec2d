package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/eugenc/dialer-dashboard/internal/models"
)

// Base URLs used when no explicit override is configured.
const (
	LocalBaseURL      = "http://localhost:3000"
	ProductionBaseURL = "https://ai-predictive-dialer.vercel.app"
)

// Config is the resolved runtime configuration, merged from the settings
// file and environment variables. Environment wins over the file.
type Config struct {
	BaseURL string
	// APIURLOverride is the explicit base URL from the settings file or
	// environment, empty when BaseURL is an environment default. Kept so
	// a later environment switch never discards an explicit override.
	APIURLOverride string
	APIKey         string
	Environment    string
	PollInterval   time.Duration
	LogLimit       int
	ExportDir      string
	LogLevel       string
}

// Load resolves the runtime configuration. The base URL precedence is:
// explicit override (env or settings file) → local default when the
// environment is "development" → production default.
func Load() (*Config, error) {
	// A .env file is a convenience for development; missing is fine.
	_ = godotenv.Load()

	settings, err := LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	cfg := &Config{
		APIURLOverride: getEnv("DIALER_API_URL", settings.APIURL),
		APIKey:         getEnv("DIALER_API_KEY", settings.APIKey),
		Environment:    getEnv("DIALER_ENV", settings.Environment),
		ExportDir:      getEnv("DIALER_EXPORT_DIR", settings.ExportDir),
		LogLevel:       getEnv("DIALER_LOG_LEVEL", settings.LogLevel),
	}

	pollSeconds := settings.PollSeconds
	if v := getEnv("DIALER_POLL_SECONDS", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DIALER_POLL_SECONDS: %w", err)
		}
		pollSeconds = n
	}
	if pollSeconds <= 0 {
		pollSeconds = 5
	}
	cfg.PollInterval = time.Duration(pollSeconds) * time.Second

	cfg.LogLimit = settings.LogLimit
	if v := getEnv("DIALER_LOG_LIMIT", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DIALER_LOG_LIMIT: %w", err)
		}
		cfg.LogLimit = n
	}
	if cfg.LogLimit <= 0 {
		cfg.LogLimit = 100
	}

	cfg.BaseURL = ResolveBaseURL(cfg.APIURLOverride, cfg.Environment)

	return cfg, nil
}

// ResolveBaseURL applies the base address precedence: explicit override,
// else the local default in a development context, else production.
func ResolveBaseURL(override, environment string) string {
	if override != "" {
		return override
	}
	if environment == "development" {
		return LocalBaseURL
	}
	return ProductionBaseURL
}

// FromSettings builds a Config directly from a settings value, without
// touching the environment. Used by tests and one-shot commands.
func FromSettings(settings *models.Settings) *Config {
	pollSeconds := settings.PollSeconds
	if pollSeconds <= 0 {
		pollSeconds = 5
	}
	logLimit := settings.LogLimit
	if logLimit <= 0 {
		logLimit = 100
	}
	return &Config{
		BaseURL:        ResolveBaseURL(settings.APIURL, settings.Environment),
		APIURLOverride: settings.APIURL,
		APIKey:         settings.APIKey,
		Environment:    settings.Environment,
		PollInterval:   time.Duration(pollSeconds) * time.Second,
		LogLimit:       logLimit,
		ExportDir:      settings.ExportDir,
		LogLevel:       settings.LogLevel,
	}
}

// getEnv gets an environment variable with a fallback default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
