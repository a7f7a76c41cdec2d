// Package cli implements the dialer-dashboard CLI commands.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/eugenc/dialer-dashboard/internal/api"
	"github.com/eugenc/dialer-dashboard/internal/config"
)

var (
	flagAPIURL string
	flagAPIKey string
	flagEnv    string
)

var rootCmd = &cobra.Command{
	Use:   "dialer-dashboard",
	Short: "Monitor an outbound dialing campaign from the terminal",
	Long: `dialer-dashboard watches an outbound dialing campaign backend.
It polls campaign stats, call logs, and leads, and renders them as an
interactive dashboard or as one-shot command output.`,
	RunE: runDash,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "backend base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "backend API key (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagEnv, "env", "", "environment: development or production")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(campaignCmd)
	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(dashCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(leadsCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the effective configuration: settings file, env
// overrides, then command-line flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagAPIURL != "" {
		cfg.APIURLOverride = flagAPIURL
	}
	if flagEnv != "" {
		cfg.Environment = flagEnv
	}
	if flagAPIURL != "" || flagEnv != "" {
		cfg.BaseURL = config.ResolveBaseURL(cfg.APIURLOverride, cfg.Environment)
	}
	if flagAPIKey != "" {
		cfg.APIKey = flagAPIKey
	}
	return cfg, nil
}

// newClient builds the API client for one-shot commands. Their logs go
// to stderr since no TUI owns the terminal.
func newClient() (*api.Client, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger := config.NewConsoleLogger(os.Stderr, zerolog.WarnLevel.String())
	return api.NewClient(cfg.BaseURL, cfg.APIKey, logger), cfg, nil
}
