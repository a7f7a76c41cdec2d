// Package tui implements the interactive dashboard for an outbound
// dialing campaign.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/eugenc/dialer-dashboard/internal/api"
	"github.com/eugenc/dialer-dashboard/internal/config"
)

// Run launches the dashboard against the configured backend.
func Run(cfg *config.Config, logger zerolog.Logger) error {
	client := api.NewClient(cfg.BaseURL, cfg.APIKey, logger)

	model := NewModel(cfg, client, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info().
		Str("base_url", client.BaseURL()).
		Str("environment", cfg.Environment).
		Dur("poll_interval", cfg.PollInterval).
		Msg("starting dashboard")

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard exited with error: %w", err)
	}
	return nil
}
