package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eugenc/dialer-dashboard/internal/config"
	"github.com/eugenc/dialer-dashboard/internal/tui"
)

var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Open the interactive dashboard",
	Long: `Open the interactive dashboard. This is also the default when
dialer-dashboard is run without a subcommand.`,
	RunE: runDash,
}

func runDash(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal; logs go to the file under the config dir.
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	return tui.Run(cfg, logger)
}
