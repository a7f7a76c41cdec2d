package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eugenc/dialer-dashboard/internal/config"
)

var configureCmd = &cobra.Command{
	Use:     "configure",
	Aliases: []string{"config"},
	Short:   "Configure dashboard settings",
	Long: `Configure dashboard settings interactively.

This allows you to modify:
  - Backend base URL override
  - API key
  - Environment (development/production)
  - Poll interval and log limit
  - Export directory

Press Enter to keep the current value for any setting. Settings are
stored in ~/.dialer-dashboard/settings.yaml.`,
	RunE: runConfigure,
}

func runConfigure(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)
	changed := false

	// Base URL override
	fmt.Printf("Backend base URL (empty = resolve from environment) [%s]: ", settings.APIURL)
	apiURL, _ := reader.ReadString('\n')
	apiURL = strings.TrimSpace(apiURL)
	if apiURL != "" && apiURL != settings.APIURL {
		settings.APIURL = apiURL
		changed = true
	}

	// API key
	fmt.Printf("API key [%s]: ", maskKey(settings.APIKey))
	apiKey, _ := reader.ReadString('\n')
	apiKey = strings.TrimSpace(apiKey)
	if apiKey != "" && apiKey != settings.APIKey {
		settings.APIKey = apiKey
		changed = true
	}

	// Environment
	fmt.Printf("Environment (development/production) [%s]: ", settings.Environment)
	env, _ := reader.ReadString('\n')
	env = strings.TrimSpace(env)
	if env != "" {
		if env != "development" && env != "production" {
			return fmt.Errorf("invalid environment: %s (expected development or production)", env)
		}
		if env != settings.Environment {
			settings.Environment = env
			changed = true
		}
	}

	// Poll interval
	fmt.Printf("Poll interval in seconds [%d]: ", settings.PollSeconds)
	poll, _ := reader.ReadString('\n')
	poll = strings.TrimSpace(poll)
	if poll != "" {
		n, err := strconv.Atoi(poll)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid poll interval: %s", poll)
		}
		if n != settings.PollSeconds {
			settings.PollSeconds = n
			changed = true
		}
	}

	// Log limit
	fmt.Printf("Call log fetch limit [%d]: ", settings.LogLimit)
	limit, _ := reader.ReadString('\n')
	limit = strings.TrimSpace(limit)
	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid log limit: %s", limit)
		}
		if n != settings.LogLimit {
			settings.LogLimit = n
			changed = true
		}
	}

	// Export directory
	fmt.Printf("Export directory (empty = current directory) [%s]: ", settings.ExportDir)
	exportDir, _ := reader.ReadString('\n')
	exportDir = strings.TrimSpace(exportDir)
	if exportDir != "" && exportDir != settings.ExportDir {
		settings.ExportDir = exportDir
		changed = true
	}

	if !changed {
		fmt.Println(styleHint.Render("No changes."))
		return nil
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println(styleSuccess.Render("Settings saved."))
	return nil
}

// maskKey hides all but the last four characters of a secret.
func maskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
