package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/eugenc/dialer-dashboard/internal/export"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file.csv>",
	Short: "Upload a leads CSV to the campaign",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpload,
}

func runUpload(cmd *cobra.Command, args []string) error {
	path := args[0]

	// Validate before touching the network.
	if err := export.ValidateUploadName(path); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	client, _, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	result, err := client.UploadLeads(ctx, f.Name(), f)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	fmt.Println(styleSuccess.Render(
		fmt.Sprintf("Upload complete: %d imported, %d skipped.", result.Imported, result.Skipped)))
	if result.Message != "" {
		fmt.Println(styleHint.Render(result.Message))
	}
	return nil
}
