package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/eugenc/dialer-dashboard/internal/api"
)

var campaignCmd = &cobra.Command{
	Use:   "campaign",
	Short: "Control the dialing campaign",
}

var campaignStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start dialing",
	RunE:  runCampaignStart,
}

var campaignStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop dialing",
	RunE:  runCampaignStop,
}

func init() {
	campaignCmd.AddCommand(campaignStartCmd)
	campaignCmd.AddCommand(campaignStopCmd)
}

func runCampaignStart(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := client.StartCampaign(ctx); err != nil {
		return fmt.Errorf("failed to start campaign: %w", err)
	}
	fmt.Println(styleSuccess.Render("Campaign started."))
	printCampaignState(ctx, client)
	return nil
}

func runCampaignStop(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := client.StopCampaign(ctx); err != nil {
		return fmt.Errorf("failed to stop campaign: %w", err)
	}
	fmt.Println(styleSuccess.Render("Campaign stopped."))
	printCampaignState(ctx, client)
	return nil
}

// printCampaignState reads back the campaign status after a control
// action. A read failure here is informational only.
func printCampaignState(ctx context.Context, client *api.Client) {
	status, err := client.GetStatus(ctx)
	if err != nil {
		return
	}
	state := "stopped"
	if status.Active {
		state = "running"
	}
	fmt.Println(styleHint.Render(fmt.Sprintf("Backend reports campaign %s, %d leads pending.", state, status.Stats.Pending)))
}
