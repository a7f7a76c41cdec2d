package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show campaign status and call totals",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	snapshot, err := client.GetStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch stats: %w", err)
	}

	state := styleError.Render("stopped")
	if snapshot.Campaign.Active {
		state = styleSuccess.Render("running")
	}
	fmt.Printf("%s %s\n\n", styleBrand.Render("Campaign:"), state)

	c := snapshot.Campaign
	rows := []struct {
		label string
		value int
	}{
		{"Total leads", c.Total},
		{"Pending", c.Pending},
		{"Dialing", c.Dialing},
		{"Answered", c.Answered},
		{"Connected", c.Connected},
		{"Voicemail", c.Voicemail},
		{"No answer", c.NoAnswer},
		{"Failed", c.Failed},
	}
	for _, r := range rows {
		fmt.Printf("  %s %s\n",
			styleLabel.Render(fmt.Sprintf("%-12s", r.label)),
			styleValue.Render(fmt.Sprintf("%d", r.value)))
	}

	t := snapshot.Calls
	fmt.Printf("\n%s\n", styleBrand.Render("Calls"))
	fmt.Printf("  %s %s\n", styleLabel.Render(fmt.Sprintf("%-12s", "Placed")), styleValue.Render(fmt.Sprintf("%d", t.TotalCalls)))
	fmt.Printf("  %s %s\n", styleLabel.Render(fmt.Sprintf("%-12s", "Active")), styleValue.Render(fmt.Sprintf("%d", t.ActiveCalls)))
	fmt.Printf("  %s %s\n", styleLabel.Render(fmt.Sprintf("%-12s", "Connected")), styleValue.Render(fmt.Sprintf("%d", t.ConnectedCalls)))
	if t.AvgTimeToAgent != nil {
		fmt.Printf("  %s %s\n", styleLabel.Render(fmt.Sprintf("%-12s", "Avg to agent")), styleValue.Render(fmt.Sprintf("%.1fs", *t.AvgTimeToAgent)))
	}

	return nil
}
