package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/eugenc/dialer-dashboard/internal/view"
)

var (
	leadsStatus string
	leadsSearch string
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "List campaign leads",
	RunE:  runLeads,
}

func init() {
	leadsCmd.Flags().StringVar(&leadsStatus, "status", "", "filter by exact status")
	leadsCmd.Flags().StringVar(&leadsSearch, "search", "", "search phone and name")
}

func runLeads(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	resp, err := client.GetLeads(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch leads: %w", err)
	}

	q := view.NewQuery(view.FieldCreatedAt)
	q.Search = leadsSearch
	if leadsStatus != "" {
		q.Status = leadsStatus
	}
	leads := view.ApplyLeads(resp.Leads, q)

	if len(leads) == 0 {
		fmt.Println(styleHint.Render("No leads match."))
		return nil
	}

	fmt.Printf("%s %s %s %s %s\n",
		styleLabel.Render(fmt.Sprintf("%-20s", "NAME")),
		styleLabel.Render(fmt.Sprintf("%-16s", "PHONE")),
		styleLabel.Render(fmt.Sprintf("%-11s", "STATUS")),
		styleLabel.Render(fmt.Sprintf("%7s", "RETRIES")),
		styleLabel.Render("LAST ATTEMPT"))

	for _, l := range leads {
		name := l.Name
		if name == "" {
			name = "-"
		}
		last := "Never"
		if l.LastAttempt != nil {
			last = *l.LastAttempt
		}
		fmt.Printf("%-20.20s %-16s %s %7d %s\n",
			name, l.Phone, statusBadge(string(l.Status), 11), l.RetryCount, last)
	}

	fmt.Printf("\n%s\n", styleHint.Render(fmt.Sprintf("%d of %d leads", len(leads), resp.Count)))
	return nil
}
