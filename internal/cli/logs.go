package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/eugenc/dialer-dashboard/internal/view"
)

var (
	logsLimit  int
	logsStatus string
	logsSearch string
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "List recent call logs",
	RunE:  runLogs,
}

func init() {
	logsCmd.Flags().IntVar(&logsLimit, "limit", 0, "max entries to fetch (0 = configured default)")
	logsCmd.Flags().StringVar(&logsStatus, "status", "", "filter by exact status")
	logsCmd.Flags().StringVar(&logsSearch, "search", "", "search phone and answered-by")
}

func runLogs(cmd *cobra.Command, args []string) error {
	client, cfg, err := newClient()
	if err != nil {
		return err
	}

	limit := logsLimit
	if limit <= 0 {
		limit = cfg.LogLimit
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	calls, err := client.GetLogs(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to fetch call logs: %w", err)
	}

	q := view.NewQuery(view.FieldTimestamp)
	q.Dir = view.Descending
	q.Search = logsSearch
	if logsStatus != "" {
		q.Status = logsStatus
	}
	calls = view.ApplyCalls(calls, q)

	if len(calls) == 0 {
		fmt.Println(styleHint.Render("No call logs match."))
		return nil
	}

	fmt.Printf("%s %s %s %s %s\n",
		styleLabel.Render(fmt.Sprintf("%-20s", "TIME")),
		styleLabel.Render(fmt.Sprintf("%-16s", "PHONE")),
		styleLabel.Render(fmt.Sprintf("%-11s", "STATUS")),
		styleLabel.Render(fmt.Sprintf("%5s", "DUR")),
		styleLabel.Render("ANSWERED BY"))

	for _, c := range calls {
		when := c.Timestamp
		if t := c.Time(); !t.IsZero() {
			when = t.Local().Format("2006-01-02 15:04:05")
		}
		dur := "-"
		if c.Duration > 0 {
			dur = fmt.Sprintf("%ds", c.Duration)
		}
		answered := "N/A"
		if c.AnsweredBy != nil {
			answered = *c.AnsweredBy
		}
		fmt.Printf("%-20s %-16s %s %5s %s\n",
			when, c.Phone, statusBadge(string(c.Status), 11), dur, answered)
	}

	return nil
}
