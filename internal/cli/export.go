package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/eugenc/dialer-dashboard/internal/export"
	"github.com/eugenc/dialer-dashboard/internal/view"
)

var (
	exportJSON   bool
	exportOut    string
	exportStatus string
	exportSearch string
)

var exportCmd = &cobra.Command{
	Use:       "export calls|leads",
	Short:     "Export call logs or leads to a file",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"calls", "leads"},
	RunE:      runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&exportJSON, "json", false, "write JSON instead of CSV")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output directory (default from config)")
	exportCmd.Flags().StringVar(&exportStatus, "status", "", "filter by exact status")
	exportCmd.Flags().StringVar(&exportSearch, "search", "", "search filter, same fields as the dashboard")
}

func runExport(cmd *cobra.Command, args []string) error {
	client, cfg, err := newClient()
	if err != nil {
		return err
	}

	dir := exportOut
	if dir == "" {
		dir = cfg.ExportDir
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ext := "csv"
	if exportJSON {
		ext = "json"
	}

	var data []byte
	switch args[0] {
	case "leads":
		resp, err := client.GetLeads(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch leads: %w", err)
		}
		q := view.NewQuery(view.FieldCreatedAt)
		q.Search = exportSearch
		if exportStatus != "" {
			q.Status = exportStatus
		}
		leads := view.ApplyLeads(resp.Leads, q)
		if exportJSON {
			data, err = export.LeadsJSON(leads)
			if err != nil {
				return err
			}
		} else {
			data = []byte(export.LeadsCSV(leads))
		}
	case "calls":
		calls, err := client.GetLogs(ctx, cfg.LogLimit)
		if err != nil {
			return fmt.Errorf("failed to fetch call logs: %w", err)
		}
		q := view.NewQuery(view.FieldTimestamp)
		q.Search = exportSearch
		if exportStatus != "" {
			q.Status = exportStatus
		}
		calls = view.ApplyCalls(calls, q)
		if exportJSON {
			data, err = export.CallsJSON(calls)
			if err != nil {
				return err
			}
		} else {
			data = []byte(export.CallsCSV(calls))
		}
	default:
		return fmt.Errorf("unknown export target %q (want calls or leads)", args[0])
	}

	name := export.Filename(args[0], ext, time.Now())
	path, err := export.WriteFile(dir, name, data)
	if err != nil {
		return err
	}

	fmt.Println(styleSuccess.Render("Exported to " + path))
	return nil
}
