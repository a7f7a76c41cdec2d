package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eugenc/dialer-dashboard/internal/export"
	"github.com/eugenc/dialer-dashboard/internal/models"
	"github.com/eugenc/dialer-dashboard/internal/poller"
)

// Cache keys, one per polled resource.
const (
	keyStats = "stats"
	keyLogs  = "logs"
	keyLeads = "leads"
)

const (
	fetchTimeout  = 10 * time.Second
	errorTimeout  = 6 * time.Second
	noticeTimeout = 4 * time.Second
)

// refreshCmd runs one coalesced fetch cycle for an entry. The returned
// command is nil when a fetch for the key is already in flight, so an
// overlapping tick is skipped rather than queued.
func refreshCmd[T any](entry *poller.Entry[T], fetch func(context.Context) (T, error)) tea.Cmd {
	gen, ok := entry.Begin()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		applied := entry.Settle(ctx, gen, fetch)
		return RefreshedMsg{Key: entry.Name(), Applied: applied}
	}
}

func (m *Model) refreshStatsCmd() tea.Cmd {
	return refreshCmd(m.stats, m.client.GetStats)
}

func (m *Model) refreshLogsCmd() tea.Cmd {
	limit := m.cfg.LogLimit
	return refreshCmd(m.logs, func(ctx context.Context) ([]models.CallLog, error) {
		return m.client.GetLogs(ctx, limit)
	})
}

func (m *Model) refreshLeadsCmd() tea.Cmd {
	return refreshCmd(m.leads, func(ctx context.Context) ([]models.Lead, error) {
		resp, err := m.client.GetLeads(ctx)
		if err != nil {
			return nil, err
		}
		return resp.Leads, nil
	})
}

func (m *Model) toggleCampaignCmd(start bool) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		var err error
		if start {
			err = client.StartCampaign(ctx)
		} else {
			err = client.StopCampaign(ctx)
		}
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return CampaignToggledMsg{Started: start}
	}
}

func (m *Model) uploadLeadsCmd(path string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := export.ValidateUploadName(path); err != nil {
			return ErrorMsg{Err: err}
		}
		f, err := os.Open(path)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to open %s: %w", path, err)}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		result, err := client.UploadLeads(ctx, f.Name(), f)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return UploadDoneMsg{Imported: result.Imported, Skipped: result.Skipped}
	}
}

// exportCmd writes the current derived collection, never the raw source.
func (m *Model) exportCmd(asJSON bool) tea.Cmd {
	dir := m.cfg.ExportDir
	now := time.Now()

	var prefix string
	var data []byte
	switch m.activeTab {
	case tabLeads:
		prefix = "leads"
		if asJSON {
			var err error
			data, err = export.LeadsJSON(m.leadTable.Rows())
			if err != nil {
				return func() tea.Msg { return ErrorMsg{Err: err} }
			}
		} else {
			data = []byte(export.LeadsCSV(m.leadTable.Rows()))
		}
	default:
		prefix = "calls"
		if asJSON {
			var err error
			data, err = export.CallsJSON(m.callTable.Rows())
			if err != nil {
				return func() tea.Msg { return ErrorMsg{Err: err} }
			}
		} else {
			data = []byte(export.CallsCSV(m.callTable.Rows()))
		}
	}

	ext := "csv"
	if asJSON {
		ext = "json"
	}
	name := export.Filename(prefix, ext, now)

	return func() tea.Msg {
		path, err := export.WriteFile(dir, name, data)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ExportDoneMsg{Path: path}
	}
}

func pollTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}

func clearNoticeAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearNoticeMsg{}
	})
}
