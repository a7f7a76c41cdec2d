package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// confirmMode values.
const (
	confirmNone  = 0
	confirmStart = 1
	confirmStop  = 2
)

func renderStatusBar(m *Model, width int) string {
	if m.confirmMode == confirmStart {
		return renderConfirmBar("Start campaign? (y/n)", width)
	}
	if m.confirmMode == confirmStop {
		return renderConfirmBar("Stop campaign? (y/n)", width)
	}

	if m.searching {
		return statusBarStyle.Width(width).Render(" Search: " + m.searchInput.View())
	}
	if m.uploading {
		return statusBarStyle.Width(width).Render(" Upload CSV path: " + m.uploadInput.View())
	}

	if m.err != nil {
		return renderErrorBar(m.err.Error(), width)
	}
	if m.notice != "" {
		return statusBarStyle.Width(width).Render(" " + lipgloss.NewStyle().Foreground(colorGreen).Render(m.notice))
	}

	hints := getKeyHints(m)
	left := " " + hints

	right := renderFreshness(m) + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

// renderFreshness shows poll health across all three polled resources:
// last update time, or a stale marker when any of the most recent
// fetches failed and the view is showing cached data.
func renderFreshness(m *Model) string {
	_, loading, statsErr := m.stats.Get()
	if loading {
		return dimTextStyle.Render("loading…")
	}
	_, _, logsErr := m.logs.Get()
	_, _, leadsErr := m.leads.Get()
	if statsErr != nil || logsErr != nil || leadsErr != nil {
		return staleTextStyle.Render("⚠ stale")
	}
	updated := m.stats.UpdatedAt()
	if updated.IsZero() {
		return ""
	}
	return lipgloss.NewStyle().Foreground(colorGreen).Render("updated " + updated.Local().Format("15:04:05"))
}

func getKeyHints(m *Model) string {
	base := keyHint("q", "quit") + "  " + keyHint("?", "help") + "  " + keyHint("1-4", "tabs")

	switch m.activeTab {
	case tabOverview:
		return base + "  " + keyHint("c", "start/stop") + "  " + keyHint("R", "refresh")
	case tabCalls:
		return base + "  " + keyHint("/", "search") + "  " + keyHint("f", "filter") + "  " +
			keyHint("t/p/s/d", "sort") + "  " + keyHint("e/E", "export")
	case tabLeads:
		return base + "  " + keyHint("/", "search") + "  " + keyHint("f", "filter") + "  " +
			keyHint("n/p/s/d", "sort") + "  " + keyHint("u", "upload") + "  " + keyHint("e/E", "export")
	case tabAnalytics:
		return base + "  " + keyHint("R", "refresh")
	}

	return base
}

func keyHint(k, desc string) string {
	if k == "" {
		return hintStyle.Render(desc)
	}
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}

func renderConfirmBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorYellow).
		Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "0"}).
		Width(width).
		Render(" " + msg)
}

func renderErrorBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorRed).
		Width(width).
		Render(" " + msg)
}
