package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/eugenc/dialer-dashboard/internal/models"
	"github.com/eugenc/dialer-dashboard/internal/view"
)

func (m *Model) View() string {
	// Minimum size check
	if m.width < 80 || m.height < 20 {
		sizeStr := fmt.Sprintf("%dx%d", m.width, m.height)
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(colorYellow).
			Render(lipgloss.JoinVertical(lipgloss.Center,
				"Terminal too small",
				lipgloss.NewStyle().Foreground(colorDim).Render(
					"Need 80x20, have "+lipgloss.NewStyle().Bold(true).Render(sizeStr),
				),
			))
	}

	layout := computeLayout(m.width, m.height)

	snapshot, _, _ := m.stats.Get()
	header := renderHeader(snapshot, m.activeTab, m.width, m.cfg.Environment)

	content := renderContent(m.renderActiveTab(layout.contentWidth-2), layout)

	statusBar := renderStatusBar(m, m.width)

	base := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	if m.activeOverlay == overlayHelp {
		return renderOverlay(base, renderHelp(m.width), m.width, m.height)
	}

	return base
}

func (m *Model) renderActiveTab(width int) string {
	switch m.activeTab {
	case tabOverview:
		return m.renderOverview(width)
	case tabCalls:
		return m.renderCalls(width)
	case tabLeads:
		return m.renderLeads(width)
	case tabAnalytics:
		calls, loading, _ := m.logs.Get()
		if loading {
			return dimTextStyle.Render("Loading call logs…")
		}
		leads, _, _ := m.leads.Get()
		return renderAnalytics(calls, leads, width)
	}
	return ""
}

func (m *Model) renderOverview(width int) string {
	snapshot, loading, _ := m.stats.Get()
	if loading || snapshot == nil {
		return dimTextStyle.Render("Loading campaign stats…")
	}

	calls, _, _ := m.logs.Get()

	return lipgloss.JoinVertical(lipgloss.Left,
		renderStatCards(snapshot.Campaign, width),
		"",
		renderCallTotals(snapshot.Calls),
		"",
		renderTimeline(calls, width),
	)
}

func (m *Model) renderCalls(width int) string {
	_, loading, err := m.logs.Get()
	if loading {
		return dimTextStyle.Render("Loading call logs…")
	}
	rows := []string{renderQueryLine(m.callQuery, len(m.callTable.Rows()))}
	if err != nil {
		rows = append(rows, staleLine(err))
	}
	rows = append(rows, m.callTable.View(width))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderLeads(width int) string {
	_, loading, err := m.leads.Get()
	if loading {
		return dimTextStyle.Render("Loading leads…")
	}
	rows := []string{renderQueryLine(m.leadQuery, len(m.leadTable.Rows()))}
	if err != nil {
		rows = append(rows, staleLine(err))
	}
	rows = append(rows, m.leadTable.View(width))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// staleLine flags a tab that kept its cached rows after a failed poll.
func staleLine(err error) string {
	return staleTextStyle.Render("⚠ stale: " + err.Error())
}

// renderQueryLine summarizes the active search, filter, and sort so the
// user can tell a narrowed view from an empty dataset.
func renderQueryLine(q view.Query, count int) string {
	parts := []string{dimTextStyle.Render(fmt.Sprintf("%d records", count))}

	if q.Search != "" {
		parts = append(parts, keyStyle.Render("search:")+" "+q.Search)
	}
	if q.Status != models.StatusAll {
		parts = append(parts, keyStyle.Render("status:")+" "+statusStyle(q.Status).Render(q.Status))
	}

	arrow := "↑"
	if q.Dir == view.Descending {
		arrow = "↓"
	}
	parts = append(parts, dimTextStyle.Render("sort: "+string(q.Field)+" "+arrow))

	line := parts[0]
	for _, p := range parts[1:] {
		line += dimTextStyle.Render("  │  ") + p
	}
	return line
}
