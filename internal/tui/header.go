package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/eugenc/dialer-dashboard/internal/models"
)

var tabNames = []string{"Overview", "Calls", "Leads", "Analytics"}

func renderHeader(snapshot *models.MonitorSnapshot, activeTab, width int, env string) string {
	dot := lipgloss.NewStyle().Foreground(colorCyan).Render("●")
	name := lipgloss.NewStyle().Bold(true).Render("Dialer Dashboard")

	tabs := renderTabs(tabNames, activeTab)

	badge := renderCampaignBadge(snapshot)
	envLabel := dimTextStyle.Render(env)

	left := fmt.Sprintf(" %s %s  %s", dot, name, tabs)
	right := fmt.Sprintf("%s  %s ", envLabel, badge)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return headerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func renderTabs(tabs []string, active int) string {
	var parts []string
	for i, tab := range tabs {
		if i == active {
			parts = append(parts, activeTabStyle.Render(tab))
		} else {
			parts = append(parts, inactiveTabStyle.Render(tab))
		}
	}
	return strings.Join(parts, tabSepStyle.Render(" | "))
}

func renderCampaignBadge(snapshot *models.MonitorSnapshot) string {
	if snapshot == nil {
		return badgeStoppedStyle.Render("● …")
	}
	if snapshot.Campaign.Active {
		return badgeRunningStyle.Render("● Running")
	}
	return badgeStoppedStyle.Render("● Stopped")
}
