package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/eugenc/dialer-dashboard/internal/models"
)

type statCard struct {
	label string
	value string
	color lipgloss.AdaptiveColor
}

// renderStatCards renders the campaign counter grid for the overview tab.
func renderStatCards(stats models.CampaignStats, width int) string {
	active := "Stopped"
	activeColor := colorDim
	if stats.Active {
		active = "Running"
		activeColor = colorGreen
	}

	cards := []statCard{
		{"Active Campaign", active, activeColor},
		{"Total Leads", strconv.Itoa(stats.Total), colorBlue},
		{"Pending", strconv.Itoa(stats.Pending), colorDim},
		{"Dialing", strconv.Itoa(stats.Dialing), colorYellow},
		{"Answered", strconv.Itoa(stats.Answered), colorGreen},
		{"Connected", strconv.Itoa(stats.Connected), colorGreen},
		{"Voicemail", strconv.Itoa(stats.Voicemail), colorCyan},
		{"No Answer", strconv.Itoa(stats.NoAnswer), colorYellow},
		{"Failed", strconv.Itoa(stats.Failed), colorRed},
	}

	cardWidth := 18
	perRow := width / (cardWidth + 2)
	if perRow < 1 {
		perRow = 1
	}
	if perRow > 4 {
		perRow = 4
	}

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := start + perRow
		if end > len(cards) {
			end = len(cards)
		}
		var rendered []string
		for _, c := range cards[start:end] {
			body := lipgloss.JoinVertical(lipgloss.Left,
				cardLabelStyle.Render(c.label),
				cardValueStyle.Foreground(c.color).Render(c.value),
			)
			rendered = append(rendered, cardStyle.Width(cardWidth).Render(body))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCallTotals renders the call aggregate line under the cards.
func renderCallTotals(totals models.CallTotals) string {
	avg := "N/A"
	if totals.AvgTimeToAgent != nil {
		avg = fmt.Sprintf("%.1fs", *totals.AvgTimeToAgent)
	}
	return dimTextStyle.Render(fmt.Sprintf(
		"Calls: %d total, %d active, %d connected  •  Avg time to agent: %s  •  Human detection: %s  •  Agent success: %s",
		totals.TotalCalls, totals.ActiveCalls, totals.ConnectedCalls,
		avg, valueOr(totals.HumanDetectionRate, "N/A"), valueOr(totals.RetellSuccessRate, "N/A"),
	))
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
