package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/eugenc/dialer-dashboard/internal/models"
	"github.com/eugenc/dialer-dashboard/internal/view"
)

// renderAnalytics renders the analytics tab: headline rates, status
// distribution bars, call volume by hour and by day, and the lead
// pipeline.
func renderAnalytics(calls []models.CallLog, leads []models.Lead, width int) string {
	if len(calls) == 0 && len(leads) == 0 {
		return dimTextStyle.Render("No call data yet.")
	}

	var sections []string
	if len(calls) > 0 {
		sections = append(sections,
			renderRates(calls),
			"",
			tableHeaderStyle.Render("Status Distribution"),
			renderStatusBars(calls, width),
			"",
			tableHeaderStyle.Render("Volume by Hour (UTC)"),
			renderHourlyChart(calls, width),
			"",
			tableHeaderStyle.Render("Volume by Day"),
			renderDailyChart(calls, width),
		)
	} else {
		sections = append(sections, dimTextStyle.Render("No call data yet."))
	}
	if len(leads) > 0 {
		sections = append(sections,
			"",
			tableHeaderStyle.Render("Lead Pipeline"),
			renderLeadBars(leads, width),
		)
	}
	return strings.Join(sections, "\n")
}

func renderRates(calls []models.CallLog) string {
	return fmt.Sprintf("%s %s   %s %s   %s %s",
		cardLabelStyle.Render("Connection rate:"),
		cardValueStyle.Render(fmt.Sprintf("%.1f%%", view.ConnectionRate(calls))),
		cardLabelStyle.Render("Voicemail rate:"),
		cardValueStyle.Render(fmt.Sprintf("%.1f%%", view.VoicemailRate(calls))),
		cardLabelStyle.Render("Avg connected duration:"),
		cardValueStyle.Render(fmt.Sprintf("%.0fs", view.AverageConnectedDuration(calls))),
	)
}

func renderStatusBars(calls []models.CallLog, width int) string {
	counts := view.CallCountsByStatus(calls)

	// Stable ordering: known statuses first, then any unknown ones by name.
	statuses := make([]models.CallStatus, 0, len(counts))
	seen := make(map[models.CallStatus]bool)
	for _, s := range models.KnownCallStatuses {
		if counts[s] > 0 {
			statuses = append(statuses, s)
			seen[s] = true
		}
	}
	var unknown []models.CallStatus
	for s := range counts {
		if !seen[s] {
			unknown = append(unknown, s)
		}
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })
	statuses = append(statuses, unknown...)

	maxBar := width - 26
	if maxBar < 10 {
		maxBar = 10
	}

	var lines []string
	for _, s := range statuses {
		n := counts[s]
		barLen := 0
		if len(calls) > 0 {
			barLen = n * maxBar / len(calls)
		}
		if n > 0 && barLen == 0 {
			barLen = 1
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			barLabelStyle.Render(fmt.Sprintf("%-11s", string(s))),
			statusStyle(string(s)).Render(strings.Repeat("█", barLen)),
			dimTextStyle.Render(fmt.Sprintf("%d", n)),
		))
	}
	return strings.Join(lines, "\n")
}

// renderDailyChart shows call volume per calendar day as horizontal
// bars, most recent days last. Older days beyond the window are dropped.
func renderDailyChart(calls []models.CallLog, width int) string {
	days := view.DailyVolume(calls)
	const maxDays = 14
	if len(days) > maxDays {
		days = days[len(days)-maxDays:]
	}

	max := 0
	for _, d := range days {
		if d.Count > max {
			max = d.Count
		}
	}
	if max == 0 {
		return dimTextStyle.Render("No volume")
	}

	maxBar := width - 26
	if maxBar < 10 {
		maxBar = 10
	}

	var lines []string
	for _, d := range days {
		barLen := d.Count * maxBar / max
		if d.Count > 0 && barLen == 0 {
			barLen = 1
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			barLabelStyle.Render(d.Date),
			barStyle.Render(strings.Repeat("█", barLen)),
			dimTextStyle.Render(fmt.Sprintf("%d", d.Count)),
		))
	}
	return strings.Join(lines, "\n")
}

// renderLeadBars shows the lead pipeline: one bar per lead status,
// known statuses first, unknown ones after by name.
func renderLeadBars(leads []models.Lead, width int) string {
	counts := view.LeadCountsByStatus(leads)

	statuses := make([]models.LeadStatus, 0, len(counts))
	seen := make(map[models.LeadStatus]bool)
	for _, s := range models.KnownLeadStatuses {
		if counts[s] > 0 {
			statuses = append(statuses, s)
			seen[s] = true
		}
	}
	var unknown []models.LeadStatus
	for s := range counts {
		if !seen[s] {
			unknown = append(unknown, s)
		}
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })
	statuses = append(statuses, unknown...)

	maxBar := width - 26
	if maxBar < 10 {
		maxBar = 10
	}

	var lines []string
	for _, s := range statuses {
		n := counts[s]
		barLen := n * maxBar / len(leads)
		if n > 0 && barLen == 0 {
			barLen = 1
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			barLabelStyle.Render(fmt.Sprintf("%-11s", string(s))),
			statusStyle(string(s)).Render(strings.Repeat("█", barLen)),
			dimTextStyle.Render(fmt.Sprintf("%d", n)),
		))
	}
	return strings.Join(lines, "\n")
}

func renderHourlyChart(calls []models.CallLog, width int) string {
	buckets := view.HourlyVolume(calls)

	max := 0
	for _, n := range buckets {
		if n > max {
			max = n
		}
	}
	if max == 0 {
		return dimTextStyle.Render("No volume")
	}

	// One column of height per call, scaled to a fixed chart height.
	const chartHeight = 6
	var rows []string
	for level := chartHeight; level > 0; level-- {
		var b strings.Builder
		for h := 0; h < 24; h++ {
			filled := buckets[h]*chartHeight >= level*max && buckets[h] > 0
			if filled {
				b.WriteString(barStyle.Render("█"))
			} else {
				b.WriteString(" ")
			}
			b.WriteString(" ")
		}
		rows = append(rows, b.String())
	}

	var labels strings.Builder
	for h := 0; h < 24; h += 3 {
		labels.WriteString(fmt.Sprintf("%-6d", h))
	}
	rows = append(rows, barLabelStyle.Render(labels.String()))

	return strings.Join(rows, "\n")
}
