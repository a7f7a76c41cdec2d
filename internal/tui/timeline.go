package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/eugenc/dialer-dashboard/internal/models"
)

// timelineSize is how many recent calls the overview timeline shows.
const timelineSize = 10

// renderTimeline renders the recent-activity list: the newest calls with
// status coloring, matching the overview's "what is happening right now"
// purpose.
func renderTimeline(calls []models.CallLog, width int) string {
	lines := []string{tableHeaderStyle.Render("Recent Activity")}

	if len(calls) == 0 {
		lines = append(lines, dimTextStyle.Render("No recent calls"))
		return strings.Join(lines, "\n")
	}

	recent := calls
	if len(recent) > timelineSize {
		recent = recent[:timelineSize]
	}

	for _, c := range recent {
		when := formatWhen(c.Timestamp)
		detail := when
		if c.Duration > 0 {
			detail = fmt.Sprintf("%s • %ds", when, c.Duration)
		}
		agent := ""
		if c.RetellCallID != nil && *c.RetellCallID != "" {
			agent = " ✓ agent"
		}

		line := fmt.Sprintf("%s  %s  %s%s",
			statusStyle(string(c.Status)).Render(fmt.Sprintf("%-16s", c.Phone)),
			statusStyle(string(c.Status)).Render(fmt.Sprintf("%-11s", string(c.Status))),
			dimTextStyle.Render(detail),
			statusStyle(string(models.CallStatusConnected)).Render(agent),
		)
		lines = append(lines, ansi.Truncate(line, width, "…"))
	}

	return strings.Join(lines, "\n")
}
