package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	keys  []helpKey
}

type helpKey struct {
	key  string
	desc string
}

var helpSections = []helpSection{
	{
		title: "Global",
		keys: []helpKey{
			{"q / Ctrl+c", "Quit"},
			{"?", "Toggle help"},
			{"1/2/3/4", "Switch tab"},
			{"R", "Refresh now"},
		},
	},
	{
		title: "Overview",
		keys: []helpKey{
			{"c", "Start or stop the campaign (with confirm)"},
		},
	},
	{
		title: "Calls / Leads",
		keys: []helpKey{
			{"j/k ↑/↓", "Navigate rows"},
			{"/", "Search (phone, answered-by, name)"},
			{"f", "Cycle status filter"},
			{"t", "Sort by time"},
			{"p", "Sort by phone"},
			{"s", "Sort by status"},
			{"d", "Sort by duration / retry count"},
			{"n", "Sort by name (leads)"},
			{"e", "Export view as CSV"},
			{"E", "Export view as JSON"},
			{"u", "Upload leads CSV (leads tab)"},
		},
	},
	{
		title: "Sorting",
		keys: []helpKey{
			{"(same key)", "Pressing the active sort key again flips direction"},
		},
	},
}

// renderHelp renders the help overlay content.
func renderHelp(width int) string {
	maxWidth := 64
	if width-4 < maxWidth {
		maxWidth = width - 4
	}
	if maxWidth < 30 {
		maxWidth = 30
	}

	title := overlayTitleStyle.Render("Keyboard Shortcuts")
	sections := make([]string, 0, len(helpSections)*4+3)
	sections = append(sections, title)

	for _, sec := range helpSections {
		header := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Render(sec.title)
		sections = append(sections, "", header)

		for _, k := range sec.keys {
			keyCol := lipgloss.NewStyle().
				Width(14).
				Foreground(colorWhite).
				Bold(true).
				Render(k.key)
			descCol := lipgloss.NewStyle().
				Foreground(colorDim).
				Render(k.desc)
			sections = append(sections, "  "+keyCol+descCol)
		}
	}

	sections = append(sections, "", lipgloss.NewStyle().Foreground(colorDim).Render("Press Esc or ? to close"))

	content := strings.Join(sections, "\n")
	return overlayStyle.Width(maxWidth).Render(content)
}
