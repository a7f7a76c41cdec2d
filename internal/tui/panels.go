package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// panelLayout holds computed dimensions for the content area.
type panelLayout struct {
	contentWidth  int
	contentHeight int
}

func computeLayout(width, height int) panelLayout {
	// Reserve: header block (3 lines) and status bar (2 lines)
	contentHeight := height - 5
	if contentHeight < 1 {
		contentHeight = 1
	}
	contentWidth := width
	if contentWidth < 20 {
		contentWidth = 20
	}

	return panelLayout{
		contentWidth:  contentWidth,
		contentHeight: contentHeight,
	}
}

// renderContent frames the active tab's content with a border sized to the layout.
func renderContent(content string, layout panelLayout) string {
	// Inner dimensions (subtract 2 for border on each side)
	inner := layout.contentWidth - 2
	innerHeight := layout.contentHeight - 2

	if inner < 1 {
		inner = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}

	return contentStyle.
		Width(inner).
		Height(innerHeight).
		Render(truncateContent(content, inner, innerHeight))
}

// truncateContent ensures content fits within the given dimensions.
func truncateContent(content string, width, height int) string {
	lines := strings.Split(content, "\n")

	// Limit to height
	if len(lines) > height {
		lines = lines[:height]
	}

	// Truncate long lines (ANSI-aware)
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = ansi.Truncate(line, width, "")
		}
	}

	return strings.Join(lines, "\n")
}
