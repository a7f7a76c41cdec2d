package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Adaptive colors matching the TUI palette.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Semantic styles for CLI output.
var (
	styleBrand   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleVersion = lipgloss.NewStyle().Foreground(colorGreen)
	styleLabel   = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleHint    = lipgloss.NewStyle().Foreground(colorDim)
)

// Record status badge styles, keyed by the raw status string. Unknown
// statuses render unstyled.
var statusBadges = map[string]lipgloss.Style{
	"connected": lipgloss.NewStyle().Foreground(colorGreen),
	"answered":  lipgloss.NewStyle().Foreground(colorGreen),
	"completed": lipgloss.NewStyle().Foreground(colorDim),
	"pending":   lipgloss.NewStyle().Foreground(colorDim),
	"dialing":   lipgloss.NewStyle().Foreground(colorYellow),
	"no-answer": lipgloss.NewStyle().Foreground(colorYellow),
	"voicemail": lipgloss.NewStyle().Foreground(colorCyan),
	"failed":    lipgloss.NewStyle().Foreground(colorRed),
}

// statusBadge styles a status label. Padding is applied before styling
// so styled output still lines up in columns.
func statusBadge(status string, width int) string {
	text := status
	if width > 0 {
		text = fmt.Sprintf("%-*s", width, status)
	}
	if s, ok := statusBadges[status]; ok {
		return s.Render(text)
	}
	return text
}
