package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/eugenc/dialer-dashboard/internal/models"
)

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorBlue   = lipgloss.AdaptiveColor{Light: "26", Dark: "39"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Layout styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})

	contentStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim)
)

// Tab styles.
var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(colorWhite)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Call/lead status styles, keyed by the raw status string so unknown
// statuses fall back to plain text.
var statusStyles = map[string]lipgloss.Style{
	string(models.CallStatusConnected): lipgloss.NewStyle().Foreground(colorGreen),
	string(models.CallStatusDialing):   lipgloss.NewStyle().Foreground(colorYellow),
	string(models.CallStatusFailed):    lipgloss.NewStyle().Foreground(colorRed),
	string(models.CallStatusVoicemail): lipgloss.NewStyle().Foreground(colorCyan),
	string(models.CallStatusNoAnswer):  lipgloss.NewStyle().Foreground(colorYellow),
	string(models.CallStatusCompleted): lipgloss.NewStyle().Foreground(colorDim),
	string(models.LeadStatusPending):   lipgloss.NewStyle().Foreground(colorDim),
	string(models.LeadStatusAnswered):  lipgloss.NewStyle().Foreground(colorGreen),
}

func statusStyle(status string) lipgloss.Style {
	if s, ok := statusStyles[status]; ok {
		return s
	}
	return lipgloss.NewStyle().Foreground(colorWhite)
}

// Table styles.
var (
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite)

	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})

	dimTextStyle = lipgloss.NewStyle().Foreground(colorDim)

	staleTextStyle = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
)

// Stat card styles.
var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 2)

	cardLabelStyle = lipgloss.NewStyle().Foreground(colorDim)
	cardValueStyle = lipgloss.NewStyle().Bold(true)
)

// Campaign badge styles.
var (
	badgeRunningStyle = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	badgeStoppedStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// Overlay styles.
var (
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWhite).
			Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite).
				MarginBottom(1)

	overlayDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Key hint styles for status bar.
var (
	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	hintStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// Chart styles.
var (
	barStyle      = lipgloss.NewStyle().Foreground(colorBlue)
	barLabelStyle = lipgloss.NewStyle().Foreground(colorDim)
)
