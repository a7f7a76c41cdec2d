package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/eugenc/dialer-dashboard/internal/models"
)

// CallTable renders the derived call-log collection as a scrollable table.
type CallTable struct {
	rows         []models.CallLog
	cursor       int
	scrollOffset int
	height       int
}

// NewCallTable creates an empty call table.
func NewCallTable() *CallTable {
	return &CallTable{}
}

// SetRows replaces the derived collection. The cursor is clamped so it
// never points past the new data.
func (t *CallTable) SetRows(rows []models.CallLog) {
	t.rows = rows
	if t.cursor >= len(rows) {
		t.cursor = len(rows) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
	t.ensureVisible()
}

// Rows returns the current derived collection.
func (t *CallTable) Rows() []models.CallLog {
	return t.rows
}

// SetHeight sets the visible height in lines, header included.
func (t *CallTable) SetHeight(h int) {
	t.height = h
}

// MoveUp moves the cursor up.
func (t *CallTable) MoveUp() {
	if t.cursor > 0 {
		t.cursor--
	}
	t.ensureVisible()
}

// MoveDown moves the cursor down.
func (t *CallTable) MoveDown() {
	if t.cursor < len(t.rows)-1 {
		t.cursor++
	}
	t.ensureVisible()
}

func (t *CallTable) ensureVisible() {
	visible := t.height - 1 // minus header line
	if visible < 1 {
		visible = 1
	}
	if t.cursor < t.scrollOffset {
		t.scrollOffset = t.cursor
	}
	if t.cursor >= t.scrollOffset+visible {
		t.scrollOffset = t.cursor - visible + 1
	}
}

// View renders the table at the given width.
func (t *CallTable) View(width int) string {
	header := fmt.Sprintf("%-20s %-16s %-11s %5s  %-14s %s",
		"TIME", "PHONE", "STATUS", "DUR", "ANSWERED BY", "ERROR")
	lines := []string{tableHeaderStyle.Render(ansi.Truncate(header, width, ""))}

	if len(t.rows) == 0 {
		lines = append(lines, dimTextStyle.Render("No calls match the current filters."))
		return strings.Join(lines, "\n")
	}

	visible := t.height - 1
	if visible < 1 {
		visible = 1
	}
	end := t.scrollOffset + visible
	if end > len(t.rows) {
		end = len(t.rows)
	}

	for i := t.scrollOffset; i < end; i++ {
		c := t.rows[i]
		ts := formatWhen(c.Timestamp)
		dur := "-"
		if c.Duration > 0 {
			dur = fmt.Sprintf("%ds", c.Duration)
		}
		line := fmt.Sprintf("%-20s %-16s %-11s %5s  %-14s %s",
			ts,
			c.Phone,
			string(c.Status),
			dur,
			placeholder(c.AnsweredBy, "N/A"),
			placeholder(c.Error, ""),
		)
		line = ansi.Truncate(line, width, "…")

		if i == t.cursor {
			lines = append(lines, selectedRowStyle.Width(width).Render(line))
		} else {
			lines = append(lines, statusStyle(string(c.Status)).Render(line))
		}
	}

	if end < len(t.rows) {
		lines = append(lines, dimTextStyle.Render(fmt.Sprintf("▼ %d more", len(t.rows)-end)))
	}

	return strings.Join(lines, "\n")
}

// placeholder renders an optional field, substituting fallback for nil.
func placeholder(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
