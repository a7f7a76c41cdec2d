package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/eugenc/dialer-dashboard/internal/models"
)

// LeadTable renders the derived lead collection as a scrollable table.
type LeadTable struct {
	rows         []models.Lead
	cursor       int
	scrollOffset int
	height       int
}

// NewLeadTable creates an empty lead table.
func NewLeadTable() *LeadTable {
	return &LeadTable{}
}

// SetRows replaces the derived collection and clamps the cursor.
func (t *LeadTable) SetRows(rows []models.Lead) {
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
func (t *LeadTable) Rows() []models.Lead {
	return t.rows
}

// SetHeight sets the visible height in lines, header included.
func (t *LeadTable) SetHeight(h int) {
	t.height = h
}

// MoveUp moves the cursor up.
func (t *LeadTable) MoveUp() {
	if t.cursor > 0 {
		t.cursor--
	}
	t.ensureVisible()
}

// MoveDown moves the cursor down.
func (t *LeadTable) MoveDown() {
	if t.cursor < len(t.rows)-1 {
		t.cursor++
	}
	t.ensureVisible()
}

func (t *LeadTable) ensureVisible() {
	visible := t.height - 1
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
func (t *LeadTable) View(width int) string {
	header := fmt.Sprintf("%-20s %-16s %-11s %7s  %-20s %s",
		"NAME", "PHONE", "STATUS", "RETRIES", "LAST ATTEMPT", "CREATED")
	lines := []string{tableHeaderStyle.Render(ansi.Truncate(header, width, ""))}

	if len(t.rows) == 0 {
		lines = append(lines, dimTextStyle.Render("No leads match the current filters."))
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
		l := t.rows[i]
		lastAttempt := "Never"
		if l.LastAttempt != nil && *l.LastAttempt != "" {
			lastAttempt = formatWhen(*l.LastAttempt)
		}
		name := l.Name
		if name == "" {
			name = "-"
		}
		line := fmt.Sprintf("%-20s %-16s %-11s %7d  %-20s %s",
			name,
			l.Phone,
			string(l.Status),
			l.RetryCount,
			lastAttempt,
			formatWhen(l.CreatedAt),
		)
		line = ansi.Truncate(line, width, "…")

		if i == t.cursor {
			lines = append(lines, selectedRowStyle.Width(width).Render(line))
		} else {
			lines = append(lines, statusStyle(string(l.Status)).Render(line))
		}
	}

	if end < len(t.rows) {
		lines = append(lines, dimTextStyle.Render(fmt.Sprintf("▼ %d more", len(t.rows)-end)))
	}

	return strings.Join(lines, "\n")
}
