package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/eugenc/dialer-dashboard/internal/config"
	"github.com/eugenc/dialer-dashboard/internal/models"
	"github.com/eugenc/dialer-dashboard/internal/view"
)

func testModel() *Model {
	cfg := &config.Config{
		Environment:  "development",
		PollInterval: 5 * time.Second,
		LogLimit:     100,
	}
	return NewModel(cfg, nil, zerolog.Nop())
}

func TestNextCallStatusCycle(t *testing.T) {
	// Starting from "all", repeated presses walk every known status and
	// wrap back to "all".
	current := models.StatusAll
	seen := []string{}
	for i := 0; i < len(models.KnownCallStatuses)+1; i++ {
		current = nextCallStatus(current)
		seen = append(seen, current)
	}

	if seen[len(seen)-1] != models.StatusAll {
		t.Errorf("cycle should wrap back to all, ended at %q", seen[len(seen)-1])
	}
	if seen[0] != string(models.KnownCallStatuses[0]) {
		t.Errorf("first press = %q, want first known status", seen[0])
	}
}

func TestNextCallStatusUnknownResets(t *testing.T) {
	if got := nextCallStatus("some-status-we-never-offered"); got != models.StatusAll {
		t.Errorf("unknown current status should reset to all, got %q", got)
	}
}

func TestCallTableCursorClamping(t *testing.T) {
	table := NewCallTable()
	table.SetHeight(10)
	table.SetRows([]models.CallLog{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	table.MoveDown()
	table.MoveDown()
	table.MoveDown() // past the end, stays on last row
	if table.cursor != 2 {
		t.Errorf("cursor = %d, want clamped to 2", table.cursor)
	}

	// Shrinking the data pulls the cursor back in range.
	table.SetRows([]models.CallLog{{ID: "a"}})
	if table.cursor != 0 {
		t.Errorf("cursor = %d, want 0 after rows shrank", table.cursor)
	}

	table.SetRows(nil)
	table.MoveUp()
	table.MoveDown()
	if table.cursor != 0 {
		t.Errorf("cursor = %d, empty table must keep cursor at 0", table.cursor)
	}
}

func TestTruncateContent(t *testing.T) {
	content := strings.Join([]string{"line one is quite long", "two", "three", "four"}, "\n")

	out := truncateContent(content, 8, 2)
	lines := strings.Split(out, "\n")

	if len(lines) != 2 {
		t.Fatalf("height not enforced, got %d lines", len(lines))
	}
	if len(lines[0]) > 8 {
		t.Errorf("width not enforced: %q", lines[0])
	}
}

func TestCallsTabFlagsStaleAfterFailedPoll(t *testing.T) {
	m := testModel()

	gen, _ := m.logs.Begin()
	m.logs.Complete(gen, []models.CallLog{{
		ID:        "c1",
		Phone:     "+15550001111",
		Status:    models.CallStatusConnected,
		Timestamp: "2024-01-15T10:00:00Z",
	}}, nil)
	m.applyCallQuery()

	gen, _ = m.logs.Begin()
	m.logs.Complete(gen, nil, errors.New("backend down"))

	out := m.renderCalls(100)
	if !strings.Contains(out, "stale") {
		t.Errorf("calls tab should flag stale data after a failed poll:\n%s", out)
	}
	if !strings.Contains(out, "backend down") {
		t.Errorf("calls tab should surface the poll error message:\n%s", out)
	}
	if !strings.Contains(out, "+15550001111") {
		t.Errorf("cached rows should still render while stale:\n%s", out)
	}
}

func TestLeadsTabFlagsStaleAfterFailedPoll(t *testing.T) {
	m := testModel()

	gen, _ := m.leads.Begin()
	m.leads.Complete(gen, []models.Lead{{Phone: "+15550002222", Status: models.LeadStatusPending}}, nil)
	m.applyLeadQuery()

	gen, _ = m.leads.Begin()
	m.leads.Complete(gen, nil, errors.New("backend down"))

	out := m.renderLeads(100)
	if !strings.Contains(out, "stale") {
		t.Errorf("leads tab should flag stale data after a failed poll:\n%s", out)
	}
}

func TestFreshnessStaleWhenAnyPollFails(t *testing.T) {
	m := testModel()

	gen, _ := m.stats.Begin()
	m.stats.Complete(gen, &models.MonitorSnapshot{Success: true}, nil)
	gen, _ = m.logs.Begin()
	m.logs.Complete(gen, nil, nil)
	gen, _ = m.leads.Begin()
	m.leads.Complete(gen, nil, errors.New("backend down"))

	if out := renderFreshness(m); !strings.Contains(out, "stale") {
		t.Errorf("freshness = %q, want stale marker when the leads poll failed", out)
	}
}

func TestFreshnessHealthyWhenAllPollsSucceed(t *testing.T) {
	m := testModel()

	gen, _ := m.stats.Begin()
	m.stats.Complete(gen, &models.MonitorSnapshot{Success: true}, nil)
	gen, _ = m.logs.Begin()
	m.logs.Complete(gen, nil, nil)
	gen, _ = m.leads.Begin()
	m.leads.Complete(gen, nil, nil)

	if out := renderFreshness(m); !strings.Contains(out, "updated") {
		t.Errorf("freshness = %q, want last update time when all polls succeed", out)
	}
}

func TestRenderQueryLineShowsFilters(t *testing.T) {
	q := view.NewQuery(view.FieldTimestamp)
	q.Search = "555"
	q.Status = "connected"

	line := renderQueryLine(q, 3)
	for _, want := range []string{"3 records", "555", "connected"} {
		if !strings.Contains(line, want) {
			t.Errorf("query line missing %q: %s", want, line)
		}
	}
}
