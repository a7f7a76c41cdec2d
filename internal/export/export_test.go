package export

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/eugenc/dialer-dashboard/internal/models"
)

func strPtr(s string) *string { return &s }

func TestValidateUploadName(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{name: "plain csv", filename: "leads.csv", wantErr: false},
		{name: "uppercase extension", filename: "LEADS.CSV", wantErr: false},
		{name: "path with csv", filename: "/tmp/batch/leads.csv", wantErr: false},
		{name: "text file", filename: "leads.txt", wantErr: true},
		{name: "no extension", filename: "leads", wantErr: true},
		{name: "csv in the middle", filename: "leads.csv.xlsx", wantErr: true},
		{name: "empty", filename: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUploadName(tt.filename)
			if tt.wantErr && !errors.Is(err, ErrNotCSV) {
				t.Errorf("ValidateUploadName(%q) = %v, want ErrNotCSV", tt.filename, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateUploadName(%q) = %v, want nil", tt.filename, err)
			}
		})
	}
}

func TestCallsCSVHeader(t *testing.T) {
	out := CallsCSV(nil)
	want := `"id","timestamp","phone","status","duration","callSid","retellCallId","answeredBy","error"` + "\n"
	if out != want {
		t.Errorf("empty export = %q, want header only %q", out, want)
	}
}

func TestCallsCSVQuoting(t *testing.T) {
	calls := []models.CallLog{
		{
			ID:        "c1",
			Timestamp: "2024-01-01T10:00:00+02:00",
			Phone:     "+1555000",
			Status:    models.CallStatusConnected,
			Duration:  30,
			CallSID:   "CA123",
			Error:     strPtr(`said "no thanks"`),
		},
	}

	out := CallsCSV(calls)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}

	row := lines[1]
	// Every cell double-quoted, inner quotes doubled, timestamp in UTC.
	if !strings.Contains(row, `"2024-01-01T08:00:00Z"`) {
		t.Errorf("timestamp not normalized to UTC: %s", row)
	}
	if !strings.Contains(row, `"said ""no thanks"""`) {
		t.Errorf("inner quotes not doubled: %s", row)
	}
	if !strings.Contains(row, `"30"`) {
		t.Errorf("numeric cell not quoted: %s", row)
	}
	// nil pointers become empty quoted cells
	if !strings.Contains(row, `"",""`) {
		t.Errorf("nil fields should be empty quoted cells: %s", row)
	}
}

func TestLeadsCSV(t *testing.T) {
	leads := []models.Lead{
		{
			Phone:       "+1555000",
			Name:        "Ada",
			Status:      models.LeadStatusPending,
			RetryCount:  2,
			LastAttempt: nil,
			CreatedAt:   "2024-01-01T10:00:00Z",
		},
	}

	out := LeadsCSV(leads)
	want := `"phone","name","status","retryCount","lastAttempt","created_at"` + "\n" +
		`"+1555000","Ada","pending","2","","2024-01-01T10:00:00Z"` + "\n"
	if out != want {
		t.Errorf("LeadsCSV = %q, want %q", out, want)
	}
}

func TestCallsJSONEmptyIsArray(t *testing.T) {
	data, err := CallsJSON(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("nil input = %s, want empty JSON array", data)
	}
}

func TestLeadsJSONRoundTrip(t *testing.T) {
	leads := []models.Lead{
		{Phone: "+1555000", Name: "Ada", Status: models.LeadStatusAnswered},
	}
	data, err := LeadsJSON(leads)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded []models.Lead
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Phone != "+1555000" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 1, 31, 15, 4, 5, 0, time.UTC)

	if got := Filename("calls", "csv", now); got != "calls-2024-01-31.csv" {
		t.Errorf("Filename = %q, want calls-2024-01-31.csv", got)
	}
	if got := Filename("leads", "json", now); got != "leads-2024-01-31.json" {
		t.Errorf("Filename = %q, want leads-2024-01-31.json", got)
	}
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")

	path, err := WriteFile(dir, "calls-2024-01-31.csv", []byte("data"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back export: %v", err)
	}
	if string(got) != "data" {
		t.Errorf("file content = %q, want %q", got, "data")
	}
}
