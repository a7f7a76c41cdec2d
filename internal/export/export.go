// Package export serializes derived view collections to CSV and JSON
// files, and validates lead files before upload.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/eugenc/dialer-dashboard/internal/models"
)

// ErrNotCSV rejects upload candidates whose name does not end in .csv.
// The check runs before any network call.
var ErrNotCSV = fmt.Errorf("file must have a .csv extension")

// ValidateUploadName checks that a lead file is named like a CSV.
func ValidateUploadName(filename string) error {
	if !strings.EqualFold(filepath.Ext(filename), ".csv") {
		return ErrNotCSV
	}
	return nil
}

var callHeader = []string{
	"id", "timestamp", "phone", "status", "duration",
	"callSid", "retellCallId", "answeredBy", "error",
}

var leadHeader = []string{
	"phone", "name", "status", "retryCount", "lastAttempt", "created_at",
}

// CallsCSV renders call logs as CSV with a fixed header row, every cell
// double-quoted, and timestamps ISO-normalized.
func CallsCSV(calls []models.CallLog) string {
	var b strings.Builder
	writeRow(&b, callHeader)
	for _, c := range calls {
		writeRow(&b, []string{
			c.ID,
			isoTimestamp(c.Timestamp),
			c.Phone,
			string(c.Status),
			strconv.Itoa(c.Duration),
			c.CallSID,
			orEmpty(c.RetellCallID),
			orEmpty(c.AnsweredBy),
			orEmpty(c.Error),
		})
	}
	return b.String()
}

// LeadsCSV renders leads as CSV with a fixed header row.
func LeadsCSV(leads []models.Lead) string {
	var b strings.Builder
	writeRow(&b, leadHeader)
	for _, l := range leads {
		lastAttempt := ""
		if l.LastAttempt != nil {
			lastAttempt = isoTimestamp(*l.LastAttempt)
		}
		writeRow(&b, []string{
			l.Phone,
			l.Name,
			string(l.Status),
			strconv.Itoa(l.RetryCount),
			lastAttempt,
			isoTimestamp(l.CreatedAt),
		})
	}
	return b.String()
}

// CallsJSON renders call logs as a pretty-printed JSON array.
func CallsJSON(calls []models.CallLog) ([]byte, error) {
	if calls == nil {
		calls = []models.CallLog{}
	}
	return json.MarshalIndent(calls, "", "  ")
}

// LeadsJSON renders leads as a pretty-printed JSON array.
func LeadsJSON(leads []models.Lead) ([]byte, error) {
	if leads == nil {
		leads = []models.Lead{}
	}
	return json.MarshalIndent(leads, "", "  ")
}

// Filename builds an export filename embedding the current date, e.g.
// "calls-2024-01-31.csv".
func Filename(prefix, ext string, now time.Time) string {
	return fmt.Sprintf("%s-%s.%s", prefix, now.Format("2006-01-02"), ext)
}

// WriteFile writes an export payload into dir, creating it if needed,
// and returns the full path.
func WriteFile(dir, name string, data []byte) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export %s: %w", path, err)
	}
	return path, nil
}

// writeRow appends one CSV row with every cell double-quoted. Inner
// quotes are doubled per RFC 4180.
func writeRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// isoTimestamp normalizes a timestamp to RFC 3339 UTC. Unparseable
// values pass through unchanged rather than dropping data.
func isoTimestamp(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.UTC().Format(time.RFC3339)
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
