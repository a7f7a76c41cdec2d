package tui

import "time"

// formatWhen renders an ISO timestamp in local time for tables; values
// that don't parse pass through as-is.
func formatWhen(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
