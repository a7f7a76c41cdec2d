package view

import (
	"sort"

	"github.com/eugenc/dialer-dashboard/internal/models"
)

// DailyCount is one calendar-day volume bucket.
type DailyCount struct {
	Date  string // yyyy-MM-dd
	Count int
}

// CallCountsByStatus groups calls by status and counts each bucket.
func CallCountsByStatus(calls []models.CallLog) map[models.CallStatus]int {
	counts := make(map[models.CallStatus]int, len(models.KnownCallStatuses))
	for _, c := range calls {
		counts[c.Status]++
	}
	return counts
}

// LeadCountsByStatus groups leads by status and counts each bucket.
func LeadCountsByStatus(leads []models.Lead) map[models.LeadStatus]int {
	counts := make(map[models.LeadStatus]int, len(models.KnownLeadStatuses))
	for _, l := range leads {
		counts[l.Status]++
	}
	return counts
}

// isConnected reports whether a call reached a human. Completed calls
// were connected before they ended.
func isConnected(c models.CallLog) bool {
	return c.Status == models.CallStatusConnected || c.Status == models.CallStatusCompleted
}

// ConnectionRate returns the percentage of calls that connected.
// An empty collection yields 0, never NaN.
func ConnectionRate(calls []models.CallLog) float64 {
	if len(calls) == 0 {
		return 0
	}
	connected := 0
	for _, c := range calls {
		if isConnected(c) {
			connected++
		}
	}
	return float64(connected) / float64(len(calls)) * 100
}

// VoicemailRate returns the percentage of calls that hit voicemail.
func VoicemailRate(calls []models.CallLog) float64 {
	if len(calls) == 0 {
		return 0
	}
	voicemail := 0
	for _, c := range calls {
		if c.Status == models.CallStatusVoicemail {
			voicemail++
		}
	}
	return float64(voicemail) / float64(len(calls)) * 100
}

// AverageConnectedDuration returns the mean duration in seconds over
// connected calls. No connected calls yields 0.
func AverageConnectedDuration(calls []models.CallLog) float64 {
	total := 0
	n := 0
	for _, c := range calls {
		if isConnected(c) {
			total += c.Duration
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(total) / float64(n)
}

// HourlyVolume buckets calls by hour of day (UTC) from their timestamps.
// Calls with unparseable timestamps land in hour 0 with the zero time.
func HourlyVolume(calls []models.CallLog) [24]int {
	var buckets [24]int
	for _, c := range calls {
		buckets[c.Time().Hour()]++
	}
	return buckets
}

// DailyVolume buckets calls by calendar day, sorted by date ascending.
func DailyVolume(calls []models.CallLog) []DailyCount {
	byDay := make(map[string]int)
	for _, c := range calls {
		byDay[c.Time().Format("2006-01-02")]++
	}

	out := make([]DailyCount, 0, len(byDay))
	for day, n := range byDay {
		out = append(out, DailyCount{Date: day, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}
