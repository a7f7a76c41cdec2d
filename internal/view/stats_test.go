package view

import (
	"math"
	"testing"

	"github.com/eugenc/dialer-dashboard/internal/models"
)

func TestConnectionRate(t *testing.T) {
	tests := []struct {
		name  string
		calls []models.CallLog
		want  float64
	}{
		{
			name:  "empty yields zero",
			calls: nil,
			want:  0,
		},
		{
			name: "one of two connected",
			calls: []models.CallLog{
				{Status: models.CallStatusConnected, Duration: 30},
				{Status: models.CallStatusFailed},
			},
			want: 50.0,
		},
		{
			name: "completed counts as connected",
			calls: []models.CallLog{
				{Status: models.CallStatusCompleted},
			},
			want: 100.0,
		},
		{
			name: "none connected",
			calls: []models.CallLog{
				{Status: models.CallStatusFailed},
				{Status: models.CallStatusVoicemail},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConnectionRate(tt.calls)
			if math.IsNaN(got) {
				t.Fatalf("ConnectionRate returned NaN")
			}
			if got != tt.want {
				t.Errorf("ConnectionRate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVoicemailRateEmptyInput(t *testing.T) {
	got := VoicemailRate(nil)
	if math.IsNaN(got) || got != 0 {
		t.Errorf("VoicemailRate(nil) = %v, want 0", got)
	}
}

func TestVoicemailRate(t *testing.T) {
	calls := []models.CallLog{
		{Status: models.CallStatusVoicemail},
		{Status: models.CallStatusConnected},
		{Status: models.CallStatusVoicemail},
		{Status: models.CallStatusFailed},
	}
	if got := VoicemailRate(calls); got != 50.0 {
		t.Errorf("VoicemailRate = %v, want 50.0", got)
	}
}

func TestAverageConnectedDuration(t *testing.T) {
	tests := []struct {
		name  string
		calls []models.CallLog
		want  float64
	}{
		{
			name:  "empty yields zero",
			calls: nil,
			want:  0,
		},
		{
			name: "no connected calls yields zero",
			calls: []models.CallLog{
				{Status: models.CallStatusFailed, Duration: 99},
			},
			want: 0,
		},
		{
			name: "mean over connected only",
			calls: []models.CallLog{
				{Status: models.CallStatusConnected, Duration: 30},
				{Status: models.CallStatusCompleted, Duration: 60},
				{Status: models.CallStatusFailed, Duration: 1000},
			},
			want: 45.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AverageConnectedDuration(tt.calls)
			if math.IsNaN(got) {
				t.Fatalf("AverageConnectedDuration returned NaN")
			}
			if got != tt.want {
				t.Errorf("AverageConnectedDuration = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCallCountsByStatus(t *testing.T) {
	calls := []models.CallLog{
		{Status: models.CallStatusConnected},
		{Status: models.CallStatusConnected},
		{Status: models.CallStatus("weird-new-status")},
	}

	counts := CallCountsByStatus(calls)
	if counts[models.CallStatusConnected] != 2 {
		t.Errorf("connected count = %d, want 2", counts[models.CallStatusConnected])
	}
	// Unknown statuses are preserved, not dropped.
	if counts[models.CallStatus("weird-new-status")] != 1 {
		t.Errorf("unknown status bucket = %d, want 1", counts[models.CallStatus("weird-new-status")])
	}
}

func TestHourlyVolume(t *testing.T) {
	calls := []models.CallLog{
		{Timestamp: "2024-01-01T10:00:00Z"},
		{Timestamp: "2024-01-01T10:30:00Z"},
		{Timestamp: "2024-01-01T23:59:59Z"},
		{Timestamp: "garbage"},
	}

	buckets := HourlyVolume(calls)
	if buckets[10] != 2 {
		t.Errorf("hour 10 = %d, want 2", buckets[10])
	}
	if buckets[23] != 1 {
		t.Errorf("hour 23 = %d, want 1", buckets[23])
	}
	// Unparseable timestamps land in hour 0 via the zero time.
	if buckets[0] != 1 {
		t.Errorf("hour 0 = %d, want 1", buckets[0])
	}
}

func TestDailyVolume(t *testing.T) {
	calls := []models.CallLog{
		{Timestamp: "2024-01-02T10:00:00Z"},
		{Timestamp: "2024-01-01T10:00:00Z"},
		{Timestamp: "2024-01-02T11:00:00Z"},
	}

	days := DailyVolume(calls)
	if len(days) != 2 {
		t.Fatalf("expected 2 day buckets, got %d", len(days))
	}
	if days[0].Date != "2024-01-01" || days[0].Count != 1 {
		t.Errorf("day 0 = %+v, want 2024-01-01 x1", days[0])
	}
	if days[1].Date != "2024-01-02" || days[1].Count != 2 {
		t.Errorf("day 1 = %+v, want 2024-01-02 x2", days[1])
	}
}
