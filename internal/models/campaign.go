package models

import "time"

// CallStatus represents the status of a placed call. The backend treats
// statuses as an open string set, so unknown values are preserved rather
// than rejected.
type CallStatus string

const (
	CallStatusConnected CallStatus = "connected"
	CallStatusDialing   CallStatus = "dialing"
	CallStatusFailed    CallStatus = "failed"
	CallStatusVoicemail CallStatus = "voicemail"
	CallStatusNoAnswer  CallStatus = "no-answer"
	CallStatusCompleted CallStatus = "completed"
)

// LeadStatus represents the status of a lead. The lead vocabulary overlaps
// with call statuses but is not identical ("answered" and "pending" appear
// only for leads), so the two are kept separate.
type LeadStatus string

const (
	LeadStatusPending   LeadStatus = "pending"
	LeadStatusDialing   LeadStatus = "dialing"
	LeadStatusConnected LeadStatus = "connected"
	LeadStatusVoicemail LeadStatus = "voicemail"
	LeadStatusNoAnswer  LeadStatus = "no-answer"
	LeadStatusFailed    LeadStatus = "failed"
	LeadStatusAnswered  LeadStatus = "answered"
)

// StatusAll is the sentinel filter value that disables status filtering.
const StatusAll = "all"

// KnownCallStatuses lists the call statuses the dashboard cycles through
// when filtering. Unknown statuses still render, they just aren't offered
// as filter values.
var KnownCallStatuses = []CallStatus{
	CallStatusConnected,
	CallStatusDialing,
	CallStatusFailed,
	CallStatusVoicemail,
	CallStatusNoAnswer,
	CallStatusCompleted,
}

// KnownLeadStatuses lists the lead statuses offered as filter values.
var KnownLeadStatuses = []LeadStatus{
	LeadStatusPending,
	LeadStatusDialing,
	LeadStatusConnected,
	LeadStatusVoicemail,
	LeadStatusNoAnswer,
	LeadStatusFailed,
	LeadStatusAnswered,
}

// CampaignStats is a snapshot of one campaign's counters. It is replaced
// wholesale on each poll; fields are never updated individually.
type CampaignStats struct {
	Active    bool `json:"active"`
	Total     int  `json:"total"`
	Pending   int  `json:"pending"`
	Dialing   int  `json:"dialing"`
	Answered  int  `json:"answered"`
	Voicemail int  `json:"voicemail"`
	NoAnswer  int  `json:"noAnswer"`
	Failed    int  `json:"failed"`
	Connected int  `json:"connected"`
}

// CallLog is a record of one placed call and its outcome. Entries are
// append-only server-side; the client only reads them.
type CallLog struct {
	ID           string         `json:"id"`
	Timestamp    string         `json:"timestamp"` // ISO-8601
	Phone        string         `json:"phone"`
	Status       CallStatus     `json:"status"`
	Duration     int            `json:"duration"` // seconds, 0 = not yet connected
	CallSID      string         `json:"callSid"`
	RetellCallID *string        `json:"retellCallId"`
	AnsweredBy   *string        `json:"answeredBy"`
	Error        *string        `json:"error"`
	Metadata     map[string]any `json:"metadata"`
}

// Time parses the entry's timestamp. Unparseable timestamps return the
// zero time so sorting and bucketing stay total.
func (c CallLog) Time() time.Time {
	t, err := time.Parse(time.RFC3339, c.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Lead is a contact record targeted for an outbound call.
type Lead struct {
	ID           string         `json:"id,omitempty"`
	Phone        string         `json:"phone"`
	Name         string         `json:"name"`
	Status       LeadStatus     `json:"status"`
	CallSID      *string        `json:"callSid"`
	RetellCallID *string        `json:"retellCallId"`
	RetryCount   int            `json:"retryCount"`
	LastAttempt  *string        `json:"lastAttempt"`
	CreatedAt    string         `json:"created_at"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// CallTotals is the call-level aggregate section of the monitor snapshot.
type CallTotals struct {
	TotalCalls         int      `json:"totalCalls"`
	ActiveCalls        int      `json:"activeCalls"`
	ConnectedCalls     int      `json:"connectedCalls"`
	AvgTimeToAgent     *float64 `json:"avgTimeToAgent"`
	HumanDetectionRate string   `json:"humanDetectionRate"`
	RetellSuccessRate  string   `json:"retellSuccessRate"`
}

// MonitorSnapshot is the combined campaign + call aggregate returned by
// GET /monitor/stats.
type MonitorSnapshot struct {
	Success   bool          `json:"success"`
	Campaign  CampaignStats `json:"campaign"`
	Calls     CallTotals    `json:"calls"`
	Timestamp string        `json:"timestamp"`
}

// CampaignStatus is the response of GET /campaign/status.
type CampaignStatus struct {
	Active bool          `json:"active"`
	Stats  CampaignStats `json:"stats"`
}

// LeadsResponse is the envelope of GET /campaign/leads.
type LeadsResponse struct {
	Leads []Lead `json:"leads"`
	Count int    `json:"count"`
}

// LogsResponse is the envelope of GET /campaign/logs.
type LogsResponse struct {
	Logs []CallLog `json:"logs"`
}

// UploadResult reports the outcome of a lead CSV upload.
type UploadResult struct {
	Success  bool   `json:"success"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
	Message  string `json:"message,omitempty"`
}
