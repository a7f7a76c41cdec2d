// Package view derives ordered, filtered collections from raw campaign
// records. Everything here is a pure function: inputs are never mutated
// and identical inputs always produce identical output.
package view

import (
	"sort"
	"strings"
	"time"

	"github.com/eugenc/dialer-dashboard/internal/models"
)

// SortDir is the sort direction of a query.
type SortDir int

const (
	Ascending SortDir = iota
	Descending
)

// SortField names a sortable column. Fields not applicable to a record
// type compare as equal strings via their zero value.
type SortField string

const (
	FieldTimestamp   SortField = "timestamp"
	FieldPhone       SortField = "phone"
	FieldStatus      SortField = "status"
	FieldDuration    SortField = "duration"
	FieldAnsweredBy  SortField = "answeredBy"
	FieldName        SortField = "name"
	FieldRetryCount  SortField = "retryCount"
	FieldLastAttempt SortField = "lastAttempt"
	FieldCreatedAt   SortField = "createdAt"
)

// Query holds the user's current search text, status filter, and sort
// selection. The zero value of Status must be models.StatusAll to
// disable filtering.
type Query struct {
	Search string
	Status string
	Field  SortField
	Dir    SortDir
}

// NewQuery returns a query with filtering disabled, sorted by the given
// field ascending.
func NewQuery(field SortField) Query {
	return Query{Status: models.StatusAll, Field: field, Dir: Ascending}
}

// Toggle applies a sort selection: re-selecting the active field inverts
// the direction, selecting a new field resets direction to ascending.
func (q Query) Toggle(field SortField) Query {
	if q.Field == field {
		if q.Dir == Ascending {
			q.Dir = Descending
		} else {
			q.Dir = Ascending
		}
		return q
	}
	q.Field = field
	q.Dir = Ascending
	return q
}

// ApplyCalls produces the derived view collection for call logs: search
// filter, then status filter, then a stable field-aware sort. The source
// slice is left untouched.
func ApplyCalls(src []models.CallLog, q Query) []models.CallLog {
	out := make([]models.CallLog, 0, len(src))
	term := strings.ToLower(q.Search)
	for _, c := range src {
		if term != "" && !callMatches(c, term) {
			continue
		}
		if q.Status != models.StatusAll && string(c.Status) != q.Status {
			continue
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return orderBefore(compareCalls(out[i], out[j], q.Field), q.Dir)
	})
	return out
}

// ApplyLeads produces the derived view collection for leads.
func ApplyLeads(src []models.Lead, q Query) []models.Lead {
	out := make([]models.Lead, 0, len(src))
	term := strings.ToLower(q.Search)
	for _, l := range src {
		if term != "" && !leadMatches(l, term) {
			continue
		}
		if q.Status != models.StatusAll && string(l.Status) != q.Status {
			continue
		}
		out = append(out, l)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return orderBefore(compareLeads(out[i], out[j], q.Field), q.Dir)
	})
	return out
}

// callMatches reports whether any searchable call field contains term.
// Searchable fields: phone, answered-by. A nil field fails its sub-check.
func callMatches(c models.CallLog, term string) bool {
	if strings.Contains(strings.ToLower(c.Phone), term) {
		return true
	}
	if c.AnsweredBy != nil && strings.Contains(strings.ToLower(*c.AnsweredBy), term) {
		return true
	}
	return false
}

// leadMatches reports whether any searchable lead field contains term.
// Searchable fields: phone, name.
func leadMatches(l models.Lead, term string) bool {
	if strings.Contains(strings.ToLower(l.Phone), term) {
		return true
	}
	if strings.Contains(strings.ToLower(l.Name), term) {
		return true
	}
	return false
}

func compareCalls(a, b models.CallLog, field SortField) int {
	switch field {
	case FieldTimestamp:
		return compareTimestamps(a.Timestamp, b.Timestamp)
	case FieldDuration:
		return compareInts(a.Duration, b.Duration)
	case FieldPhone:
		return strings.Compare(a.Phone, b.Phone)
	case FieldStatus:
		return strings.Compare(string(a.Status), string(b.Status))
	case FieldAnsweredBy:
		return strings.Compare(stringOrEmpty(a.AnsweredBy), stringOrEmpty(b.AnsweredBy))
	default:
		return compareTimestamps(a.Timestamp, b.Timestamp)
	}
}

func compareLeads(a, b models.Lead, field SortField) int {
	switch field {
	case FieldName:
		return strings.Compare(a.Name, b.Name)
	case FieldPhone:
		return strings.Compare(a.Phone, b.Phone)
	case FieldStatus:
		return strings.Compare(string(a.Status), string(b.Status))
	case FieldRetryCount:
		return compareInts(a.RetryCount, b.RetryCount)
	case FieldLastAttempt:
		return compareTimestamps(stringOrEmpty(a.LastAttempt), stringOrEmpty(b.LastAttempt))
	case FieldCreatedAt:
		return compareTimestamps(a.CreatedAt, b.CreatedAt)
	default:
		return compareTimestamps(a.CreatedAt, b.CreatedAt)
	}
}

// orderBefore turns a three-way comparison into a less-than for the
// given direction. Equal keys return false either way, which preserves
// input order under a stable sort.
func orderBefore(cmp int, dir SortDir) bool {
	if dir == Descending {
		return cmp > 0
	}
	return cmp < 0
}

// compareTimestamps compares two ISO-8601 strings by parsed instant.
// Missing or unparseable values compare as the zero time.
func compareTimestamps(a, b string) int {
	ta := parseTime(a)
	tb := parseTime(b)
	return ta.Compare(tb)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
