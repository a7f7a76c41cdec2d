package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-key", zerolog.Nop())
}

func TestGetStats(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/monitor/stats" {
			t.Errorf("path = %s, want /monitor/stats", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if got := r.Header.Get("x-api-key"); got != "test-key" {
			t.Errorf("x-api-key = %q, want test-key", got)
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Errorf("X-Request-Id header missing")
		}
		w.Write([]byte(`{"success":true,"campaign":{"active":true,"total":100,"connected":12},"calls":{"totalCalls":40}}`))
	})

	snap, err := client.GetStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !snap.Campaign.Active {
		t.Errorf("campaign should be active")
	}
	if snap.Campaign.Total != 100 || snap.Campaign.Connected != 12 {
		t.Errorf("campaign stats = %+v", snap.Campaign)
	}
	if snap.Calls.TotalCalls != 40 {
		t.Errorf("totalCalls = %d, want 40", snap.Calls.TotalCalls)
	}
}

func TestGetLogsPassesLimit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "50" {
			t.Errorf("limit = %q, want 50", got)
		}
		w.Write([]byte(`{"logs":[{"id":"c1","phone":"+1555000","status":"connected","duration":30}]}`))
	})

	logs, err := client.GetLogs(context.Background(), 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 1 || logs[0].ID != "c1" {
		t.Errorf("logs = %+v", logs)
	}
}

func TestGetLeads(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/campaign/leads" {
			t.Errorf("path = %s, want /campaign/leads", r.URL.Path)
		}
		w.Write([]byte(`{"leads":[{"phone":"+1555000","name":"Ada","status":"pending","retryCount":1}],"count":1}`))
	})

	resp, err := client.GetLeads(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Count != 1 || len(resp.Leads) != 1 {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Leads[0].Name != "Ada" {
		t.Errorf("lead name = %q, want Ada", resp.Leads[0].Name)
	}
}

func TestStartStopCampaign(t *testing.T) {
	var gotPaths []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		gotPaths = append(gotPaths, r.URL.Path)
		w.Write([]byte(`{"success":true}`))
	})

	if err := client.StartCampaign(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := client.StopCampaign(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if len(gotPaths) != 2 || gotPaths[0] != "/campaign/start" || gotPaths[1] != "/campaign/stop" {
		t.Errorf("paths = %v", gotPaths)
	}
}

func TestUploadLeadsMultipart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/campaign/upload" {
			t.Errorf("path = %s, want /campaign/upload", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("body is not multipart: %v", err)
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		f, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("missing multipart field \"file\": %v", err)
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		defer f.Close()
		if header.Filename != "leads.csv" {
			t.Errorf("filename = %q, want leads.csv", header.Filename)
		}
		w.Write([]byte(`{"success":true,"imported":10,"skipped":2}`))
	})

	body := strings.NewReader("phone,name\n+1555000,Ada\n")
	result, err := client.UploadLeads(context.Background(), "leads.csv", body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Imported != 10 || result.Skipped != 2 {
		t.Errorf("result = %+v", result)
	}
}

func TestAPIErrorOnNon2xx(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid api key"}`))
	})

	_, err := client.GetStats(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Body, "invalid api key") {
		t.Errorf("body = %q, want captured response body", apiErr.Body)
	}
}

func TestBaseURLTrailingSlash(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", "key", zerolog.Nop())
	if _, err := client.GetStatus(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/campaign/status" {
		t.Errorf("path = %q, trailing slash not trimmed", gotPath)
	}
}

func TestDecodeErrorWrapped(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := client.GetStats(context.Background())
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if !strings.Contains(err.Error(), "/monitor/stats") {
		t.Errorf("error should name the path: %v", err)
	}
}
