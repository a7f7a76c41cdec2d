package updater

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestVersionBehind(t *testing.T) {
	tests := []struct {
		name            string
		current, latest string
		want            bool
	}{
		{name: "patch behind", current: "1.0.0", latest: "1.0.1", want: true},
		{name: "minor beats patch", current: "1.0.9", latest: "1.1.0", want: true},
		{name: "major beats minor", current: "1.9.9", latest: "2.0.0", want: true},
		{name: "equal", current: "1.2.3", latest: "1.2.3", want: false},
		{name: "ahead", current: "2.0.0", latest: "1.9.9", want: false},
		{name: "v prefix", current: "v0.4.0", latest: "v0.4.1", want: true},
		{name: "dev build always behind", current: "dev", latest: "0.1.0", want: true},
		{name: "unparseable latest never ahead", current: "1.0.0", latest: "nightly", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := versionBehind(tt.current, tt.latest); got != tt.want {
				t.Errorf("versionBehind(%q, %q) = %v, want %v", tt.current, tt.latest, got, tt.want)
			}
		})
	}
}

func TestParseTag(t *testing.T) {
	if _, ok := parseTag("1.2"); ok {
		t.Errorf("two-part tag should not parse")
	}
	if _, ok := parseTag("1.x.3"); ok {
		t.Errorf("non-numeric tag should not parse")
	}
	v, ok := parseTag("v1.2.3")
	if !ok || v != [3]int{1, 2, 3} {
		t.Errorf("parseTag(v1.2.3) = %v, %v", v, ok)
	}
}

func TestCheckReleaseReportsNewerTag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tag_name": "v99.0.0", "html_url": "https://example.com/rel"}`))
	}))
	defer srv.Close()

	result, err := checkRelease(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("checkRelease: %v", err)
	}
	if !result.Available {
		t.Errorf("a v99.0.0 release should be reported as available")
	}
	if result.LatestVersion != "99.0.0" {
		t.Errorf("LatestVersion = %q, want 99.0.0", result.LatestVersion)
	}
	if result.ReleaseURL != "https://example.com/rel" {
		t.Errorf("ReleaseURL = %q", result.ReleaseURL)
	}
}

func TestCheckReleaseNoReleasesYet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	result, err := checkRelease(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("checkRelease: %v", err)
	}
	if result.Available {
		t.Errorf("no releases should mean no update available")
	}
}
