// Package updater checks GitHub Releases for a newer dialer-dashboard
// build. It only reports; installing the new binary is up to the user.
package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/eugenc/dialer-dashboard/internal/buildinfo"
)

const releasesURL = "https://api.github.com/repos/eugenc/dialer-dashboard/releases/latest"

// ReleaseInfo is the subset of the GitHub release payload we read.
type ReleaseInfo struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// UpdateResult describes the outcome of an update check.
type UpdateResult struct {
	Available      bool
	CurrentVersion string
	LatestVersion  string
	ReleaseURL     string
}

// CheckForUpdate queries the GitHub Releases API and compares the latest
// tag against the version stamped into this binary.
func CheckForUpdate(ctx context.Context) (*UpdateResult, error) {
	return checkRelease(ctx, releasesURL)
}

func checkRelease(ctx context.Context, url string) (*UpdateResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "dialer-dashboard/"+buildinfo.Version)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch releases: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// No releases published yet
		return &UpdateResult{CurrentVersion: buildinfo.Version}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned %d", resp.StatusCode)
	}

	var release ReleaseInfo
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	return &UpdateResult{
		Available:      versionBehind(buildinfo.Version, latest),
		CurrentVersion: buildinfo.Version,
		LatestVersion:  latest,
		ReleaseURL:     release.HTMLURL,
	}, nil
}

// versionBehind reports whether current is an older release than latest.
// A current version that does not parse as a release tag (a "dev" source
// build, a dirty tag) always counts as behind; a latest tag that does
// not parse never does.
func versionBehind(current, latest string) bool {
	cur, ok := parseTag(current)
	if !ok {
		return true
	}
	rel, ok := parseTag(latest)
	if !ok {
		return false
	}
	for i := range cur {
		if cur[i] != rel[i] {
			return cur[i] < rel[i]
		}
	}
	return false
}

// parseTag parses a "major.minor.patch" release tag, with or without a
// leading "v".
func parseTag(tag string) ([3]int, bool) {
	var v [3]int
	parts := strings.Split(strings.TrimPrefix(tag, "v"), ".")
	if len(parts) != 3 {
		return v, false
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return v, false
		}
		v[i] = n
	}
	return v, true
}
