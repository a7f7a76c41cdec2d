// Package api implements the REST client for the dialer backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/eugenc/dialer-dashboard/internal/models"
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Body)
}

// Client talks to the dialer backend. Every request carries the x-api-key
// header and a generated request id. The client performs no retries;
// retry policy belongs to the caller.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	logger  zerolog.Logger
}

// NewClient creates a client for the given base URL and API key.
func NewClient(baseURL, apiKey string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

// BaseURL returns the resolved backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetStats fetches the combined campaign + call aggregate snapshot.
func (c *Client) GetStats(ctx context.Context) (*models.MonitorSnapshot, error) {
	var snap models.MonitorSnapshot
	if err := c.getJSON(ctx, "/monitor/stats", &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// GetStatus fetches the campaign status.
func (c *Client) GetStatus(ctx context.Context) (*models.CampaignStatus, error) {
	var status models.CampaignStatus
	if err := c.getJSON(ctx, "/campaign/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetLeads fetches all leads.
func (c *Client) GetLeads(ctx context.Context) (*models.LeadsResponse, error) {
	var resp models.LeadsResponse
	if err := c.getJSON(ctx, "/campaign/leads", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetLogs fetches the most recent call logs, up to limit entries.
func (c *Client) GetLogs(ctx context.Context, limit int) ([]models.CallLog, error) {
	path := "/campaign/logs?limit=" + strconv.Itoa(limit)
	var resp models.LogsResponse
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Logs, nil
}

// StartCampaign starts the campaign.
func (c *Client) StartCampaign(ctx context.Context) error {
	return c.post(ctx, "/campaign/start")
}

// StopCampaign stops the campaign.
func (c *Client) StopCampaign(ctx context.Context) error {
	return c.post(ctx, "/campaign/stop")
}

// UploadLeads submits a lead CSV as a multipart body under the field
// name "file". Filename validation happens before the call; the gateway
// sends whatever it's given.
func (c *Client) UploadLeads(ctx context.Context, filename string, r io.Reader) (*models.UploadResult, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("failed to read upload payload: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/campaign/upload", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var result models.UploadResult
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.do(req, v)
}

func (c *Client) post(ctx context.Context, path string) error {
	req, err := c.newRequest(ctx, http.MethodPost, path, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(c.baseURL, "/")+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("X-Request-Id", uuid.NewString())
	return req, nil
}

func (c *Client) do(req *http.Request, v any) error {
	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("url", req.URL.String()).Msg("request failed")
		return fmt.Errorf("request %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &APIError{StatusCode: resp.StatusCode, Body: string(b)}
	}

	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}
