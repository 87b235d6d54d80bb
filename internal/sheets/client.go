// Package sheets talks to the spreadsheet webhook (a Google Apps Script
// deployment) that mirrors all collections. The endpoint is best-effort:
// it accepts a full snapshot and answers with a status envelope, nothing
// more is guaranteed.
package sheets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"rajmahal-backend/internal/models"
)

type Client struct {
	webhookURL string
	httpClient *http.Client
}

// SyncPayload is the full snapshot sent on every sync.
type SyncPayload struct {
	Action        string                  `json:"action"`
	Orders        []models.Order          `json:"orders"`
	StaffBook     []models.StaffBookEntry `json:"staffBook"`
	EntryStatuses []models.EntryStatus    `json:"entryStatuses"`
}

// SyncResult is the webhook's response envelope.
type SyncResult struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp,omitempty"`
	RecordCount struct {
		Orders        int `json:"orders"`
		StaffBook     int `json:"staffBook"`
		EntryStatuses int `json:"entryStatuses"`
	} `json:"recordCount"`
}

func NewClient(webhookURL string) *Client {
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Configured reports whether a webhook URL was provided.
func (c *Client) Configured() bool {
	return c.webhookURL != ""
}

// Push sends the snapshot. Any transport failure, non-2xx status, or
// "error" envelope is returned as an error; the caller decides how to
// degrade. There is no retry here.
func (c *Client) Push(payload SyncPayload) (*SyncResult, error) {
	if payload.Action == "" {
		payload.Action = "sync"
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", c.webhookURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("sync rejected: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result SyncResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w, body: %s", err, string(body))
	}

	if result.Status == "error" {
		return nil, fmt.Errorf("sheet reported failure: %s", result.Message)
	}

	return &result, nil
}
