package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to a running dashboard server. It is what external tooling
// (overlay scripts, the stream consumer) uses instead of reading the file
// artifact.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the dashboard server at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Healthcheck checks whether the dashboard server is reachable.
func (c *Client) Healthcheck() error {
	resp, err := c.httpClient.Get(c.baseURL + "/healthcheck")
	if err != nil {
		return fmt.Errorf("healthcheck request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("healthcheck returned status %d", resp.StatusCode)
	}
	return nil
}

// Snapshot fetches the latest canonical snapshot document. It returns the
// raw bytes so callers can hand them to their own parser unchanged.
func (c *Client) Snapshot() ([]byte, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/api/snapshot")
	if err != nil {
		return nil, fmt.Errorf("snapshot request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusServiceUnavailable {
		return nil, fmt.Errorf("no snapshot published yet")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("snapshot returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Roster fetches the party summary with names resolved.
func (c *Client) Roster() ([]RosterEntry, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/api/roster")
	if err != nil {
		return nil, fmt.Errorf("roster request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("roster returned status %d", resp.StatusCode)
	}
	var entries []RosterEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding roster: %w", err)
	}
	return entries, nil
}

// Status fetches the server status document.
func (c *Client) Status() (map[string]any, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/api/status")
	if err != nil {
		return nil, fmt.Errorf("status request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status returned status %d", resp.StatusCode)
	}
	var status map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("decoding status: %w", err)
	}
	return status, nil
}
