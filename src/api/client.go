// Package api provides a client for the legal-analysis backend's HTTP API.
// The backend's internals (LLM summarization, web search, ranking) are out of
// scope here; only the wire contract matters.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"caselight-agent/src/contracts"
)

// Client is a legal-analysis backend API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the backend at baseURL. Every request is
// bounded by timeout; the original web client had none, which left a hung
// request pending forever.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SearchWitnesses runs a witness search. A response whose candidates field is
// absent or null yields an empty, non-nil slice.
func (c *Client) SearchWitnesses(ctx context.Context, req contracts.SearchRequest) ([]contracts.Candidate, error) {
	var resp contracts.SearchResponse
	if err := c.postJSON(ctx, "/api/witness_finder/search", req, &resp); err != nil {
		return nil, err
	}
	if resp.Candidates == nil {
		return []contracts.Candidate{}, nil
	}
	return resp.Candidates, nil
}

// SaveWitness stores a candidate in the backend's saved list. The returned
// status is "ok" for a new entry or "duplicate" when the candidate was
// already present; both are success.
func (c *Client) SaveWitness(ctx context.Context, candidate contracts.Candidate) (string, error) {
	var resp contracts.SaveResponse
	if err := c.postJSON(ctx, "/api/witness_finder/save", contracts.SaveRequest{Candidate: candidate}, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

// SavedWitnesses fetches the full saved list. A non-array response is
// treated as empty.
func (c *Client) SavedWitnesses(ctx context.Context) ([]contracts.Candidate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/witness_finder/saved", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp)
	}

	var saved []contracts.Candidate
	if err := json.NewDecoder(resp.Body).Decode(&saved); err != nil {
		// Non-array payloads degrade to an empty saved list.
		return []contracts.Candidate{}, nil
	}
	if saved == nil {
		return []contracts.Candidate{}, nil
	}
	return saved, nil
}

// DeleteSaved removes a saved candidate by id. The id is path-escaped; the
// returned status is "ok" only when the backend actually removed the entry.
func (c *Client) DeleteSaved(ctx context.Context, id string) (string, error) {
	endpoint := c.baseURL + "/api/witness_finder/saved/" + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", decodeError(resp)
	}

	var deleted contracts.DeleteResponse
	if err := json.NewDecoder(resp.Body).Decode(&deleted); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return deleted.Status, nil
}

// postJSON posts body as JSON to path and decodes the 2xx response into out.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
