// jooble/client.go

// Package jooble is the job-source connector: it fetches postings from the
// Jooble search API and adapts the provider's response shape into the
// canonical posting structure the scoring package consumes. Fetching and
// shape normalization live here so the scorer never sees provider-specific
// fields.
package jooble

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/skillplot/skillplot/match"
)

////////////////////////////////////////////////////////////////////////
// Connector Contract
////////////////////////////////////////////////////////////////////////

// Searcher is the public contract for the job-source connector. The API
// layer depends on this interface so tests can substitute a stub instead of
// calling the real provider.
type Searcher interface {
	// Search fetches postings for the given query and returns them in the
	// canonical shape, ready for scoring.
	Search(ctx context.Context, req SearchRequest) ([]match.JobPosting, error)
}

// SearchRequest mirrors the Jooble search payload.
type SearchRequest struct {
	Keywords string `json:"keywords"`
	Location string `json:"location,omitempty"`
	Page     int    `json:"page,omitempty"`
}

////////////////////////////////////////////////////////////////////////
// HTTP Client
////////////////////////////////////////////////////////////////////////

// Client talks to the Jooble REST API. The API key is part of the request
// URL, per the provider's scheme: POST <apiURL>/<apiKey>.
type Client struct {
	apiURL string
	apiKey string
	client *http.Client
}

// NewClient builds a Jooble client. Pass a custom *http.Client to control
// timeouts or to point tests at a local server.
func NewClient(apiURL, apiKey string, client *http.Client) *Client {
	return &Client{
		apiURL: apiURL,
		apiKey: apiKey,
		client: client,
	}
}

// searchResponse is the provider's envelope. Only the fields we consume are
// mapped.
type searchResponse struct {
	TotalCount int           `json:"totalCount"`
	Jobs       []providerJob `json:"jobs"`
}

// Search POSTs the query to the provider and adapts each returned posting.
func (c *Client) Search(ctx context.Context, req SearchRequest) ([]match.JobPosting, error) {
	bodyBytes, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", c.apiURL, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("jooble request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("jooble API returned non-200 status %s: %s", resp.Status, string(body))
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode jooble response: %w", err)
	}

	postings := make([]match.JobPosting, 0, len(decoded.Jobs))
	for _, job := range decoded.Jobs {
		postings = append(postings, job.canonical())
	}
	return postings, nil
}
