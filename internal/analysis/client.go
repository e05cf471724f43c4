// Package analysis is the client for the remote analysis service, the
// upstream that generates smart-analysis summaries for journalists. This
// service never runs the NLP itself; it only consumes the summary text and
// the metadata returned next to it.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client communicates with the analysis service HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	// Stats tracks upstream call latency and outcomes for the stats endpoint.
	Stats *Stats
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		Stats: NewStats(time.Hour),
	}
}

// Summary is the analysis service's payload for one journalist.
type Summary struct {
	Summary          string    `json:"summary"`
	Model            string    `json:"model"`
	CredibilityScore float64   `json:"credibility_score"`
	GeneratedAt      time.Time `json:"generated_at"`
}

// ErrNoAnalysis reports that the service has no analysis for a journalist.
type ErrNoAnalysis struct {
	JournalistID string
}

func (e *ErrNoAnalysis) Error() string {
	return fmt.Sprintf("no analysis available for journalist %s", e.JournalistID)
}

// RetryableError indicates a transient upstream failure worth retrying.
type RetryableError struct {
	StatusCode int
	Message    string
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable error (status %d): %s", e.StatusCode, truncate(e.Message, 200))
}

// Fetch retrieves the latest smart-analysis summary for a journalist.
func (c *Client) Fetch(ctx context.Context, journalistID string) (*Summary, error) {
	u := c.baseURL + "/v1/journalists/" + url.PathEscape(journalistID) + "/analysis"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	record := func(o Outcome) {
		c.Stats.Record(time.Since(start).Milliseconds(), o)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		record(OutcomeFailed)
		return nil, fmt.Errorf("analysis api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		record(OutcomeFailed)
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		record(OutcomeRetryable)
		return nil, &RetryableError{StatusCode: resp.StatusCode, Message: string(body)}
	}
	if resp.StatusCode == http.StatusNotFound {
		record(OutcomeFailed)
		return nil, &ErrNoAnalysis{JournalistID: journalistID}
	}
	if resp.StatusCode != http.StatusOK {
		record(OutcomeFailed)
		return nil, fmt.Errorf("analysis api status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var s Summary
	if err := json.Unmarshal(body, &s); err != nil {
		record(OutcomeFailed)
		return nil, fmt.Errorf("decode summary: %w", err)
	}
	if strings.TrimSpace(s.Summary) == "" {
		record(OutcomeFailed)
		return nil, fmt.Errorf("analysis for journalist %s has an empty summary", journalistID)
	}
	record(OutcomeOK)
	return &s, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Close releases resources.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
