package scores

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client talks to a remote leaderboard server.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient builds a leaderboard client for baseURL, e.g.
// "https://scoreboard.netrunner.run".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// ListTop fetches the current top scores.
func (c *Client) ListTop(ctx context.Context) ([]Score, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/scores", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected leaderboard status: %s", resp.Status)
	}
	var top []Score
	if err := json.NewDecoder(resp.Body).Decode(&top); err != nil {
		return nil, fmt.Errorf("failed to decode scores: %w", err)
	}
	return top, nil
}

// Submit posts a new score.
func (c *Client) Submit(ctx context.Context, submission NewScore) error {
	if err := submission.Validate(); err != nil {
		return err
	}
	body, err := json.Marshal(submission)
	if err != nil {
		return fmt.Errorf("failed to encode score: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/scores", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
			return fmt.Errorf("score rejected: %s", payload.Error)
		}
		return fmt.Errorf("unexpected leaderboard status: %s", resp.Status)
	}
	return nil
}
