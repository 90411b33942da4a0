package scores

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultResendEndpoint = "https://api.resend.com/emails"
	notifyFrom            = "Italian Grammar <notifications@scoreboard.netrunner.run>"
	notifySubject         = "Your Score Has Been Beaten!"
)

// Notification is the payload for a score-beaten e-mail.
type Notification struct {
	Email       string `json:"email"`
	Username    string `json:"username"`
	Score       int    `json:"score"`
	NewUsername string `json:"newUsername"`
	NewScore    int    `json:"newScore"`
}

// Valid reports whether all required fields are present.
func (n Notification) Valid() bool {
	return n.Email != "" && n.Username != "" && n.NewUsername != "" && n.Score != 0 && n.NewScore != 0
}

// Notifier sends score-beaten e-mails through a Resend-compatible HTTP API.
// Failures are for the caller to log; they are never retried and never
// block score submission.
type Notifier struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewNotifier builds a notifier for the given API key. An empty endpoint
// selects the Resend production API.
func NewNotifier(apiKey, endpoint string) *Notifier {
	if endpoint == "" {
		endpoint = defaultResendEndpoint
	}
	return &Notifier{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Enabled reports whether an API key is configured.
func (n *Notifier) Enabled() bool {
	return n != nil && n.apiKey != ""
}

type emailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send delivers the notification e-mail.
func (n *Notifier) Send(ctx context.Context, note Notification) error {
	if !n.Enabled() {
		return fmt.Errorf("notifier is not configured")
	}
	body, err := json.Marshal(emailRequest{
		From:    notifyFrom,
		To:      []string{note.Email},
		Subject: notifySubject,
		HTML:    notificationHTML(note),
	})
	if err != nil {
		return fmt.Errorf("failed to encode email: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected email API status: %s", resp.Status)
	}
	return nil
}

func notificationHTML(note Notification) string {
	return fmt.Sprintf(`<h1>Your Score Has Been Beaten!</h1>
<p>Hi %s,</p>
<p>Your score of %d has been beaten by %s with a score of %d!</p>
<p>Come back and practice more to reclaim your position on the leaderboard!</p>
<br/>
<p>Best regards,</p>
<p>Italian Grammar Practice</p>`,
		note.Username, note.Score, note.NewUsername, note.NewScore)
}
