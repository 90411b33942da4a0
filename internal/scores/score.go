// Package scores implements the shared leaderboard: storage, the HTTP API,
// its client, and the score-beaten e-mail notification.
package scores

import (
	"errors"
	"fmt"
	"strings"
)

// Score is one leaderboard entry.
type Score struct {
	ID            int64  `db:"id" json:"id"`
	Username      string `db:"username" json:"username"`
	Email         string `db:"email" json:"email,omitempty"`
	Score         int    `db:"score" json:"score"`
	Accuracy      int    `db:"accuracy" json:"accuracy"`
	VerbType      string `db:"verb_type" json:"verb_type"`
	TotalAttempts int    `db:"total_attempts" json:"total_attempts"`
	CreatedAt     string `db:"created_at" json:"created_at"`
}

// NewScore is a submission. Email is optional; leaving one opts in to the
// score-beaten notification.
type NewScore struct {
	Username      string `json:"username"`
	Email         string `json:"email,omitempty"`
	Score         int    `json:"score"`
	Accuracy      int    `json:"accuracy"`
	VerbType      string `json:"verb_type"`
	TotalAttempts int    `json:"total_attempts"`
}

// ErrValidation marks a rejected submission. The operation aborts with no
// partial state change.
var ErrValidation = errors.New("invalid score data")

// Validate checks the required submission fields.
func (n NewScore) Validate() error {
	if strings.TrimSpace(n.Username) == "" {
		return fmt.Errorf("%w: username is required", ErrValidation)
	}
	if n.Score < 0 {
		return fmt.Errorf("%w: score must not be negative", ErrValidation)
	}
	if n.Accuracy < 0 || n.Accuracy > 100 {
		return fmt.Errorf("%w: accuracy must be a percentage", ErrValidation)
	}
	if n.TotalAttempts < 0 {
		return fmt.Errorf("%w: total attempts must not be negative", ErrValidation)
	}
	return nil
}
