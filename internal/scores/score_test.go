package scores

import (
	"errors"
	"testing"
)

func TestValidateAcceptsMinimalSubmission(t *testing.T) {
	n := NewScore{Username: "anna", Score: 4, Accuracy: 80, VerbType: "all", TotalAttempts: 5}
	if err := n.Validate(); err != nil {
		t.Fatalf("expected valid submission, got %v", err)
	}
}

func TestValidateRejectsBadSubmissions(t *testing.T) {
	cases := []struct {
		name string
		sub  NewScore
	}{
		{"empty username", NewScore{Username: "", Score: 1}},
		{"blank username", NewScore{Username: "   ", Score: 1}},
		{"negative score", NewScore{Username: "anna", Score: -1}},
		{"accuracy above 100", NewScore{Username: "anna", Score: 1, Accuracy: 101}},
		{"negative accuracy", NewScore{Username: "anna", Score: 1, Accuracy: -1}},
		{"negative attempts", NewScore{Username: "anna", Score: 1, TotalAttempts: -2}},
	}
	for _, tc := range cases {
		err := tc.sub.Validate()
		if err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("%s: expected ErrValidation, got %v", tc.name, err)
		}
	}
}

func TestNotificationValid(t *testing.T) {
	note := Notification{Email: "anna@example.com", Username: "anna", Score: 3, NewUsername: "marco", NewScore: 5}
	if !note.Valid() {
		t.Fatalf("expected complete notification to be valid")
	}
	missing := note
	missing.Email = ""
	if missing.Valid() {
		t.Fatalf("expected notification without e-mail to be invalid")
	}
}
