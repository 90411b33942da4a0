package scoresui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/netrunner-run/coniuga/internal/scores"
)

func newBoardModel(canSubmit bool) *Model {
	submission := scores.NewScore{Username: "anna", Score: 5, Accuracy: 83, VerbType: "all", TotalAttempts: 6}
	return NewModel(scores.NewClient("http://leaderboard.invalid"), submission, canSubmit)
}

func TestBoardShowsFetchedScores(t *testing.T) {
	m := newBoardModel(false)
	updated, _ := m.Update(scoresMsg{top: []scores.Score{
		{Username: "marco", Score: 9, Accuracy: 90, VerbType: "are", CreatedAt: "2026-08-30T10:00:00Z"},
		{Username: "lucia", Score: 4, Accuracy: 100, VerbType: "all", CreatedAt: "2026-08-29T10:00:00Z"},
	}})
	m = updated.(*Model)

	view := m.View()
	if !strings.Contains(view, "marco") || !strings.Contains(view, "lucia") {
		t.Fatalf("expected fetched names in view: %s", view)
	}
}

func TestBoardShowsErrorOnFetchFailure(t *testing.T) {
	m := newBoardModel(false)
	updated, _ := m.Update(scoresMsg{err: errFake("connection refused")})
	m = updated.(*Model)

	if !strings.Contains(m.View(), "Failed to load scores") {
		t.Fatalf("expected error banner")
	}
}

func TestSubmitKeyOpensFormOnlyWhenAllowed(t *testing.T) {
	m := newBoardModel(false)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	m = updated.(*Model)
	if m.formMode {
		t.Fatalf("form must not open without a submittable score")
	}

	m = newBoardModel(true)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	m = updated.(*Model)
	if !m.formMode {
		t.Fatalf("expected form to open")
	}
}

func TestFormRejectsEmptyName(t *testing.T) {
	m := newBoardModel(true)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	m = updated.(*Model)
	m.formInputs[0].SetValue("  ")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(*Model)
	if cmd != nil {
		t.Fatalf("invalid form must not produce a submit command")
	}
	if m.formError == "" {
		t.Fatalf("expected form error")
	}
}

func TestSuccessfulSubmitClosesFormAndRefreshes(t *testing.T) {
	m := newBoardModel(true)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	m = updated.(*Model)

	updated, cmd := m.Update(submitMsg{})
	m = updated.(*Model)
	if m.formMode {
		t.Fatalf("expected form to close after submit")
	}
	if m.canSubmit {
		t.Fatalf("expected submit to be one-shot")
	}
	if cmd == nil {
		t.Fatalf("expected a refresh command after submit")
	}
}

type errFake string

func (e errFake) Error() string { return string(e) }
