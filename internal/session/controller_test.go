package session

import (
	"math/rand"
	"testing"

	"github.com/netrunner-run/coniuga/internal/deck"
	"github.com/netrunner-run/coniuga/internal/storage"
	"github.com/netrunner-run/coniuga/internal/textdiff"
	"github.com/netrunner-run/coniuga/internal/verbs"
)

func newController(t *testing.T, selected ...string) *Controller {
	t.Helper()
	settings := storage.NewSettings(storage.NewMemory())
	if len(selected) > 0 {
		if err := settings.SaveSelectedVerbs(selected); err != nil {
			t.Fatalf("failed to seed selection: %v", err)
		}
	}
	gen := deck.NewWithRand(rand.New(rand.NewSource(7)))
	return New(verbs.All(), gen, settings)
}

func currentCard(t *testing.T, c *Controller) deck.Card {
	t.Helper()
	card, ok := c.Current()
	if !ok {
		t.Fatalf("expected a current card")
	}
	return card
}

func TestNewSelectsAllVerbsByDefault(t *testing.T) {
	c := newController(t)
	if len(c.Selected()) != len(verbs.All()) {
		t.Fatalf("expected all verbs selected, got %d", len(c.Selected()))
	}
	if c.State() != Typing {
		t.Fatalf("expected Typing, got %d", c.State())
	}
}

func TestCheckCorrectMastersAndRemoves(t *testing.T) {
	c := newController(t, "mangiare")
	if len(c.Deck()) != 6 {
		t.Fatalf("expected 6 cards, got %d", len(c.Deck()))
	}
	card := currentCard(t, c)
	c.Check(card.Answer)
	if c.State() != Checked || c.Result() != textdiff.Correct {
		t.Fatalf("expected Checked/Correct, got %d/%d", c.State(), c.Result())
	}
	if c.Score() != 1 || c.Attempts() != 1 {
		t.Fatalf("expected 1/1, got %d/%d", c.Score(), c.Attempts())
	}
	if len(c.Deck()) != 5 {
		t.Fatalf("expected mastered card removed, deck has %d", len(c.Deck()))
	}
	for _, remaining := range c.Deck() {
		if remaining.Key() == card.Key() {
			t.Fatalf("mastered card still in deck")
		}
	}
}

func TestMasteredPairNeverReturnsUntilReset(t *testing.T) {
	c := newController(t, "mangiare")
	card := currentCard(t, c)
	c.Check(card.Answer)
	c.Next()

	// Regeneration via selection changes must not resurrect the pair.
	c.SelectAll()
	c.ToggleVerb("parlare")
	for _, cd := range c.Deck() {
		if cd.Key() == card.Key() {
			t.Fatalf("mastered pair reappeared after regeneration")
		}
	}

	c.ResetProgress()
	found := false
	for _, cd := range c.Deck() {
		if cd.Key() == card.Key() {
			found = true
		}
	}
	if !found {
		t.Fatalf("pair missing after reset")
	}
	if c.Score() != 0 || c.Attempts() != 0 {
		t.Fatalf("counters not reset: %d/%d", c.Score(), c.Attempts())
	}
}

func TestCheckAlmostAndIncorrectDoNotMaster(t *testing.T) {
	c := newController(t, "mangiare")
	card := currentCard(t, c)

	c.Check(card.Answer[:len(card.Answer)-1])
	if c.Result() != textdiff.Almost {
		t.Fatalf("expected Almost, got %d", c.Result())
	}
	if len(c.Deck()) != 6 {
		t.Fatalf("almost answer removed a card")
	}
	c.Next()

	c.Check("xyzxyz")
	if c.Result() != textdiff.Incorrect {
		t.Fatalf("expected Incorrect, got %d", c.Result())
	}
	if c.Score() != 0 || c.Attempts() != 2 {
		t.Fatalf("unexpected counters %d/%d", c.Score(), c.Attempts())
	}
}

func TestCheckOnlyValidWhileTyping(t *testing.T) {
	c := newController(t, "mangiare")
	card := currentCard(t, c)
	c.Check("wrong answer")
	attempts := c.Attempts()
	c.Check(card.Answer)
	if c.Attempts() != attempts {
		t.Fatalf("check in Checked state graded an attempt")
	}
}

func TestRevealAndSelfReport(t *testing.T) {
	c := newController(t, "mangiare")
	card := currentCard(t, c)
	c.Reveal()
	if c.State() != Revealed {
		t.Fatalf("expected Revealed, got %d", c.State())
	}
	gen, ok := c.SelfReport(true)
	if !ok {
		t.Fatalf("self-report rejected")
	}
	if c.Score() != 1 || c.Attempts() != 1 {
		t.Fatalf("expected 1/1, got %d/%d", c.Score(), c.Attempts())
	}
	// Self-reported knowledge does not master the card.
	if len(c.Deck()) != 6 {
		t.Fatalf("self-report removed a card")
	}
	if !c.AdvanceDue(gen) {
		t.Fatalf("scheduled advance did not fire")
	}
	if c.State() != Typing {
		t.Fatalf("expected Typing after advance, got %d", c.State())
	}
	next := currentCard(t, c)
	if next.Key() == card.Key() && len(c.Deck()) > 1 {
		t.Fatalf("advance did not move to the next card")
	}
}

func TestStaleAdvanceGenerationIgnored(t *testing.T) {
	c := newController(t, "mangiare")
	c.Reveal()
	gen1, _ := c.SelfReport(false)
	// The user reveals the next state again before the timer fires; only the
	// most recent generation may advance.
	if c.AdvanceDue(gen1 - 1) {
		t.Fatalf("stale generation advanced the session")
	}
	if !c.AdvanceDue(gen1) {
		t.Fatalf("current generation should advance")
	}
	if c.AdvanceDue(gen1) {
		t.Fatalf("generation fired twice")
	}
}

func TestSelfReportOnlyValidAfterReveal(t *testing.T) {
	c := newController(t, "mangiare")
	if _, ok := c.SelfReport(true); ok {
		t.Fatalf("self-report accepted while typing")
	}
	if c.Attempts() != 0 {
		t.Fatalf("attempts counted without reveal")
	}
}

func TestNextWrapsAround(t *testing.T) {
	c := newController(t, "mangiare")
	size := len(c.Deck())
	for i := 0; i < size; i++ {
		if c.Index() != i%size {
			t.Fatalf("unexpected index %d at step %d", c.Index(), i)
		}
		c.Check("not the answer")
		c.Next()
	}
	if c.Index() != 0 {
		t.Fatalf("expected wrap to 0, got %d", c.Index())
	}
}

func TestNextOnSingleCardDeckStaysAtZero(t *testing.T) {
	c := newController(t, "mangiare")
	// Master all but one card.
	for len(c.Deck()) > 1 {
		card := currentCard(t, c)
		c.Check(card.Answer)
		c.Next()
	}
	c.ToggleTranslation()
	c.Check("wrong")
	c.Next()
	if c.Index() != 0 {
		t.Fatalf("expected index 0, got %d", c.Index())
	}
	if c.LastInput() != "" {
		t.Fatalf("per-card input not cleared")
	}
	if c.ShowTranslation() {
		t.Fatalf("translation visibility not reset")
	}
}

func TestMasteringEveryCardCompletesDeck(t *testing.T) {
	c := newController(t, "mangiare")
	for len(c.Deck()) > 0 {
		card := currentCard(t, c)
		c.Check(card.Answer)
		c.Next()
	}
	if c.State() != Complete {
		t.Fatalf("expected Complete, got %d", c.State())
	}
	// Terminal state: check and reveal are no-ops.
	c.Check("mangio")
	c.Reveal()
	if c.State() != Complete {
		t.Fatalf("operations on a complete deck changed state")
	}
	if c.Attempts() != 6 {
		t.Fatalf("expected 6 attempts, got %d", c.Attempts())
	}
}

func TestDeselectAllFallsBackToCurated(t *testing.T) {
	c := newController(t)
	c.DeselectAll()
	if len(c.Deck()) != len(deck.Curated()) {
		t.Fatalf("expected curated fallback, got %d cards", len(c.Deck()))
	}
	if c.Index() != 0 {
		t.Fatalf("expected index reset, got %d", c.Index())
	}
}

func TestProgressPersistsAcrossControllers(t *testing.T) {
	settings := storage.NewSettings(storage.NewMemory())
	gen := deck.NewWithRand(rand.New(rand.NewSource(7)))
	if err := settings.SaveSelectedVerbs([]string{"mangiare"}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	c := New(verbs.All(), gen, settings)
	card := currentCard(t, c)
	c.Check(card.Answer)

	restored := New(verbs.All(), deck.NewWithRand(rand.New(rand.NewSource(8))), settings)
	if restored.Score() != 1 || restored.Attempts() != 1 {
		t.Fatalf("counters not restored: %d/%d", restored.Score(), restored.Attempts())
	}
	if len(restored.Deck()) != 5 {
		t.Fatalf("mastered pair not restored, deck has %d", len(restored.Deck()))
	}
}

// The end-to-end scenario: selection {mangiare}, the noi card answered with
// "mangiamo" is Correct and leaves the deck; "mangiam" beforehand is Almost.
func TestMangiareScenario(t *testing.T) {
	c := newController(t, "mangiare")
	if len(c.Deck()) != 6 {
		t.Fatalf("expected 6 cards, got %d", len(c.Deck()))
	}

	// Walk to the noi card.
	for {
		card := currentCard(t, c)
		if card.Person == verbs.Noi {
			break
		}
		c.Check("wrong")
		c.Next()
	}

	c.Check("mangiam")
	if c.Result() != textdiff.Almost {
		t.Fatalf("expected Almost for mangiam, got %d", c.Result())
	}
	c.Next()

	for {
		card := currentCard(t, c)
		if card.Person == verbs.Noi {
			break
		}
		c.Check("wrong")
		c.Next()
	}

	before := c.Score()
	c.Check("mangiamo")
	if c.Result() != textdiff.Correct {
		t.Fatalf("expected Correct for mangiamo, got %d", c.Result())
	}
	if c.Score() != before+1 {
		t.Fatalf("score not incremented")
	}
	if len(c.Deck()) != 5 {
		t.Fatalf("expected 5 cards remaining, got %d", len(c.Deck()))
	}
}

func TestAccuracyRounds(t *testing.T) {
	c := newController(t, "mangiare")
	card := currentCard(t, c)
	c.Check(card.Answer)
	c.Next()
	c.Check("wrong")
	c.Next()
	c.Check("wrong")
	if got := c.Accuracy(); got != 33 {
		t.Fatalf("expected 33%%, got %d%%", got)
	}
}
