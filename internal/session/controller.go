// Package session owns practice session state and sequencing.
package session

import (
	"sort"
	"time"

	"github.com/netrunner-run/coniuga/internal/deck"
	"github.com/netrunner-run/coniuga/internal/storage"
	"github.com/netrunner-run/coniuga/internal/textdiff"
	"github.com/netrunner-run/coniuga/internal/verbs"
)

// State is the controller's card-level state.
type State int

// Controller states.
const (
	// Typing: input enabled, no feedback shown.
	Typing State = iota
	// Checked: feedback for a checked answer is shown.
	Checked
	// Revealed: the answer is shown and a self-report is pending.
	Revealed
	// Complete: every card in the selection has been mastered.
	Complete
)

// AdvanceDelay is how long a revealed card stays on screen after a
// self-report before auto-advancing.
const AdvanceDelay = time.Second

// Controller sequences a practice session. All mutation goes through its
// methods; there is no concurrent access, the UI event loop serializes
// calls. Persistence is best effort and never surfaces to the user.
type Controller struct {
	verbSet  []verbs.Verb
	gen      *deck.Generator
	settings *storage.Settings

	selected []string
	cards    []deck.Card
	index    int
	mastered map[string]bool

	score    int
	attempts int

	state          State
	result         textdiff.Result
	lastInput      string
	lastCard       deck.Card
	removedCurrent bool
	advanceGen     int

	showTranslation  bool
	showConjugations bool
}

// New builds a controller over the verb table, restoring persisted
// selection, progress and display toggles. With no persisted selection,
// every verb starts selected.
func New(verbSet []verbs.Verb, gen *deck.Generator, settings *storage.Settings) *Controller {
	c := &Controller{
		verbSet:  verbSet,
		gen:      gen,
		settings: settings,
		mastered: map[string]bool{},
	}

	c.selected = settings.SelectedVerbs()
	if len(c.selected) == 0 {
		c.selected = make([]string, len(verbSet))
		for i, v := range verbSet {
			c.selected[i] = v.Infinitive
		}
	}

	progress := settings.Progress()
	c.score = progress.TotalScore
	c.attempts = progress.TotalAttempts
	for _, key := range progress.AnsweredCorrectly {
		c.mastered[key] = true
	}
	c.showConjugations = settings.UIPrefs().ShowConjugations

	c.rebuild()
	return c
}

// State returns the current card-level state.
func (c *Controller) State() State { return c.state }

// Result returns the classification of the last checked answer. Only
// meaningful in the Checked state.
func (c *Controller) Result() textdiff.Result { return c.result }

// LastInput returns the answer that produced the current feedback.
func (c *Controller) LastInput() string { return c.lastInput }

// CheckedCard returns the card the current feedback refers to. A mastered
// card leaves the deck at check time, so the feedback view cannot rely on
// Current.
func (c *Controller) CheckedCard() deck.Card { return c.lastCard }

// Score returns the number of correct answers this session history.
func (c *Controller) Score() int { return c.score }

// Attempts returns the total number of graded attempts.
func (c *Controller) Attempts() int { return c.attempts }

// Accuracy returns the rounded percentage of correct attempts.
func (c *Controller) Accuracy() int {
	if c.attempts == 0 {
		return 0
	}
	return int(float64(c.score)/float64(c.attempts)*100 + 0.5)
}

// Deck returns the active cards.
func (c *Controller) Deck() []deck.Card { return c.cards }

// Index returns the position of the current card within the deck.
func (c *Controller) Index() int { return c.index }

// Current returns the card being practiced, if any.
func (c *Controller) Current() (deck.Card, bool) {
	if len(c.cards) == 0 || c.index >= len(c.cards) {
		return deck.Card{}, false
	}
	return c.cards[c.index], true
}

// Selected returns the selected infinitives in verb-table order.
func (c *Controller) Selected() []string { return c.selected }

// IsSelected reports whether an infinitive is part of the selection.
func (c *Controller) IsSelected(infinitive string) bool {
	for _, s := range c.selected {
		if s == infinitive {
			return true
		}
	}
	return false
}

// ShowTranslation reports the per-card translation toggle.
func (c *Controller) ShowTranslation() bool { return c.showTranslation }

// ShowConjugations reports the conjugation panel toggle.
func (c *Controller) ShowConjugations() bool { return c.showConjugations }

// ToggleTranslation flips translation visibility for the current card.
func (c *Controller) ToggleTranslation() {
	c.showTranslation = !c.showTranslation
	c.savePrefs()
}

// ToggleConjugations flips the conjugation panel.
func (c *Controller) ToggleConjugations() {
	c.showConjugations = !c.showConjugations
	c.savePrefs()
}

// Check grades the typed answer against the current card. Only valid while
// typing; a no-op on an empty deck. A verified correct answer masters the
// card and removes it from the deck immediately.
func (c *Controller) Check(input string) {
	card, ok := c.Current()
	if c.state != Typing || !ok {
		return
	}
	c.attempts++
	c.lastInput = input
	c.lastCard = card
	c.result = textdiff.Evaluate(input, card.Answer)
	c.state = Checked

	if c.result == textdiff.Correct {
		c.score++
		c.mastered[card.Key()] = true
		c.removeMastered()
		c.removedCurrent = true
	}
	c.saveProgress()
}

// Reveal shows the answer and asks for a self-report. Only valid while
// typing; a no-op on an empty deck.
func (c *Controller) Reveal() {
	if c.state != Typing {
		return
	}
	if _, ok := c.Current(); !ok {
		return
	}
	c.state = Revealed
}

// SelfReport records a Pass/Fail after a reveal and schedules the advance
// to the next card. Unlike a verified correct answer, a self-reported pass
// does not master the card. The returned generation must be handed back to
// AdvanceDue when the caller's timer fires; stale generations are ignored
// so a rescheduled timer can never double-advance.
func (c *Controller) SelfReport(knewIt bool) (generation int, ok bool) {
	if c.state != Revealed {
		return 0, false
	}
	c.attempts++
	if knewIt {
		c.score++
	}
	c.saveProgress()
	c.advanceGen++
	return c.advanceGen, true
}

// AdvanceDue advances to the next card when a self-report timer fires.
// Only the most recently scheduled generation wins.
func (c *Controller) AdvanceDue(generation int) bool {
	if c.state != Revealed || generation != c.advanceGen {
		return false
	}
	c.Next()
	return true
}

// Next advances to the next card, wrapping to the start. A deck emptied by
// mastery moves to the terminal Complete state instead of wrapping.
// Per-card UI state (input, feedback, translation visibility) is cleared.
func (c *Controller) Next() {
	if c.state != Checked && c.state != Revealed {
		return
	}
	if len(c.cards) == 0 {
		c.state = Complete
		c.resetCard()
		return
	}
	if c.removedCurrent {
		// Removal already shifted the deck under the index; clamp instead
		// of skipping a card.
		if c.index >= len(c.cards) {
			c.index = 0
		}
	} else {
		c.index++
		if c.index >= len(c.cards) {
			c.index = 0
		}
	}
	c.state = Typing
	c.resetCard()
}

// ToggleVerb adds or removes a verb from the selection and regenerates the
// deck from the start.
func (c *Controller) ToggleVerb(infinitive string) {
	if c.IsSelected(infinitive) {
		kept := make([]string, 0, len(c.selected))
		for _, s := range c.selected {
			if s != infinitive {
				kept = append(kept, s)
			}
		}
		c.selected = kept
	} else {
		c.selected = append(c.selected, infinitive)
		c.sortSelection()
	}
	c.applySelection()
}

// SelectAll selects every verb in the table.
func (c *Controller) SelectAll() {
	c.selected = make([]string, len(c.verbSet))
	for i, v := range c.verbSet {
		c.selected[i] = v.Infinitive
	}
	c.applySelection()
}

// DeselectAll clears the selection; the deck falls back to the curated
// cards.
func (c *Controller) DeselectAll() {
	c.selected = nil
	c.applySelection()
}

// ResetProgress clears mastered pairs and counters and regenerates the
// deck for the current selection.
func (c *Controller) ResetProgress() {
	c.mastered = map[string]bool{}
	c.score = 0
	c.attempts = 0
	if err := c.settings.ResetProgress(); err != nil {
		// Persistence is best effort.
		_ = err
	}
	c.rebuild()
}

func (c *Controller) applySelection() {
	if err := c.settings.SaveSelectedVerbs(c.selected); err != nil {
		// Persistence is best effort.
		_ = err
	}
	c.rebuild()
}

// rebuild regenerates the deck and resets position and card state.
func (c *Controller) rebuild() {
	c.cards = c.gen.Build(c.verbSet, c.selected, c.mastered)
	c.index = 0
	c.resetCard()
	if len(c.cards) == 0 {
		c.state = Complete
	} else {
		c.state = Typing
	}
}

// removeMastered drops every mastered card from the deck, keeping the
// index pointed at the card that follows the removed one.
func (c *Controller) removeMastered() {
	kept := c.cards[:0]
	newIndex := c.index
	for i, card := range c.cards {
		if c.mastered[card.Key()] {
			if i < c.index {
				newIndex--
			}
			continue
		}
		kept = append(kept, card)
	}
	c.cards = kept
	if newIndex < 0 {
		newIndex = 0
	}
	c.index = newIndex
}

func (c *Controller) resetCard() {
	c.lastInput = ""
	c.result = textdiff.Incorrect
	c.removedCurrent = false
	c.showTranslation = false
}

func (c *Controller) saveProgress() {
	keys := make([]string, 0, len(c.mastered))
	for key := range c.mastered {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	err := c.settings.SaveProgress(storage.Progress{
		TotalScore:        c.score,
		TotalAttempts:     c.attempts,
		AnsweredCorrectly: keys,
	})
	if err != nil {
		// Persistence is best effort.
		_ = err
	}
}

func (c *Controller) savePrefs() {
	err := c.settings.SaveUIPrefs(storage.UIPrefs{
		ShowTranslation:  c.showTranslation,
		ShowConjugations: c.showConjugations,
	})
	if err != nil {
		// Persistence is best effort.
		_ = err
	}
}

func (c *Controller) sortSelection() {
	order := make(map[string]int, len(c.verbSet))
	for i, v := range c.verbSet {
		order[v.Infinitive] = i
	}
	sort.SliceStable(c.selected, func(i, j int) bool {
		return order[c.selected[i]] < order[c.selected[j]]
	})
}
