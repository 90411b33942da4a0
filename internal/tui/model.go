// Package tui provides the Bubble Tea practice interface.
package tui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/netrunner-run/coniuga/internal/session"
	"github.com/netrunner-run/coniuga/internal/verbs"
)

type screen int

const (
	screenPractice screen = iota
	screenPicker
)

// advanceMsg fires the auto-advance after a self-report. The generation is
// checked by the controller so a stale timer never advances twice.
type advanceMsg struct {
	generation int
}

// Model implements the Bubble Tea practice UI.
type Model struct {
	controller *session.Controller
	verbSet    []verbs.Verb
	input      textinput.Model

	screen      screen
	cursor      int
	pickerVerbs []verbs.Verb

	rnd      *rand.Rand
	hintKey  string
	hintVerb verbs.Verb
	hasHint  bool

	width  int
	height int
}

var (
	titleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	sentenceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	blankStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Underline(true)
	translationSty  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Italic(true)
	correctStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	almostStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	incorrectStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	diffOKStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	diffBadStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	diffExtraStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Strikethrough(true)
	panelStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	selectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	unselectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cursorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

// NewModel constructs a practice TUI model.
func NewModel(controller *session.Controller, verbSet []verbs.Verb) *Model {
	input := textinput.New()
	input.Placeholder = "type the missing form"
	input.CharLimit = 40
	input.Width = 28
	input.Focus()
	return &Model{
		controller: controller,
		verbSet:    verbSet,
		input:      input,
		rnd:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case advanceMsg:
		if m.controller.AdvanceDue(msg.generation) {
			m.refocus()
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.screen == screenPicker {
			return m.updatePicker(msg)
		}
		return m.updatePractice(msg)
	default:
		return m, nil
	}
}

func (m *Model) updatePractice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.controller.State() {
	case session.Typing:
		return m.updateTyping(msg)
	case session.Checked:
		return m.updateChecked(msg)
	case session.Revealed:
		return m.updateRevealed(msg)
	default:
		return m.updateComplete(msg)
	}
}

func (m *Model) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if m.input.Value() != "" {
			m.controller.Check(m.input.Value())
			m.input.Blur()
		}
		return m, nil
	case tea.KeyTab:
		m.controller.Reveal()
		m.input.Blur()
		return m, nil
	case tea.KeyCtrlT:
		m.controller.ToggleTranslation()
		return m, nil
	case tea.KeyCtrlN:
		m.controller.ToggleConjugations()
		return m, nil
	case tea.KeyCtrlV:
		m.openPicker()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateChecked(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEnter, msg.String() == "n":
		m.nextCard()
	case msg.String() == "t":
		m.controller.ToggleTranslation()
	case msg.String() == "c":
		m.controller.ToggleConjugations()
	case msg.String() == "v":
		m.openPicker()
	case msg.String() == "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updateRevealed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		return m, m.selfReport(true)
	case "n":
		return m, m.selfReport(false)
	case "t":
		m.controller.ToggleTranslation()
	case "c":
		m.controller.ToggleConjugations()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updateComplete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		m.controller.ResetProgress()
		m.refocus()
	case "v":
		m.openPicker()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.pickerVerbs)-1 {
			m.cursor++
		}
	case " ", "enter":
		m.controller.ToggleVerb(m.pickerVerbs[m.cursor].Infinitive)
	case "a":
		m.controller.SelectAll()
	case "d":
		m.controller.DeselectAll()
	case "esc", "v":
		m.screen = screenPractice
		m.refocus()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

// openPicker flattens the verb table in class order so the cursor and the
// rendered list agree on positions.
func (m *Model) openPicker() {
	m.pickerVerbs = m.pickerVerbs[:0]
	byClass := verbs.ByClass(m.verbSet)
	for _, class := range verbs.Classes {
		m.pickerVerbs = append(m.pickerVerbs, byClass[class]...)
	}
	m.screen = screenPicker
	m.cursor = 0
	m.input.Blur()
}

// selfReport records the pass/fail and schedules the auto-advance.
func (m *Model) selfReport(knewIt bool) tea.Cmd {
	generation, ok := m.controller.SelfReport(knewIt)
	if !ok {
		return nil
	}
	return tea.Tick(session.AdvanceDelay, func(time.Time) tea.Msg {
		return advanceMsg{generation: generation}
	})
}

func (m *Model) nextCard() {
	m.controller.Next()
	m.refocus()
}

// refocus resets the input for a fresh card.
func (m *Model) refocus() {
	m.input.Reset()
	if m.controller.State() == session.Typing {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// exampleFor returns a regular same-class verb to show next to current when
// current is irregular. The pick is cached per verb so the panel is stable
// across frames.
func (m *Model) exampleFor(current verbs.Verb) (verbs.Verb, bool) {
	if m.hintKey == current.Infinitive {
		return m.hintVerb, m.hasHint
	}
	m.hintKey = current.Infinitive
	m.hintVerb, m.hasHint = verbs.Verb{}, false
	if isRegular(current) {
		return m.hintVerb, false
	}
	regular := make([]verbs.Verb, 0, len(m.verbSet))
	for _, v := range m.verbSet {
		if isRegular(v) {
			regular = append(regular, v)
		}
	}
	m.hintVerb, m.hasHint = verbs.Hint(m.rnd, regular, current)
	return m.hintVerb, m.hasHint
}

// isRegular reports whether a verb's forms match its class pattern exactly.
func isRegular(v verbs.Verb) bool {
	stem := verbs.Stem(v.Infinitive)
	pattern := verbs.Pattern(v.Class)
	for _, p := range verbs.Persons {
		if v.Conjugations[p] != stem+pattern[p] {
			return false
		}
	}
	return true
}
