package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/netrunner-run/coniuga/internal/session"
	"github.com/netrunner-run/coniuga/internal/textdiff"
	"github.com/netrunner-run/coniuga/internal/verbs"
)

const blankMarker = "______"

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	if m.screen == screenPicker {
		content = m.renderPicker()
	} else {
		content = m.renderPractice()
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 20 {
		contentWidth = m.width
	}
	body := lipgloss.NewStyle().Width(contentWidth).Render(content)
	footer := footerStyle.Render(m.renderFooter())
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	bodyHeight := m.height - 1
	placed := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return placed + "\n" + footerLine
}

func (m *Model) renderPractice() string {
	lines := []string{titleStyle.Render("Italian Grammar Practice"), ""}

	switch m.controller.State() {
	case session.Complete:
		lines = append(lines,
			correctStyle.Render("Tutto fatto!"),
			"",
			panelStyle.Render("Every selected card has been answered correctly."),
			panelStyle.Render("Press r to reset progress or v to pick other verbs."),
		)
		return strings.Join(lines, "\n")
	case session.Checked:
		lines = append(lines, m.renderChecked()...)
	case session.Revealed:
		lines = append(lines, m.renderRevealed()...)
	default:
		lines = append(lines, m.renderTyping()...)
	}

	if m.controller.ShowConjugations() {
		lines = append(lines, "", m.renderConjugations())
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderTyping() []string {
	card, ok := m.controller.Current()
	if !ok {
		return nil
	}
	sentence := strings.Replace(card.Sentence, blankMarker, blankStyle.Render(blankMarker), 1)
	lines := []string{sentenceStyle.Render(sentence)}
	if m.controller.ShowTranslation() && card.Translation != "" {
		lines = append(lines, translationSty.Render(card.Translation))
	}
	lines = append(lines, "", m.input.View())
	return lines
}

func (m *Model) renderChecked() []string {
	card := m.controller.CheckedCard()
	var lines []string
	switch m.controller.Result() {
	case textdiff.Correct:
		answer := correctStyle.Render(card.Answer)
		lines = append(lines,
			sentenceStyle.Render(strings.Replace(card.Sentence, blankMarker, answer, 1)),
			"",
			correctStyle.Render("Corretto!"),
		)
	case textdiff.Almost:
		lines = append(lines,
			sentenceStyle.Render(strings.Replace(card.Sentence, blankMarker, blankStyle.Render(card.Answer), 1)),
			"",
			almostStyle.Render("Almost! Check the highlighted letters:"),
			renderDiff(textdiff.Diff(m.controller.LastInput(), card.Answer)),
		)
	default:
		lines = append(lines,
			sentenceStyle.Render(strings.Replace(card.Sentence, blankMarker, blankStyle.Render(card.Answer), 1)),
			"",
			incorrectStyle.Render("Not quite."),
			renderDiff(textdiff.Diff(m.controller.LastInput(), card.Answer)),
		)
	}
	if m.controller.ShowTranslation() && card.Translation != "" {
		lines = append(lines, translationSty.Render(card.Translation))
	}
	lines = append(lines, "", panelStyle.Render("enter next card"))
	return lines
}

func (m *Model) renderRevealed() []string {
	card, ok := m.controller.Current()
	if !ok {
		return nil
	}
	answer := almostStyle.Render(card.Answer)
	lines := []string{
		sentenceStyle.Render(strings.Replace(card.Sentence, blankMarker, answer, 1)),
	}
	if m.controller.ShowTranslation() && card.Translation != "" {
		lines = append(lines, translationSty.Render(card.Translation))
	}
	lines = append(lines, "", panelStyle.Render("Did you know it? y yes, n no"))
	return lines
}

// renderDiff paints the typed answer against the expected one. Wrong and
// missing positions show the expected letter, extra typed letters are
// struck through.
func renderDiff(segments []textdiff.Segment) string {
	var b strings.Builder
	b.WriteString(panelStyle.Render("you typed: "))
	for _, seg := range segments {
		switch seg.Op {
		case textdiff.OK:
			b.WriteString(diffOKStyle.Render(seg.Text))
		case textdiff.Wrong, textdiff.Missing:
			b.WriteString(diffBadStyle.Render(seg.Text))
		default:
			b.WriteString(diffExtraStyle.Render(seg.Text))
		}
	}
	return b.String()
}

func (m *Model) renderConjugations() string {
	card, ok := m.controller.Current()
	if !ok {
		card = m.controller.CheckedCard()
	}
	verb, found := verbs.Find(m.verbSet, card.Verb)
	if !found || len(verb.Conjugations) == 0 {
		verb = verbs.Conjugate(card.Verb)
	}
	rows := make([]string, 0, len(verbs.Persons)+1)
	rows = append(rows, panelStyle.Render(verb.Infinitive+" ("+verb.Meaning+")"))
	for _, p := range verbs.Persons {
		rows = append(rows, panelStyle.Render(fmt.Sprintf("  %-5s %s", string(p), verb.Conjugations[p])))
	}
	if example, ok := m.exampleFor(verb); ok {
		rows = append(rows, "", panelStyle.Render("compare with regular "+example.Infinitive+" ("+example.Meaning+")"))
		for _, p := range verbs.Persons {
			rows = append(rows, panelStyle.Render(fmt.Sprintf("  %-5s %s", string(p), example.Conjugations[p])))
		}
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderPicker() string {
	lines := []string{titleStyle.Render("Choose verbs to practice"), ""}
	position := 0
	var lastClass verbs.Class
	for _, v := range m.pickerVerbs {
		if v.Class != lastClass {
			if lastClass != "" {
				lines = append(lines, "")
			}
			lines = append(lines, panelStyle.Render(v.Class.Description()))
			lastClass = v.Class
		}
		mark := "[ ]"
		style := unselectedStyle
		if m.controller.IsSelected(v.Infinitive) {
			mark = "[x]"
			style = selectedStyle
		}
		pointer := "  "
		if position == m.cursor {
			pointer = cursorStyle.Render("> ")
			style = cursorStyle
		}
		lines = append(lines, pointer+style.Render(fmt.Sprintf("%s %s (%s)", mark, v.Infinitive, v.Meaning)))
		position++
	}
	lines = append(lines, "", panelStyle.Render("space toggle, a all, d none, esc back"))
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	if m.screen == screenPicker {
		return fmt.Sprintf("%d of %d verbs selected", len(m.controller.Selected()), len(m.verbSet))
	}
	if m.controller.State() == session.Complete {
		return fmt.Sprintf("score %d · accuracy %d%%", m.controller.Score(), m.controller.Accuracy())
	}
	position := m.controller.Index() + 1
	total := len(m.controller.Deck())
	segments := []string{
		fmt.Sprintf("card %d/%d", position, total),
		fmt.Sprintf("score %d", m.controller.Score()),
		fmt.Sprintf("accuracy %d%%", m.controller.Accuracy()),
	}
	if m.controller.State() == session.Typing {
		segments = append(segments, "tab reveal", "ctrl+v verbs")
	}
	return strings.Join(segments, " · ")
}
