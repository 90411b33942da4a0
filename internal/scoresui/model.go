// Package scoresui provides the Bubble Tea leaderboard interface.
package scoresui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/netrunner-run/coniuga/internal/scores"
)

const requestTimeout = 15 * time.Second

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	headerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	noticeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

type scoresMsg struct {
	top []scores.Score
	err error
}

type submitMsg struct {
	err error
}

// Model implements the Bubble Tea leaderboard UI.
type Model struct {
	client *scores.Client

	submission scores.NewScore
	canSubmit  bool

	top    []scores.Score
	board  table.Model
	errMsg string
	notice string

	formMode   bool
	formInputs []textinput.Model
	formIndex  int
	formError  string

	width  int
	height int
}

// NewModel constructs a leaderboard UI model. The submission carries the
// local score to offer for upload; canSubmit gates the submit form.
func NewModel(client *scores.Client, submission scores.NewScore, canSubmit bool) *Model {
	m := &Model{
		client:     client,
		submission: submission,
		canSubmit:  canSubmit,
	}
	m.initForm()
	m.board = buildBoard(nil, 0, 10)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.fetchScores()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.board.SetWidth(msg.Width)
		return m, nil
	case scoresMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.top = msg.top
		m.board = buildBoard(msg.top, m.width, 10)
		return m, nil
	case submitMsg:
		m.formMode = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.notice = "Score submitted."
		m.canSubmit = false
		return m, m.fetchScores()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.formMode {
			return m.updateForm(msg)
		}
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "r":
			m.notice = ""
			return m, m.fetchScores()
		case "s":
			if m.canSubmit {
				return m.startForm()
			}
			return m, nil
		default:
			var cmd tea.Cmd
			m.board, cmd = m.board.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := []string{titleStyle.Render("Leaderboard"), ""}
	if m.formMode {
		lines = append(lines, m.renderForm()...)
	} else {
		lines = append(lines, m.renderBoard()...)
	}
	content := strings.Join(lines, "\n")
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderBoard() []string {
	var lines []string
	switch {
	case m.errMsg != "":
		lines = append(lines, errorStyle.Render("Failed to load scores: "+m.errMsg))
	case len(m.top) == 0:
		lines = append(lines, headerStyle.Render("No scores yet. Be the first!"))
	default:
		lines = append(lines, tableMutedStyle.Render(m.board.View()))
	}
	if m.notice != "" {
		lines = append(lines, "", noticeStyle.Render(m.notice))
	}
	help := "r refresh  q quit"
	if m.canSubmit {
		help = fmt.Sprintf("s submit your score (%d)  %s", m.submission.Score, help)
	}
	lines = append(lines, "", headerStyle.Render(help))
	return lines
}

func (m *Model) renderForm() []string {
	lines := []string{headerStyle.Render(fmt.Sprintf("Submit score %d (accuracy %d%%)", m.submission.Score, m.submission.Accuracy)), ""}
	for _, input := range m.formInputs {
		lines = append(lines, input.View())
	}
	if m.formError != "" {
		lines = append(lines, errorStyle.Render(m.formError))
	}
	lines = append(lines, "", headerStyle.Render("tab next field  enter submit  esc cancel"))
	return lines
}

func (m *Model) initForm() {
	username := textinput.New()
	username.Prompt = "Name: "
	username.CharLimit = 32
	username.Cursor.SetMode(cursor.CursorBlink)
	username.SetValue(m.submission.Username)

	email := textinput.New()
	email.Prompt = "E-mail (optional, for beaten-score alerts): "
	email.CharLimit = 64
	email.Cursor.SetMode(cursor.CursorBlink)
	email.SetValue(m.submission.Email)

	m.formInputs = []textinput.Model{username, email}
}

func (m *Model) startForm() (tea.Model, tea.Cmd) {
	m.formMode = true
	m.formError = ""
	m.notice = ""
	return m, m.setFormIndex(0)
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.formMode = false
		m.formError = ""
		return m, nil
	case tea.KeyEnter:
		m.submission.Username = strings.TrimSpace(m.formInputs[0].Value())
		m.submission.Email = strings.TrimSpace(m.formInputs[1].Value())
		if err := m.submission.Validate(); err != nil {
			m.formError = "A name is required."
			return m, nil
		}
		return m, m.submitScore()
	case tea.KeyTab:
		return m, m.setFormIndex(m.formIndex + 1)
	case tea.KeyShiftTab:
		return m, m.setFormIndex(m.formIndex - 1)
	}
	var cmd tea.Cmd
	m.formInputs[m.formIndex], cmd = m.formInputs[m.formIndex].Update(msg)
	return m, cmd
}

func (m *Model) setFormIndex(idx int) tea.Cmd {
	count := len(m.formInputs)
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	m.formIndex = idx
	var cmd tea.Cmd
	for i := range m.formInputs {
		if i == m.formIndex {
			cmd = m.formInputs[i].Focus()
		} else {
			m.formInputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) fetchScores() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		top, err := client.ListTop(ctx)
		return scoresMsg{top: top, err: err}
	}
}

func (m *Model) submitScore() tea.Cmd {
	client := m.client
	submission := m.submission
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return submitMsg{err: client.Submit(ctx, submission)}
	}
}

func buildBoard(top []scores.Score, width, height int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Name", Width: 18},
		{Title: "Score", Width: 6},
		{Title: "Accuracy", Width: 9},
		{Title: "Verbs", Width: 8},
		{Title: "When", Width: 11},
	}
	rows := make([]table.Row, 0, len(top))
	for i, s := range top {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			s.Username,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d%%", s.Accuracy),
			s.VerbType,
			formatWhen(s.CreatedAt),
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(maxInt(1, height)),
	)
	if width > 0 {
		t.SetWidth(width)
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	t.SetStyles(styles)
	return t
}

func formatWhen(createdAt string) string {
	parsed, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return createdAt
	}
	return parsed.Local().Format("2006-01-02")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
