// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keycalc/internal/calc"
	"github.com/toeirei/keycalc/internal/i18n"
)

const historyHeight = 6

// Model is the top-level bubbletea model: display, keypad and history.
// It owns the accumulator for the lifetime of the program; bubbletea
// delivers one message at a time, so no locking is needed.
type Model struct {
	ctx     context.Context
	acc     *calc.Accumulator
	keys    KeyMap
	help    help.Model
	history viewport.Model
	focus   focus
	display string
	status  string
	failed  bool

	// copyText writes to the system clipboard; tests replace it.
	copyText func(string) error
}

// New builds the model around acc.
func New(ctx context.Context, acc *calc.Accumulator) *Model {
	m := &Model{
		ctx:      ctx,
		acc:      acc,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		history:  viewport.New(keypadWidth-2, historyHeight),
		copyText: clipboard.WriteAll,
	}
	acc.Apply(
		calc.WithDisplaySink(m.setDisplay),
		calc.WithHistorySink(m.setHistory),
	)
	m.display = acc.Display()
	m.setHistory(acc.HistoryLines())
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.focus = m.focus.move(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.focus = m.focus.move(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.focus = m.focus.move(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.focus = m.focus.move(0, 1)
	case key.Matches(msg, m.keys.Press):
		m.press(m.focus.key())
	case key.Matches(msg, m.keys.Delete):
		m.press(calc.Delete)
	case key.Matches(msg, m.keys.Clear):
		m.press(calc.Clear)
	case key.Matches(msg, m.keys.ClearHistory):
		m.press(calc.ClearHistory)
	case key.Matches(msg, m.keys.Copy):
		m.copyDisplay()
	case msg.Type == tea.KeyRunes:
		for _, r := range msg.Runes {
			if k, ok := calc.ParseKey(r); ok {
				m.press(k)
			}
		}
	default:
		// pgup/pgdown and friends scroll the history
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) press(k calc.Key) {
	m.acc.Press(m.ctx, k)
	m.status = ""
	m.failed = false
	if k.Kind == calc.KeyClearHistory {
		m.status = i18n.T("status.history_cleared")
	}
}

func (m *Model) copyDisplay() {
	text := m.display
	if err := m.copyText(text); err != nil {
		m.status = i18n.T("status.copy_failed", err)
		m.failed = true
		return
	}
	m.status = i18n.T("status.copied", text)
	m.failed = false
}

// setDisplay is the accumulator's display sink.
func (m *Model) setDisplay(text string) {
	m.display = text
}

// setHistory is the accumulator's history sink. It re-renders the whole
// log into the viewport.
func (m *Model) setHistory(lines []string) {
	if len(lines) == 0 {
		m.history.SetContent(i18n.T("history.empty"))
		return
	}
	m.history.SetContent(strings.Join(lines, "\n"))
	m.history.GotoBottom()
}

func (m *Model) View() string {
	display := m.display
	dStyle := displayStyle
	if calc.IsErrorDisplay(display) {
		dStyle = displayErrorStyle
	}

	sections := []string{
		titleStyle.Render(i18n.T("app.title")),
		dStyle.Render(display),
		renderKeypad(m.focus),
		sectionStyle.Render(i18n.T("history.title")),
		historyStyle.Render(m.history.View()),
	}
	if m.status != "" {
		style := successStyle
		if m.failed {
			style = errorStyle
		}
		sections = append(sections, style.Render(m.status))
	}
	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

var _ tea.Model = (*Model)(nil)
