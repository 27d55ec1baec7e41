// Package tui implements the interactive calculator on top of bubbletea.
// Every key event edits the input buffer and the whole expression is parsed
// and rendered again from scratch.
package tui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zeeshanok/epic-calc/pkg/clipboard"
	"github.com/zeeshanok/epic-calc/pkg/expr"
	"github.com/zeeshanok/epic-calc/pkg/render"
)

// Banner is printed once when the calculator starts.
const Banner = "Press q to exit, esc to clear, c to copy answer, v to copy expression\n"

// Status messages shown after a clipboard command.
const (
	CopiedAnswer     = " (Copied answer clipboard)"
	CopiedExpression = " (Copied expression clipboard)"
	ClipboardFailed  = " (Clipboard unavailable)"
)

// Model is the bubbletea model. It is the single owner of the input buffer.
type Model struct {
	input  []rune
	notice string
	theme  render.Theme
	clip   clipboard.Clipboard
}

// New creates a calculator model with an empty buffer.
func New(theme render.Theme, clip clipboard.Clipboard) Model {
	return Model{theme: theme, clip: clip}
}

// Input returns the current raw text.
func (m Model) Input() string { return string(m.input) }

// Notice returns the status message shown after the last key, if any.
func (m Model) Notice() string { return m.notice }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Printf("%s", Banner)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.notice = ""

	switch key.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.input = nil
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyEnter:
		line := m.View()
		m.input = nil
		return m, tea.Println(line + "\n")
	case tea.KeyRunes:
		if key.Alt {
			return m, nil
		}
		for _, r := range key.Runes {
			if expr.Qualified(r) {
				m.input = append(m.input, r)
				continue
			}
			if key.Paste {
				continue
			}
			if cmd := m.command(r); cmd != nil {
				return m, cmd
			}
		}
	}
	return m, nil
}

// command handles a non-qualified character typed as a shortcut.
func (m *Model) command(r rune) tea.Cmd {
	switch r {
	case 'q':
		return tea.Quit
	case 'c':
		if len(m.input) == 0 {
			return nil
		}
		v, ok := expr.Parse(m.Input()).Answer()
		if !ok {
			return nil
		}
		m.copy(expr.FormatNumber(v), CopiedAnswer)
	case 'v':
		if len(m.input) == 0 {
			return nil
		}
		m.copy(m.Input(), CopiedExpression)
	}
	return nil
}

func (m *Model) copy(text, notice string) {
	if err := m.clip.WriteAll(text); err != nil {
		log.Printf("Warning: clipboard copy failed: %v", err)
		m.notice = ClipboardFailed
		return
	}
	m.notice = notice
}

// View implements tea.Model. The first line is the highlighted expression,
// the second the prompt followed by the answer.
func (m Model) View() string {
	e := expr.Parse(m.Input())
	view := m.theme.Highlight(e.Parts) + "\n> " + m.theme.AnswerLine(e)
	if m.notice != "" {
		view += m.theme.Notice(m.notice)
	}
	return view
}
