// Package render turns parsed expressions into colorized terminal text.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/zeeshanok/epic-calc/pkg/expr"
)

// Hint is shown in place of an answer while the input is empty.
const Hint = "Enter an expression to evaluate"

// Theme holds the styles used for each kind of output.
type Theme struct {
	Number   lipgloss.Style
	Operator lipgloss.Style
	Answer   lipgloss.Style
	Hint     lipgloss.Style
	Status   lipgloss.Style
}

// NewTheme builds the calculator palette on the given renderer.
func NewTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Number:   r.NewStyle().Foreground(lipgloss.Color("#2BFFD1")),
		Operator: r.NewStyle().Foreground(lipgloss.Color("#FF2BF4")),
		Answer:   r.NewStyle().Foreground(lipgloss.Color("#C8C8C8")),
		Hint:     r.NewStyle().Foreground(lipgloss.Color("7")).Faint(true),
		Status:   r.NewStyle().Foreground(lipgloss.Color("7")).Faint(true).Italic(true),
	}
}

// DefaultTheme uses the color profile detected for stdout.
func DefaultTheme() Theme {
	return NewTheme(lipgloss.DefaultRenderer())
}

// PlainTheme renders text without any escape sequences.
func PlainTheme() Theme {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return NewTheme(r)
}

// Highlight renders tokens in source order, separated by single spaces.
func (t Theme) Highlight(parts []expr.Token) string {
	styled := make([]string, len(parts))
	for i, p := range parts {
		if p.IsOp {
			styled[i] = t.Operator.Render(p.String())
		} else {
			styled[i] = t.Number.Render(p.String())
		}
	}
	return strings.Join(styled, " ")
}

// AnswerLine renders what follows the prompt: the hint for empty input,
// otherwise the answer unless it would only repeat the input.
func (t Theme) AnswerLine(e expr.Expression) string {
	if e.Raw == "" {
		return t.Hint.Render(Hint)
	}
	v, ok := e.Answer()
	if !ok {
		return ""
	}
	s := expr.FormatNumber(v)
	if s == e.Raw {
		return ""
	}
	return t.Answer.Render(s)
}

// Notice renders a transient status message such as a clipboard
// confirmation.
func (t Theme) Notice(msg string) string {
	return t.Status.Render(msg)
}
