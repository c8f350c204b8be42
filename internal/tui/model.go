// Package tui is the interactive component preview: every UI component drawn
// with the current token registry, with keyboard focus moving between
// sections.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/brandkit/internal/brand"
	"github.com/alexisbeaulieu97/brandkit/internal/export"
	"github.com/alexisbeaulieu97/brandkit/internal/ui/components"
)

// Section is a focusable area of the preview.
type Section int

const (
	SectionButtons Section = iota
	SectionInput
	SectionAgents
	SectionFeedback
	SectionTokens
	sectionCount
)

func (s Section) String() string {
	switch s {
	case SectionButtons:
		return "Buttons & badges"
	case SectionInput:
		return "Input"
	case SectionAgents:
		return "Agents"
	case SectionFeedback:
		return "Feedback"
	default:
		return "Tokens"
	}
}

// Model contains the Bubbletea state for the component preview.
type Model struct {
	sys      brand.System
	theme    components.Theme
	input    *components.Input
	spinner  *components.Spinner
	snippet  string
	focus    Section
	width    int
	height   int
	quitting bool

	// confirming shows the regenerate dialog over the whole preview.
	confirming bool
}

// NewModel builds a preview of sys.
func NewModel(sys brand.System) Model {
	theme := components.NewTheme(sys)
	m := Model{
		sys:     sys,
		theme:   theme,
		input:   components.NewInput("Token path", "colors.brand.hotPink", theme).WithWidth(32),
		spinner: components.NewSpinner("watching tokens", theme),
		snippet: cssSnippet(sys, snippetLines),
	}
	return m
}

// Init starts the spinner.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Focus returns the focused section.
func (m Model) Focus() Section {
	return m.focus
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Confirming reports whether the regenerate dialog is open.
func (m Model) Confirming() bool {
	return m.confirming
}

// InputValue returns what has been typed into the input.
func (m Model) InputValue() string {
	return m.input.Value()
}

func (m *Model) setFocus(s Section) tea.Cmd {
	m.focus = (s + sectionCount) % sectionCount
	if m.focus == SectionInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// snippetLines is how much of the CSS export the tokens section shows.
const snippetLines = 8

func cssSnippet(sys brand.System, lines int) string {
	e, err := export.Lookup(string(export.FormatCSS))
	if err != nil {
		return ""
	}
	data, err := export.Render(e, sys, export.Options{})
	if err != nil {
		return ""
	}
	out := string(data)
	for i, n := 0, 0; i < len(out); i++ {
		if out[i] == '\n' {
			n++
			if n == lines {
				return out[:i]
			}
		}
	}
	return out
}
