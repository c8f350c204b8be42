package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner is an animated activity indicator with a label.
type Spinner struct {
	label string
	model spinner.Model
	theme Theme
}

// NewSpinner creates a hot-pink dot spinner.
func NewSpinner(label string, theme Theme) *Spinner {
	return &Spinner{
		label: label,
		theme: theme,
		model: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Palette.Primary)),
		),
	}
}

// Tick starts the animation.
func (s *Spinner) Tick() tea.Msg {
	return s.model.Tick()
}

// Update advances the animation on its own tick messages.
func (s *Spinner) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.model, cmd = s.model.Update(msg)
	return cmd
}

// SetLabel replaces the label.
func (s *Spinner) SetLabel(label string) {
	s.label = label
}

// View renders the current frame followed by the label.
func (s *Spinner) View() string {
	if s.label == "" {
		return s.model.View()
	}
	label := lipgloss.NewStyle().Foreground(s.theme.Palette.Muted).Render(s.label)
	return s.model.View() + " " + label
}
