package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Input is a labelled single-line text field backed by bubbles/textinput.
type Input struct {
	BaseComponent
	label string
	model textinput.Model
	theme Theme
}

// NewInput creates an unfocused input styled with theme.
func NewInput(label, placeholder string, theme Theme) *Input {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Palette.Primary)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Palette.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Palette.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Palette.Primary)

	return &Input{
		BaseComponent: NewBaseComponent(),
		label:         label,
		model:         ti,
		theme:         theme,
	}
}

// Focus gives the input keyboard focus.
func (i *Input) Focus() tea.Cmd {
	return i.model.Focus()
}

// Blur removes keyboard focus.
func (i *Input) Blur() {
	i.model.Blur()
}

// Focused reports whether the input has focus.
func (i *Input) Focused() bool {
	return i.model.Focused()
}

// Update forwards a message to the underlying text input.
func (i *Input) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	i.model, cmd = i.model.Update(msg)
	return cmd
}

// Value returns the current text.
func (i *Input) Value() string {
	return i.model.Value()
}

// SetValue replaces the current text.
func (i *Input) SetValue(value string) {
	i.model.SetValue(value)
}

// WithWidth sets the visible field width in cells.
func (i *Input) WithWidth(width int) *Input {
	i.model.Width = width
	return i
}

// WithCharLimit caps how many characters can be entered.
func (i *Input) WithCharLimit(limit int) *Input {
	i.model.CharLimit = limit
	return i
}

// View renders the label and the framed field.
func (i *Input) View() string {
	field := i.Style(i.theme).Render(i.model.View())
	if i.label == "" {
		return field
	}
	label := lipgloss.NewStyle().Foreground(i.theme.Palette.Muted).Render(i.label)
	return lipgloss.JoinVertical(lipgloss.Left, label, field)
}

// Style computes the field frame; the border turns electric blue on focus.
func (i *Input) Style(theme Theme) lipgloss.Style {
	border := theme.Palette.Border
	if i.model.Focused() {
		border = theme.Palette.Secondary
	}
	style := i.baseStyle().
		Border(theme.Borders.Rounded).
		BorderForeground(border).
		Padding(0, theme.Space.XS)
	return i.finish(style, theme)
}
