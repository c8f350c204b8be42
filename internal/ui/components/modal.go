package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Modal is a dialog with a title, body and a row of action buttons, optionally
// centered inside a viewport.
type Modal struct {
	BaseComponent
	title   string
	body    string
	actions []*Button
	width   int
	height  int
}

// NewModal creates a modal with a title and body text.
func NewModal(title, body string) *Modal {
	return &Modal{BaseComponent: NewBaseComponent(), title: title, body: body}
}

// WithActions sets the action buttons, rendered left to right.
func (m *Modal) WithActions(actions ...*Button) *Modal {
	m.actions = actions
	return m
}

// WithViewport centers the dialog in a width x height area.
func (m *Modal) WithViewport(width, height int) *Modal {
	m.width, m.height = width, height
	return m
}

// View renders the modal.
func (m *Modal) View() string {
	return m.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the modal with the provided render context.
func (m *Modal) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	title := lipgloss.NewStyle().Bold(true).Foreground(theme.Palette.Accent).Render(m.title)
	sections := []string{title, "", m.body}

	if len(m.actions) > 0 {
		rendered := make([]string, 0, len(m.actions)*2)
		for i, action := range m.actions {
			if i > 0 {
				rendered = append(rendered, lipgloss.NewStyle().Width(theme.Space.XS).Render(""))
			}
			rendered = append(rendered, action.ViewWithContext(ctx))
		}
		sections = append(sections, "", lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}

	dialog := m.Style(theme).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
	}
	return dialog
}

// Style computes the dialog frame.
func (m *Modal) Style(theme Theme) lipgloss.Style {
	style := m.baseStyle().
		Border(theme.Borders.Thick).
		BorderForeground(theme.Palette.Accent).
		Padding(theme.Space.XS, theme.Space.MD)
	return m.finish(style, theme)
}
