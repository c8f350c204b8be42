package components

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// AgentAvatar shows an agent's initial on the agent's color.
type AgentAvatar struct {
	BaseComponent
	name      string
	color     lipgloss.Color
	showLabel bool
}

// NewAgentAvatar creates an avatar for a named agent. Names not declared in
// the token registry fail with a lookup error.
func NewAgentAvatar(name string, theme Theme) (*AgentAvatar, error) {
	hex, err := theme.Tokens.Colors.Agents.Lookup(strings.ToLower(name))
	if err != nil {
		return nil, err
	}
	return &AgentAvatar{BaseComponent: NewBaseComponent(), name: name, color: lipgloss.Color(hex)}, nil
}

// WithLabel shows the agent name next to the avatar.
func (a *AgentAvatar) WithLabel(show bool) *AgentAvatar {
	a.showLabel = show
	return a
}

// Color returns the agent's color.
func (a *AgentAvatar) Color() lipgloss.Color {
	return a.color
}

// Initial is the uppercased first letter of the agent name.
func (a *AgentAvatar) Initial() string {
	for _, r := range a.name {
		return string(unicode.ToUpper(r))
	}
	return "?"
}

// View renders the avatar.
func (a *AgentAvatar) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the avatar with the provided render context.
func (a *AgentAvatar) ViewWithContext(ctx RenderContext) string {
	avatar := a.Style(ctx.Theme).Render(a.Initial())
	if !a.showLabel {
		return avatar
	}
	label := lipgloss.NewStyle().Foreground(a.color).Render(a.name)
	return lipgloss.JoinHorizontal(lipgloss.Center, avatar, " ", label)
}

// Style computes the avatar chip style.
func (a *AgentAvatar) Style(theme Theme) lipgloss.Style {
	style := a.baseStyle().
		Bold(true).
		Background(a.color).
		Foreground(ReadableForeground(a.color, theme.Palette)).
		Padding(0, theme.Space.XS)
	return a.finish(style, theme)
}
