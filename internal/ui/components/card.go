package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Card is a bordered container with an optional title and footer.
type Card struct {
	BaseComponent
	title  string
	body   []string
	footer string
	width  int
	tone   Tone
}

// NewCard creates a card holding the given body blocks.
func NewCard(body ...string) *Card {
	return &Card{
		BaseComponent: NewBaseComponent(),
		body:          body,
		tone:          ToneMuted,
	}
}

// View renders the card.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card with the provided render context.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	var sections []string
	if c.title != "" {
		sections = append(sections, lipgloss.NewStyle().Bold(true).Foreground(theme.Palette.Primary).Render(c.title))
	}
	if len(c.body) > 0 {
		sections = append(sections, strings.Join(c.body, "\n"))
	}
	if c.footer != "" {
		footer := lipgloss.NewStyle().
			Foreground(theme.Palette.Muted).
			Border(theme.Borders.Normal, true, false, false, false).
			BorderForeground(theme.Palette.Border).
			Render(c.footer)
		sections = append(sections, footer)
	}

	return c.Style(theme).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// Style computes the card frame style.
func (c *Card) Style(theme Theme) lipgloss.Style {
	border := theme.Palette.Border
	if c.tone != ToneMuted {
		border = c.tone.Color(theme.Palette)
	}
	style := c.baseStyle().
		Border(theme.Borders.Rounded).
		BorderForeground(border).
		Padding(0, theme.Space.SM)
	if c.width > 0 {
		style = style.Width(c.width)
	}
	return c.finish(style, theme)
}

// WithTitle sets the card heading.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithFooter sets a footer shown below a divider.
func (c *Card) WithFooter(footer string) *Card {
	c.footer = footer
	return c
}

// WithWidth fixes the card's inner width.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// WithTone colors the border with a palette tone.
func (c *Card) WithTone(tone Tone) *Card {
	c.tone = tone
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.AddAppliers(appliers...)
	return c
}
