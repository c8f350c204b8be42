package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Badge is a small filled label.
type Badge struct {
	BaseComponent
	text    string
	tone    Tone
	outline bool
}

// NewBadge creates a primary badge.
func NewBadge(text string) *Badge {
	return &Badge{BaseComponent: NewBaseComponent(), text: text}
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the provided render context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	return b.Style(ctx.Theme).Render(strings.ToUpper(b.text))
}

// Style computes the badge style.
func (b *Badge) Style(theme Theme) lipgloss.Style {
	color := b.tone.Color(theme.Palette)
	style := b.baseStyle().Bold(true).Padding(0, theme.Space.XS)
	if b.outline {
		style = style.Foreground(color)
	} else {
		style = style.Background(color).Foreground(ReadableForeground(color, theme.Palette))
	}
	return b.finish(style, theme)
}

// WithTone sets the badge color.
func (b *Badge) WithTone(tone Tone) *Badge {
	b.tone = tone
	return b
}

// WithOutline renders the badge as colored text without a fill.
func (b *Badge) WithOutline(outline bool) *Badge {
	b.outline = outline
	return b
}

// Text returns the badge text as given.
func (b *Badge) Text() string {
	return b.text
}
