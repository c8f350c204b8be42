package components

import (
	"github.com/charmbracelet/lipgloss"
)

// StyleFunc applies a theme-aware transformation to a style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// BaseComponent provides the style override hooks shared by all components.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// NewBaseComponent creates a base component with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// SetStyle replaces the raw lipgloss style the component starts from.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// AddAppliers appends style functions run after the component's own styling.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	next := make([]StyleFunc, len(b.appliers), len(b.appliers)+len(appliers))
	copy(next, b.appliers)
	b.appliers = append(next, appliers...)
}

// baseStyle is the starting style before component styling.
func (b *BaseComponent) baseStyle() lipgloss.Style {
	return b.style
}

// finish runs the registered appliers over style.
func (b *BaseComponent) finish(style lipgloss.Style, theme Theme) lipgloss.Style {
	for _, apply := range b.appliers {
		style = apply(style, theme)
	}
	return style
}

// Tone selects one of the semantic palette colors.
type Tone int

const (
	TonePrimary Tone = iota
	ToneSecondary
	ToneAccent
	ToneHighlight
	ToneSuccess
	ToneInfo
	ToneWarning
	ToneDanger
	ToneMuted
)

// Color resolves the tone against the palette.
func (t Tone) Color(p Palette) lipgloss.Color {
	switch t {
	case ToneSecondary:
		return p.Secondary
	case ToneAccent:
		return p.Accent
	case ToneHighlight:
		return p.Highlight
	case ToneSuccess:
		return p.Success
	case ToneInfo:
		return p.Info
	case ToneWarning:
		return p.Warning
	case ToneDanger:
		return p.Danger
	case ToneMuted:
		return p.Muted
	default:
		return p.Primary
	}
}
