package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects the button's visual weight.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantGhost
)

// Button represents a clickable label (visual only).
type Button struct {
	BaseComponent
	label    string
	variant  ButtonVariant
	disabled bool
	active   bool
}

// NewButton creates a primary button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.Style(ctx.Theme).Render(b.label)
}

// Style computes the button's style for theme.
func (b *Button) Style(theme Theme) lipgloss.Style {
	p := theme.Palette
	style := b.baseStyle().Padding(0, theme.Space.SM)

	switch b.variant {
	case ButtonVariantSecondary:
		style = style.Background(p.Secondary).Foreground(ReadableForeground(p.Secondary, p))
	case ButtonVariantGhost:
		style = style.Foreground(p.Primary).
			Border(theme.Borders.Rounded).
			BorderForeground(p.Primary).
			Padding(0, theme.Space.XS)
	default:
		style = style.Background(p.Primary).Foreground(ReadableForeground(p.Primary, p))
	}

	if b.disabled {
		style = style.Background(p.Border).Foreground(p.Muted).BorderForeground(p.Border).Faint(true)
	}
	if b.active {
		style = style.Bold(true).Underline(true)
	}

	return b.finish(style, theme)
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithActive sets the active/selected state.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// IsDisabled returns true if the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// PrimaryButton creates a primary button.
func PrimaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantPrimary)
}

// SecondaryButton creates a secondary button.
func SecondaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantSecondary)
}

// GhostButton creates an outlined button.
func GhostButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantGhost)
}
