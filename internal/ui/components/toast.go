package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ToastKind selects the toast's tone and icon.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastWarning
	ToastError
)

func (k ToastKind) icon() string {
	switch k {
	case ToastSuccess:
		return "✓"
	case ToastWarning:
		return "⚠"
	case ToastError:
		return "✗"
	default:
		return "ℹ"
	}
}

func (k ToastKind) tone() Tone {
	switch k {
	case ToastSuccess:
		return ToneSuccess
	case ToastWarning:
		return ToneWarning
	case ToastError:
		return ToneDanger
	default:
		return ToneInfo
	}
}

// Toast is a one-line notification with a colored edge.
type Toast struct {
	BaseComponent
	message string
	kind    ToastKind
}

// NewToast creates an info toast.
func NewToast(message string) *Toast {
	return &Toast{BaseComponent: NewBaseComponent(), message: message}
}

// WithKind sets the toast kind.
func (t *Toast) WithKind(kind ToastKind) *Toast {
	t.kind = kind
	return t
}

// View renders the toast.
func (t *Toast) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the toast with the provided render context.
func (t *Toast) ViewWithContext(ctx RenderContext) string {
	color := t.kind.tone().Color(ctx.Theme.Palette)
	icon := lipgloss.NewStyle().Foreground(color).Bold(true).Render(t.kind.icon())
	return t.Style(ctx.Theme).Render(icon + " " + t.message)
}

// Style computes the toast frame: a thick left edge in the kind's color.
func (t *Toast) Style(theme Theme) lipgloss.Style {
	style := t.baseStyle().
		Border(theme.Borders.Thick, false, false, false, true).
		BorderForeground(t.kind.tone().Color(theme.Palette)).
		Foreground(theme.Palette.Text).
		Padding(0, theme.Space.XS)
	return t.finish(style, theme)
}

// SuccessToast creates a success toast.
func SuccessToast(message string) *Toast {
	return NewToast(message).WithKind(ToastSuccess)
}

// WarningToast creates a warning toast.
func WarningToast(message string) *Toast {
	return NewToast(message).WithKind(ToastWarning)
}

// ErrorToast creates an error toast.
func ErrorToast(message string) *Toast {
	return NewToast(message).WithKind(ToastError)
}
