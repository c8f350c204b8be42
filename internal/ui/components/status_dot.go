package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Status is an agent or service availability state.
type Status int

const (
	StatusOffline Status = iota
	StatusOnline
	StatusBusy
	StatusIdle
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOnline:
		return "online"
	case StatusBusy:
		return "busy"
	case StatusIdle:
		return "idle"
	case StatusError:
		return "error"
	default:
		return "offline"
	}
}

func (s Status) tone() Tone {
	switch s {
	case StatusOnline:
		return ToneSuccess
	case StatusBusy:
		return ToneWarning
	case StatusIdle:
		return ToneInfo
	case StatusError:
		return ToneDanger
	default:
		return ToneMuted
	}
}

// StatusDot is a colored bullet with an optional label.
type StatusDot struct {
	status    Status
	showLabel bool
}

// NewStatusDot creates a dot for status.
func NewStatusDot(status Status) *StatusDot {
	return &StatusDot{status: status}
}

// WithLabel prints the status name after the dot.
func (d *StatusDot) WithLabel(show bool) *StatusDot {
	d.showLabel = show
	return d
}

// Color returns the dot color under theme.
func (d *StatusDot) Color(theme Theme) lipgloss.Color {
	return d.status.tone().Color(theme.Palette)
}

// View renders the dot.
func (d *StatusDot) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the dot with the provided render context.
func (d *StatusDot) ViewWithContext(ctx RenderContext) string {
	glyph := "●"
	if d.status == StatusOffline {
		glyph = "○"
	}
	dot := lipgloss.NewStyle().Foreground(d.Color(ctx.Theme)).Render(glyph)
	if !d.showLabel {
		return dot
	}
	return dot + " " + lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Muted).Render(d.status.String())
}
