package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
)

// MetricCard shows a headline number with its change since the last period.
type MetricCard struct {
	label    string
	value    string
	delta    float64
	hasDelta bool
	width    int
}

// NewMetricCard creates a card for a labelled value.
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{label: label, value: value}
}

// WithDelta sets the percentage change shown under the value.
func (m *MetricCard) WithDelta(percent float64) *MetricCard {
	m.delta = percent
	m.hasDelta = true
	return m
}

// WithWidth fixes the card's inner width.
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.width = width
	return m
}

// DeltaText formats the change with a direction arrow.
func (m *MetricCard) DeltaText() string {
	if !m.hasDelta {
		return ""
	}
	switch {
	case m.delta > 0:
		return fmt.Sprintf("▲ %.1f%%", m.delta)
	case m.delta < 0:
		return fmt.Sprintf("▼ %.1f%%", math.Abs(m.delta))
	default:
		return "– 0.0%"
	}
}

func (m *MetricCard) deltaTone() Tone {
	switch {
	case m.delta > 0:
		return ToneSuccess
	case m.delta < 0:
		return ToneDanger
	default:
		return ToneMuted
	}
}

// View renders the metric card.
func (m *MetricCard) View() string {
	return m.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the metric card with the provided render context.
func (m *MetricCard) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	label := lipgloss.NewStyle().Foreground(theme.Palette.Muted).Render(m.label)
	value := GradientText(m.value, theme.Gradient)
	lines := []string{label, lipgloss.NewStyle().Bold(true).Render(value)}
	if m.hasDelta {
		lines = append(lines, lipgloss.NewStyle().Foreground(m.deltaTone().Color(theme.Palette)).Render(m.DeltaText()))
	}

	card := NewCard(lipgloss.JoinVertical(lipgloss.Left, lines...))
	if m.width > 0 {
		card.WithWidth(m.width)
	}
	return card.ViewWithContext(ctx)
}
