package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/brandkit/internal/tokens"
)

// readableThreshold is the CIE L* above which dark text reads better.
const readableThreshold = 0.6

// ReadableForeground picks the palette's black or white for text on the given
// background. Unparseable backgrounds get white.
func ReadableForeground(background lipgloss.Color, p Palette) lipgloss.Color {
	c, err := colorful.Hex(string(background))
	if err != nil {
		return p.White
	}
	l, _, _ := c.Lab()
	if l > readableThreshold {
		return p.Black
	}
	return p.White
}

// SampleGradient returns the gradient color at position t (0..1), blending in
// Lab space between the two stops that bracket t.
func SampleGradient(g tokens.Gradient, t float64) colorful.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	pos := t * 100

	stops := g.Stops
	first, _ := colorful.Hex(stops[0].Color)
	if pos <= stops[0].Offset {
		return first
	}
	for i := 1; i < len(stops); i++ {
		if pos > stops[i].Offset {
			continue
		}
		from, _ := colorful.Hex(stops[i-1].Color)
		to, _ := colorful.Hex(stops[i].Color)
		span := stops[i].Offset - stops[i-1].Offset
		if span <= 0 {
			return to
		}
		return from.BlendLab(to, (pos-stops[i-1].Offset)/span).Clamped()
	}
	last, _ := colorful.Hex(stops[len(stops)-1].Color)
	return last
}

// GradientText colors each rune of s along the gradient.
func GradientText(s string, g tokens.Gradient) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}
	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(SampleGradient(g, t).Hex()))
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

// GradientBar draws a bar of width cells filled along the gradient.
func GradientBar(width int, g tokens.Gradient) string {
	if width <= 0 {
		return ""
	}
	return GradientText(strings.Repeat("█", width), g)
}
