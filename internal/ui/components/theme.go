package components

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/brandkit/internal/brand"
	"github.com/alexisbeaulieu97/brandkit/internal/tokens"
)

// SpaceScale is the token spacing scale converted to terminal cells.
type SpaceScale struct {
	XS int
	SM int
	MD int
	LG int
	XL int
}

// Palette holds the semantic colors components draw with.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Highlight lipgloss.Color

	Success lipgloss.Color
	Info    lipgloss.Color
	Warning lipgloss.Color
	Danger  lipgloss.Color

	Text       lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Surface    lipgloss.Color
	Background lipgloss.Color

	// Black and White are the text colors placed on filled backgrounds.
	Black lipgloss.Color
	White lipgloss.Color
}

// Theme is everything a component needs to render. Every value is derived
// from the token registry and the brand system; nothing is hard-coded here.
type Theme struct {
	Tokens   tokens.Registry
	Palette  Palette
	Space    SpaceScale
	Gradient tokens.Gradient
	Borders  Borders
}

// Borders names the border shapes components use.
type Borders struct {
	Rounded lipgloss.Border
	Normal  lipgloss.Border
	Thick   lipgloss.Border
}

// NewTheme derives a theme from sys.
func NewTheme(sys brand.System) Theme {
	r := sys.Registry
	neutral := func(name string) lipgloss.Color {
		v, _ := sys.ColorValue(name)
		return lipgloss.Color(v)
	}

	return Theme{
		Tokens: r,
		Palette: Palette{
			Primary:    lipgloss.Color(r.Colors.Brand.HotPink),
			Secondary:  lipgloss.Color(r.Colors.Brand.ElectricBlue),
			Accent:     lipgloss.Color(r.Colors.Brand.Violet),
			Highlight:  lipgloss.Color(r.Colors.Brand.Amber),
			Success:    lipgloss.Color(r.Colors.Agents.Echo),
			Info:       lipgloss.Color(r.Colors.Agents.Prism),
			Warning:    lipgloss.Color(r.Colors.Brand.Amber),
			Danger:     lipgloss.Color(r.Colors.Brand.HotPink),
			Text:       neutral("white"),
			Muted:      neutral("silver"),
			Border:     neutral("mid-gray"),
			Surface:    neutral("charcoal"),
			Background: neutral("deep-black"),
			Black:      neutral("black"),
			White:      neutral("white"),
		},
		Space:    spaceScale(r.Spacing),
		Gradient: r.Gradient,
		Borders: Borders{
			Rounded: lipgloss.RoundedBorder(),
			Normal:  lipgloss.NormalBorder(),
			Thick:   lipgloss.ThickBorder(),
		},
	}
}

// DefaultTheme derives a theme from the default brand system.
func DefaultTheme() Theme {
	return NewTheme(brand.Default())
}

// spaceScale maps pixel tiers to cells, taking spacing.xs as one cell.
func spaceScale(s tokens.Spacing) SpaceScale {
	cells := func(px int) int {
		return int(math.Round(float64(px) / float64(s.XS)))
	}
	return SpaceScale{XS: cells(s.XS), SM: cells(s.SM), MD: cells(s.MD), LG: cells(s.LG), XL: cells(s.XL)}
}

// RenderContext carries the theme through nested renders.
type RenderContext struct {
	Theme Theme
}

// DefaultContext returns a context holding DefaultTheme.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a copy of the context using theme.
func (c RenderContext) WithTheme(theme Theme) RenderContext {
	c.Theme = theme
	return c
}
