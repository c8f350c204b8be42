// Package brand expands the token registry into the full brand system the
// generators export: neutrals, extra gradients, radii, shadows and the wider
// typography stack.
package brand

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexisbeaulieu97/brandkit/internal/tokens"
)

// Entry is a single named value inside a group.
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// GroupKind classifies a group for generators that type their output.
type GroupKind int

const (
	GroupColor GroupKind = iota
	GroupGradient
	GroupSpacing
	GroupTypography
	GroupRadius
	GroupShadow
)

// Group is an ordered run of entries exported together.
type Group struct {
	Kind    GroupKind
	Key     string
	Entries []Entry
}

// System is the complete exportable brand definition.
type System struct {
	Registry   tokens.Registry
	Colors     []Entry
	Gradients  []Entry
	Spacing    []Entry
	Typography []Entry
	Radii      []Entry
	Shadows    []Entry
}

// Default builds the brand system from the default token registry.
func Default() System {
	return FromRegistry(tokens.Default())
}

// FromRegistry derives the brand system from r. Brand colors, the brand
// gradients, spacing xs..xl and the line height come from r.
func FromRegistry(r tokens.Registry) System {
	brandColors := r.Colors.Brand
	return System{
		Registry: r,
		Colors: []Entry{
			{"black", "#000000"},
			{"white", "#FFFFFF"},
			{"amber", brandColors.Amber},
			{"hot-pink", brandColors.HotPink},
			{"electric-blue", brandColors.ElectricBlue},
			{"violet", brandColors.Violet},
			{"deep-black", "#0a0a0a"},
			{"charcoal", "#1a1a1a"},
			{"dark-gray", "#2a2a2a"},
			{"mid-gray", "#444444"},
			{"silver", "#aaaaaa"},
			{"light-gray", "#e5e5e5"},
		},
		Gradients: []Entry{
			{"brand", r.Gradient.CSS()},
			{"brand-horizontal", "linear-gradient(90deg, " + strings.Join(r.Gradient.Colors(), ", ") + ")"},
			{"dark", "linear-gradient(135deg, #0a0a0a 0%, #1a1a1a 100%)"},
			{"card", "linear-gradient(135deg, rgba(255,29,108,0.05) 0%, rgba(41,121,255,0.05) 100%)"},
		},
		Spacing: spacingEntries(r.Spacing),
		Typography: []Entry{
			{"font-family", "-apple-system, BlinkMacSystemFont, 'SF Pro Display', 'Helvetica Neue', sans-serif"},
			{"font-mono", "'SF Mono', 'Cascadia Code', 'Fira Code', 'Courier New', monospace"},
			{"line-height", fmt.Sprint(r.LineHeight)},
			{"letter-spacing", "-0.01em"},
		},
		Radii: []Entry{
			{"sm", "4px"},
			{"md", "8px"},
			{"lg", "12px"},
			{"xl", "16px"},
			{"full", "9999px"},
		},
		Shadows: []Entry{
			{"sm", "0 1px 4px rgba(0,0,0,0.4)"},
			{"md", "0 4px 16px rgba(0,0,0,0.5)"},
			{"lg", "0 8px 32px rgba(0,0,0,0.6)"},
			{"brand", "0 0 24px rgba(255,29,108,0.25)"},
			{"glow", "0 0 40px rgba(41,121,255,0.3)"},
		},
	}
}

// spacingEntries lists the registry scale plus one further golden step (2xl).
func spacingEntries(s tokens.Spacing) []Entry {
	tiers := s.Tiers()
	entries := make([]Entry, 0, len(tiers)+1)
	for _, tier := range tiers {
		entries = append(entries, Entry{tier.Name, fmt.Sprintf("%dpx", tier.Pixels)})
	}
	next := int(math.Round(float64(s.XL) * tokens.Phi))
	return append(entries, Entry{"2xl", fmt.Sprintf("%dpx", next)})
}

// Groups returns the system's groups in export order.
func (s System) Groups() []Group {
	return []Group{
		{Kind: GroupColor, Key: "color", Entries: s.Colors},
		{Kind: GroupGradient, Key: "gradient", Entries: s.Gradients},
		{Kind: GroupSpacing, Key: "spacing", Entries: s.Spacing},
		{Kind: GroupTypography, Key: "typography", Entries: s.Typography},
		{Kind: GroupRadius, Key: "borderRadius", Entries: s.Radii},
		{Kind: GroupShadow, Key: "shadow", Entries: s.Shadows},
	}
}

// TypographyValue returns the value of the named typography entry.
func (s System) TypographyValue(name string) (string, bool) {
	for _, e := range s.Typography {
		if e.Name == name {
			return e.Value, true
		}
	}
	return "", false
}

// ColorValue returns the value of the named color entry.
func (s System) ColorValue(name string) (string, bool) {
	for _, e := range s.Colors {
		if e.Name == name {
			return e.Value, true
		}
	}
	return "", false
}
