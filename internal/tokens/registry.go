// Package tokens holds the BlackRoad design token registry: the single,
// read-only source of brand colors, agent colors, spacing, gradient and
// typography values that every visual component reads from.
//
// The registry is a closed struct. Prefer field access (Default().Colors.Brand.HotPink)
// over Get, which exists for callers that only have a dotted path at hand.
package tokens

// Phi is the golden ratio the spacing scale and line height are built on.
const Phi = 1.618

// BrandColors are the four primary palette colors.
type BrandColors struct {
	HotPink      string `json:"hotPink" yaml:"hotPink" validate:"hex6"`
	ElectricBlue string `json:"electricBlue" yaml:"electricBlue" validate:"hex6"`
	Violet       string `json:"violet" yaml:"violet" validate:"hex6"`
	Amber        string `json:"amber" yaml:"amber" validate:"hex6"`
}

// AgentColors assigns one color to each named agent.
type AgentColors struct {
	Lucidia string `json:"lucidia" yaml:"lucidia" validate:"hex6"`
	Alice   string `json:"alice" yaml:"alice" validate:"hex6"`
	Octavia string `json:"octavia" yaml:"octavia" validate:"hex6"`
	Prism   string `json:"prism" yaml:"prism" validate:"hex6"`
	Echo    string `json:"echo" yaml:"echo" validate:"hex6"`
	Cipher  string `json:"cipher" yaml:"cipher" validate:"hex6"`
}

// Colors groups brand and agent colors.
type Colors struct {
	Brand  BrandColors `json:"brand" yaml:"brand"`
	Agents AgentColors `json:"agents" yaml:"agents"`
}

// Spacing is the golden-ratio spacing scale in pixels.
type Spacing struct {
	XS int `json:"xs" yaml:"xs" validate:"gt=0"`
	SM int `json:"sm" yaml:"sm" validate:"gt=0"`
	MD int `json:"md" yaml:"md" validate:"gt=0"`
	LG int `json:"lg" yaml:"lg" validate:"gt=0"`
	XL int `json:"xl" yaml:"xl" validate:"gt=0"`
}

// Tier is one named step of the spacing scale.
type Tier struct {
	Name   string
	Pixels int
}

// Tiers returns the scale from smallest to largest.
func (s Spacing) Tiers() []Tier {
	return []Tier{
		{Name: "xs", Pixels: s.XS},
		{Name: "sm", Pixels: s.SM},
		{Name: "md", Pixels: s.MD},
		{Name: "lg", Pixels: s.LG},
		{Name: "xl", Pixels: s.XL},
	}
}

// Registry is the complete token table.
type Registry struct {
	Colors     Colors   `json:"colors" yaml:"colors"`
	Spacing    Spacing  `json:"spacing" yaml:"spacing"`
	Gradient   Gradient `json:"gradient" yaml:"gradient"`
	FontFamily string   `json:"fontFamily" yaml:"fontFamily" validate:"required"`
	LineHeight float64  `json:"lineHeight" yaml:"lineHeight" validate:"gt=0"`
}

var defaultRegistry = Registry{
	Colors: Colors{
		Brand: BrandColors{
			HotPink:      "#FF1D6C",
			ElectricBlue: "#2979FF",
			Violet:       "#9C27B0",
			Amber:        "#F5A623",
		},
		Agents: AgentColors{
			Lucidia: "#9C27B0",
			Alice:   "#2979FF",
			Octavia: "#F5A623",
			Prism:   "#00BCD4",
			Echo:    "#4CAF50",
			Cipher:  "#FF1D6C",
		},
	},
	Spacing: Spacing{XS: 8, SM: 13, MD: 21, LG: 34, XL: 55},
	Gradient: Gradient{
		Angle: 135,
		Stops: [4]Stop{
			{Color: "#F5A623", Offset: 0},
			{Color: "#FF1D6C", Offset: 38.2},
			{Color: "#9C27B0", Offset: 61.8},
			{Color: "#2979FF", Offset: 100},
		},
	},
	FontFamily: "-apple-system, BlinkMacSystemFont, 'SF Pro Display', sans-serif",
	LineHeight: Phi,
}

func init() {
	if err := Validate(defaultRegistry); err != nil {
		panic("tokens: default registry is invalid: " + err.Error())
	}
}

// Default returns the process-wide registry. The result is a copy; nothing a
// caller does to it is visible to other readers.
func Default() Registry {
	return defaultRegistry
}
