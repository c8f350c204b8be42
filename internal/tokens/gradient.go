package tokens

import (
	"encoding/json"
	"strconv"
	"strings"
)

// GoldenStops are the stop offsets (percent) of the brand gradient: 0, 1-1/φ, 1/φ, 100.
var GoldenStops = [4]float64{0, 38.2, 61.8, 100}

// Stop is one color stop of a linear gradient.
type Stop struct {
	Color  string  `json:"color" yaml:"color" validate:"hex6"`
	Offset float64 `json:"offset" yaml:"offset" validate:"gte=0,lte=100"`
}

// Gradient is a linear gradient with a fixed number of stops. It is stored
// structurally and formatted at the rendering boundary.
type Gradient struct {
	Angle float64 `validate:"gte=0,lt=360"`
	Stops [4]Stop `validate:"dive"`
}

// CSS formats the gradient as a CSS linear-gradient() value.
func (g Gradient) CSS() string {
	var b strings.Builder
	b.WriteString("linear-gradient(")
	b.WriteString(formatNumber(g.Angle))
	b.WriteString("deg")
	for _, stop := range g.Stops {
		b.WriteString(", ")
		b.WriteString(stop.Color)
		b.WriteString(" ")
		b.WriteString(formatNumber(stop.Offset))
		b.WriteString("%")
	}
	b.WriteString(")")
	return b.String()
}

// String implements fmt.Stringer.
func (g Gradient) String() string {
	return g.CSS()
}

// MarshalJSON encodes the gradient as its CSS string, matching the exported token shape.
func (g Gradient) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.CSS())
}

// MarshalYAML encodes the gradient as its CSS string.
func (g Gradient) MarshalYAML() (interface{}, error) {
	return g.CSS(), nil
}

// Colors returns the stop colors in order.
func (g Gradient) Colors() []string {
	out := make([]string, len(g.Stops))
	for i, stop := range g.Stops {
		out[i] = stop.Color
	}
	return out
}

// Offsets returns the stop offsets in order.
func (g Gradient) Offsets() []float64 {
	out := make([]float64, len(g.Stops))
	for i, stop := range g.Stops {
		out[i] = stop.Offset
	}
	return out
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
