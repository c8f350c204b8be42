package tokens

import (
	"strconv"
	"strings"

	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

// Kind identifies the type held by a Value.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
)

// Value is a single token value as returned by Get.
type Value struct {
	Kind  Kind
	Str   string
	Int   int
	Float float64
}

func stringValue(s string) Value { return Value{Kind: KindString, Str: s} }
func intValue(i int) Value       { return Value{Kind: KindInt, Int: i} }
func floatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// String renders the value the way it is written in CSS and on the command line.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.Itoa(v.Int)
	case KindFloat:
		return formatNumber(v.Float)
	default:
		return v.Str
	}
}

// Interface returns the underlying string, int or float64.
func (v Value) Interface() any {
	switch v.Kind {
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Float
	default:
		return v.Str
	}
}

type accessor struct {
	path string
	read func(Registry) Value
}

// accessors is the closed set of declared paths, in export order.
var accessors = []accessor{
	{"colors.brand.hotPink", func(r Registry) Value { return stringValue(r.Colors.Brand.HotPink) }},
	{"colors.brand.electricBlue", func(r Registry) Value { return stringValue(r.Colors.Brand.ElectricBlue) }},
	{"colors.brand.violet", func(r Registry) Value { return stringValue(r.Colors.Brand.Violet) }},
	{"colors.brand.amber", func(r Registry) Value { return stringValue(r.Colors.Brand.Amber) }},
	{"colors.agents.lucidia", func(r Registry) Value { return stringValue(r.Colors.Agents.Lucidia) }},
	{"colors.agents.alice", func(r Registry) Value { return stringValue(r.Colors.Agents.Alice) }},
	{"colors.agents.octavia", func(r Registry) Value { return stringValue(r.Colors.Agents.Octavia) }},
	{"colors.agents.prism", func(r Registry) Value { return stringValue(r.Colors.Agents.Prism) }},
	{"colors.agents.echo", func(r Registry) Value { return stringValue(r.Colors.Agents.Echo) }},
	{"colors.agents.cipher", func(r Registry) Value { return stringValue(r.Colors.Agents.Cipher) }},
	{"spacing.xs", func(r Registry) Value { return intValue(r.Spacing.XS) }},
	{"spacing.sm", func(r Registry) Value { return intValue(r.Spacing.SM) }},
	{"spacing.md", func(r Registry) Value { return intValue(r.Spacing.MD) }},
	{"spacing.lg", func(r Registry) Value { return intValue(r.Spacing.LG) }},
	{"spacing.xl", func(r Registry) Value { return intValue(r.Spacing.XL) }},
	{"gradient", func(r Registry) Value { return stringValue(r.Gradient.CSS()) }},
	{"fontFamily", func(r Registry) Value { return stringValue(r.FontFamily) }},
	{"lineHeight", func(r Registry) Value { return floatValue(r.LineHeight) }},
}

var accessorIndex = func() map[string]accessor {
	index := make(map[string]accessor, len(accessors))
	for _, a := range accessors {
		index[a.path] = a
	}
	return index
}()

var groups = map[string]struct{}{
	"colors":        {},
	"colors.brand":  {},
	"colors.agents": {},
	"spacing":       {},
}

// Get resolves a dotted path such as "colors.brand.hotPink" against the registry.
func (r Registry) Get(path string) (Value, error) {
	if a, ok := accessorIndex[path]; ok {
		return a.read(r), nil
	}
	return Value{}, brandkiterrors.NewLookupError(path, scopeOf(path))
}

// Get resolves a dotted path against the default registry.
func Get(path string) (Value, error) {
	return defaultRegistry.Get(path)
}

// Paths lists every declared path in a stable order.
func Paths() []string {
	out := make([]string, len(accessors))
	for i, a := range accessors {
		out[i] = a.path
	}
	return out
}

// scopeOf returns the deepest declared group that path falls under, or "".
func scopeOf(path string) string {
	for {
		idx := strings.LastIndex(path, ".")
		if idx < 0 {
			return ""
		}
		path = path[:idx]
		if _, ok := groups[path]; ok {
			return path
		}
	}
}

// AgentNames lists the agent identifiers in declaration order.
func AgentNames() []string {
	return []string{"lucidia", "alice", "octavia", "prism", "echo", "cipher"}
}

// Lookup returns the color of the named agent.
func (a AgentColors) Lookup(name string) (string, error) {
	switch name {
	case "lucidia":
		return a.Lucidia, nil
	case "alice":
		return a.Alice, nil
	case "octavia":
		return a.Octavia, nil
	case "prism":
		return a.Prism, nil
	case "echo":
		return a.Echo, nil
	case "cipher":
		return a.Cipher, nil
	default:
		return "", brandkiterrors.NewLookupError("colors.agents."+name, "colors.agents")
	}
}
