package export

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/alexisbeaulieu97/brandkit/internal/brand"
)

// DesignTokensSchema is the W3C design tokens community group format URL.
const DesignTokensSchema = "https://design-tokens.github.io/community-group/format/"

type member struct {
	Key   string
	Value any
}

// object is a JSON object that keeps insertion order.
type object []member

func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(m.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeIndentedJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

type jsonExporter struct{}

func (jsonExporter) Format() Format    { return FormatJSON }
func (jsonExporter) Extension() string { return "json" }

// Export writes design tokens JSON. JSON has no comments, so opts.Header is not written.
func (jsonExporter) Export(w io.Writer, sys brand.System, _ Options) error {
	doc := object{{Key: "$schema", Value: DesignTokensSchema}}
	for _, group := range sys.Groups() {
		entries := make(object, 0, len(group.Entries))
		for _, entry := range group.Entries {
			entries = append(entries, member{Key: entry.Name, Value: object{
				{Key: "$value", Value: entry.Value},
				{Key: "$type", Value: tokenType(group.Kind, entry.Name)},
			}})
		}
		doc = append(doc, member{Key: group.Key, Value: entries})
	}
	return writeIndentedJSON(w, doc)
}

func tokenType(kind brand.GroupKind, name string) string {
	switch kind {
	case brand.GroupColor:
		return "color"
	case brand.GroupGradient:
		return "custom-gradient"
	case brand.GroupSpacing:
		return "dimension"
	case brand.GroupRadius:
		return "borderRadius"
	case brand.GroupShadow:
		return "shadow"
	}
	switch {
	case strings.HasPrefix(name, "font-"):
		return "fontFamily"
	case name == "line-height":
		return "number"
	default:
		return "dimension"
	}
}

type tailwindExporter struct{}

func (tailwindExporter) Format() Format    { return FormatTailwind }
func (tailwindExporter) Extension() string { return "js" }

func (tailwindExporter) Export(w io.Writer, sys brand.System, opts Options) error {
	prefix := opts.prefix()

	colors := make(object, 0, len(sys.Colors))
	for _, e := range sys.Colors {
		colors = append(colors, member{Key: strings.ReplaceAll(e.Name, "-", "_"), Value: e.Value})
	}

	fontSans, _ := sys.TypographyValue("font-family")
	fontMono, _ := sys.TypographyValue("font-mono")

	extend := object{
		{Key: "colors", Value: object{{Key: prefix, Value: colors}}},
		{Key: "spacing", Value: prefixed(prefix, sys.Spacing)},
		{Key: "borderRadius", Value: prefixed(prefix, sys.Radii)},
		{Key: "boxShadow", Value: prefixed(prefix, sys.Shadows)},
		{Key: "fontFamily", Value: object{
			{Key: prefix + "-sans", Value: splitFontStack(fontSans)},
			{Key: prefix + "-mono", Value: splitFontStack(fontMono)},
		}},
	}
	cfg := object{{Key: "theme", Value: object{{Key: "extend", Value: extend}}}}

	if opts.Header != "" {
		if _, err := io.WriteString(w, "// "+opts.Header+"\n"); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "module.exports = "); err != nil {
		return err
	}
	return writeIndentedJSON(w, cfg)
}

func prefixed(prefix string, entries []brand.Entry) object {
	out := make(object, 0, len(entries))
	for _, e := range entries {
		out = append(out, member{Key: prefix + "-" + e.Name, Value: e.Value})
	}
	return out
}

func splitFontStack(stack string) []string {
	parts := strings.Split(stack, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
