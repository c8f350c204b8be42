package export

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/brandkit/internal/tokens"
	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

const gradientBarHeight = 4

// AssetSpec describes one SVG brand asset.
type AssetSpec struct {
	Name       string `validate:"required"`
	Width      int    `validate:"gt=0"`
	Height     int    `validate:"gt=4"`
	Background string `validate:"hex6"`
	Text       string
	TextColor  string `validate:"omitempty,hex6"`
}

// StandardAssets is the asset set every release ships.
func StandardAssets() []AssetSpec {
	brandColors := tokens.Default().Colors.Brand
	return []AssetSpec{
		{Name: "logo-dark", Width: 200, Height: 60, Background: "#000000", Text: "BLACKROAD", TextColor: brandColors.Amber},
		{Name: "logo-light", Width: 200, Height: 60, Background: "#FFFFFF", Text: "BLACKROAD", TextColor: "#000000"},
		{Name: "icon-32", Width: 32, Height: 32, Background: "#000000"},
		{Name: "icon-64", Width: 64, Height: 64, Background: "#000000"},
		{Name: "og-image", Width: 1200, Height: 630, Background: "#000000", Text: "BlackRoad OS", TextColor: "#FFFFFF"},
		{Name: "favicon", Width: 16, Height: 16, Background: "#000000"},
	}
}

// RenderSVG draws spec: a background, a gradient bar along the bottom edge and
// optional centered text.
func RenderSVG(spec AssetSpec, gradient tokens.Gradient) ([]byte, error) {
	if err := tokens.Validator().Struct(spec); err != nil {
		return nil, brandkiterrors.NewValidationError("asset."+spec.Name, err.Error(), err)
	}

	textColor := spec.TextColor
	if textColor == "" {
		textColor = tokens.Default().Colors.Brand.HotPink
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n", spec.Width, spec.Height, spec.Width, spec.Height)
	b.WriteString("  <defs>\n")
	b.WriteString(`    <linearGradient id="brand" x1="0%" y1="0%" x2="100%" y2="100%">` + "\n")
	for _, stop := range gradient.Stops {
		fmt.Fprintf(&b, `      <stop offset="%s%%" style="stop-color:%s;stop-opacity:1"/>`+"\n", strconv.FormatFloat(stop.Offset, 'f', -1, 64), stop.Color)
	}
	b.WriteString("    </linearGradient>\n")
	b.WriteString("  </defs>\n")
	fmt.Fprintf(&b, `  <rect width="%d" height="%d" fill="%s"/>`+"\n", spec.Width, spec.Height, spec.Background)
	fmt.Fprintf(&b, `  <rect x="0" y="%d" width="%d" height="%d" fill="url(#brand)"/>`+"\n", spec.Height-gradientBarHeight, spec.Width, gradientBarHeight)
	if strings.TrimSpace(spec.Text) != "" {
		var text strings.Builder
		if err := xml.EscapeText(&text, []byte(spec.Text)); err != nil {
			return nil, err
		}
		fmt.Fprintf(&b, `  <text x="%d" y="%d" font-family="SF Pro Display, sans-serif" font-size="24" font-weight="700" fill="%s" text-anchor="middle">%s</text>`+"\n",
			spec.Width/2, spec.Height/2+8, textColor, text.String())
	}
	b.WriteString("</svg>\n")
	return b.Bytes(), nil
}

// WriteAssets renders specs into dir as <name>.svg and returns the written paths.
func WriteAssets(dir string, specs []AssetSpec, gradient tokens.Gradient) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, brandkiterrors.NewExportError("svg", dir, err)
	}
	written := make([]string, 0, len(specs))
	for _, spec := range specs {
		data, err := RenderSVG(spec, gradient)
		if err != nil {
			return written, err
		}
		path := filepath.Join(dir, spec.Name+".svg")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, brandkiterrors.NewExportError("svg", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
