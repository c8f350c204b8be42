// Package export renders the brand system into the artifact formats consumed
// by web builds: CSS custom properties, SCSS variables, a Tailwind config,
// design-token JSON, YAML and SVG brand assets.
package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/brandkit/internal/brand"
	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

// Format names a token artifact format.
type Format string

const (
	FormatCSS      Format = "css"
	FormatSCSS     Format = "scss"
	FormatTailwind Format = "tailwind"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// DefaultPrefix namespaces generated identifiers.
const DefaultPrefix = "br"

// Options tunes a single export.
type Options struct {
	// Prefix namespaces variables and Tailwind keys. Empty means DefaultPrefix.
	Prefix string
	// Header is written as a leading comment where the format allows comments.
	Header string
}

func (o Options) prefix() string {
	if o.Prefix == "" {
		return DefaultPrefix
	}
	return o.Prefix
}

// Exporter writes the brand system in one format. Output must be deterministic.
type Exporter interface {
	Format() Format
	Extension() string
	Export(w io.Writer, sys brand.System, opts Options) error
}

var exporters = []Exporter{
	cssExporter{},
	scssExporter{},
	tailwindExporter{},
	jsonExporter{},
	yamlExporter{},
}

// Formats lists the supported formats in their canonical order.
func Formats() []Format {
	out := make([]Format, len(exporters))
	for i, e := range exporters {
		out[i] = e.Format()
	}
	return out
}

// FormatNames is Formats as plain strings.
func FormatNames() []string {
	formats := Formats()
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = string(f)
	}
	return out
}

// Lookup returns the exporter registered for name.
func Lookup(name string) (Exporter, error) {
	for _, e := range exporters {
		if string(e.Format()) == strings.ToLower(strings.TrimSpace(name)) {
			return e, nil
		}
	}
	return nil, brandkiterrors.NewExportError(name, "", fmt.Errorf("unsupported format (choose from %s)", strings.Join(FormatNames(), ", ")))
}

// Render runs e into memory.
func Render(e Exporter, sys brand.System, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Export(&buf, sys, opts); err != nil {
		return nil, brandkiterrors.NewExportError(string(e.Format()), "", err)
	}
	return buf.Bytes(), nil
}

// DefaultFileName is the file a format is written to when no path is configured.
func DefaultFileName(e Exporter) string {
	return "br-tokens." + e.Extension()
}

// WriteFile renders e and writes the result to path, creating parent directories.
func WriteFile(e Exporter, sys brand.System, opts Options, path string) error {
	data, err := Render(e, sys, opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return brandkiterrors.NewExportError(string(e.Format()), path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return brandkiterrors.NewExportError(string(e.Format()), path, err)
	}
	return nil
}
