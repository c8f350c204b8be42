package config

import (
	"path/filepath"

	"github.com/alexisbeaulieu97/brandkit/internal/export"
)

const (
	// DefaultVersion is the schema version assumed when a file omits it.
	DefaultVersion  = "1.0"
	DefaultAssetDir = "dist/assets"
	defaultTokenDir = "dist/tokens"
)

// Config represents a brandkit generator configuration document.
type Config struct {
	Version string   `yaml:"version" json:"version" validate:"omitempty,schema_version"`
	Prefix  string   `yaml:"prefix,omitempty" json:"prefix,omitempty" validate:"omitempty,css_ident"`
	Header  *bool    `yaml:"header,omitempty" json:"header,omitempty"`
	Targets []Target `yaml:"targets" json:"targets" validate:"omitempty,dive"`
	Assets  Assets   `yaml:"assets,omitempty" json:"assets,omitempty"`

	// BaseDir is the directory relative target paths resolve against.
	BaseDir string `yaml:"-" json:"-"`
}

// Target is one artifact the generator writes.
type Target struct {
	Format string `yaml:"format" json:"format" validate:"required,export_format"`
	Path   string `yaml:"path" json:"path" validate:"required"`
}

// Assets configures SVG asset output.
type Assets struct {
	Dir string `yaml:"dir,omitempty" json:"dir,omitempty"`
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() *Config {
	header := true
	cfg := &Config{
		Version: DefaultVersion,
		Prefix:  export.DefaultPrefix,
		Header:  &header,
		Assets:  Assets{Dir: DefaultAssetDir},
		BaseDir: ".",
	}
	cfg.Targets = defaultTargets()
	return cfg
}

func defaultTargets() []Target {
	targets := make([]Target, 0, 3)
	for _, format := range []export.Format{export.FormatCSS, export.FormatTailwind, export.FormatJSON} {
		e, err := export.Lookup(string(format))
		if err != nil {
			continue
		}
		targets = append(targets, Target{Format: string(format), Path: filepath.Join(defaultTokenDir, export.DefaultFileName(e))})
	}
	return targets
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	if c.Prefix == "" {
		c.Prefix = export.DefaultPrefix
	}
	if c.Header == nil {
		header := true
		c.Header = &header
	}
	if len(c.Targets) == 0 {
		c.Targets = defaultTargets()
	}
	if c.Assets.Dir == "" {
		c.Assets.Dir = DefaultAssetDir
	}
	if c.BaseDir == "" {
		c.BaseDir = "."
	}
}

// HeaderEnabled reports whether generated files carry a provenance header.
func (c *Config) HeaderEnabled() bool {
	return c.Header == nil || *c.Header
}

// Resolve makes path absolute against BaseDir unless it already is.
func (c *Config) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.BaseDir, path)
}
