package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk, validates it, and returns
// the resulting model with defaults applied. YAML (.yaml, .yml) and JSON with
// comments (.json, .jsonc) are accepted.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, brandkiterrors.NewParseError(path, 0, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(data, &cfg)
		if err != nil {
			return nil, brandkiterrors.NewParseError(path, extractLine(err), err)
		}
	case ".json", ".jsonc":
		err = decodeJSONC(data, &cfg)
		if err != nil {
			return nil, brandkiterrors.NewParseError(path, 0, err)
		}
	default:
		return nil, brandkiterrors.NewValidationError("config", fmt.Sprintf("unsupported configuration file extension %q", ext), nil)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	cfg.BaseDir = filepath.Dir(path)
	cfg.ApplyDefaults()
	return &cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// decodeJSONC strips comments and trailing commas before strict JSON decoding.
func decodeJSONC(data []byte, cfg *Config) error {
	std, err := hujson.Standardize(data)
	if err != nil {
		return fmt.Errorf("standardize jsonc: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(std))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
