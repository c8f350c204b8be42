package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/brandkit/internal/export"
	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

// ValidateConfig checks struct tags and cross-target rules.
func ValidateConfig(cfg *Config) error {
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cfg.Targets))
	for i, target := range cfg.Targets {
		clean := filepath.Clean(target.Path)
		if prev, ok := seen[clean]; ok {
			return brandkiterrors.NewValidationError(fieldForTarget(i, "path"), fmt.Sprintf("duplicate target path %q (also used by targets[%d])", target.Path, prev), nil)
		}
		seen[clean] = i
	}

	return nil
}

// convertValidationError normalizes validator errors into brandkit validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Tag() == "export_format" {
			msg = fmt.Sprintf("unknown format %q (choose from %s)", ve.Value(), strings.Join(export.FormatNames(), ", "))
		}
		return brandkiterrors.NewValidationError(field, msg, err)
	}

	return brandkiterrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForTarget(index int, field string) string {
	return fmt.Sprintf("targets[%d].%s", index, field)
}
