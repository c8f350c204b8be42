package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/brandkit/internal/export"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	schemaVersionPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?$`)
	cssIdentPattern      = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("schema_version", func(fl validator.FieldLevel) bool {
			return schemaVersionPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("css_ident", func(fl validator.FieldLevel) bool {
			return cssIdentPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("export_format", func(fl validator.FieldLevel) bool {
			_, err := export.Lookup(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}
