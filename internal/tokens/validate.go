package tokens

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

// RatioTolerance is how far (relative) each spacing step may stray from Phi.
const RatioTolerance = 0.05

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hex6Pattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// IsHex6 reports whether s is a '#'-prefixed six digit hex color.
func IsHex6(s string) bool {
	return hex6Pattern.MatchString(s)
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("hex6", func(fl validator.FieldLevel) bool {
			return IsHex6(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validator exposes the shared validator so other packages can reuse the hex6 tag.
func Validator() *validator.Validate {
	return validatorInstance()
}

// Validate checks every registry invariant: color format, a strictly
// increasing golden-ratio spacing scale, the exact line height and the
// golden gradient stops.
func Validate(r Registry) error {
	if err := validatorInstance().Struct(r); err != nil {
		return convertValidationError(err)
	}
	if err := validateSpacing(r.Spacing); err != nil {
		return err
	}
	if r.LineHeight != Phi {
		return brandkiterrors.NewValidationError("lineHeight", fmt.Sprintf("must equal %v, got %v", Phi, r.LineHeight), nil)
	}
	return validateGradient(r.Gradient)
}

func validateSpacing(s Spacing) error {
	tiers := s.Tiers()
	for i := 1; i < len(tiers); i++ {
		prev, cur := tiers[i-1], tiers[i]
		field := "spacing." + cur.Name
		if cur.Pixels <= prev.Pixels {
			return brandkiterrors.NewValidationError(field, fmt.Sprintf("must exceed spacing.%s (%d), got %d", prev.Name, prev.Pixels, cur.Pixels), nil)
		}
		ratio := float64(cur.Pixels) / float64(prev.Pixels)
		if math.Abs(ratio-Phi)/Phi > RatioTolerance {
			return brandkiterrors.NewValidationError(field, fmt.Sprintf("ratio to spacing.%s is %.3f, want within %.0f%% of %v", prev.Name, ratio, RatioTolerance*100, Phi), nil)
		}
	}
	return nil
}

func validateGradient(g Gradient) error {
	for i, stop := range g.Stops {
		if stop.Offset != GoldenStops[i] {
			return brandkiterrors.NewValidationError(fmt.Sprintf("gradient.stops[%d].offset", i), fmt.Sprintf("must be %v%%, got %v%%", GoldenStops[i], stop.Offset), nil)
		}
	}
	return nil
}

// convertValidationError normalizes validator errors into ValidationErrors keyed by token path.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := tokenPath(ve)
		msg := fmt.Sprintf("%q failed validation for tag '%s'", ve.Value(), ve.Tag())
		return brandkiterrors.NewValidationError(field, msg, err)
	}

	return brandkiterrors.NewValidationError("registry", err.Error(), err)
}

func tokenPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		ns = ns[idx+1:]
	}
	parts := strings.Split(ns, ".")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToLower(part[:1]) + part[1:]
	}
	return strings.Join(parts, ".")
}
