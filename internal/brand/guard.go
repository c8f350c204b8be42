package brand

import (
	"fmt"
	"regexp"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/brandkit/internal/tokens"
	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

// Forbidden lists off-brand colors that must never ship in any token.
var Forbidden = []string{"#FF9D00", "#FF6B00", "#FF0066", "#FF006B", "#D600AA", "#7700FF", "#0066FF"}

var hexInValue = regexp.MustCompile(`#[0-9A-Fa-f]{6}\b`)

// CheckRegistry reports the first registry token that uses a forbidden color.
func CheckRegistry(r tokens.Registry) error {
	allowed := brandPalette(r)
	for _, path := range tokens.Paths() {
		value, err := r.Get(path)
		if err != nil {
			return err
		}
		if err := checkValue(path, value.String(), allowed); err != nil {
			return err
		}
	}
	return nil
}

// CheckForbidden reports the first system entry that uses a forbidden color.
func CheckForbidden(s System) error {
	if err := CheckRegistry(s.Registry); err != nil {
		return err
	}
	allowed := brandPalette(s.Registry)
	for _, group := range s.Groups() {
		for _, entry := range group.Entries {
			if err := checkValue(group.Key+"."+entry.Name, entry.Value, allowed); err != nil {
				return err
			}
		}
	}
	return nil
}

// IsForbidden reports whether hex is one of the forbidden colors.
func IsForbidden(hex string) bool {
	for _, f := range Forbidden {
		if strings.EqualFold(f, hex) {
			return true
		}
	}
	return false
}

// Nearest returns the allowed color perceptually closest to hex.
func Nearest(hex string, allowed []string) (string, error) {
	target, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", hex, err)
	}
	best, bestDistance := "", -1.0
	for _, candidate := range allowed {
		c, err := colorful.Hex(candidate)
		if err != nil {
			continue
		}
		if d := target.DistanceCIE76(c); bestDistance < 0 || d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	if best == "" {
		return "", fmt.Errorf("no usable colors to compare %s against", hex)
	}
	return best, nil
}

func checkValue(field, value string, allowed []string) error {
	for _, hex := range hexInValue.FindAllString(value, -1) {
		if !IsForbidden(hex) {
			continue
		}
		msg := fmt.Sprintf("uses forbidden color %s", strings.ToUpper(hex))
		if nearest, err := Nearest(hex, allowed); err == nil {
			msg += fmt.Sprintf(" (nearest brand color is %s)", nearest)
		}
		return brandkiterrors.NewValidationError(field, msg, nil)
	}
	return nil
}

func brandPalette(r tokens.Registry) []string {
	b := r.Colors.Brand
	return []string{b.HotPink, b.ElectricBlue, b.Violet, b.Amber}
}
