package site

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumberLoose normalizes a raw sensor or threshold value from the store.
// Readings arrive as free-form text ("12.5psi", "1,234 mbar", "--"), so every
// rune outside [0-9.+-] is stripped before conversion. The stripped string is
// handed to the float parser as-is; whatever falls out is accepted when finite
// and nil otherwise. Multi-sign or multi-decimal garbage is not rejected up
// front, only by the parser itself.
func ParseNumberLoose(v *string) *float64 {
	if v == nil {
		return nil
	}
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '+' || r == '-' {
			return r
		}
		return -1
	}, strings.TrimSpace(*v))
	if cleaned == "" {
		return nil
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}

// ToNumber coerces a stored value to a number without stripping. Used on the
// detail page where values are expected to already be numeric text; anything
// that does not parse cleanly (or is empty, or non-finite) becomes nil.
func ToNumber(v *string) *float64 {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}
