// Package money converts between human-entered decimal amounts in
// major units and exact integer counts of minor units (cents).
//
// All parsing goes through shopspring/decimal so that inputs with up
// to two fractional digits convert exactly; there is no floating-point
// step anywhere on the path. Inputs with more than two fractional
// digits are rounded half away from zero ("10.555" parses to 1056).
package money

import (
	"fmt"
	"math"
	"strings"

	"github.com/ignamartinoli/banking-ui/internal/apperrors"
	"github.com/shopspring/decimal"
)

var maxCents = decimal.NewFromInt(math.MaxInt64)
var minCents = decimal.NewFromInt(math.MinInt64)

// ParseMajorToMinor converts a user-facing decimal string such as
// "10.50" into cents. It trims surrounding whitespace and accepts a
// decimal comma as an alias for the decimal point. Empty or
// non-numeric input yields an error wrapping apperrors.ErrValidation.
func ParseMajorToMinor(text string) (int64, error) {
	s := strings.TrimSpace(text)
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0, fmt.Errorf("%w: amount is empty", apperrors.ErrValidation)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a valid amount", apperrors.ErrValidation, text)
	}

	// Shift is exact; Round(0) is half away from zero.
	cents := d.Shift(2).Round(0)
	if cents.GreaterThan(maxCents) || cents.LessThan(minCents) {
		return 0, fmt.Errorf("%w: amount %q is out of range", apperrors.ErrValidation, text)
	}
	return cents.IntPart(), nil
}

// FormatMinorToMajor renders cents as a fixed two-fractional-digit
// decimal string ("1050" cents -> "10.50"). It is the exact left
// inverse of ParseMajorToMinor at the printed precision.
func FormatMinorToMajor(cents int64) string {
	return decimal.NewFromInt(cents).Shift(-2).StringFixed(2)
}

// IsValidNonNegativeAmount reports whether cents is usable as an
// initial account balance.
func IsValidNonNegativeAmount(cents int64) bool {
	return cents >= 0
}

// IsValidPositiveAmount reports whether cents is usable as a deposit
// or transfer amount.
func IsValidPositiveAmount(cents int64) bool {
	return cents > 0
}
