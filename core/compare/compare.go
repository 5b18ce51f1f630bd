package compare

import (
	"math"
	"strconv"
	"strings"
)

// RelativeTolerance is the fixed relative component of numeric equality.
// The absolute component is carried per run (see reconcile.Config.Tolerance).
const RelativeTolerance = 1e-9

// DefaultTolerance is the default absolute tolerance for numeric equality.
const DefaultTolerance = 0.01

// IsBlank reports whether a raw cell value carries no data: empty after
// trimming whitespace. Absent columns surface here as "" as well.
func IsBlank(v string) bool {
	return strings.TrimSpace(v) == ""
}

// ParseNumber attempts a numeric parse of a raw cell value.
// Blank values do not parse; they are null-equivalent, not zero.
func ParseNumber(v string) (float64, bool) {
	s := strings.TrimSpace(v)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// withinTolerance implements the combined relative-and-absolute closeness
// check: |a-b| <= atol + rtol*|b|.
func withinTolerance(a, b, atol float64) bool {
	return math.Abs(a-b) <= atol+RelativeTolerance*math.Abs(b)
}

// ValuesEqual decides whether two raw values agree under the run's absolute
// tolerance. If both sides are numeric-or-blank, the comparison is numeric:
// two blanks agree, a blank against a number disagrees, and two numbers
// agree when within tolerance. Otherwise both sides degrade to trimmed,
// case-insensitive text.
func ValuesEqual(a, b string, tolerance float64) bool {
	aNum, aOK := ParseNumber(a)
	bNum, bOK := ParseNumber(b)
	aBlank := IsBlank(a)
	bBlank := IsBlank(b)

	if (aOK || aBlank) && (bOK || bBlank) {
		if aBlank && bBlank {
			return true
		}
		if aBlank != bBlank {
			return false
		}
		return withinTolerance(aNum, bNum, tolerance)
	}

	return normalizeText(a) == normalizeText(b)
}

// NumbersEqual compares two already-parsed numbers under the run tolerance.
func NumbersEqual(a, b, tolerance float64) bool {
	return withinTolerance(a, b, tolerance)
}

// ContainsText reports whether the marker text occurs in the raw value,
// honoring case sensitivity. Both sides are trimmed first.
func ContainsText(marker, value string, caseSensitive bool) bool {
	v := strings.TrimSpace(value)
	m := strings.TrimSpace(marker)
	if !caseSensitive {
		v = strings.ToLower(v)
		m = strings.ToLower(m)
	}
	return strings.Contains(v, m)
}

// CategoricalMatch checks a coded CAMA value against the value expected
// given whether the marker text was found on the MLS side. The expected
// value flows through the same numeric-then-text policy as ValuesEqual.
func CategoricalMatch(camaValue, expected string, tolerance float64) bool {
	return ValuesEqual(camaValue, expected, tolerance)
}

func normalizeText(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
