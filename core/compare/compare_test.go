package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValuesEqual_Numeric(t *testing.T) {
	tests := []struct {
		name      string
		a, b      string
		tolerance float64
		want      bool
	}{
		{"Identical integers", "3", "3", 0.01, true},
		{"Within tolerance", "100.00", "100.01", 0.01, true},
		{"Outside tolerance", "100.00", "100.02", 0.01, false},
		{"Both blank", "", "  ", 0.01, true},
		{"Blank vs number", "", "10", 0.01, false},
		{"Number vs blank", "10", "", 0.01, false},
		{"Negative values", "-5.5", "-5.5", 0.01, true},
		{"Zero vs zero", "0", "0.00", 0.01, true},
		{"Tight tolerance", "1.0", "1.001", 0.0001, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValuesEqual(tt.a, tt.b, tt.tolerance))
		})
	}
}

func TestValuesEqual_Text(t *testing.T) {
	assert.True(t, ValuesEqual("Canton", "canton", 0.01))
	assert.True(t, ValuesEqual("  Canton ", "CANTON", 0.01))
	assert.False(t, ValuesEqual("Canton", "Alliance", 0.01))
	// One numeric, one text: falls through to text comparison.
	assert.False(t, ValuesEqual("5", "five", 0.01))
	// Blank vs text is a text comparison, not a numeric one.
	assert.False(t, ValuesEqual("", "five", 0.01))
}

func TestValuesEqual_Reflexive(t *testing.T) {
	for _, v := range []string{"0", "1234.56", "-9", "Central Air", "", "  "} {
		assert.True(t, ValuesEqual(v, v, 0.01), "valuesEqual(%q, %q)", v, v)
	}
}

func TestValuesEqual_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"100.00", "100.01"},
		{"100.00", "100.02"},
		{"", "10"},
		{"abc", "ABC"},
		{"5", "five"},
	}
	for _, p := range pairs {
		assert.Equal(t,
			ValuesEqual(p[0], p[1], 0.01),
			ValuesEqual(p[1], p[0], 0.01),
			"symmetry for %q vs %q", p[0], p[1])
	}
}

func TestContainsText(t *testing.T) {
	assert.True(t, ContainsText("Central Air", "Central Air, Ceiling Fan", false))
	assert.True(t, ContainsText("central air", "CENTRAL AIR", false))
	assert.False(t, ContainsText("Central Air", "None", false))
	assert.False(t, ContainsText("central air", "Central Air", true))
	assert.True(t, ContainsText("Central Air", "Central Air", true))
}

func TestCategoricalMatch(t *testing.T) {
	// Coded numeric values under tolerance.
	assert.True(t, CategoricalMatch("1", "1", 0.01))
	assert.False(t, CategoricalMatch("1", "0", 0.01))
	// Text-coded values degrade to case-insensitive strings.
	assert.True(t, CategoricalMatch("YES", "yes", 0.01))
	assert.False(t, CategoricalMatch("yes", "no", 0.01))
}

func TestParseNumber(t *testing.T) {
	_, ok := ParseNumber("")
	assert.False(t, ok)
	_, ok = ParseNumber("abc")
	assert.False(t, ok)

	f, ok := ParseNumber(" 42.5 ")
	assert.True(t, ok)
	assert.Equal(t, 42.5, f)
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   "))
	assert.True(t, IsBlank("\t\n"))
	assert.False(t, IsBlank("0"))
	assert.False(t, IsBlank("x"))
}

func TestDifference(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"Simple", "800", "750", "50.00"},
		{"Negative", "750", "800", "-50.00"},
		{"Thousands separated", "125000", "100000", "25,000.00"},
		{"Blank side", "", "10", "N/A"},
		{"Both blank", "", "", "N/A"},
		{"Non-numeric", "Central Air", "1", "Text difference"},
		{"Both text", "abc", "def", "Text difference"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Difference(tt.a, tt.b))
		})
	}
}
