package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	set := Defaults()

	assert.Equal(t, "Parcel Number", set.Key.MLSColumn)
	assert.Equal(t, "PARID", set.Key.CAMAColumn)
	require.Len(t, set.Rules, 6)
	require.NoError(t, set.Validate())

	// Direct rules first, then summed, then categorical.
	kinds := make([]Kind, 0, len(set.Rules))
	for _, r := range set.Rules {
		kinds = append(kinds, r.Kind())
	}
	assert.Equal(t, []Kind{
		KindDirect, KindDirect, KindDirect, KindDirect,
		KindSummed, KindCategorical,
	}, kinds)
}

func TestSummedRule_CAMALabel(t *testing.T) {
	r := SummedRule{MLS: "Below Grade Finished Area", CAMAFields: []string{"RECROMAREA", "FINBSMTAREA", "UFEATAREA"}}
	assert.Equal(t, "SUM(RECROMAREA, FINBSMTAREA, UFEATAREA)", r.CAMALabel())
}

func TestCategoricalRule_Describe(t *testing.T) {
	r := CategoricalRule{
		MLS:             "Cooling",
		CAMA:            "HEAT",
		ContainsText:    "Central Air",
		ExpectedIfTrue:  "1",
		ExpectedIfFalse: "0",
	}
	assert.Equal(t,
		"If 'Central Air' in Cooling, then HEAT should be 1, else 0",
		r.Describe())
	assert.Equal(t, "1", r.Expected(true))
	assert.Equal(t, "0", r.Expected(false))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		set     Set
		wantErr bool
	}{
		{
			name: "Valid",
			set: Set{
				Key:   KeyMapping{MLSColumn: "A", CAMAColumn: "B"},
				Rules: []Rule{DirectRule{MLS: "X", CAMA: "Y"}},
			},
		},
		{
			name:    "Missing key mapping",
			set:     Set{Rules: []Rule{DirectRule{MLS: "X", CAMA: "Y"}}},
			wantErr: true,
		},
		{
			name: "Direct rule without cama",
			set: Set{
				Key:   KeyMapping{MLSColumn: "A", CAMAColumn: "B"},
				Rules: []Rule{DirectRule{MLS: "X"}},
			},
			wantErr: true,
		},
		{
			name: "Summed rule without components",
			set: Set{
				Key:   KeyMapping{MLSColumn: "A", CAMAColumn: "B"},
				Rules: []Rule{SummedRule{MLS: "X"}},
			},
			wantErr: true,
		},
		{
			name: "Categorical rule without marker",
			set: Set{
				Key:   KeyMapping{MLSColumn: "A", CAMAColumn: "B"},
				Rules: []Rule{CategoricalRule{MLS: "X", CAMA: "Y"}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	in := []byte(`
key:
  mls: Parcel Number
  cama: PARID
rules:
  - kind: direct
    mls: Above Grade Finished Area
    cama: SFLA
  - kind: summed
    mls: Below Grade Finished Area
    cama_fields: [RECROMAREA, FINBSMTAREA, UFEATAREA]
  - kind: categorical
    mls: Cooling
    cama: HEAT
    contains: Central Air
    expected_if_true: 1
    expected_if_false: 0
    case_sensitive: false
`)

	set, err := Parse(in)
	require.NoError(t, err)
	require.Len(t, set.Rules, 3)

	direct, ok := set.Rules[0].(DirectRule)
	require.True(t, ok)
	assert.Equal(t, "SFLA", direct.CAMA)

	summed, ok := set.Rules[1].(SummedRule)
	require.True(t, ok)
	assert.Len(t, summed.CAMAFields, 3)

	cat, ok := set.Rules[2].(CategoricalRule)
	require.True(t, ok)
	// Numeric codes in YAML flow through as strings for the comparator.
	assert.Equal(t, "1", cat.ExpectedIfTrue)
	assert.Equal(t, "0", cat.ExpectedIfFalse)
	assert.False(t, cat.CaseSensitive)
}

func TestParse_UnknownKind(t *testing.T) {
	_, err := Parse([]byte("key:\n  mls: A\n  cama: B\nrules:\n  - kind: fuzzy\n    mls: X\n"))
	assert.Error(t, err)
}
