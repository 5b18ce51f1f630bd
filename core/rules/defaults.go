package rules

// Default column names for the Stark County MLS/CAMA extract pair.
const (
	DefaultMLSKeyColumn  = "Parcel Number"
	DefaultCAMAKeyColumn = "PARID"
)

// Defaults returns the built-in rule set for the Stark County extract pair:
// four direct field comparisons, one summed below-grade-area comparison,
// and one categorical central-air check. Direct rules run first, then
// summed, then categorical.
func Defaults() *Set {
	return &Set{
		Key: KeyMapping{
			MLSColumn:  DefaultMLSKeyColumn,
			CAMAColumn: DefaultCAMAKeyColumn,
		},
		Rules: []Rule{
			DirectRule{MLS: "Above Grade Finished Area", CAMA: "SFLA"},
			DirectRule{MLS: "Bedrooms Total", CAMA: "RMBED"},
			DirectRule{MLS: "Bathrooms Full", CAMA: "FIXBATH"},
			DirectRule{MLS: "Bathrooms Half", CAMA: "FIXHALF"},
			SummedRule{
				MLS:        "Below Grade Finished Area",
				CAMAFields: []string{"RECROMAREA", "FINBSMTAREA", "UFEATAREA"},
			},
			CategoricalRule{
				MLS:             "Cooling",
				CAMA:            "HEAT",
				ContainsText:    "Central Air",
				ExpectedIfTrue:  "1",
				ExpectedIfFalse: "0",
				CaseSensitive:   false,
			},
		},
	}
}
