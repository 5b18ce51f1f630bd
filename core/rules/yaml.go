package rules

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"parcel-recon/core/utils"
)

// ruleSpec is the YAML shape of one rule entry; the kind field selects which
// of the remaining fields apply.
type ruleSpec struct {
	Kind            string   `yaml:"kind"`
	MLS             string   `yaml:"mls"`
	CAMA            string   `yaml:"cama"`
	CAMAFields      []string `yaml:"cama_fields"`
	Contains        string   `yaml:"contains"`
	ExpectedIfTrue  any      `yaml:"expected_if_true"`
	ExpectedIfFalse any      `yaml:"expected_if_false"`
	CaseSensitive   bool     `yaml:"case_sensitive"`
}

type setSpec struct {
	Key   KeyMapping `yaml:"key"`
	Rules []ruleSpec `yaml:"rules"`
}

// LoadFile reads an externalized rule set from a YAML file.
// Rule order in the file is evaluation order.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML rule set.
func Parse(data []byte) (*Set, error) {
	var spec setSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}

	set := &Set{Key: spec.Key}
	for i, rs := range spec.Rules {
		switch Kind(rs.Kind) {
		case KindDirect:
			set.Rules = append(set.Rules, DirectRule{MLS: rs.MLS, CAMA: rs.CAMA})
		case KindSummed:
			set.Rules = append(set.Rules, SummedRule{MLS: rs.MLS, CAMAFields: rs.CAMAFields})
		case KindCategorical:
			set.Rules = append(set.Rules, CategoricalRule{
				MLS:             rs.MLS,
				CAMA:            rs.CAMA,
				ContainsText:    rs.Contains,
				ExpectedIfTrue:  utils.ToString(rs.ExpectedIfTrue),
				ExpectedIfFalse: utils.ToString(rs.ExpectedIfFalse),
				CaseSensitive:   rs.CaseSensitive,
			})
		default:
			return nil, fmt.Errorf("rule %d: unknown kind %q", i, rs.Kind)
		}
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}
