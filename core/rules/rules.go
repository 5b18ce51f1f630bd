package rules

import (
	"fmt"
	"strings"
)

// Kind discriminates the three field-comparison strategies.
type Kind string

const (
	KindDirect      Kind = "direct"
	KindSummed      Kind = "summed"
	KindCategorical Kind = "categorical"
)

// KeyMapping pairs the unique-identifier column in each source.
// Identifiers are assumed unique within each extract.
type KeyMapping struct {
	// MLSColumn is the parcel identifier column in the listing extract.
	MLSColumn string `yaml:"mls"`
	// CAMAColumn is the parcel identifier column in the assessment extract.
	CAMAColumn string `yaml:"cama"`
}

// Rule is one field-comparison rule. The concrete types DirectRule,
// SummedRule, and CategoricalRule are the only implementations; the engine
// dispatches on them exhaustively, so a new strategy is a new type here plus
// one new case there.
type Rule interface {
	// Kind identifies the comparison strategy.
	Kind() Kind
	// MLSField is the listing-side column the rule reads.
	MLSField() string
	// CAMALabel is the assessment-side column (or column expression) as it
	// appears in mismatch reports.
	CAMALabel() string
}

// DirectRule compares one MLS column against one CAMA column.
type DirectRule struct {
	MLS  string
	CAMA string
}

func (r DirectRule) Kind() Kind        { return KindDirect }
func (r DirectRule) MLSField() string  { return r.MLS }
func (r DirectRule) CAMALabel() string { return r.CAMA }

// SummedRule compares one MLS column against the sum of several CAMA
// columns.
type SummedRule struct {
	MLS        string
	CAMAFields []string
}

func (r SummedRule) Kind() Kind       { return KindSummed }
func (r SummedRule) MLSField() string { return r.MLS }

// CAMALabel renders the summed columns the way they appear in reports,
// e.g. "SUM(RECROMAREA, FINBSMTAREA, UFEATAREA)".
func (r SummedRule) CAMALabel() string {
	return fmt.Sprintf("SUM(%s)", strings.Join(r.CAMAFields, ", "))
}

// CategoricalRule derives a boolean from text containment on the MLS side
// and checks the CAMA side against the coded value expected for that
// boolean.
type CategoricalRule struct {
	MLS             string
	CAMA            string
	ContainsText    string
	ExpectedIfTrue  string
	ExpectedIfFalse string
	CaseSensitive   bool
}

func (r CategoricalRule) Kind() Kind        { return KindCategorical }
func (r CategoricalRule) MLSField() string  { return r.MLS }
func (r CategoricalRule) CAMALabel() string { return r.CAMA }

// Expected returns the CAMA value expected given whether the marker text
// was found on the MLS side.
func (r CategoricalRule) Expected(textFound bool) string {
	if textFound {
		return r.ExpectedIfTrue
	}
	return r.ExpectedIfFalse
}

// Describe renders the rule as the human-readable sentence carried on
// mismatch entries.
func (r CategoricalRule) Describe() string {
	return fmt.Sprintf("If '%s' in %s, then %s should be %s, else %s",
		r.ContainsText, r.MLS, r.CAMA, r.ExpectedIfTrue, r.ExpectedIfFalse)
}

// Set is a complete rule configuration: the join key mapping plus the
// ordered list of field rules. Evaluation order is list order.
type Set struct {
	Key   KeyMapping
	Rules []Rule
}

// Validate rejects structurally unusable rule sets. Rules referencing
// columns absent from the data are fine (they skip at evaluation time);
// rules with no field names at all are configuration mistakes.
func (s *Set) Validate() error {
	if s.Key.MLSColumn == "" || s.Key.CAMAColumn == "" {
		return fmt.Errorf("key mapping requires both mls and cama columns")
	}
	for i, r := range s.Rules {
		if r.MLSField() == "" {
			return fmt.Errorf("rule %d: missing mls field", i)
		}
		switch rr := r.(type) {
		case DirectRule:
			if rr.CAMA == "" {
				return fmt.Errorf("rule %d: direct rule missing cama field", i)
			}
		case SummedRule:
			if len(rr.CAMAFields) == 0 {
				return fmt.Errorf("rule %d: summed rule has no cama fields", i)
			}
		case CategoricalRule:
			if rr.CAMA == "" {
				return fmt.Errorf("rule %d: categorical rule missing cama field", i)
			}
			if rr.ContainsText == "" {
				return fmt.Errorf("rule %d: categorical rule missing contains text", i)
			}
		default:
			return fmt.Errorf("rule %d: unknown rule type %T", i, r)
		}
	}
	return nil
}
