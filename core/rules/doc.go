// Package rules defines the declarative field-comparison configuration.
//
// A rule set pairs the join-key mapping with an ordered list of rules, each
// one of three strategies:
//
//   - DirectRule: one MLS column against one CAMA column
//   - SummedRule: one MLS column against the sum of several CAMA columns
//   - CategoricalRule: a text-containment boolean on the MLS side against a
//     coded CAMA value
//
// The built-in Defaults cover the Stark County extract pair; LoadFile reads
// an externalized set from YAML when operators need different columns.
// Rules referencing columns absent from the uploaded data are skipped at
// evaluation time, never rejected at load time.
package rules
