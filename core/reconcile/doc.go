// Package reconcile implements the record-matching and field-reconciliation
// engine at the heart of parcel-recon.
//
// A run takes two in-memory tables — the MLS listing extract and the CAMA
// assessment extract — joins them on the configured parcel identifier
// mapping, evaluates every configured field rule against every joined
// record, and classifies the outcome into five result sets:
//
//   - missing in CAMA (listing with no assessment record)
//   - missing in MLS (assessment record with no listing)
//   - value mismatches (one entry per failing rule per record)
//   - the matched-join projection (used for statistics)
//   - perfect matches (every applicable rule passed, at least one applied)
//
// A joined record never lands in both the mismatch and perfect-match sets,
// and a record where no rule applied (all blank or zero-skipped) lands in
// neither.
//
// # Failure policy
//
// Failures recover at the lowest possible level. A value that fails numeric
// parsing degrades to a text comparison or a sentinel difference; a rule
// referencing an absent column skips silently for every row; only a missing
// key column fails the run, and it still returns empty result sets rather
// than panicking.
//
// # Determinism
//
// The engine is a pure function of its inputs. Rule evaluation follows
// configuration order, result sets follow join iteration order (MLS source
// order, then unmatched CAMA rows), and two runs over identical inputs
// produce identical output.
package reconcile
