// Package compare holds the pure value-comparison primitives used by the
// reconciliation engine.
//
// A cell from either extract is raw text. Comparison first attempts a
// numeric reading of both sides; when both are numeric (or blank, which is
// null-equivalent), equality is a combined relative/absolute tolerance
// check. When either side is non-numeric text, equality degrades to trimmed
// case-insensitive string comparison. Nothing in this package returns an
// error: malformed data degrades, it never aborts a run.
package compare
