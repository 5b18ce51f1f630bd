// Package report renders comparison results as a downloadable bundle.
//
// Build produces a ZIP archive containing one date-stamped CSV per
// non-empty result set (missing in CAMA, missing in MLS, value mismatches,
// perfect matches, city statistics). Link columns carry the full URLs so
// the reports stay addressable after export.
package report
