// Package table provides the in-memory tabular model shared by both sides of
// a comparison run.
//
// Both the MLS listing extract and the CAMA assessment extract are loaded
// into a Table: an ordered header plus rows of column-to-text mappings. No
// schema is enforced beyond whatever columns the configured rules reference;
// a rule pointing at an absent column simply never fires.
//
// # Loading
//
// ParseCSV handles the formats seen in practice: UTF-8 (with or without BOM),
// UTF-16, and Latin-1, plus ragged rows and blank lines. Cell values stay raw
// text; numeric interpretation happens later in core/compare.
package table
