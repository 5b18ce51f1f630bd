// Package comparison implements the MLS/CAMA comparison feature.
//
// It accepts the two property extracts, runs the reconciliation engine over
// them, and returns either the classified results as JSON or a ZIP bundle of
// CSV reports.
//
// # Sources
//
// The MLS extract always arrives as an uploaded CSV. The CAMA extract
// arrives the same way, or, when the database source is enabled, is read
// directly from the configured assessment table.
//
// # Components
//
//   - Service: Parses the extracts, applies per-request overrides, runs the
//     engine, renders report bundles, and optionally archives them.
//   - Handler: Exposes the HTTP endpoints.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST /comparison/run : Run a comparison, classified results as JSON.
//   - POST /comparison/export : Run a comparison, ZIP report bundle.
package comparison
