// Package database handles the optional database-backed CAMA source.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to
// properly configure MySQL connections based on the application's
// configuration, plus a loader that reads an assessment table into the
// in-memory Table representation the comparison engine works on.
//
// # Connect
//
// Connect establishes a MySQL connection with pooling and strict timeouts.
// The connection is optional; when disabled the CAMA extract arrives as an
// uploaded CSV instead.
//
// # Loading
//
// LoadTable renders every row of the configured table to strings, keeping
// the result-set column names, so the same rule sets apply to
// database-sourced and file-sourced data.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	cama, err := database.LoadTable(db, cfg.Database.Table)
package database
