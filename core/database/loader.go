package database

import (
	"fmt"
	"regexp"

	"parcel-recon/core/table"
	"parcel-recon/core/utils"

	"gorm.io/gorm"
)

// tableNamePattern keeps interpolated table names to plain identifiers, since
// the table name cannot be a placeholder in the query.
var tableNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// LoadTable reads every row of the named table into an in-memory Table.
// Column names come from the result set unchanged, so a rule set written
// against the CAMA schema applies to database-sourced data exactly as it
// does to an exported CSV. All values are rendered as strings.
func LoadTable(db *gorm.DB, tableName string) (*table.Table, error) {
	if !tableNamePattern.MatchString(tableName) {
		return nil, fmt.Errorf("invalid table name %q", tableName)
	}

	rows, err := db.Raw(fmt.Sprintf("SELECT * FROM `%s`", tableName)).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query table %s: %w", tableName, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of table %s: %w", tableName, err)
	}

	t := table.New(columns...)
	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row of table %s: %w", tableName, err)
		}
		rec := make(table.Record, len(columns))
		for i, col := range columns {
			rec[col] = utils.ToString(values[i])
		}
		t.Append(rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", tableName, err)
	}

	return t, nil
}
