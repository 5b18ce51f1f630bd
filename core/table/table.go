package table

// Record is a single row: a mapping from column name to raw cell text.
// A column absent from the map means the source table did not carry it.
type Record map[string]string

// Get returns the raw cell value for a column, or "" when the row does not
// carry it.
func (r Record) Get(col string) string {
	return r[col]
}

// Has reports whether the row carries the given column.
func (r Record) Has(col string) bool {
	_, ok := r[col]
	return ok
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is an ordered collection of records sharing one header.
type Table struct {
	// Columns is the header, in source order.
	Columns []string
	// Rows are the data records, in source order.
	Rows []Record
}

// New creates an empty table with the given header.
func New(columns ...string) *Table {
	return &Table{Columns: columns}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// HasColumn reports whether the header contains the given column name.
func (t *Table) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Append adds a row to the table. Columns not in the header are ignored by
// consumers that iterate the header, but kept on the record.
func (t *Table) Append(r Record) {
	t.Rows = append(t.Rows, r)
}
