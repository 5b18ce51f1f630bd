package table

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ParseCSV reads a header-plus-rows CSV extract into a Table.
// It tolerates the rough edges of real county exports: stray encodings,
// lazy quoting, rows with too few or too many cells, and fully blank rows.
func ParseCSV(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read extract: %w", err)
	}
	return ParseCSVBytes(data)
}

// ParseCSVBytes parses raw CSV bytes into a Table.
func ParseCSVBytes(data []byte) (*Table, error) {
	decoded, err := decodeToUTF8(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode extract: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	// Column counts vary row to row in the wild; we pad and truncate ourselves.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file: no header row found")
		}
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(h)
	}

	t := &Table{Columns: columns}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A single malformed row never aborts the load.
			continue
		}

		if isBlankRow(row) {
			continue
		}

		rec := make(Record, len(columns))
		for i, col := range columns {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		t.Append(rec)
	}

	return t, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
