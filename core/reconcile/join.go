package reconcile

import "parcel-recon/core/table"

// Provenance records which side(s) of the outer join contributed a row.
type Provenance int

const (
	// ProvenanceBoth means the parcel exists in both extracts.
	ProvenanceBoth Provenance = iota
	// ProvenanceMLSOnly means the parcel exists only in the listing extract.
	ProvenanceMLSOnly
	// ProvenanceCAMAOnly means the parcel exists only in the assessment
	// extract.
	ProvenanceCAMAOnly
)

// joinedRow is one row of the full outer join. MLS is nil for
// ProvenanceCAMAOnly rows and CAMA is nil for ProvenanceMLSOnly rows.
type joinedRow struct {
	Key        string
	Provenance Provenance
	MLS        table.Record
	CAMA       table.Record
}

// outerJoin pairs the two extracts on their key columns. Output order is
// stable: MLS rows in source order (matched or not), then unmatched CAMA
// rows in source order. Identifiers are assumed unique per extract; a
// duplicate key keeps its first occurrence.
func outerJoin(mls, cama *table.Table, mlsKey, camaKey string) []joinedRow {
	camaIndex := make(map[string]table.Record, cama.Len())
	for _, row := range cama.Rows {
		key := row.Get(camaKey)
		if _, seen := camaIndex[key]; !seen {
			camaIndex[key] = row
		}
	}

	matched := make(map[string]struct{})
	rows := make([]joinedRow, 0, mls.Len()+cama.Len())

	for _, row := range mls.Rows {
		key := row.Get(mlsKey)
		if camaRow, ok := camaIndex[key]; ok {
			matched[key] = struct{}{}
			rows = append(rows, joinedRow{Key: key, Provenance: ProvenanceBoth, MLS: row, CAMA: camaRow})
		} else {
			rows = append(rows, joinedRow{Key: key, Provenance: ProvenanceMLSOnly, MLS: row})
		}
	}

	for _, row := range cama.Rows {
		key := row.Get(camaKey)
		if _, ok := matched[key]; ok {
			continue
		}
		rows = append(rows, joinedRow{Key: key, Provenance: ProvenanceCAMAOnly, CAMA: row})
	}

	return rows
}

// mergeColumns builds the header for the matched-join projection: the CAMA
// key column first, then the remaining MLS columns, then the remaining CAMA
// columns. Duplicate names collapse to the CAMA-side value during merge.
func mergeColumns(mls, cama *table.Table, mlsKey, camaKey string) []string {
	seen := map[string]struct{}{camaKey: {}}
	cols := []string{camaKey}
	for _, c := range mls.Columns {
		if c == mlsKey {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		cols = append(cols, c)
	}
	for _, c := range cama.Columns {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		cols = append(cols, c)
	}
	return cols
}

// mergeRecord flattens a BOTH row into a single record keyed under the CAMA
// key column. CAMA values win on column collisions.
func mergeRecord(row joinedRow, mlsKey, camaKey string) table.Record {
	out := make(table.Record, len(row.MLS)+len(row.CAMA))
	for k, v := range row.MLS {
		if k == mlsKey {
			continue
		}
		out[k] = v
	}
	for k, v := range row.CAMA {
		out[k] = v
	}
	out[camaKey] = row.Key
	return out
}
