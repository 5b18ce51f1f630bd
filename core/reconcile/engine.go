package reconcile

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"parcel-recon/core/compare"
	"parcel-recon/core/rules"
	"parcel-recon/core/table"
)

// ErrKeyColumnMissing reports a structurally unusable extract: the configured
// join-key column is absent. The run returns empty result sets alongside it.
var ErrKeyColumnMissing = errors.New("key column not found")

// Contextual column names carried onto result entries.
const (
	colListingNumber     = "Listing #"
	colClosedDate        = "Closed Date"
	colSaleKey           = "SALEKEY"
	colNOPAR             = "NOPAR"
	colAdditionalParcels = "ADDITIONAL_PARCELS"
	colAddress           = "Address"
	colCity              = "City"
	colState             = "State or Province"
	colZip               = "Postal Code"
)

// Reconcile joins the two extracts on the configured key mapping, evaluates
// every rule against every joined record, and classifies the results.
//
// It is a pure function of its inputs: no hidden state, safe to run
// concurrently across independent runs. Per-value problems degrade (text
// comparison, sentinel differences, skipped rules); only a missing key
// column fails the run, and even then the returned Result is usable (empty).
func Reconcile(mls, cama *table.Table, set *rules.Set, cfg Config) (*Result, error) {
	cfg = cfg.Normalize()
	res := &Result{Matched: table.New()}

	if mls == nil || cama == nil {
		return res, nil
	}

	if !mls.HasColumn(set.Key.MLSColumn) {
		return res, fmt.Errorf("%w: %q in MLS data", ErrKeyColumnMissing, set.Key.MLSColumn)
	}
	if !cama.HasColumn(set.Key.CAMAColumn) {
		return res, fmt.Errorf("%w: %q in CAMA data", ErrKeyColumnMissing, set.Key.CAMAColumn)
	}

	joined := outerJoin(mls, cama, set.Key.MLSColumn, set.Key.CAMAColumn)
	res.Matched = &table.Table{Columns: mergeColumns(mls, cama, set.Key.MLSColumn, set.Key.CAMAColumn)}

	for _, row := range joined {
		switch row.Provenance {
		case ProvenanceMLSOnly:
			res.MissingInCAMA = append(res.MissingInCAMA, MissingInCAMAEntry{
				ParcelID:      row.Key,
				ListingNumber: row.MLS.Get(colListingNumber),
				ClosedDate:    row.MLS.Get(colClosedDate),
			})

		case ProvenanceCAMAOnly:
			res.MissingInMLS = append(res.MissingInMLS, MissingInMLSEntry{ParcelID: row.Key})

		case ProvenanceBoth:
			res.Matched.Append(mergeRecord(row, set.Key.MLSColumn, set.Key.CAMAColumn))

			ctx := buildRowContext(row, cfg.WindowID)
			mismatches, evaluated := evaluateRules(row, mls, cama, set, cfg, ctx)
			res.Mismatches = append(res.Mismatches, mismatches...)

			if len(mismatches) == 0 && len(evaluated) > 0 {
				res.PerfectMatches = append(res.PerfectMatches, PerfectMatchEntry{
					ParcelID:          ctx.ParcelID,
					NOPAR:             ctx.NOPAR,
					AdditionalParcels: ctx.AdditionalParcels,
					ListingNumber:     ctx.ListingNumber,
					SaleKey:           ctx.SaleKey,
					Address:           ctx.Address,
					City:              ctx.City,
					State:             ctx.State,
					Zip:               ctx.Zip,
					FieldsCompared:    len(evaluated),
					FieldsList:        strings.Join(evaluated, ", "),
					ParcelURL:         ctx.ParcelURL,
					ZillowURL:         ctx.ZillowURL,
				})
			}
		}
	}

	res.CityStats = cityStats(cama, res.Matched, set.Key.CAMAColumn)
	res.Summary = buildSummary(mls, cama, res)
	return res, nil
}

// rowContext is the contextual data shared by every entry a joined record
// produces.
type rowContext struct {
	ParcelID          string
	NOPAR             string
	AdditionalParcels string
	ListingNumber     string
	SaleKey           string
	Address           string
	City              string
	State             string
	Zip               string
	ParcelURL         string
	ZillowURL         string
}

func buildRowContext(row joinedRow, windowID string) rowContext {
	ctx := rowContext{
		ParcelID:          row.Key,
		ListingNumber:     row.MLS.Get(colListingNumber),
		SaleKey:           row.CAMA.Get(colSaleKey),
		NOPAR:             row.CAMA.Get(colNOPAR),
		AdditionalParcels: row.CAMA.Get(colAdditionalParcels),
		Address:           row.MLS.Get(colAddress),
		City:              row.MLS.Get(colCity),
		State:             row.MLS.Get(colState),
		Zip:               row.MLS.Get(colZip),
	}
	ctx.ParcelURL = ParcelURL(windowID, ctx.ParcelID)
	ctx.ZillowURL = ZillowURL(ctx.Address, ctx.City, ctx.Zip)
	return ctx
}

func (ctx rowContext) mismatch(fieldMLS, fieldCAMA, mlsValue, camaValue string) MismatchEntry {
	return MismatchEntry{
		ParcelID:          ctx.ParcelID,
		NOPAR:             ctx.NOPAR,
		AdditionalParcels: ctx.AdditionalParcels,
		ListingNumber:     ctx.ListingNumber,
		SaleKey:           ctx.SaleKey,
		Address:           ctx.Address,
		City:              ctx.City,
		State:             ctx.State,
		Zip:               ctx.Zip,
		FieldMLS:          fieldMLS,
		FieldCAMA:         fieldCAMA,
		MLSValue:          mlsValue,
		CAMAValue:         camaValue,
		ParcelURL:         ctx.ParcelURL,
		ZillowURL:         ctx.ZillowURL,
	}
}

// evaluateRules runs every configured rule against one BOTH row, in
// configuration order. It returns the mismatch entries and the MLS field
// names that were actually evaluated (blank-skipped and zero-skipped rules
// count as not evaluated).
func evaluateRules(row joinedRow, mls, cama *table.Table, set *rules.Set, cfg Config, ctx rowContext) ([]MismatchEntry, []string) {
	var mismatches []MismatchEntry
	var evaluated []string

	for _, r := range set.Rules {
		var entry *MismatchEntry
		var applied bool

		switch rr := r.(type) {
		case rules.DirectRule:
			entry, applied = evalDirect(rr, row, mls, cama, cfg, ctx)
		case rules.SummedRule:
			entry, applied = evalSummed(rr, row, mls, cama, cfg, ctx)
		case rules.CategoricalRule:
			entry, applied = evalCategorical(rr, row, mls, cama, cfg, ctx)
		default:
			// Unknown rule kinds are configuration noise, not row failures.
			continue
		}

		if applied {
			evaluated = append(evaluated, r.MLSField())
		}
		if entry != nil {
			mismatches = append(mismatches, *entry)
		}
	}

	return mismatches, evaluated
}

func evalDirect(r rules.DirectRule, row joinedRow, mls, cama *table.Table, cfg Config, ctx rowContext) (*MismatchEntry, bool) {
	if !mls.HasColumn(r.MLS) || !cama.HasColumn(r.CAMA) {
		return nil, false
	}

	mlsVal := row.MLS.Get(r.MLS)
	camaVal := row.CAMA.Get(r.CAMA)

	// Absence of data on either side is not evidence of disagreement.
	if compare.IsBlank(mlsVal) || compare.IsBlank(camaVal) {
		return nil, false
	}

	if cfg.SkipZero && bothZero(mlsVal, camaVal) {
		return nil, false
	}

	if compare.ValuesEqual(mlsVal, camaVal, cfg.Tolerance) {
		return nil, true
	}

	entry := ctx.mismatch(r.MLS, r.CAMA, mlsVal, camaVal)
	entry.Difference = compare.Difference(mlsVal, camaVal)
	return &entry, true
}

func evalSummed(r rules.SummedRule, row joinedRow, mls, cama *table.Table, cfg Config, ctx rowContext) (*MismatchEntry, bool) {
	if !mls.HasColumn(r.MLS) {
		return nil, false
	}
	for _, c := range r.CAMAFields {
		if !cama.HasColumn(c) {
			return nil, false
		}
	}

	mlsVal := row.MLS.Get(r.MLS)
	if compare.IsBlank(mlsVal) {
		return nil, false
	}

	// Non-numeric components contribute nothing; all-blank components mean
	// the CAMA side carries no data at all and the rule is skipped.
	sum := 0.0
	allBlank := true
	for _, c := range r.CAMAFields {
		v := row.CAMA.Get(c)
		if compare.IsBlank(v) {
			continue
		}
		allBlank = false
		if n, ok := compare.ParseNumber(v); ok {
			sum += n
		}
	}
	if allBlank {
		return nil, false
	}

	// Zero-skip compares the sum against exact zero, not near-zero: a
	// rounding artifact on the CAMA side still gets evaluated.
	if cfg.SkipZero {
		if mlsNum, ok := compare.ParseNumber(mlsVal); ok && mlsNum == 0 && sum == 0 {
			return nil, false
		}
	}

	sumStr := strconv.FormatFloat(sum, 'f', -1, 64)
	if compare.ValuesEqual(mlsVal, sumStr, cfg.Tolerance) {
		return nil, true
	}

	entry := ctx.mismatch(r.MLS, r.CAMALabel(), mlsVal, sumStr)
	entry.Difference = compare.Difference(mlsVal, sumStr)
	return &entry, true
}

func evalCategorical(r rules.CategoricalRule, row joinedRow, mls, cama *table.Table, cfg Config, ctx rowContext) (*MismatchEntry, bool) {
	if !mls.HasColumn(r.MLS) || !cama.HasColumn(r.CAMA) {
		return nil, false
	}

	mlsVal := row.MLS.Get(r.MLS)
	camaVal := row.CAMA.Get(r.CAMA)

	if compare.IsBlank(mlsVal) || compare.IsBlank(camaVal) {
		return nil, false
	}

	textFound := compare.ContainsText(r.ContainsText, mlsVal, r.CaseSensitive)
	expected := r.Expected(textFound)

	if compare.CategoricalMatch(camaVal, expected, cfg.Tolerance) {
		return nil, true
	}

	entry := ctx.mismatch(r.MLS, r.CAMA, mlsVal, camaVal)
	entry.ExpectedCAMAValue = expected
	entry.MatchRule = r.Describe()
	return &entry, true
}

// bothZero reports whether both raw values parse numerically and equal zero.
func bothZero(a, b string) bool {
	an, aok := compare.ParseNumber(a)
	if !aok || an != 0 {
		return false
	}
	bn, bok := compare.ParseNumber(b)
	return bok && bn == 0
}

func buildSummary(mls, cama *table.Table, res *Result) Summary {
	s := Summary{
		MLSRecords:     mls.Len(),
		CAMARecords:    cama.Len(),
		Matched:        res.Matched.Len(),
		MissingInCAMA:  len(res.MissingInCAMA),
		MissingInMLS:   len(res.MissingInMLS),
		Mismatches:     len(res.Mismatches),
		PerfectMatches: len(res.PerfectMatches),
	}

	if s.CAMARecords > 0 {
		s.MatchRate = round2(float64(s.Matched) / float64(s.CAMARecords) * 100)
	}

	counts := make(map[string]int)
	for _, m := range res.Mismatches {
		counts[m.FieldMLS]++
	}
	s.MismatchFields = len(counts)
	for field, count := range counts {
		s.MismatchByField = append(s.MismatchByField, FieldCount{Field: field, Count: count})
	}
	sort.Slice(s.MismatchByField, func(i, j int) bool {
		a, b := s.MismatchByField[i], s.MismatchByField[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Field < b.Field
	})

	return s
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
