package report

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"parcel-recon/core/reconcile"
)

const dateLayout = "2006-01-02"

// BundleName returns the archive filename for a run on the given day.
func BundleName(now time.Time) string {
	return fmt.Sprintf("parcel_comparison_reports_%s.zip", now.Format(dateLayout))
}

// Build renders the classified result sets as a ZIP archive of CSV reports.
// Empty result sets are omitted from the archive, so a clean run yields a
// bundle containing only the reports that have something to say.
func Build(res *reconcile.Result, now time.Time) ([]byte, error) {
	date := now.Format(dateLayout)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	sheets := []struct {
		name    string
		headers []string
		rows    [][]string
	}{
		{
			name:    fmt.Sprintf("missing_in_CAMA_%s.csv", date),
			headers: []string{"Parcel_ID", "Listing_Number", "Closed_Date"},
			rows:    missingInCAMARows(res.MissingInCAMA),
		},
		{
			name:    fmt.Sprintf("missing_in_MLS_%s.csv", date),
			headers: []string{"Parcel_ID"},
			rows:    missingInMLSRows(res.MissingInMLS),
		},
		{
			name: fmt.Sprintf("value_mismatches_%s.csv", date),
			headers: []string{
				"Parcel_ID", "NOPAR", "ADDITIONAL_PARCELS", "Listing_Number",
				"SALEKEY", "Address", "City", "State", "Zip", "Field_MLS",
				"Field_CAMA", "MLS_Value", "CAMA_Value", "Difference",
				"Expected_CAMA_Value", "Match_Rule", "Parcel_URL", "Zillow_URL",
			},
			rows: mismatchRows(res.Mismatches),
		},
		{
			name: fmt.Sprintf("perfect_matches_%s.csv", date),
			headers: []string{
				"Parcel_ID", "NOPAR", "ADDITIONAL_PARCELS", "Listing_Number",
				"SALEKEY", "Address", "City", "State", "Zip",
				"Fields_Compared", "Fields_List", "Parcel_URL", "Zillow_URL",
			},
			rows: perfectMatchRows(res.PerfectMatches),
		},
		{
			name:    fmt.Sprintf("city_match_statistics_%s.csv", date),
			headers: []string{"City", "Total_CAMA_Parcels", "Matched_Parcels", "Not_Matched", "Match_Rate"},
			rows:    cityStatRows(res.CityStats),
		},
	}

	for _, sheet := range sheets {
		if len(sheet.rows) == 0 {
			continue
		}
		if err := writeSheet(zw, sheet.name, sheet.headers, sheet.rows); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize report bundle: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(zw *zip.Writer, name string, headers []string, rows [][]string) error {
	f, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create report %s: %w", name, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(headers); err != nil {
		return fmt.Errorf("failed to write report %s: %w", name, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write report %s: %w", name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write report %s: %w", name, err)
	}
	return nil
}

func missingInCAMARows(entries []reconcile.MissingInCAMAEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.ParcelID, e.ListingNumber, e.ClosedDate})
	}
	return rows
}

func missingInMLSRows(entries []reconcile.MissingInMLSEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.ParcelID})
	}
	return rows
}

func mismatchRows(entries []reconcile.MismatchEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.ParcelID, e.NOPAR, e.AdditionalParcels, e.ListingNumber,
			e.SaleKey, e.Address, e.City, e.State, e.Zip, e.FieldMLS,
			e.FieldCAMA, e.MLSValue, e.CAMAValue, e.Difference,
			e.ExpectedCAMAValue, e.MatchRule, e.ParcelURL, e.ZillowURL,
		})
	}
	return rows
}

func perfectMatchRows(entries []reconcile.PerfectMatchEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.ParcelID, e.NOPAR, e.AdditionalParcels, e.ListingNumber,
			e.SaleKey, e.Address, e.City, e.State, e.Zip,
			strconv.Itoa(e.FieldsCompared), e.FieldsList, e.ParcelURL, e.ZillowURL,
		})
	}
	return rows
}

func cityStatRows(stats []reconcile.CityStat) [][]string {
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.City,
			strconv.Itoa(s.TotalCAMAParcels),
			strconv.Itoa(s.MatchedParcels),
			strconv.Itoa(s.NotMatched),
			strconv.FormatFloat(s.MatchRate, 'f', 2, 64),
		})
	}
	return rows
}
