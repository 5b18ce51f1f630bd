package reconcile

import "parcel-recon/core/table"

// MissingInCAMAEntry is an MLS listing whose parcel has no CAMA record.
type MissingInCAMAEntry struct {
	ParcelID      string `json:"Parcel_ID"`
	ListingNumber string `json:"Listing_Number"`
	ClosedDate    string `json:"Closed_Date"`
}

// MissingInMLSEntry is a CAMA parcel with no MLS listing.
type MissingInMLSEntry struct {
	ParcelID string `json:"Parcel_ID"`
}

// MismatchEntry is one failing rule on one joined record.
// Difference is carried for direct and summed rules; ExpectedCAMAValue and
// MatchRule for categorical rules.
type MismatchEntry struct {
	ParcelID          string `json:"Parcel_ID"`
	NOPAR             string `json:"NOPAR"`
	AdditionalParcels string `json:"ADDITIONAL_PARCELS"`
	ListingNumber     string `json:"Listing_Number"`
	SaleKey           string `json:"SALEKEY"`
	Address           string `json:"Address"`
	City              string `json:"City"`
	State             string `json:"State"`
	Zip               string `json:"Zip"`
	FieldMLS          string `json:"Field_MLS"`
	FieldCAMA         string `json:"Field_CAMA"`
	MLSValue          string `json:"MLS_Value"`
	CAMAValue         string `json:"CAMA_Value"`
	Difference        string `json:"Difference,omitempty"`
	ExpectedCAMAValue string `json:"Expected_CAMA_Value,omitempty"`
	MatchRule         string `json:"Match_Rule,omitempty"`
	ParcelURL         string `json:"Parcel_URL"`
	ZillowURL         string `json:"Zillow_URL"`
}

// PerfectMatchEntry is one joined record for which every applicable rule
// passed and at least one rule was actually evaluated.
type PerfectMatchEntry struct {
	ParcelID          string `json:"Parcel_ID"`
	NOPAR             string `json:"NOPAR"`
	AdditionalParcels string `json:"ADDITIONAL_PARCELS"`
	ListingNumber     string `json:"Listing_Number"`
	SaleKey           string `json:"SALEKEY"`
	Address           string `json:"Address"`
	City              string `json:"City"`
	State             string `json:"State"`
	Zip               string `json:"Zip"`
	FieldsCompared    int    `json:"Fields_Compared"`
	FieldsList        string `json:"Fields_List"`
	ParcelURL         string `json:"Parcel_URL"`
	ZillowURL         string `json:"Zillow_URL"`
}

// CityStat is one row of the per-city match aggregate.
type CityStat struct {
	City             string  `json:"City"`
	TotalCAMAParcels int     `json:"Total_CAMA_Parcels"`
	MatchedParcels   int     `json:"Matched_Parcels"`
	NotMatched       int     `json:"Not_Matched"`
	MatchRate        float64 `json:"Match_Rate"`
}

// FieldCount is a per-field mismatch tally, ordered most frequent first.
type FieldCount struct {
	Field string `json:"field"`
	Count int    `json:"count"`
}

// Summary carries the aggregate counts shown after a run.
type Summary struct {
	MLSRecords      int          `json:"mls_records"`
	CAMARecords     int          `json:"cama_records"`
	Matched         int          `json:"matched"`
	MissingInCAMA   int          `json:"missing_in_cama"`
	MissingInMLS    int          `json:"missing_in_mls"`
	Mismatches      int          `json:"mismatches"`
	PerfectMatches  int          `json:"perfect_matches"`
	MismatchFields  int          `json:"mismatch_fields"`
	MatchRate       float64      `json:"match_rate"`
	MismatchByField []FieldCount `json:"mismatch_by_field,omitempty"`
}

// Result bundles the five classified result sets plus the derived city
// aggregate and run summary. All collections preserve join iteration order.
type Result struct {
	MissingInCAMA  []MissingInCAMAEntry `json:"missing_in_cama"`
	MissingInMLS   []MissingInMLSEntry  `json:"missing_in_mls"`
	Mismatches     []MismatchEntry      `json:"mismatches"`
	Matched        *table.Table         `json:"-"`
	PerfectMatches []PerfectMatchEntry  `json:"perfect_matches"`
	// CityStats is nil when the CAMA extract carries no recognizable city
	// column.
	CityStats []CityStat `json:"city_stats,omitempty"`
	Summary   Summary    `json:"summary"`
}
