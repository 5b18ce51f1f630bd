package reconcile

import (
	"sort"

	"parcel-recon/core/compare"
	"parcel-recon/core/table"
)

// City column candidates in the CAMA extract, in priority order.
var cityColumnCandidates = []string{"CITYNAME", "City"}

// cityStats derives the per-city match aggregate from the full CAMA extract
// and the matched-join projection. It returns nil, never an error, when no
// recognizable city column exists or nothing matched.
func cityStats(cama, matched *table.Table, camaKey string) []CityStat {
	cityCol := ""
	for _, c := range cityColumnCandidates {
		if cama.HasColumn(c) {
			cityCol = c
			break
		}
	}
	if cityCol == "" || matched.Len() == 0 {
		return nil
	}

	totals := make(map[string]int)
	for _, row := range cama.Rows {
		city := row.Get(cityCol)
		if compare.IsBlank(city) || compare.IsBlank(row.Get(camaKey)) {
			continue
		}
		totals[city]++
	}

	matchedCounts := make(map[string]int)
	for _, row := range matched.Rows {
		city := row.Get(cityCol)
		if compare.IsBlank(city) {
			continue
		}
		matchedCounts[city]++
	}

	stats := make([]CityStat, 0, len(totals))
	for city, total := range totals {
		m := matchedCounts[city]
		stats = append(stats, CityStat{
			City:             city,
			TotalCAMAParcels: total,
			MatchedParcels:   m,
			NotMatched:       total - m,
			MatchRate:        round2(float64(m) / float64(total) * 100),
		})
	}

	// Largest cities first; ties alphabetical for stable output.
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalCAMAParcels != stats[j].TotalCAMAParcels {
			return stats[i].TotalCAMAParcels > stats[j].TotalCAMAParcels
		}
		return stats[i].City < stats[j].City
	})

	return stats
}
