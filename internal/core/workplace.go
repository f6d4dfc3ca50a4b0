package core

// TopEmployerLimit caps the employer frequency ranking.
const TopEmployerLimit = 10

// WorkplaceStats is the read-only analytical view over workplace data:
// employer frequencies for records with usable workplace values, a breakdown
// of the unusable ones, position seniority counts, and the nationality
// distribution. Nothing here is persisted.
type WorkplaceStats struct {
	TotalAlumni  int `json:"total_alumni"`
	ValidEntries int `json:"valid_entries"`
	EmptyEntries int `json:"empty_entries"`

	TopEmployers   []NameCount `json:"top_employers"`
	EmptyBreakdown []NameCount `json:"empty_breakdown"`

	// Positions counts records per seniority category, OTHER included.
	// HighPositionCount is the number of records in any category above
	// OTHER.
	Positions         map[PositionCategory]int `json:"positions"`
	HighPositionCount int                      `json:"high_position_count"`

	NationalityDist []NameCount `json:"nationality_dist"`
}

// WorkplaceStatistics computes workplace statistics over the records matching
// the full filter set, the same filtering Detailed mode applies.
func WorkplaceStatistics(ds *Dataset, filters Filters) *WorkplaceStats {
	records := filterRecords(ds, filters.match)

	stats := &WorkplaceStats{
		TotalAlumni: len(records),
		Positions:   make(map[PositionCategory]int),
	}

	var valid []*NormalizedRecord
	emptyCounts := make(map[string]int)
	emptySeen := make(map[string]int)

	for _, rec := range records {
		if rec.EmployerCategory == EmployerValid {
			valid = append(valid, rec)
		} else {
			key := string(rec.EmployerCategory)
			if _, ok := emptySeen[key]; !ok {
				emptySeen[key] = len(emptySeen)
			}
			emptyCounts[key]++
		}

		stats.Positions[rec.Position]++
		if rec.Position != PositionOther {
			stats.HighPositionCount++
		}
	}

	stats.ValidEntries = len(valid)
	stats.EmptyEntries = stats.TotalAlumni - stats.ValidEntries
	stats.EmptyBreakdown = rankCounts(emptyCounts, emptySeen)

	employerCounts := make(map[string]int)
	employerSeen := make(map[string]int)
	for _, rec := range valid {
		if _, ok := employerSeen[rec.Employer]; !ok {
			employerSeen[rec.Employer] = len(employerSeen)
		}
		employerCounts[rec.Employer]++
	}
	stats.TopEmployers = topN(rankCounts(employerCounts, employerSeen), TopEmployerLimit)

	natCounts := make(map[string]int)
	natSeen := make(map[string]int)
	for _, rec := range records {
		if rec.Nationality == "" {
			continue
		}
		if _, ok := natSeen[rec.Nationality]; !ok {
			natSeen[rec.Nationality] = len(natSeen)
		}
		natCounts[rec.Nationality]++
	}
	stats.NationalityDist = rankCounts(natCounts, natSeen)

	return stats
}
