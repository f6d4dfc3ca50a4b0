package core

// Preview is the lightweight summary shown before a report is generated.
type Preview struct {
	Mode          Mode           `json:"mode,omitempty"`
	TotalRecords  int            `json:"total_records"`
	CollegeCounts map[string]int `json:"college_counts"`
	StatusCounts  map[string]int `json:"status_counts,omitempty"`
	GenderCounts  map[string]int `json:"gender_counts,omitempty"`
}

// PreviewReport summarizes the records a report run would cover: totals and
// college counts, plus a status breakdown for Detailed mode or a gender
// breakdown for Simple mode.
func PreviewReport(ds *Dataset, mode Mode, filters Filters) *Preview {
	records := filterRecords(ds, filters.match)

	p := &Preview{
		Mode:         mode,
		TotalRecords: len(records),
		CollegeCounts: countBy(records, func(rec *NormalizedRecord) (string, bool) {
			return rec.College, true
		}),
	}
	if mode == ModeSimple {
		p.GenderCounts = countBy(records, func(rec *NormalizedRecord) (string, bool) {
			return string(rec.Gender), true
		})
	} else {
		p.StatusCounts = countBy(records, func(rec *NormalizedRecord) (string, bool) {
			return rec.Status, rec.Status != ""
		})
	}
	return p
}

// PreviewAlumniList summarizes an alumni list extraction before the workbook
// is generated.
func PreviewAlumniList(ds *Dataset, filters Filters, allowedStatuses []string) *Preview {
	allowed := make(map[string]bool, len(allowedStatuses))
	for _, s := range allowedStatuses {
		allowed[NormalizeStatus(s)] = true
	}
	records := filterRecords(ds, func(rec *NormalizedRecord) bool {
		return filters.match(rec) && allowed[rec.Status]
	})

	return &Preview{
		TotalRecords: len(records),
		CollegeCounts: countBy(records, func(rec *NormalizedRecord) (string, bool) {
			return rec.College, true
		}),
		GenderCounts: countBy(records, func(rec *NormalizedRecord) (string, bool) {
			return string(rec.Gender), true
		}),
	}
}
