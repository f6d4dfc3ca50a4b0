package core

import (
	"fmt"
	"sort"
)

// CollegeGenderCount is one college row of a Simple-mode year sheet.
type CollegeGenderCount struct {
	College   string `json:"college"`
	Total     int    `json:"total"`
	Gentlemen int    `json:"gentlemen"`
	Ladies    int    `json:"ladies"`
}

// YearBreakdown groups one academic year's graduates by college and gender.
// Colleges with no graduates that year are absent.
type YearBreakdown struct {
	AcademicYear string               `json:"academic_year"`
	Colleges     []CollegeGenderCount `json:"colleges"`
	Total        int                  `json:"total"`
	Gentlemen    int                  `json:"gentlemen"`
	Ladies       int                  `json:"ladies"`
}

// CollegeSummary is one row of the cross-year summary: totals by gender and
// by nationality for a college. Records with a blank nationality count toward
// Total but toward neither Saudi nor NonSaudi.
type CollegeSummary struct {
	College   string `json:"college"`
	Total     int    `json:"total"`
	Gentlemen int    `json:"gentlemen"`
	Ladies    int    `json:"ladies"`
	Saudi     int    `json:"saudi"`
	NonSaudi  int    `json:"non_saudi"`
}

// SimpleResult is the Simple-mode aggregation: a per-academic-year breakdown
// by college and gender, plus the cross-year summary. Records whose
// graduation term yields no academic year are excluded and surfaced as
// advisories.
type SimpleResult struct {
	Years    []YearBreakdown  `json:"years"`
	Summary  []CollegeSummary `json:"summary"`
	Warnings []Warning        `json:"warnings,omitempty"`
}

// aggregateSimple implements Simple mode. Only the college and year filters
// apply; degree, gender, nationality, and status filters are ignored by
// design in this mode.
func aggregateSimple(ds *Dataset, filters Filters) *SimpleResult {
	res := &SimpleResult{}

	var records []*NormalizedRecord
	for i := range ds.Records {
		rec := &ds.Records[i]
		if !filters.matchBase(rec) {
			continue
		}
		if rec.AcademicYear == "" {
			res.Warnings = append(res.Warnings, Warning{
				Kind:    WarnUnparsableTerm,
				Row:     i + 1,
				Message: fmt.Sprintf("cannot derive academic year from %q", rec.GraduationTerm),
			})
			continue
		}
		records = append(records, rec)
	}

	byYear := make(map[string][]*NormalizedRecord)
	for _, rec := range records {
		byYear[rec.AcademicYear] = append(byYear[rec.AcademicYear], rec)
	}

	years := make([]string, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Strings(years)

	for _, year := range years {
		res.Years = append(res.Years, buildYearBreakdown(year, byYear[year]))
	}

	res.Summary = buildCrossYearSummary(records)
	return res
}

func buildYearBreakdown(year string, records []*NormalizedRecord) YearBreakdown {
	yb := YearBreakdown{AcademicYear: year}

	byCollege := make(map[string][]*NormalizedRecord)
	for _, rec := range records {
		byCollege[rec.College] = append(byCollege[rec.College], rec)
	}
	colleges := sortedKeys(byCollege)

	for _, college := range colleges {
		recs := byCollege[college]
		row := CollegeGenderCount{College: college, Total: len(recs)}
		for _, rec := range recs {
			switch rec.Gender {
			case GenderMale:
				row.Gentlemen++
			case GenderFemale:
				row.Ladies++
			}
		}
		yb.Colleges = append(yb.Colleges, row)
		yb.Total += row.Total
		yb.Gentlemen += row.Gentlemen
		yb.Ladies += row.Ladies
	}
	return yb
}

func buildCrossYearSummary(records []*NormalizedRecord) []CollegeSummary {
	byCollege := make(map[string][]*NormalizedRecord)
	for _, rec := range records {
		byCollege[rec.College] = append(byCollege[rec.College], rec)
	}

	var summary []CollegeSummary
	for _, college := range sortedKeys(byCollege) {
		recs := byCollege[college]
		row := CollegeSummary{College: college, Total: len(recs)}
		for _, rec := range recs {
			switch rec.Gender {
			case GenderMale:
				row.Gentlemen++
			case GenderFemale:
				row.Ladies++
			}
			// The nationality column is binary Saudi/non-Saudi only
			// when the value is present; blanks stay out of both
			// buckets but keep their place in the total.
			n := rec.Nationality
			switch {
			case IsSaudi(n):
				row.Saudi++
			case n != "":
				row.NonSaudi++
			}
		}
		summary = append(summary, row)
	}
	return summary
}

func sortedKeys(m map[string][]*NormalizedRecord) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
