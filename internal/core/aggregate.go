package core

import (
	"fmt"
	"math"
	"sort"
)

// AggregationResult is the mode-tagged output handed to the report emitter.
// Exactly one of Detailed or Simple is populated.
type AggregationResult struct {
	Mode     Mode            `json:"mode"`
	Filters  Filters         `json:"filters"`
	Detailed *DetailedResult `json:"detailed,omitempty"`
	Simple   *SimpleResult   `json:"simple,omitempty"`
}

// EmploymentBreakdown is the three-bucket employment rollup for one group.
// Employed collects every employed-like status; percentages are of the group
// total and are 0 when the total is 0.
type EmploymentBreakdown struct {
	Employed      int     `json:"employed"`
	Unemployed    int     `json:"unemployed"`
	Studying      int     `json:"studying"`
	EmployedPct   float64 `json:"employed_pct"`
	UnemployedPct float64 `json:"unemployed_pct"`
	StudyingPct   float64 `json:"studying_pct"`
}

// DetailedGroup is one aggregation group. Year is set only in the default
// per-(college, year) grouping; the combine-years option drops it and the
// combine-all option collapses everything into a single group.
type DetailedGroup struct {
	College      string              `json:"college,omitempty"`
	Major        string              `json:"major,omitempty"`
	Year         string              `json:"year,omitempty"`
	Total        int                 `json:"total"`
	StatusCounts map[string]int      `json:"status_counts"`
	Employment   EmploymentBreakdown `json:"employment"`
}

// DetailedResult is the Detailed-mode aggregation: per-group status counts
// and employment breakdowns, plus overall totals. Groups with zero records
// are never emitted.
type DetailedResult struct {
	Groups       []DetailedGroup     `json:"groups"`
	Total        int                 `json:"total"`
	StatusCounts map[string]int      `json:"status_counts"`
	Employment   EmploymentBreakdown `json:"employment"`

	// GenderCounts and NationalityCounts break the filtered population
	// down for the demographics sheet. Nationality keys are Saudi and
	// Non-Saudi; records with a blank nationality fall into neither.
	GenderCounts      map[string]int `json:"gender_counts"`
	NationalityCounts map[string]int `json:"nationality_counts"`

	// Years are the distinct selected graduation terms actually present,
	// sorted, for the report footer.
	Years []string `json:"years"`
}

// Aggregate runs the requested aggregation mode over a validated dataset.
// An unknown mode or a nil dataset is a caller bug, reported as an error
// rather than a panic.
func Aggregate(ds *Dataset, mode Mode, filters Filters) (*AggregationResult, error) {
	if ds == nil {
		return nil, fmt.Errorf("aggregate: nil dataset")
	}
	res := &AggregationResult{Mode: mode, Filters: filters}
	switch mode {
	case ModeDetailed:
		res.Detailed = aggregateDetailed(ds, filters)
	case ModeSimple:
		res.Simple = aggregateSimple(ds, filters)
	default:
		return nil, fmt.Errorf("aggregate: unknown mode %q", mode)
	}
	return res, nil
}

type groupKey struct {
	college string
	major   string
	year    string
}

func aggregateDetailed(ds *Dataset, filters Filters) *DetailedResult {
	records := filterRecords(ds, filters.match)
	res := &DetailedResult{
		StatusCounts: make(map[string]int),
		GenderCounts: countBy(records, func(rec *NormalizedRecord) (string, bool) {
			return string(rec.Gender), true
		}),
		NationalityCounts: countBy(records, func(rec *NormalizedRecord) (string, bool) {
			switch {
			case rec.Nationality == "":
				return "", false
			case IsSaudi(rec.Nationality):
				return "Saudi", true
			default:
				return "Non-Saudi", true
			}
		}),
	}

	byGroup := make(map[groupKey][]*NormalizedRecord)
	var order []groupKey
	terms := make(map[string]bool)

	for _, rec := range records {
		key := groupKey{college: rec.College, major: rec.Major, year: rec.GraduationTerm}
		switch {
		case filters.CombineAll:
			key = groupKey{}
		case filters.CombineYears:
			key.year = ""
		}
		if _, seen := byGroup[key]; !seen {
			order = append(order, key)
		}
		byGroup[key] = append(byGroup[key], rec)
		if rec.GraduationTerm != "" {
			terms[rec.GraduationTerm] = true
		}
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i].college != order[j].college {
			return order[i].college < order[j].college
		}
		if order[i].year != order[j].year {
			return order[i].year < order[j].year
		}
		return order[i].major < order[j].major
	})

	for _, key := range order {
		group := buildDetailedGroup(key, byGroup[key])
		res.Groups = append(res.Groups, group)

		res.Total += group.Total
		for status, n := range group.StatusCounts {
			res.StatusCounts[status] += n
		}
		res.Employment.Employed += group.Employment.Employed
		res.Employment.Unemployed += group.Employment.Unemployed
		res.Employment.Studying += group.Employment.Studying
	}
	fillPercentages(&res.Employment, res.Total)

	for term := range terms {
		res.Years = append(res.Years, term)
	}
	sort.Strings(res.Years)

	return res
}

func buildDetailedGroup(key groupKey, records []*NormalizedRecord) DetailedGroup {
	group := DetailedGroup{
		College: key.college,
		Major:   key.major,
		Year:    key.year,
		Total:   len(records),
		StatusCounts: countBy(records, func(rec *NormalizedRecord) (string, bool) {
			return rec.Status, true
		}),
	}
	for status, n := range group.StatusCounts {
		switch {
		case employedBucket[status]:
			group.Employment.Employed += n
		case status == "Unemployed":
			group.Employment.Unemployed += n
		case status == "Studying":
			group.Employment.Studying += n
		}
	}
	fillPercentages(&group.Employment, group.Total)
	return group
}

// fillPercentages computes the percentage fields from the bucket counts,
// rounded to two decimals. A zero total yields zero percentages, never a
// division by zero.
func fillPercentages(e *EmploymentBreakdown, total int) {
	if total == 0 {
		return
	}
	e.EmployedPct = round2(float64(e.Employed) / float64(total) * 100)
	e.UnemployedPct = round2(float64(e.Unemployed) / float64(total) * 100)
	e.StudyingPct = round2(float64(e.Studying) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
