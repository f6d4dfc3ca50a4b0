package core

import (
	"sort"
	"strings"
)

// Mode selects the aggregation mode.
type Mode string

const (
	ModeDetailed Mode = "detailed"
	ModeSimple   Mode = "simple"
)

// Degree filter options.
const (
	DegreeAll      = "all"
	DegreeBachelor = "bachelor"
	DegreeMaster   = "master"
)

// Filters is the report filter configuration. Zero values mean "all".
//
// The combine flags select the Detailed grouping: CombineAll collapses
// everything into one group, CombineYears keeps per-college groups with the
// selected years unioned, and neither keeps a group per (college, year).
type Filters struct {
	Colleges     []string `json:"colleges"`
	Years        []string `json:"years"`
	Degree       string   `json:"degree_option"`
	Gender       string   `json:"gender_option"`
	Nationality  string   `json:"nationality_option"`
	CombineAll   bool     `json:"combine_all"`
	CombineYears bool     `json:"combine_years"`
}

// matchBase applies the college and year filters, the only ones Simple mode
// honors. An empty list leaves that dimension unfiltered.
func (f Filters) matchBase(rec *NormalizedRecord) bool {
	return matchList(f.Colleges, rec.College) && matchList(f.Years, rec.GraduationTerm)
}

func matchList(values []string, v string) bool {
	return len(values) == 0 || contains(values, v)
}

// match applies the full filter set used by Detailed mode, list extraction,
// and workplace statistics.
func (f Filters) match(rec *NormalizedRecord) bool {
	if !f.matchBase(rec) {
		return false
	}
	switch f.Degree {
	case DegreeBachelor:
		if rec.IsMaster() {
			return false
		}
	case DegreeMaster:
		if !rec.IsMaster() {
			return false
		}
	}
	if f.Gender != "" && !strings.EqualFold(f.Gender, "all") {
		if !strings.EqualFold(string(rec.Gender), f.Gender) {
			return false
		}
	}
	switch strings.ToLower(f.Nationality) {
	case "saudi":
		if !IsSaudi(rec.Nationality) {
			return false
		}
	case "non-saudi":
		if IsSaudi(rec.Nationality) {
			return false
		}
	}
	return true
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// filterRecords returns pointers into the dataset's record slice for every
// record the predicate accepts, in upload order. Records are never copied or
// mutated downstream.
func filterRecords(ds *Dataset, pred func(*NormalizedRecord) bool) []*NormalizedRecord {
	var out []*NormalizedRecord
	for i := range ds.Records {
		if pred(&ds.Records[i]) {
			out = append(out, &ds.Records[i])
		}
	}
	return out
}

// countBy is the shared group-by-and-count primitive. Both aggregation modes
// and the workplace view supply their own key extractors; a second return of
// false excludes the record from the grouping.
func countBy(records []*NormalizedRecord, key func(*NormalizedRecord) (string, bool)) map[string]int {
	counts := make(map[string]int)
	for _, rec := range records {
		if k, ok := key(rec); ok {
			counts[k]++
		}
	}
	return counts
}

// NameCount is one entry of a frequency ranking.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// rankCounts orders a frequency map by descending count. Ties keep the order
// in which keys first appeared in the records, which the caller supplies, so
// repeated runs over the same dataset produce identical rankings.
func rankCounts(counts map[string]int, firstSeen map[string]int) []NameCount {
	out := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, NameCount{Name: name, Count: count})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return firstSeen[out[i].Name] < firstSeen[out[j].Name]
	})
	return out
}

// topN truncates a ranking to its first n entries.
func topN(ranked []NameCount, n int) []NameCount {
	if len(ranked) > n {
		return ranked[:n]
	}
	return ranked
}
