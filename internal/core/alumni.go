package core

import "strings"

// AlumniListColumns is the fixed projection for extracted contact lists, in
// output order.
var AlumniListColumns = []string{
	"Student Name",
	"Gender",
	"College Degree",
	"Major",
	"Minor",
	"Concentration",
	"Personal Email",
	"Phone Number",
	"Nationality",
	"GPA",
	"Year/Semester of Graduation",
}

// CollegeList is the extracted contact list for one college.
type CollegeList struct {
	College string `json:"college"`
	Rows    []Row  `json:"rows"`
}

// AlumniList extracts contact lists from a validated alumni dataset, one
// group per college in filter order. An empty college filter matches every
// college, grouped in first-seen record order. The full filter set applies,
// plus a canonical-status allowlist. The synthetic "College Degree" column
// joins the college name with the optional Degree column.
func AlumniList(ds *Dataset, filters Filters, allowedStatuses []string) []CollegeList {
	allowed := make(map[string]bool, len(allowedStatuses))
	for _, s := range allowedStatuses {
		allowed[NormalizeStatus(s)] = true
	}

	records := filterRecords(ds, func(rec *NormalizedRecord) bool {
		return filters.match(rec) && allowed[rec.Status]
	})

	colleges := filters.Colleges
	if len(colleges) == 0 {
		seen := make(map[string]bool)
		for _, rec := range records {
			if !seen[rec.College] {
				seen[rec.College] = true
				colleges = append(colleges, rec.College)
			}
		}
	}

	var lists []CollegeList
	for _, college := range colleges {
		var rows []Row
		for _, rec := range records {
			if rec.College != college {
				continue
			}
			rows = append(rows, projectAlumniRow(rec))
		}
		if len(rows) == 0 {
			continue
		}
		lists = append(lists, CollegeList{College: college, Rows: rows})
	}
	return lists
}

func projectAlumniRow(rec *NormalizedRecord) Row {
	row := make(Row, len(AlumniListColumns))
	for _, col := range AlumniListColumns {
		row[col] = strings.TrimSpace(rec.Raw[col])
	}
	row["College Degree"] = strings.TrimSpace(rec.College + " " + rec.Raw["Degree"])
	return row
}
