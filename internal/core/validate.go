package core

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/MaxHT0x/WebAlumni/internal/refdata"
)

// Required columns per source kind. Uploads missing any of these fail
// outright; everything else is advisory.
var requiredColumns = map[SourceKind][]string{
	SourceAlumni: {
		"College",
		"Year/Semester of Graduation",
		"Current Status",
		"Student ID",
		"Gender",
		"Major",
		"Current Workplace",
		"Current Position",
	},
	SourceBanner: {
		"Student ID",
		"Student Name",
		"College",
		"Graduation Term",
		"Major",
		"Gender",
	},
}

// optionalColumns are handled gracefully when absent; their absence is
// surfaced as a missing-column advisory.
var optionalColumns = []string{
	"Nationality",
	"Industry",
	"Full Time or Part Time",
	"Degree",
	"Personal Email",
	"Phone Number",
	"Minor",
	"Concentration",
	"GPA",
}

// MissingColumnsError is the fatal validation failure: the upload lacks
// columns the declared source kind requires. No partial dataset accompanies
// it.
type MissingColumnsError struct {
	Source  SourceKind
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// Validate checks a raw upload against the schema for the given source kind
// and produces the normalized dataset.
//
// Structural problems in individual rows never block processing: each becomes
// a Warning carrying its kind and 1-based row number, and the row is kept.
// Duplicate student IDs within the upload are preserved as separate records;
// deduplication is a cross-source concern handled by Reconcile. The only
// fatal outcome is a missing required column.
func Validate(table Table, source SourceKind) (*Dataset, error) {
	required, ok := requiredColumns[source]
	if !ok {
		return nil, fmt.Errorf("unknown source kind %q", source)
	}

	present := make(map[string]bool, len(table.Headers))
	for _, h := range table.Headers {
		present[strings.TrimSpace(h)] = true
	}

	var missing []string
	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Source: source, Columns: missing}
	}

	ds := &Dataset{Source: source, Headers: table.Headers}

	for _, col := range optionalColumns {
		if !present[col] {
			ds.Warnings = append(ds.Warnings, Warning{
				Kind:    WarnMissingColumn,
				Message: fmt.Sprintf("optional column %q is missing", col),
			})
		}
	}

	termColumn := "Year/Semester of Graduation"
	if source == SourceBanner {
		termColumn = "Graduation Term"
	}

	knownColleges := make(map[string]bool, len(refdata.Colleges))
	for _, c := range refdata.Colleges {
		knownColleges[c] = true
	}

	terms := make(map[string]bool)
	for i, row := range table.Rows {
		rowNum := i + 1
		rec := buildRecord(row, source, termColumn)
		norm := normalizeRecord(rec)
		ds.Records = append(ds.Records, norm)

		if rec.GraduationTerm != "" {
			terms[rec.GraduationTerm] = true
		}

		ds.Warnings = append(ds.Warnings, checkRecord(&norm, source, rowNum)...)
	}

	for term := range terms {
		ds.GraduationYears = append(ds.GraduationYears, term)
	}
	sort.Strings(ds.GraduationYears)

	return ds, nil
}

func buildRecord(row Row, source SourceKind, termColumn string) Record {
	get := func(col string) string {
		return strings.TrimSpace(row[col])
	}
	rec := Record{
		StudentID:      get("Student ID"),
		Name:           get("Student Name"),
		College:        get("College"),
		GraduationTerm: get(termColumn),
		RawGender:      get("Gender"),
		Major:          get("Major"),
		Nationality:    get("Nationality"),
		Raw:            row,
	}
	if source == SourceAlumni {
		rec.RawStatus = get("Current Status")
		rec.RawWorkplace = get("Current Workplace")
		rec.RawPosition = get("Current Position")
	}
	return rec
}

// normalizeRecord derives the canonical fields for one record. Raw fields
// are left untouched.
func normalizeRecord(rec Record) NormalizedRecord {
	employer, category := NormalizeEmployer(rec.RawWorkplace)
	return NormalizedRecord{
		Record:           rec,
		Status:           NormalizeStatus(rec.RawStatus),
		Gender:           NormalizeGender(rec.RawGender),
		AcademicYear:     ExtractAcademicYear(rec.GraduationTerm),
		Employer:         employer,
		EmployerCategory: category,
		Position:         ClassifyPosition(rec.RawPosition),
	}
}

// checkRecord runs the structural checks for one normalized record.
func checkRecord(rec *NormalizedRecord, source SourceKind, rowNum int) []Warning {
	var warns []Warning
	add := func(kind WarningKind, format string, args ...any) {
		warns = append(warns, Warning{
			Kind:    kind,
			Row:     rowNum,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if rec.StudentID != "" && !refdata.StudentIDPattern.MatchString(rec.StudentID) {
		add(WarnBadIDFormat, "invalid student ID %q", rec.StudentID)
	}
	if rec.College == "" {
		add(WarnEmptyCritical, "college is blank")
	} else if !isKnownCollege(rec.College) {
		add(WarnUnknownCollege, "unknown college %q", rec.College)
	}
	if rec.RawGender == "" {
		add(WarnEmptyCritical, "gender is blank")
	} else if rec.Gender == GenderUnresolved {
		add(WarnUnknownGender, "unrecognized gender %q", rec.RawGender)
	}

	// Banner extracts carry no status column; status checks are an alumni
	// list concern.
	if source == SourceAlumni {
		if rec.RawStatus == "" {
			add(WarnEmptyCritical, "current status is blank")
		} else if !IsExpectedStatus(rec.Status) {
			add(WarnUnknownStatus, "unexpected current status %q", rec.RawStatus)
		}
	}

	return warns
}

func isKnownCollege(college string) bool {
	for _, c := range refdata.Colleges {
		if c == college {
			return true
		}
	}
	return false
}

// Academic year shapes accepted by ExtractAcademicYear, tried in order.
var (
	fullYearPattern  = regexp.MustCompile(`(\d{4})-(\d{4})`)
	shortYearPattern = regexp.MustCompile(`(\d{4})-(\d{2})`)
	bareYearPattern  = regexp.MustCompile(`(\d{4})`)
)

// ExtractAcademicYear derives the academic-year bucket from a graduation
// term. Three shapes are accepted: "2013-2014 FALL" → "2013-2014",
// "2013-14" → "2013-2014", and a bare "2014" which is taken as the ending
// year → "2013-2014". Terms with no year shape yield "".
func ExtractAcademicYear(term string) string {
	if m := fullYearPattern.FindStringSubmatch(term); m != nil {
		return m[1] + "-" + m[2]
	}
	if m := shortYearPattern.FindStringSubmatch(term); m != nil {
		return m[1] + "-20" + m[2]
	}
	if m := bareYearPattern.FindStringSubmatch(term); m != nil {
		year, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%d-%d", year-1, year)
	}
	return ""
}
