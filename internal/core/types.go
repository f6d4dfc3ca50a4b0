// Package core implements the alumni data processing pipeline: field
// normalization, upload validation, report aggregation, and Banner
// reconciliation. The package has no I/O dependencies; file reading and
// report rendering live in their own adapters.
package core

// SourceKind identifies which upload schema a dataset was validated against.
type SourceKind string

const (
	SourceAlumni SourceKind = "alumni"
	SourceBanner SourceKind = "banner"
)

// Row is one spreadsheet row keyed by column header.
type Row map[string]string

// Table is the input contract with the file-reading adapter: the declared
// header order plus the raw rows. Cell values arrive as trimmed strings.
type Table struct {
	Headers []string
	Rows    []Row
}

// Gender is the canonical gender classification.
type Gender string

const (
	GenderMale       Gender = "Male"
	GenderFemale     Gender = "Female"
	GenderUnresolved Gender = "Unresolved"
)

// EmployerCategory classifies the workplace field after normalization.
type EmployerCategory string

const (
	EmployerValid        EmployerCategory = "VALID"
	EmployerEmpty        EmployerCategory = "EMPTY"
	EmployerPlaceholder  EmployerCategory = "PLACEHOLDER"
	EmployerConfidential EmployerCategory = "CONFIDENTIAL"
	EmployerUnknown      EmployerCategory = "UNKNOWN-PATTERN"
)

// PositionCategory classifies a job title by seniority.
type PositionCategory string

const (
	PositionCSuite   PositionCategory = "C-SUITE"
	PositionDirector PositionCategory = "DIRECTOR"
	PositionVP       PositionCategory = "VP"
	PositionFounder  PositionCategory = "FOUNDER"
	PositionOther    PositionCategory = "OTHER"
)

// Record is one alumnus row as uploaded. Raw fields are never mutated; the
// derived fields live on NormalizedRecord.
type Record struct {
	StudentID      string
	Name           string
	College        string
	GraduationTerm string
	RawStatus      string
	RawGender      string
	Major          string
	RawWorkplace   string
	RawPosition    string
	Nationality    string

	// Raw preserves the full uploaded row, including optional columns,
	// for list extraction and reconciliation output.
	Raw Row
}

// NormalizedRecord is a Record plus its derived canonical fields. Derived
// fields are computed once during validation and never change.
type NormalizedRecord struct {
	Record

	Status           string // canonical status
	Gender           Gender
	AcademicYear     string // "" when the graduation term has no year shape
	Employer         string
	EmployerCategory EmployerCategory
	Position         PositionCategory
}

// IsMaster reports whether the record belongs to a graduate student, signaled
// by the "G" prefix on the student ID.
func (r *NormalizedRecord) IsMaster() bool {
	return len(r.StudentID) > 0 && r.StudentID[0] == 'G'
}

// WarningKind tags an advisory validation finding.
type WarningKind string

const (
	WarnMissingColumn  WarningKind = "missing-column"
	WarnBadIDFormat    WarningKind = "bad-id-format"
	WarnUnknownCollege WarningKind = "unknown-college"
	WarnUnknownStatus  WarningKind = "unknown-status"
	WarnUnknownGender  WarningKind = "unknown-gender"
	WarnEmptyCritical  WarningKind = "empty-critical-field"
	WarnUnparsableTerm WarningKind = "unparsable-term"
)

// Warning is a non-fatal validation finding. Row is the 1-based data row
// number, or 0 for findings not tied to a row.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Row     int         `json:"row,omitempty"`
	Message string      `json:"message"`
}

// Dataset is the Validator's output: every uploaded row normalized and
// annotated, plus the advisory list. Datasets are read-only snapshots; the
// Aggregator and Reconciler never modify them.
type Dataset struct {
	Source   SourceKind
	Headers  []string
	Records  []NormalizedRecord
	Warnings []Warning

	// GraduationYears are the distinct graduation term values seen in the
	// upload, sorted. Used to populate the term picker.
	GraduationYears []string
}
