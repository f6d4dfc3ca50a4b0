package xlsx

import (
	"testing"

	"github.com/MaxHT0x/WebAlumni/internal/core"
	"github.com/xuri/excelize/v2"
)

func cellValue(t *testing.T, f *excelize.File, sheet, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, ref)
	if err != nil {
		t.Fatalf("get %s!%s: %v", sheet, ref, err)
	}
	return v
}

func hasSheet(f *excelize.File, name string) bool {
	for _, s := range f.GetSheetList() {
		if s == name {
			return true
		}
	}
	return false
}

func TestWriteDetailedReportCombined(t *testing.T) {
	res := &core.AggregationResult{
		Mode:    core.ModeDetailed,
		Filters: core.Filters{CombineAll: true},
		Detailed: &core.DetailedResult{
			Groups: []core.DetailedGroup{{
				Total:        285,
				StatusCounts: map[string]int{"Employed": 180, "Unemployed": 57, "Studying": 28},
				Employment: core.EmploymentBreakdown{
					Employed: 200, Unemployed: 57, Studying: 28,
					EmployedPct: 70.18, UnemployedPct: 20, StudyingPct: 9.82,
				},
			}},
			Total:        285,
			StatusCounts: map[string]int{"Employed": 180, "Unemployed": 57, "Studying": 28},
			Employment: core.EmploymentBreakdown{
				Employed: 200, Unemployed: 57, Studying: 28,
				EmployedPct: 70.18, UnemployedPct: 20, StudyingPct: 9.82,
			},
			GenderCounts:      map[string]int{"Male": 150, "Female": 135},
			NationalityCounts: map[string]int{"Saudi": 250, "Non-Saudi": 35},
			Years:             []string{"2022-2023", "2023-2024"},
		},
	}

	f, err := WriteDetailedReport(res)
	if err != nil {
		t.Fatalf("WriteDetailedReport: %v", err)
	}
	defer f.Close()

	if !hasSheet(f, "Combined_Report") {
		t.Fatalf("sheets = %v, want Combined_Report", f.GetSheetList())
	}
	if got := cellValue(t, f, "Combined_Report", "A2"); got != "All Colleges" {
		t.Errorf("group label = %q", got)
	}
	// Status columns follow the reference vocabulary order, so Employed is
	// the first status column.
	if got := cellValue(t, f, "Combined_Report", "B1"); got != "Employed" {
		t.Errorf("first status column = %q", got)
	}
	if got := cellValue(t, f, "Combined_Report", "A3"); got != "Overall Total" {
		t.Errorf("total row label = %q", got)
	}
	if got := cellValue(t, f, "Combined_Report", "A5"); got != "Academic Years:" {
		t.Errorf("footer label = %q", got)
	}
	if got := cellValue(t, f, "Combined_Report", "B5"); got != "2022-2023, 2023-2024" {
		t.Errorf("footer years = %q", got)
	}

	if !hasSheet(f, "Demographics") {
		t.Fatalf("sheets = %v, want Demographics", f.GetSheetList())
	}
	if got := cellValue(t, f, "Demographics", "B2"); got != "Male" {
		t.Errorf("first gender row = %q", got)
	}
	if got := cellValue(t, f, "Demographics", "C4"); got != "250" {
		t.Errorf("saudi count = %q", got)
	}
}

func TestWriteDetailedReportPerCollege(t *testing.T) {
	res := &core.AggregationResult{
		Mode: core.ModeDetailed,
		Detailed: &core.DetailedResult{
			Groups: []core.DetailedGroup{
				{College: "College of Business", Major: "Finance", Total: 2,
					StatusCounts: map[string]int{"Employed": 2},
					Employment:   core.EmploymentBreakdown{Employed: 2, EmployedPct: 100}},
				{College: "College of Science & General S", Major: "Biology", Total: 1,
					StatusCounts: map[string]int{"Studying": 1},
					Employment:   core.EmploymentBreakdown{Studying: 1, StudyingPct: 100}},
			},
			Total:        3,
			StatusCounts: map[string]int{"Employed": 2, "Studying": 1},
			Employment:   core.EmploymentBreakdown{Employed: 2, Studying: 1, EmployedPct: 66.67, StudyingPct: 33.33},
			Years:        []string{"2023-2024"},
		},
	}

	f, err := WriteDetailedReport(res)
	if err != nil {
		t.Fatalf("WriteDetailedReport: %v", err)
	}
	defer f.Close()

	for _, name := range []string{"CoB", "CoS"} {
		if !hasSheet(f, name) {
			t.Errorf("missing sheet %q in %v", name, f.GetSheetList())
		}
	}
	if hasSheet(f, "Sheet1") {
		t.Error("default sheet not removed")
	}
	if got := cellValue(t, f, "CoB", "A2"); got != "Finance - College of Business" {
		t.Errorf("group label = %q", got)
	}
}

func TestWriteDetailedReportPerCollegeYear(t *testing.T) {
	res := &core.AggregationResult{
		Mode: core.ModeDetailed,
		Detailed: &core.DetailedResult{
			Groups: []core.DetailedGroup{
				{College: "College of Business", Major: "Finance", Year: "2022-2023 FALL", Total: 1,
					StatusCounts: map[string]int{"Employed": 1},
					Employment:   core.EmploymentBreakdown{Employed: 1, EmployedPct: 100}},
				{College: "College of Business", Major: "Finance", Year: "2023-2024 FALL", Total: 2,
					StatusCounts: map[string]int{"Employed": 2},
					Employment:   core.EmploymentBreakdown{Employed: 2, EmployedPct: 100}},
			},
			Total:        3,
			StatusCounts: map[string]int{"Employed": 3},
			Employment:   core.EmploymentBreakdown{Employed: 3, EmployedPct: 100},
			Years:        []string{"2022-2023 FALL", "2023-2024 FALL"},
		},
	}

	f, err := WriteDetailedReport(res)
	if err != nil {
		t.Fatalf("WriteDetailedReport: %v", err)
	}
	defer f.Close()

	for _, name := range []string{"CoB - 2022-2023 FALL", "CoB - 2023-2024 FALL"} {
		if !hasSheet(f, name) {
			t.Errorf("missing sheet %q in %v", name, f.GetSheetList())
		}
	}
	if got := cellValue(t, f, "CoB - 2023-2024 FALL", "A2"); got != "Finance - College of Business" {
		t.Errorf("group label = %q", got)
	}
}

func TestWriteDetailedReportNilResult(t *testing.T) {
	if _, err := WriteDetailedReport(nil); err == nil {
		t.Fatal("expected error for nil result")
	}
	if _, err := WriteDetailedReport(&core.AggregationResult{Mode: core.ModeDetailed}); err == nil {
		t.Fatal("expected error for missing detailed payload")
	}
}

func TestWriteSimpleReport(t *testing.T) {
	res := &core.AggregationResult{
		Mode: core.ModeSimple,
		Simple: &core.SimpleResult{
			Years: []core.YearBreakdown{{
				AcademicYear: "2023-2024",
				Colleges: []core.CollegeGenderCount{
					{College: "College of Business", Total: 3, Gentlemen: 2, Ladies: 1},
				},
				Total: 3, Gentlemen: 2, Ladies: 1,
			}},
			Summary: []core.CollegeSummary{
				{College: "College of Business", Total: 3, Gentlemen: 2, Ladies: 1, Saudi: 2, NonSaudi: 1},
			},
		},
	}

	f, err := WriteSimpleReport(res)
	if err != nil {
		t.Fatalf("WriteSimpleReport: %v", err)
	}
	defer f.Close()

	if !hasSheet(f, "2023-2024") || !hasSheet(f, "All years summary") {
		t.Fatalf("sheets = %v", f.GetSheetList())
	}
	if got := cellValue(t, f, "2023-2024", "A2"); got != "College of Business" {
		t.Errorf("college cell = %q", got)
	}
	if got := cellValue(t, f, "2023-2024", "A3"); got != "TOTAL" {
		t.Errorf("total row label = %q", got)
	}
	if got := cellValue(t, f, "2023-2024", "B3"); got != "3" {
		t.Errorf("total graduates = %q", got)
	}
	if got := cellValue(t, f, "All years summary", "E2"); got != "2" {
		t.Errorf("saudi count = %q", got)
	}
	if got := cellValue(t, f, "All years summary", "F3"); got != "1" {
		t.Errorf("summary total non-saudi = %q", got)
	}
}

func TestWriteWorkplaceReport(t *testing.T) {
	stats := &core.WorkplaceStats{
		TotalAlumni:  5,
		ValidEntries: 3,
		EmptyEntries: 2,
		TopEmployers: []core.NameCount{
			{Name: "SAUDI NATIONAL BANK", Count: 2},
			{Name: "ARAMCO", Count: 1},
		},
		EmptyBreakdown: []core.NameCount{
			{Name: string(core.EmployerEmpty), Count: 1},
			{Name: string(core.EmployerPlaceholder), Count: 1},
		},
		Positions: map[core.PositionCategory]int{
			core.PositionCSuite: 1,
			core.PositionOther:  4,
		},
		HighPositionCount: 1,
		NationalityDist: []core.NameCount{
			{Name: "Saudi Arabia", Count: 4},
			{Name: "Egypt", Count: 1},
		},
	}

	f, err := WriteWorkplaceReport(stats)
	if err != nil {
		t.Fatalf("WriteWorkplaceReport: %v", err)
	}
	defer f.Close()

	for _, name := range []string{"Summary", "Empty Analysis", "Top Employers", "Top Positions", "Nationality"} {
		if !hasSheet(f, name) {
			t.Errorf("missing sheet %q in %v", name, f.GetSheetList())
		}
	}
	if got := cellValue(t, f, "Summary", "B2"); got != "5" {
		t.Errorf("total alumni = %q", got)
	}
	if got := cellValue(t, f, "Summary", "B5"); got != "60" {
		t.Errorf("valid entry pct = %q", got)
	}
	if got := cellValue(t, f, "Top Employers", "A2"); got != "SAUDI NATIONAL BANK" {
		t.Errorf("top employer = %q", got)
	}
	if got := cellValue(t, f, "Top Positions", "B7"); got != "1" {
		t.Errorf("high positions = %q", got)
	}
}

func TestWriteAlumniList(t *testing.T) {
	lists := []core.CollegeList{{
		College: "College of Business",
		Rows: []core.Row{{
			"Student Name":   "Sara",
			"Gender":         "Female",
			"College Degree": "College of Business Bachelor",
			"Major":          "Finance",
		}},
	}}

	f, err := WriteAlumniList(lists)
	if err != nil {
		t.Fatalf("WriteAlumniList: %v", err)
	}
	defer f.Close()

	if !hasSheet(f, "CoB") {
		t.Fatalf("sheets = %v", f.GetSheetList())
	}
	if got := cellValue(t, f, "CoB", "A1"); got != "Student Name" {
		t.Errorf("header = %q", got)
	}
	if got := cellValue(t, f, "CoB", "C2"); got != "College of Business Bachelor" {
		t.Errorf("college degree = %q", got)
	}
}

func TestWriteBannerIntegration(t *testing.T) {
	primary := &core.Dataset{
		Source:  core.SourceAlumni,
		Headers: []string{"Student ID", "College", "Current Status", "Comments"},
		Records: []core.NormalizedRecord{{
			Record: core.Record{Raw: core.Row{
				"Student ID":     "201900001",
				"College":        "College of Business",
				"Current Status": "Employed",
			}},
		}},
	}
	res := &core.ReconciliationResult{
		NewRows: []core.Row{{
			"Student ID":     "202100042",
			"College":        "College of Science",
			"Current Status": core.NewGraduateStatus,
			"Comments":       "Added from Banner on 2026-08-30",
		}},
	}

	f, err := WriteBannerIntegration(primary, res)
	if err != nil {
		t.Fatalf("WriteBannerIntegration: %v", err)
	}
	defer f.Close()

	const sheet = "Integrated Alumni"
	if !hasSheet(f, sheet) {
		t.Fatalf("sheets = %v", f.GetSheetList())
	}
	if got := cellValue(t, f, sheet, "A2"); got != "201900001" {
		t.Errorf("primary row id = %q", got)
	}
	if got := cellValue(t, f, sheet, "C3"); got != core.NewGraduateStatus {
		t.Errorf("new row status = %q", got)
	}
}
