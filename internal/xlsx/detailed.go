package xlsx

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MaxHT0x/WebAlumni/internal/core"
	"github.com/MaxHT0x/WebAlumni/internal/refdata"
	"github.com/xuri/excelize/v2"
)

// WriteDetailedReport renders a Detailed-mode aggregation into a workbook.
// The sheet layout follows the grouping the aggregation used: a single
// combined sheet when combine-all was set, one sheet per college when the
// years were merged, and otherwise one sheet per (college, academic year)
// pair. Every sheet lists its groups with status counts, the employment
// breakdown, an overall total row, and the academic-year footer.
func WriteDetailedReport(res *core.AggregationResult) (*excelize.File, error) {
	if res == nil || res.Detailed == nil {
		return nil, fmt.Errorf("detailed report: missing detailed aggregation")
	}
	d := res.Detailed

	f := excelize.NewFile()
	if res.Filters.CombineAll {
		if err := writeDetailedSheet(f, "Combined_Report", d.Groups, d); err != nil {
			f.Close()
			return nil, err
		}
	} else {
		type sheetKey struct{ college, year string }
		bySheet := make(map[sheetKey][]core.DetailedGroup)
		var order []sheetKey
		for _, g := range d.Groups {
			k := sheetKey{college: g.College, year: g.Year}
			if _, seen := bySheet[k]; !seen {
				order = append(order, k)
			}
			bySheet[k] = append(bySheet[k], g)
		}
		for _, k := range order {
			name := refdata.CollegeAbbreviations[k.college]
			if name == "" {
				name = k.college
			}
			if k.year != "" {
				name += " - " + k.year
			}
			if err := writeDetailedSheet(f, sheetName(name), bySheet[k], d); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	if err := writeDemographicsSheet(f, d); err != nil {
		f.Close()
		return nil, err
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

// writeDemographicsSheet adds the gender and nationality breakdown of the
// filtered population.
func writeDemographicsSheet(f *excelize.File, d *core.DetailedResult) error {
	const name = "Demographics"
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}

	hdr, err := headerStyle(f)
	if err != nil {
		return err
	}
	num, err := numberStyle(f)
	if err != nil {
		return err
	}

	for i, h := range []string{"Category", "Value", "Count"} {
		f.SetCellValue(name, cell(i+1, 1), h)
		f.SetCellStyle(name, cell(i+1, 1), cell(i+1, 1), hdr)
	}

	row := 2
	writeCounts := func(category string, counts map[string]int, order []string) {
		for _, k := range order {
			if n, ok := counts[k]; ok {
				f.SetCellValue(name, cell(1, row), category)
				f.SetCellValue(name, cell(2, row), k)
				f.SetCellValue(name, cell(3, row), n)
				f.SetCellStyle(name, cell(3, row), cell(3, row), num)
				row++
			}
		}
	}
	writeCounts("Gender", d.GenderCounts, []string{
		string(core.GenderMale), string(core.GenderFemale), string(core.GenderUnresolved),
	})
	writeCounts("Nationality", d.NationalityCounts, []string{"Saudi", "Non-Saudi"})

	f.SetColWidth(name, "A", "B", 20)
	return nil
}

// detailedColumns is the fixed column layout of a detailed sheet after the
// group label and the per-status columns.
var detailedColumns = []string{
	"Total", "Employed", "Unemployed", "Studying",
	"Employed %", "Unemployed %", "Studying %",
}

func writeDetailedSheet(f *excelize.File, name string, groups []core.DetailedGroup, d *core.DetailedResult) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}

	hdr, err := headerStyle(f)
	if err != nil {
		return err
	}
	num, err := numberStyle(f)
	if err != nil {
		return err
	}

	// Stable status column order: union of the statuses present, sorted by
	// the reference vocabulary order with extras appended.
	statuses := statusColumns(groups)

	col := 1
	setHeader := func(v string) {
		f.SetCellValue(name, cell(col, 1), v)
		f.SetCellStyle(name, cell(col, 1), cell(col, 1), hdr)
		col++
	}
	setHeader("Group")
	for _, s := range statuses {
		setHeader(s)
	}
	for _, c := range detailedColumns {
		setHeader(c)
	}

	row := 2
	writeGroup := func(label string, g core.DetailedGroup) {
		f.SetCellValue(name, cell(1, row), label)
		for i, s := range statuses {
			f.SetCellValue(name, cell(2+i, row), g.StatusCounts[s])
		}
		base := 2 + len(statuses)
		e := g.Employment
		for i, v := range []any{g.Total, e.Employed, e.Unemployed, e.Studying, e.EmployedPct, e.UnemployedPct, e.StudyingPct} {
			f.SetCellValue(name, cell(base+i, row), v)
		}
		f.SetCellStyle(name, cell(2, row), cell(base+6, row), num)
		row++
	}

	for _, g := range groups {
		writeGroup(groupLabel(g), g)
	}

	// Overall row spans the whole result, not just this sheet, matching
	// the combined footer the reviewers reconcile against.
	writeGroup("Overall Total", core.DetailedGroup{
		Total:        d.Total,
		StatusCounts: d.StatusCounts,
		Employment:   d.Employment,
	})

	f.SetCellValue(name, cell(1, row+1), "Academic Years:")
	f.SetCellValue(name, cell(2, row+1), strings.Join(d.Years, ", "))
	f.SetColWidth(name, "A", "A", 40)

	return nil
}

func groupLabel(g core.DetailedGroup) string {
	switch {
	case g.College == "" && g.Major == "":
		return "All Colleges"
	case g.Major == "":
		return g.College
	default:
		return g.Major + " - " + g.College
	}
}

// statusColumns orders the statuses appearing in the groups: reference
// vocabulary first, anything else after, alphabetically stable.
func statusColumns(groups []core.DetailedGroup) []string {
	present := make(map[string]bool)
	for _, g := range groups {
		for s := range g.StatusCounts {
			present[s] = true
		}
	}

	var cols []string
	for _, s := range refdata.ExpectedStatuses {
		canonical := core.NormalizeStatus(s)
		if present[canonical] {
			cols = append(cols, canonical)
			delete(present, canonical)
		}
	}
	var extra []string
	for s := range present {
		extra = append(extra, s)
	}
	sort.Strings(extra)
	return append(cols, extra...)
}
