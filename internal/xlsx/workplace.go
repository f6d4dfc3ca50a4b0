package xlsx

import (
	"fmt"
	"math"

	"github.com/MaxHT0x/WebAlumni/internal/core"
	"github.com/xuri/excelize/v2"
)

// WriteWorkplaceReport renders employment-field statistics across five
// sheets: overall summary, empty-entry breakdown, top employers, position
// seniority counts, and the nationality distribution.
func WriteWorkplaceReport(stats *core.WorkplaceStats) (*excelize.File, error) {
	if stats == nil {
		return nil, fmt.Errorf("workplace report: missing statistics")
	}

	f := excelize.NewFile()
	hdr, err := headerStyle(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	num, err := numberStyle(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	writeKV := func(name string, pairs [][2]any) error {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %q: %w", name, err)
		}
		f.SetCellValue(name, cell(1, 1), "Metric")
		f.SetCellValue(name, cell(2, 1), "Value")
		f.SetCellStyle(name, cell(1, 1), cell(2, 1), hdr)
		for i, p := range pairs {
			f.SetCellValue(name, cell(1, i+2), p[0])
			f.SetCellValue(name, cell(2, i+2), p[1])
			f.SetCellStyle(name, cell(2, i+2), cell(2, i+2), num)
		}
		f.SetColWidth(name, "A", "A", 40)
		return nil
	}

	validPct := percentOf(stats.ValidEntries, stats.TotalAlumni)
	if err := writeKV("Summary", [][2]any{
		{"Total Alumni", stats.TotalAlumni},
		{"Valid Workplace Entries", stats.ValidEntries},
		{"Empty Workplace Entries", stats.EmptyEntries},
		{"Valid Entry %", validPct},
	}); err != nil {
		f.Close()
		return nil, err
	}

	emptyCounts := make(map[string]int, len(stats.EmptyBreakdown))
	for _, nc := range stats.EmptyBreakdown {
		emptyCounts[nc.Name] = nc.Count
	}
	var emptyPairs [][2]any
	for _, cat := range []string{
		string(core.EmployerEmpty),
		string(core.EmployerPlaceholder),
		string(core.EmployerConfidential),
		string(core.EmployerUnknown),
	} {
		emptyPairs = append(emptyPairs, [2]any{cat, emptyCounts[cat]})
	}
	if err := writeKV("Empty Analysis", emptyPairs); err != nil {
		f.Close()
		return nil, err
	}

	if err := writeRanked(f, "Top Employers", "Employer", stats.TopEmployers, hdr, num); err != nil {
		f.Close()
		return nil, err
	}

	posPairs := [][2]any{}
	for _, cat := range []core.PositionCategory{
		core.PositionCSuite,
		core.PositionDirector,
		core.PositionVP,
		core.PositionFounder,
		core.PositionOther,
	} {
		posPairs = append(posPairs, [2]any{string(cat), stats.Positions[cat]})
	}
	posPairs = append(posPairs,
		[2]any{"High Positions", stats.HighPositionCount},
		[2]any{"High Position %", percentOf(stats.HighPositionCount, stats.TotalAlumni)},
	)
	if err := writeKV("Top Positions", posPairs); err != nil {
		f.Close()
		return nil, err
	}

	if err := writeRanked(f, "Nationality", "Nationality", stats.NationalityDist, hdr, num); err != nil {
		f.Close()
		return nil, err
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

func writeRanked(f *excelize.File, sheet, label string, counts []core.NameCount, hdr, num int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %q: %w", sheet, err)
	}
	f.SetCellValue(sheet, cell(1, 1), label)
	f.SetCellValue(sheet, cell(2, 1), "Count")
	f.SetCellStyle(sheet, cell(1, 1), cell(2, 1), hdr)
	for i, nc := range counts {
		f.SetCellValue(sheet, cell(1, i+2), nc.Name)
		f.SetCellValue(sheet, cell(2, i+2), nc.Count)
		f.SetCellStyle(sheet, cell(2, i+2), cell(2, i+2), num)
	}
	f.SetColWidth(sheet, "A", "A", 40)
	return nil
}

func percentOf(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*10000) / 100
}
