package xlsx

import (
	"fmt"

	"github.com/MaxHT0x/WebAlumni/internal/core"
	"github.com/xuri/excelize/v2"
)

// WriteSimpleReport renders a Simple-mode aggregation: one sheet per academic
// year with graduate counts by college and gender, plus an all-years summary
// sheet carrying the nationality split.
func WriteSimpleReport(res *core.AggregationResult) (*excelize.File, error) {
	if res == nil || res.Simple == nil {
		return nil, fmt.Errorf("simple report: missing simple aggregation")
	}
	s := res.Simple

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

	for _, yb := range s.Years {
		if err := writeYearSheet(f, yb, hdr, num); err != nil {
			f.Close()
			return nil, err
		}
	}
	if err := writeSummarySheet(f, s.Summary, hdr, num); err != nil {
		f.Close()
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	return f, nil
}

var simpleHeaders = []string{"College", "Total Graduates", "Gentlemen", "Ladies"}

func writeYearSheet(f *excelize.File, yb core.YearBreakdown, hdr, num int) error {
	name := sheetName(yb.AcademicYear)
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}

	for i, h := range simpleHeaders {
		f.SetCellValue(name, cell(i+1, 1), h)
		f.SetCellStyle(name, cell(i+1, 1), cell(i+1, 1), hdr)
	}

	row := 2
	for _, c := range yb.Colleges {
		f.SetCellValue(name, cell(1, row), c.College)
		f.SetCellValue(name, cell(2, row), c.Total)
		f.SetCellValue(name, cell(3, row), c.Gentlemen)
		f.SetCellValue(name, cell(4, row), c.Ladies)
		f.SetCellStyle(name, cell(2, row), cell(4, row), num)
		row++
	}

	f.SetCellValue(name, cell(1, row), "TOTAL")
	f.SetCellValue(name, cell(2, row), yb.Total)
	f.SetCellValue(name, cell(3, row), yb.Gentlemen)
	f.SetCellValue(name, cell(4, row), yb.Ladies)
	f.SetCellStyle(name, cell(1, row), cell(4, row), hdr)

	f.SetColWidth(name, "A", "A", 40)
	return nil
}

var summaryHeaders = []string{"College", "Total Graduates", "Gentlemen", "Ladies", "Saudi", "Non-Saudi"}

func writeSummarySheet(f *excelize.File, summary []core.CollegeSummary, hdr, num int) error {
	const name = "All years summary"
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}

	for i, h := range summaryHeaders {
		f.SetCellValue(name, cell(i+1, 1), h)
		f.SetCellStyle(name, cell(i+1, 1), cell(i+1, 1), hdr)
	}

	var total core.CollegeSummary
	row := 2
	for _, c := range summary {
		f.SetCellValue(name, cell(1, row), c.College)
		for i, v := range []int{c.Total, c.Gentlemen, c.Ladies, c.Saudi, c.NonSaudi} {
			f.SetCellValue(name, cell(2+i, row), v)
		}
		f.SetCellStyle(name, cell(2, row), cell(6, row), num)
		total.Total += c.Total
		total.Gentlemen += c.Gentlemen
		total.Ladies += c.Ladies
		total.Saudi += c.Saudi
		total.NonSaudi += c.NonSaudi
		row++
	}

	f.SetCellValue(name, cell(1, row), "TOTAL")
	for i, v := range []int{total.Total, total.Gentlemen, total.Ladies, total.Saudi, total.NonSaudi} {
		f.SetCellValue(name, cell(2+i, row), v)
	}
	f.SetCellStyle(name, cell(1, row), cell(6, row), hdr)

	f.SetColWidth(name, "A", "A", 40)
	return nil
}
