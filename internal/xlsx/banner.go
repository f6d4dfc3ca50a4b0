package xlsx

import (
	"fmt"

	"github.com/MaxHT0x/WebAlumni/internal/core"
	"github.com/xuri/excelize/v2"
)

// WriteBannerIntegration renders the reconciled roster: every row of the
// primary alumni sheet in its original column order, followed by the rows
// synthesized from registrar records not yet on the sheet.
func WriteBannerIntegration(primary *core.Dataset, res *core.ReconciliationResult) (*excelize.File, error) {
	if primary == nil || res == nil {
		return nil, fmt.Errorf("banner integration: missing reconciliation input")
	}

	const name = "Integrated Alumni"
	f := excelize.NewFile()
	if _, err := f.NewSheet(name); err != nil {
		f.Close()
		return nil, fmt.Errorf("create sheet %q: %w", name, err)
	}

	hdr, err := headerStyle(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	txt, err := textStyle(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	for i, h := range primary.Headers {
		f.SetCellValue(name, cell(i+1, 1), h)
		f.SetCellStyle(name, cell(i+1, 1), cell(i+1, 1), hdr)
	}

	row := 2
	writeRow := func(r core.Row) {
		for i, h := range primary.Headers {
			f.SetCellValue(name, cell(i+1, row), r[h])
		}
		f.SetCellStyle(name, cell(1, row), cell(len(primary.Headers), row), txt)
		row++
	}
	for _, rec := range primary.Records {
		writeRow(rec.Raw)
	}
	for _, r := range res.NewRows {
		writeRow(r)
	}

	f.SetColWidth(name, "A", "D", 25)
	f.DeleteSheet("Sheet1")
	return f, nil
}
