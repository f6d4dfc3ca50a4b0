package xlsx

import (
	"fmt"

	"github.com/MaxHT0x/WebAlumni/internal/core"
	"github.com/MaxHT0x/WebAlumni/internal/refdata"
	"github.com/xuri/excelize/v2"
)

// WriteAlumniList renders extracted contact lists, one sheet per college,
// using the fixed contact-column projection.
func WriteAlumniList(lists []core.CollegeList) (*excelize.File, error) {
	f := excelize.NewFile()
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

	for _, list := range lists {
		name := refdata.CollegeAbbreviations[list.College]
		if name == "" {
			name = sheetName(list.College)
		}
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("create sheet %q: %w", name, err)
		}

		for i, col := range core.AlumniListColumns {
			f.SetCellValue(name, cell(i+1, 1), col)
			f.SetCellStyle(name, cell(i+1, 1), cell(i+1, 1), hdr)
		}
		for r, row := range list.Rows {
			for i, col := range core.AlumniListColumns {
				f.SetCellValue(name, cell(i+1, r+2), row[col])
			}
			f.SetCellStyle(name, cell(1, r+2), cell(len(core.AlumniListColumns), r+2), txt)
		}

		// Wide columns for names, emails and workplaces.
		f.SetColWidth(name, "A", "A", 30)
		f.SetColWidth(name, "C", "C", 35)
		f.SetColWidth(name, "G", "I", 30)
	}

	if len(lists) > 0 {
		f.DeleteSheet("Sheet1")
	}
	return f, nil
}
