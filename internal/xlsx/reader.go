// Package xlsx adapts spreadsheet files to and from the processing core:
// reading uploaded workbooks into header-keyed rows and rendering report
// structures into styled multi-sheet workbooks. All spreadsheet I/O lives
// here; the core never touches a file.
package xlsx

import (
	"fmt"
	"io"
	"strings"

	"github.com/MaxHT0x/WebAlumni/internal/core"
	"github.com/xuri/excelize/v2"
)

// ReadTable reads the first worksheet of an .xlsx stream into the core's
// table shape. The first row is the header; headers are trimmed, and every
// cell is kept as its string form. Rows with no cells at all are skipped.
func ReadTable(r io.Reader) (core.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return core.Table{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return core.Table{}, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return core.Table{}, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return core.Table{}, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	var table core.Table
	for _, h := range rows[0] {
		table.Headers = append(table.Headers, strings.TrimSpace(h))
	}

	for _, cells := range rows[1:] {
		if isBlankRow(cells) {
			continue
		}
		row := make(core.Row, len(table.Headers))
		for i, header := range table.Headers {
			if header == "" {
				continue
			}
			if i < len(cells) {
				row[header] = strings.TrimSpace(cells[i])
			} else {
				row[header] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// DetectSource infers the upload kind from the header set: Banner extracts
// carry "Graduation Term" and "Student Name" columns, alumni lists do not.
func DetectSource(headers []string) core.SourceKind {
	has := make(map[string]bool, len(headers))
	for _, h := range headers {
		has[strings.TrimSpace(h)] = true
	}
	if has["Graduation Term"] && has["Student Name"] {
		return core.SourceBanner
	}
	return core.SourceAlumni
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
