package xlsx

import (
	"bytes"
	"testing"

	"github.com/MaxHT0x/WebAlumni/internal/core"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook renders rows onto the default sheet and returns the encoded
// file bytes.
func buildWorkbook(t *testing.T, rows [][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for r, cells := range rows {
		for c, v := range cells {
			if err := f.SetCellValue("Sheet1", cell(c+1, r+1), v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		t.Fatalf("encode workbook: %v", err)
	}
	return buf.Bytes()
}

func TestReadTable(t *testing.T) {
	data := buildWorkbook(t, [][]string{
		{" Student ID ", "College", "Gender"},
		{"201900001", "College of Business", "Male"},
		{"", "", ""},
		{"G21900002", "College of Science"},
	})

	table, err := ReadTable(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}

	wantHeaders := []string{"Student ID", "College", "Gender"}
	if len(table.Headers) != len(wantHeaders) {
		t.Fatalf("headers = %v, want %v", table.Headers, wantHeaders)
	}
	for i, h := range wantHeaders {
		if table.Headers[i] != h {
			t.Errorf("header[%d] = %q, want %q", i, table.Headers[i], h)
		}
	}

	// Blank row is skipped; short row is padded.
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(table.Rows))
	}
	if got := table.Rows[0]["Student ID"]; got != "201900001" {
		t.Errorf("row 0 Student ID = %q", got)
	}
	if got := table.Rows[1]["Gender"]; got != "" {
		t.Errorf("padded cell = %q, want empty", got)
	}
}

func TestReadTableEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		t.Fatalf("encode workbook: %v", err)
	}
	f.Close()

	if _, err := ReadTable(bytes.NewReader(buf.Bytes())); err == nil {
		t.Fatal("expected error for empty sheet")
	}
}

func TestReadTableNotAWorkbook(t *testing.T) {
	if _, err := ReadTable(bytes.NewReader([]byte("not a zip"))); err == nil {
		t.Fatal("expected error for invalid data")
	}
}

func TestDetectSource(t *testing.T) {
	cases := []struct {
		name    string
		headers []string
		want    core.SourceKind
	}{
		{"banner", []string{"Student ID", "Student Name", "College", "Graduation Term", "Major", "Gender"}, core.SourceBanner},
		{"alumni", []string{"Student ID", "College", "Year/Semester of Graduation", "Current Status"}, core.SourceAlumni},
		{"partial banner headers", []string{"Student Name", "College"}, core.SourceAlumni},
		{"empty", nil, core.SourceAlumni},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectSource(tc.headers); got != tc.want {
				t.Errorf("DetectSource(%v) = %q, want %q", tc.headers, got, tc.want)
			}
		})
	}
}
