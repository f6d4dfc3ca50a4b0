package core

import (
	"fmt"
	"time"

	"github.com/MaxHT0x/WebAlumni/internal/refdata"
)

// NewGraduateStatus is the canonical status assigned to every record the
// Reconciler adds, regardless of anything the Banner extract says.
const NewGraduateStatus = "New graduate"

// NewStudent identifies one graduate added from the Banner extract.
type NewStudent struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
}

// ReconciliationResult holds the Banner records absent from the primary
// alumni dataset, shaped into the primary dataset's column order. Banner
// records whose student ID already exists in the primary set are excluded
// entirely; the Reconciler discovers additions and never arbitrates
// field-level differences.
type ReconciliationResult struct {
	// NewRows are the added records in the primary schema's column
	// shape, ready to append after the primary rows.
	NewRows []Row `json:"-"`

	NewStudents   []NewStudent `json:"new_students"`
	BannerRecords int          `json:"banner_records"`
	AlumniRecords int          `json:"alumni_records"`
}

// Reconcile compares a validated Banner dataset against a validated alumni
// dataset and returns the graduates present only in Banner. Matching is an
// exact string comparison on student ID. Passing datasets of the wrong
// source kind is a caller bug and is reported as an error.
func Reconcile(primary, secondary *Dataset) (*ReconciliationResult, error) {
	if primary == nil || secondary == nil {
		return nil, fmt.Errorf("reconcile: nil dataset")
	}
	if primary.Source != SourceAlumni {
		return nil, fmt.Errorf("reconcile: primary dataset is %s, want %s", primary.Source, SourceAlumni)
	}
	if secondary.Source != SourceBanner {
		return nil, fmt.Errorf("reconcile: secondary dataset is %s, want %s", secondary.Source, SourceBanner)
	}

	known := make(map[string]bool, len(primary.Records))
	for i := range primary.Records {
		known[primary.Records[i].StudentID] = true
	}

	res := &ReconciliationResult{
		BannerRecords: len(secondary.Records),
		AlumniRecords: len(primary.Records),
	}

	addedOn := time.Now().Format("2006-01-02")
	for i := range secondary.Records {
		rec := &secondary.Records[i]
		if known[rec.StudentID] {
			continue
		}
		res.NewRows = append(res.NewRows, mapBannerRow(rec, primary.Headers, addedOn))
		res.NewStudents = append(res.NewStudents, NewStudent{
			StudentID: rec.StudentID,
			Name:      rec.Name,
		})
	}

	return res, nil
}

// mapBannerRow shapes one Banner record into the primary schema. Every
// primary column starts blank; the explicit field mapping table fills what
// Banner provides, and the bookkeeping fields get their fixed values.
func mapBannerRow(rec *NormalizedRecord, primaryHeaders []string, addedOn string) Row {
	row := make(Row, len(primaryHeaders))
	inPrimary := make(map[string]bool, len(primaryHeaders))
	for _, h := range primaryHeaders {
		row[h] = ""
		inPrimary[h] = true
	}

	for bannerField, alumniField := range refdata.BannerFieldMapping {
		if !inPrimary[alumniField] {
			continue
		}
		if v, ok := rec.Raw[bannerField]; ok {
			row[alumniField] = v
		}
	}

	if inPrimary["Current Status"] {
		row["Current Status"] = NewGraduateStatus
	}
	if inPrimary["Comments"] {
		row["Comments"] = "Added from Banner on " + addedOn
	}
	return row
}
