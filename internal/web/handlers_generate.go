package web

import (
	"fmt"
	"net/http"

	"github.com/MaxHT0x/WebAlumni/internal/core"
	"github.com/MaxHT0x/WebAlumni/internal/logging"
	"github.com/MaxHT0x/WebAlumni/internal/xlsx"
	"github.com/xuri/excelize/v2"
)

// generateResponse points the client at a stored report.
type generateResponse struct {
	FileName    string `json:"file_name"`
	DownloadURL string `json:"download_url"`
}

// saveAndRespond stores the rendered workbook and returns its download
// location.
func (s *Server) saveAndRespond(w http.ResponseWriter, r *http.Request, f *excelize.File, prefix string) {
	defer f.Close()

	name, err := s.files.Save(f, prefix)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	logging.FromContext(r.Context()).Info("report generated", "file", name)
	writeJSON(w, generateResponse{
		FileName:    name,
		DownloadURL: "/download/" + name,
	})
}

// handleGenerateReport renders the aggregation report workbook in the
// requested mode.
func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := decodeRequest(r, &req); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	entry, err := s.session(req.SessionID)
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}
	mode, err := parseMode(req.Mode)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	res, err := core.Aggregate(entry.Dataset, mode, req.Filters)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	var f *excelize.File
	switch mode {
	case core.ModeSimple:
		f, err = xlsx.WriteSimpleReport(res)
	default:
		f, err = xlsx.WriteDetailedReport(res)
	}
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	s.saveAndRespond(w, r, f, "qaa_report")
}

// handleGenerateAlumniList renders the per-college contact list workbook.
func (s *Server) handleGenerateAlumniList(w http.ResponseWriter, r *http.Request) {
	var req alumniListRequest
	if err := decodeRequest(r, &req); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	entry, err := s.session(req.SessionID)
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}

	lists := core.AlumniList(entry.Dataset, req.Filters, req.Statuses)
	if len(lists) == 0 {
		s.respondError(w, r, fmt.Errorf("no alumni match the requested filters"), http.StatusBadRequest)
		return
	}

	f, err := xlsx.WriteAlumniList(lists)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	s.saveAndRespond(w, r, f, "alumni_list")
}

// handleGenerateWorkplaceReport renders the employment statistics workbook.
func (s *Server) handleGenerateWorkplaceReport(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := decodeRequest(r, &req); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	entry, err := s.session(req.SessionID)
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}

	stats := core.WorkplaceStatistics(entry.Dataset, req.Filters)
	f, err := xlsx.WriteWorkplaceReport(stats)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	s.saveAndRespond(w, r, f, "workplace_report")
}

// bannerRequest names the two uploads a reconciliation runs over.
type bannerRequest struct {
	PrimarySessionID   string `json:"primary_session_id"`
	SecondarySessionID string `json:"secondary_session_id"`
}

// bannerResponse extends the download pointer with the reconciliation
// summary so clients can report what was merged.
type bannerResponse struct {
	generateResponse
	NewStudents   []core.NewStudent `json:"new_students"`
	BannerRecords int               `json:"banner_records"`
	AlumniRecords int               `json:"alumni_records"`
}

// handleGenerateBannerIntegration reconciles a registrar extract against the
// primary alumni sheet and renders the merged roster.
func (s *Server) handleGenerateBannerIntegration(w http.ResponseWriter, r *http.Request) {
	var req bannerRequest
	if err := decodeRequest(r, &req); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	primary, err := s.session(req.PrimarySessionID)
	if err != nil {
		s.respondError(w, r, fmt.Errorf("primary: %w", err), http.StatusNotFound)
		return
	}
	secondary, err := s.session(req.SecondarySessionID)
	if err != nil {
		s.respondError(w, r, fmt.Errorf("secondary: %w", err), http.StatusNotFound)
		return
	}

	res, err := core.Reconcile(primary.Dataset, secondary.Dataset)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	f, err := xlsx.WriteBannerIntegration(primary.Dataset, res)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	defer f.Close()

	name, err := s.files.Save(f, "banner_integration")
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	logging.FromContext(r.Context()).Info("banner integration generated",
		"file", name,
		"new_students", len(res.NewStudents),
	)
	writeJSON(w, bannerResponse{
		generateResponse: generateResponse{
			FileName:    name,
			DownloadURL: "/download/" + name,
		},
		NewStudents:   res.NewStudents,
		BannerRecords: res.BannerRecords,
		AlumniRecords: res.AlumniRecords,
	})
}
