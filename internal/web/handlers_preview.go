package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MaxHT0x/WebAlumni/internal/core"
	"github.com/MaxHT0x/WebAlumni/internal/session"
)

// reportRequest is the shared payload for preview and generation endpoints.
// The filter fields decode inline alongside the session reference.
type reportRequest struct {
	SessionID string `json:"session_id"`
	Mode      string `json:"report_mode"`
	core.Filters
}

// alumniListRequest adds the status allowlist to the shared filters.
type alumniListRequest struct {
	SessionID string   `json:"session_id"`
	Statuses  []string `json:"statuses"`
	core.Filters
}

// decodeRequest parses a JSON body into dst, rejecting unknown shapes early.
func decodeRequest(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// session fetches the referenced upload or reports why it cannot.
func (s *Server) session(id string) (*session.Entry, error) {
	if id == "" {
		return nil, fmt.Errorf("missing session_id")
	}
	entry, ok := s.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("session %s not found or expired", id)
	}
	return entry, nil
}

func parseMode(mode string) (core.Mode, error) {
	switch core.Mode(mode) {
	case core.ModeDetailed, core.ModeSimple:
		return core.Mode(mode), nil
	case "":
		return core.ModeDetailed, nil
	default:
		return "", fmt.Errorf("unknown report mode %q", mode)
	}
}

// handleReportPreview summarizes what an aggregation report would contain
// without rendering a workbook.
func (s *Server) handleReportPreview(w http.ResponseWriter, r *http.Request) {
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

	preview := core.PreviewReport(entry.Dataset, mode, req.Filters)
	writeJSON(w, preview)
}

// handleAlumniListPreview summarizes the contact-list extraction.
func (s *Server) handleAlumniListPreview(w http.ResponseWriter, r *http.Request) {
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

	preview := core.PreviewAlumniList(entry.Dataset, req.Filters, req.Statuses)
	writeJSON(w, preview)
}

// handleWorkplacePreview returns employment-field statistics as JSON.
func (s *Server) handleWorkplacePreview(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, stats)
}
