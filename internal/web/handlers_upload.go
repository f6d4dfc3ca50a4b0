package web

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/MaxHT0x/WebAlumni/internal/core"
	"github.com/MaxHT0x/WebAlumni/internal/logging"
	"github.com/MaxHT0x/WebAlumni/internal/refdata"
	"github.com/MaxHT0x/WebAlumni/internal/xlsx"
	"github.com/google/uuid"
)

// uploadResponse is returned after a successful spreadsheet upload.
type uploadResponse struct {
	SessionID       string         `json:"session_id"`
	FileName        string         `json:"file_name"`
	Source          string         `json:"source"`
	Rows            int            `json:"rows"`
	GraduationYears []string       `json:"graduation_years"`
	Warnings        []core.Warning `json:"warnings"`
}

// handleUpload parses an uploaded workbook, validates it against the detected
// source schema, and stores the dataset under a fresh session ID. Advisory
// warnings come back in the response; schema failures reject the upload.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	if !s.extensionAllowed(header.Filename) {
		writeError(w, http.StatusBadRequest, "unsupported file type; allowed: "+
			strings.Join(s.cfg.Upload.AllowedExtensions, ", "))
		return
	}

	table, err := xlsx.ReadTable(file)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	source := xlsx.DetectSource(table.Headers)
	ds, err := core.Validate(table, source)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	sessionID := uuid.New().String()
	s.store.Put(sessionID, header.Filename, ds)

	logging.FromContext(r.Context()).Info("upload accepted",
		"session", sessionID,
		"file", header.Filename,
		"source", ds.Source,
		"rows", len(ds.Records),
		"warnings", len(ds.Warnings),
	)

	writeJSON(w, uploadResponse{
		SessionID:       sessionID,
		FileName:        header.Filename,
		Source:          string(ds.Source),
		Rows:            len(ds.Records),
		GraduationYears: ds.GraduationYears,
		Warnings:        ds.Warnings,
	})
}

func (s *Server) extensionAllowed(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range s.cfg.Upload.AllowedExtensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

// constantsResponse carries the reference vocabulary the client builds its
// filter controls from.
type constantsResponse struct {
	Colleges        []string `json:"colleges"`
	GraduationYears []string `json:"graduation_years"`
	Statuses        []string `json:"statuses"`
}

// handleGetConstants returns the filterable vocabulary. With a session_id
// query parameter the graduation years come from that upload; otherwise the
// defaults are returned.
func (s *Server) handleGetConstants(w http.ResponseWriter, r *http.Request) {
	years := refdata.DefaultGraduationYears
	if id := r.URL.Query().Get("session_id"); id != "" {
		if entry, ok := s.store.Get(id); ok && len(entry.Dataset.GraduationYears) > 0 {
			years = entry.Dataset.GraduationYears
		}
	}

	writeJSON(w, constantsResponse{
		Colleges:        refdata.Colleges,
		GraduationYears: years,
		Statuses:        refdata.ExpectedStatuses,
	})
}
