package web

import (
	"net/http"

	"github.com/MaxHT0x/WebAlumni/internal/logging"
	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// handleDownload serves a previously generated report as an attachment.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")
	path, err := s.files.Path(name)
	if err != nil {
		writeError(w, http.StatusNotFound, "report not found; it may have been cleaned up")
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	http.ServeFile(w, r, path)
}

// cleanupResponse reports what the retention pass removed.
type cleanupResponse struct {
	ExpiredSessions int `json:"expired_sessions"`
	RemovedFiles    int `json:"removed_files"`
}

// handleCleanup evicts expired upload sessions and deletes aged-out report
// files. The same pass runs periodically in the background; this endpoint
// triggers it on demand.
func (s *Server) handleCleanup(w http.ResponseWriter, r *http.Request) {
	sessions := s.store.Sweep()
	files, err := s.files.RemoveOlderThan(s.cfg.Files.MaxAge)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	logging.FromContext(r.Context()).Info("cleanup complete",
		"expired_sessions", sessions,
		"removed_files", files,
	)
	writeJSON(w, cleanupResponse{ExpiredSessions: sessions, RemovedFiles: files})
}
