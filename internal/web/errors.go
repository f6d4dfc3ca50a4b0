package web

// errors.go provides unified error response handling for the web layer.
//
// Every handler failure is logged with full technical detail server-side and
// returned to the client as a JSON body carrying a stable machine code, a
// readable message, and, where one exists, a suggested corrective action.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/MaxHT0x/WebAlumni/internal/core"
	"github.com/go-chi/chi/v5/middleware"
)

// ErrorResponse represents the JSON structure for API error responses.
// Includes both machine-readable (Code) and human-readable (Message, Action) fields.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// respondError logs the technical error with request context and writes the
// mapped JSON error body.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	resp := mapError(err)

	slog.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", resp.Code,
		"request_id", middleware.GetReqID(r.Context()),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}

// mapError converts processing errors into client-facing responses. Schema
// failures get an actionable message listing the absent columns; everything
// else passes through with a generic code.
func mapError(err error) ErrorResponse {
	var missing *core.MissingColumnsError
	if errors.As(err, &missing) {
		msg := "The uploaded " + string(missing.Source) + " sheet is missing required columns: " +
			strings.Join(missing.Columns, ", ")
		return ErrorResponse{
			Error:   msg,
			Message: msg,
			Action:  "Add the listed columns to the spreadsheet header row and upload it again.",
			Code:    "missing_columns",
		}
	}

	return ErrorResponse{
		Error:   err.Error(),
		Message: err.Error(),
		Code:    "processing_error",
	}
}

// writeError writes a minimal JSON error response for request-shape failures
// that never reached the processing core.
func writeError(w http.ResponseWriter, status int, message string) {
	slog.Warn("request rejected", "status", status, "reason", message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message, Message: message, Code: "bad_request"})
}

// writeJSON encodes v as JSON and writes it to w.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
