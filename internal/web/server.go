// Package web provides the HTTP server and handlers for the alumni report API.
package web

import (
	"context"
	"net/http"

	"github.com/MaxHT0x/WebAlumni/internal/config"
	"github.com/MaxHT0x/WebAlumni/internal/session"
	appmw "github.com/MaxHT0x/WebAlumni/internal/web/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP server for the alumni report application.
type Server struct {
	cfg    *config.Config
	store  *session.Store
	files  *FileStore
	router *chi.Mux
	server *http.Server
}

// NewServer creates a new Server instance.
func NewServer(cfg *config.Config, store *session.Store, files *FileStore) *Server {
	s := &Server{
		cfg:    cfg,
		store:  store,
		files:  files,
		router: chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(appmw.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	s.router.Use(securityHeaders)
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Upload and reference data
	s.router.Post("/upload", s.handleUpload)
	s.router.Get("/get_constants", s.handleGetConstants)

	// Preview analysis
	s.router.Post("/qaa_preview", s.handleReportPreview)
	s.router.Post("/alumni_list_preview", s.handleAlumniListPreview)
	s.router.Post("/workplace_preview", s.handleWorkplacePreview)

	// Report generation
	s.router.Post("/generate_qaa_report", s.handleGenerateReport)
	s.router.Post("/generate_alumni_list", s.handleGenerateAlumniList)
	s.router.Post("/generate_workplace_report", s.handleGenerateWorkplaceReport)
	s.router.Post("/generate_banner_integration", s.handleGenerateBannerIntegration)

	// Generated file retrieval and retention
	s.router.Get("/download/{filename}", s.handleDownload)
	s.router.Post("/cleanup", s.handleCleanup)
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// securityHeaders adds security headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Prevent MIME type sniffing
		w.Header().Set("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking
		w.Header().Set("X-Frame-Options", "DENY")

		// Control referrer information
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next.ServeHTTP(w, r)
	})
}
