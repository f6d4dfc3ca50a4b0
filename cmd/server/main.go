package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MaxHT0x/WebAlumni/internal/config"
	"github.com/MaxHT0x/WebAlumni/internal/logging"
	"github.com/MaxHT0x/WebAlumni/internal/session"
	"github.com/MaxHT0x/WebAlumni/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"files_dir", cfg.Files.Dir,
		"session_ttl", cfg.Session.TTL,
		"upload_max_file_size", cfg.Upload.MaxFileSize,
	)

	store := session.NewStore(cfg.Session.TTL, nil)

	files, err := web.NewFileStore(cfg.Files.Dir)
	if err != nil {
		slog.Error("failed to create file store", "error", err)
		os.Exit(1)
	}

	server := web.NewServer(cfg, store, files)

	// Create cancellable context for background jobs
	jobCtx, cancelJobs := context.WithCancel(context.Background())

	// Periodic retention pass over sessions and generated reports
	go func() {
		ticker := time.NewTicker(cfg.Session.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-ticker.C:
				expired := store.Sweep()
				removed, err := files.RemoveOlderThan(cfg.Files.MaxAge)
				if err != nil {
					slog.Warn("file retention pass failed", "error", err)
				}
				if expired > 0 || removed > 0 {
					slog.Info("retention pass",
						"expired_sessions", expired,
						"removed_files", removed,
					)
				}
			}
		}
	}()

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		// Stop background jobs
		cancelJobs()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	// Start server (uses addr from config internally)
	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
