// Package main is the entry point for the folio portfolio server.
// It loads configuration, opens the database, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"folio/internal/config"
	"folio/internal/database"
	"folio/internal/handlers"
	"folio/internal/router"
	"folio/internal/session"
	"folio/internal/storage"
	"folio/internal/store"
)

func main() {
	// Load .env if present. Deployed environments set variables directly.
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded environment from .env")
	}

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger. JSON output in production, text in development.
	var logHandler slog.Handler
	if cfg.IsDev() {
		logHandler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		logHandler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(logHandler))

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Open the SQLite database.
	db, err := database.Connect(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the admin account and profile row (no-op once present).
	if err := database.Seed(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	}

	// Local disk storage for uploaded files.
	storageClient, err := storage.New(cfg.UploadsDir)
	if err != nil {
		slog.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}

	// In-process session store for the admin panel.
	sessions := session.NewStore(cfg.SessionTTL)

	// Initialize data stores.
	personalStore := store.NewPersonalStore(db)
	academicStore := store.NewAcademicStore(db)
	experienceStore := store.NewExperienceStore(db)
	projectStore := store.NewProjectStore(db)
	skillStore := store.NewSkillStore(db)
	certificationStore := store.NewCertificationStore(db)
	testimonialStore := store.NewTestimonialStore(db)
	articleStore := store.NewArticleStore(db)
	messageStore := store.NewMessageStore(db)
	userStore := store.NewUserStore(db)
	analyticsStore := store.NewAnalyticsStore(db)
	inspectorStore := store.NewInspectorStore(db)
	transferStore := store.NewTransferStore(db)

	// Create handler groups with their dependencies.
	adminHandlers := handlers.NewAdmin(sessions, personalStore, academicStore, experienceStore, projectStore, skillStore, certificationStore, testimonialStore, articleStore, messageStore, userStore, analyticsStore, inspectorStore, transferStore, storageClient)
	authHandlers := handlers.NewAuth(sessions, userStore)
	publicHandlers := handlers.NewPublic(personalStore, academicStore, experienceStore, projectStore, skillStore, certificationStore, testimonialStore, articleStore, messageStore, storageClient)

	// Set up the Chi router with all middleware and routes.
	r := router.New(cfg, sessions, analyticsStore, storageClient.Root(), adminHandlers, authHandlers, publicHandlers)

	// Create the HTTP server with sensible timeouts. WriteTimeout covers
	// CV and screenshot downloads on slow links.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
