// Package router sets up all HTTP routes and middleware chains for the
// folio API. It organizes routes into public and admin groups with
// appropriate middleware stacks.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"folio/internal/config"
	"folio/internal/handlers"
	"folio/internal/middleware"
	"folio/internal/session"
	"folio/internal/store"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(cfg *config.Config, sessions *session.Store, analyticsStore *store.AnalyticsStore, uploadsRoot string, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware. CORS runs before session loading so preflight
	// requests never touch the session store.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.LoadSession(sessions))

	r.Get("/health", healthHandler)

	// Uploaded files (screenshots, profile images). The CV is excluded
	// from this tree only by its download handler; /api/cv sets the
	// attachment disposition.
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsRoot))))

	// Public API. Every GET through this group is counted.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Tracker(analyticsStore))

		r.Get("/api/portfolio", public.Portfolio)
		r.Get("/api/personal", public.Personal)
		r.Get("/api/education", public.Education)
		r.Get("/api/experience", public.Experience)
		r.Get("/api/projects", public.Projects)
		r.Get("/api/projects/{id}", public.ProjectByID)
		r.Get("/api/skills", public.Skills)
		r.Get("/api/certifications", public.Certifications)
		r.Get("/api/testimonials", public.Testimonials)
		r.Get("/api/articles", public.Articles)
		r.Get("/api/articles/{slug}", public.ArticleBySlug)
		r.Post("/api/contact", public.Contact)
		r.Get("/api/cv", public.DownloadCV)
	})

	// Admin API.
	r.Route("/api/admin", func(r chi.Router) {
		// Session endpoints, accessible without an authenticated session.
		r.Post("/login", auth.Login)
		r.Post("/logout", auth.Logout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)

			r.Get("/me", auth.Me)
			r.Put("/personal", admin.PersonalUpdate)
			r.Put("/credentials", admin.CredentialsUpdate)

			r.Route("/education", func(r chi.Router) {
				r.Post("/", admin.EducationCreate)
				r.Put("/{id}", admin.EducationUpdate)
				r.Delete("/{id}", admin.EducationDelete)
			})

			r.Route("/experience", func(r chi.Router) {
				r.Post("/", admin.ExperienceCreate)
				r.Put("/{id}", admin.ExperienceUpdate)
				r.Delete("/{id}", admin.ExperienceDelete)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Post("/", admin.ProjectCreate)
				r.Put("/{id}", admin.ProjectUpdate)
				r.Delete("/{id}", admin.ProjectDelete)
				r.Post("/{id}/screenshots", admin.ScreenshotUpload)
				r.Delete("/{id}/screenshots/{sid}", admin.ScreenshotDelete)
			})

			r.Route("/skills", func(r chi.Router) {
				r.Post("/", admin.SkillCreate)
				r.Put("/{id}", admin.SkillUpdate)
				r.Delete("/{id}", admin.SkillDelete)
			})

			r.Route("/certifications", func(r chi.Router) {
				r.Post("/", admin.CertificationCreate)
				r.Put("/{id}", admin.CertificationUpdate)
				r.Delete("/{id}", admin.CertificationDelete)
			})

			r.Route("/testimonials", func(r chi.Router) {
				r.Post("/", admin.TestimonialCreate)
				r.Put("/{id}", admin.TestimonialUpdate)
				r.Delete("/{id}", admin.TestimonialDelete)
			})

			r.Route("/articles", func(r chi.Router) {
				r.Get("/", admin.ArticlesList)
				r.Post("/", admin.ArticleCreate)
				r.Put("/{id}", admin.ArticleUpdate)
				r.Delete("/{id}", admin.ArticleDelete)
			})

			r.Route("/messages", func(r chi.Router) {
				r.Get("/", admin.MessagesList)
				r.Post("/{id}/read", admin.MessageMarkRead)
				r.Delete("/{id}", admin.MessageDelete)
			})

			r.Post("/cv", admin.CVUpload)
			r.Delete("/cv", admin.CVDelete)

			r.Get("/analytics", admin.AnalyticsSummary)
			r.Post("/analytics/reset", admin.AnalyticsReset)

			r.Route("/database", func(r chi.Router) {
				r.Get("/", admin.DatabaseTables)
				r.Post("/query", admin.DatabaseQuery)
				r.Get("/{name}", admin.DatabaseTable)
			})

			r.Get("/export", admin.Export)
			r.Post("/import", admin.Import)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
