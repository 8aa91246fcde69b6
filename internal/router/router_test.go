// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the HTTP routing configuration, middleware
// chains, and the health endpoint.
package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"folio/internal/config"
	"folio/internal/database"
	"folio/internal/handlers"
	"folio/internal/session"
	"folio/internal/storage"
	"folio/internal/store"
)

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	healthHandler(w, r)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "application/json" {
		t.Errorf("content-type: got %q, want %q", ct, "application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

// newTestRouter wires the full router against a throwaway database and
// uploads directory.
func newTestRouter(t *testing.T) (chi.Router, *storage.Client) {
	t.Helper()

	db, err := database.Connect(filepath.Join(t.TempDir(), "folio.db"))
	if err != nil {
		t.Fatalf("connect database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate database: %v", err)
	}
	if err := database.Seed(db, "", ""); err != nil {
		t.Fatalf("seed database: %v", err)
	}

	storageClient, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("init storage: %v", err)
	}
	sessions := session.NewStore(time.Hour)

	personal := store.NewPersonalStore(db)
	academic := store.NewAcademicStore(db)
	experience := store.NewExperienceStore(db)
	projects := store.NewProjectStore(db)
	skills := store.NewSkillStore(db)
	certifications := store.NewCertificationStore(db)
	testimonials := store.NewTestimonialStore(db)
	articles := store.NewArticleStore(db)
	messages := store.NewMessageStore(db)
	users := store.NewUserStore(db)
	analytics := store.NewAnalyticsStore(db)
	inspector := store.NewInspectorStore(db)
	transfer := store.NewTransferStore(db)

	admin := handlers.NewAdmin(sessions, personal, academic, experience, projects,
		skills, certifications, testimonials, articles, messages, users,
		analytics, inspector, transfer, storageClient)
	auth := handlers.NewAuth(sessions, users)
	public := handlers.NewPublic(personal, academic, experience, projects, skills,
		certifications, testimonials, articles, messages, storageClient)

	cfg := &config.Config{AllowedOrigins: []string{"*"}}
	return New(cfg, sessions, analytics, storageClient.Root(), admin, auth, public), storageClient
}

func TestRouterPublicRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET /health: got %d, want 200", rec.Code)
		}
	})

	t.Run("portfolio aggregate", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/portfolio", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET /api/portfolio: got %d, want 200", rec.Code)
		}
	})

	t.Run("contact", func(t *testing.T) {
		body := `{"name":"V","email":"v@example.com","subject":"Hi","message":"Hello"}`
		req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Errorf("POST /api/contact: got %d, want 201, body %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/nope", nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("GET /api/nope: got %d, want 404", rec.Code)
		}
	})
}

func TestRouterAdminRequiresSession(t *testing.T) {
	router, _ := newTestRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/api/admin/me"},
		{"GET", "/api/admin/messages"},
		{"PUT", "/api/admin/personal"},
		{"GET", "/api/admin/export"},
		{"POST", "/api/admin/analytics/reset"},
	}

	for _, p := range paths {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(p.method, p.path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without session: got %d, want 401", p.method, p.path, rec.Code)
		}
	}
}

// TestRouterLoginSessionFlow drives login, an authenticated request and
// logout through the whole middleware stack.
func TestRouterLoginSessionFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	body := `{"username":"` + database.DefaultAdminUsername + `","password":"` + database.DefaultAdminPassword + `"}`
	loginReq := httptest.NewRequest("POST", "/api/admin/login", strings.NewReader(body))
	loginRec := httptest.NewRecorder()
	router.ServeHTTP(loginRec, loginReq)

	if loginRec.Code != http.StatusOK {
		t.Fatalf("login: got %d, want 200, body %s", loginRec.Code, loginRec.Body.String())
	}
	cookies := loginRec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login should set a session cookie")
	}

	authed := func(method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		for _, c := range cookies {
			req.AddCookie(c)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	if rec := authed("GET", "/api/admin/me"); rec.Code != http.StatusOK {
		t.Errorf("GET /api/admin/me with session: got %d, want 200", rec.Code)
	}
	if rec := authed("GET", "/api/admin/messages"); rec.Code != http.StatusOK {
		t.Errorf("GET /api/admin/messages with session: got %d, want 200", rec.Code)
	}

	if rec := authed("POST", "/api/admin/logout"); rec.Code != http.StatusOK {
		t.Errorf("logout: got %d, want 200", rec.Code)
	}
	if rec := authed("GET", "/api/admin/me"); rec.Code != http.StatusUnauthorized {
		t.Errorf("GET /api/admin/me after logout: got %d, want 401", rec.Code)
	}
}

// TestRouterServesUploads checks stored files come back through the
// static uploads tree.
func TestRouterServesUploads(t *testing.T) {
	router, storageClient := newTestRouter(t)

	saved, err := storageClient.Save("screenshots", "pic.png", strings.NewReader("fake-image-bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/uploads/screenshots/"+saved, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET upload: got %d, want 200", rec.Code)
	}
	if rec.Body.String() != "fake-image-bytes" {
		t.Errorf("served content: got %q", rec.Body.String())
	}
}
