// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"folio/internal/database"
	"folio/internal/store"
)

// testAnalytics opens a throwaway database and returns an analytics
// store backed by it.
func testAnalytics(t *testing.T) *store.AnalyticsStore {
	t.Helper()

	db, err := database.Connect(filepath.Join(t.TempDir(), "folio.db"))
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if err := database.Seed(db, "", ""); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	return store.NewAnalyticsStore(db)
}

func trackedHandler(analytics *store.AnalyticsStore) http.Handler {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return Tracker(analytics)(inner)
}

func visitorCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == VisitorCookie {
			return c
		}
	}
	return nil
}

func TestTrackerAssignsVisitorCookie(t *testing.T) {
	analytics := testAnalytics(t)
	handler := trackedHandler(analytics)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	cookie := visitorCookie(t, rr)
	if cookie == nil {
		t.Fatal("expected visitor cookie to be set")
	}
	if cookie.Value == "" {
		t.Error("expected non-empty visitor ID")
	}
	if cookie.MaxAge != visitorMaxAge {
		t.Errorf("cookie MaxAge: got %d, want %d", cookie.MaxAge, visitorMaxAge)
	}

	// A request that already carries the cookie gets no new one.
	req2 := httptest.NewRequest(http.MethodGet, "/api/skills", nil)
	req2.AddCookie(cookie)
	rr2 := httptest.NewRecorder()
	handler.ServeHTTP(rr2, req2)

	if visitorCookie(t, rr2) != nil {
		t.Error("expected no new visitor cookie for returning visitor")
	}
}

func TestTrackerRecordsViews(t *testing.T) {
	analytics := testAnalytics(t)
	handler := trackedHandler(analytics)

	// First visitor browses twice, second visitor once.
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	first := visitorCookie(t, rr)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/3f9c1e2a", nil)
	req.AddCookie(first)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/articles", nil))

	summary, err := analytics.Summary()
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	if summary.TotalViews != 3 {
		t.Errorf("total views: got %d, want 3", summary.TotalViews)
	}
	if summary.UniqueVisitors != 2 {
		t.Errorf("unique visitors: got %d, want 2", summary.UniqueVisitors)
	}

	// Routes are recorded without the /api prefix.
	routes := map[string]int{}
	for _, pv := range summary.TopPages {
		routes[pv.Route] = pv.Count
	}
	if routes["/projects"] != 1 {
		t.Errorf("route /projects: got %d views, want 1", routes["/projects"])
	}
	if routes["/projects/3f9c1e2a"] != 1 {
		t.Errorf("route /projects/3f9c1e2a: got %d views, want 1", routes["/projects/3f9c1e2a"])
	}

	// Section mapping: list, detail prefix, and blog prefix.
	sections := map[string]int{}
	for _, sv := range summary.TopSections {
		sections[sv.Section] = sv.Count
	}
	if sections["projects"] != 1 {
		t.Errorf("section projects: got %d, want 1", sections["projects"])
	}
	if sections["project_detail"] != 1 {
		t.Errorf("section project_detail: got %d, want 1", sections["project_detail"])
	}
	if sections["blog"] != 1 {
		t.Errorf("section blog: got %d, want 1", sections["blog"])
	}
}

func TestTrackerIgnoresNonGET(t *testing.T) {
	analytics := testAnalytics(t)
	handler := trackedHandler(analytics)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/contact", nil))

	summary, err := analytics.Summary()
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.TotalViews != 0 {
		t.Errorf("total views: got %d, want 0 for POST", summary.TotalViews)
	}
}

func TestSectionFor(t *testing.T) {
	tests := []struct {
		route   string
		section string
		ok      bool
	}{
		{"/", "home", true},
		{"/portfolio", "home", true},
		{"/personal", "about", true},
		{"/skills", "skills", true},
		{"/projects", "projects", true},
		{"/projects/abc-123", "project_detail", true},
		{"/education", "education", true},
		{"/certifications", "certifications", true},
		{"/experience", "experience", true},
		{"/testimonials", "testimonials", true},
		{"/articles", "blog", true},
		{"/articles/my-first-post", "blog", true},
		{"/contact", "contact", true},
		{"/cv", "", false},
		{"/health", "", false},
	}

	for _, tt := range tests {
		section, ok := sectionFor(tt.route)
		if ok != tt.ok || section != tt.section {
			t.Errorf("sectionFor(%q) = (%q, %v), want (%q, %v)",
				tt.route, section, ok, tt.section, tt.ok)
		}
	}
}

func TestNormalizeRoute(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/api/projects", "/projects"},
		{"/api", "/"},
		{"/projects", "/projects"},
		{"/", "/"},
	}

	for _, tt := range tests {
		if got := normalizeRoute(tt.in); got != tt.want {
			t.Errorf("normalizeRoute(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
