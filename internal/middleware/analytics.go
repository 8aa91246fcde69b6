// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"folio/internal/store"
)

const (
	// VisitorCookie identifies a browser across visits for unique
	// visitor counting. It carries a random UUID, never an identity.
	VisitorCookie = "folio_visitor"

	// visitorMaxAge keeps the visitor cookie for a year.
	visitorMaxAge = 365 * 24 * 60 * 60
)

// routeSections maps normalized public routes to portfolio sections for
// section view counting. Routes not listed here still count as page views.
var routeSections = map[string]string{
	"/":               "home",
	"/portfolio":      "home",
	"/personal":       "about",
	"/skills":         "skills",
	"/projects":       "projects",
	"/education":      "education",
	"/certifications": "certifications",
	"/experience":     "experience",
	"/testimonials":   "testimonials",
	"/contact":        "contact",
}

// Tracker records page views, unique visitors, and section views for
// public GET requests. It assigns a visitor cookie when absent. Tracking
// failures are logged and never surface to the client.
func Tracker(analytics *store.AnalyticsStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet {
				visitorID := ensureVisitor(w, r)
				route := normalizeRoute(r.URL.Path)

				if err := analytics.RecordPageView(route, visitorID); err != nil {
					slog.Warn("analytics page view failed", "route", route, "error", err)
				}
				if section, ok := sectionFor(route); ok {
					if err := analytics.RecordSectionView(section); err != nil {
						slog.Warn("analytics section view failed", "section", section, "error", err)
					}
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ensureVisitor returns the visitor ID from the request cookie, setting
// a fresh one when the browser has none.
func ensureVisitor(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(VisitorCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     VisitorCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   visitorMaxAge,
	})
	return id
}

// normalizeRoute strips the API prefix so analytics keys stay stable
// regardless of how the router is mounted.
func normalizeRoute(path string) string {
	route := strings.TrimPrefix(path, "/api")
	if route == "" {
		route = "/"
	}
	return route
}

// sectionFor maps a route to its portfolio section. Project detail and
// article routes map by prefix, everything else by exact match.
func sectionFor(route string) (string, bool) {
	if section, ok := routeSections[route]; ok {
		return section, true
	}
	if strings.HasPrefix(route, "/projects/") {
		return "project_detail", true
	}
	if strings.HasPrefix(route, "/articles") {
		return "blog", true
	}
	return "", false
}
