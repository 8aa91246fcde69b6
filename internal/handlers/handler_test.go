// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Each test gets a fresh migrated SQLite file and an
// uploads directory under its temporary directory, so no external
// services are needed.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"folio/internal/database"
	"folio/internal/middleware"
	"folio/internal/session"
	"folio/internal/storage"
	"folio/internal/store"
)

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB             *sql.DB
	Sessions       *session.Store
	Storage        *storage.Client
	Personal       *store.PersonalStore
	Academic       *store.AcademicStore
	Experience     *store.ExperienceStore
	Projects       *store.ProjectStore
	Skills         *store.SkillStore
	Certifications *store.CertificationStore
	Testimonials   *store.TestimonialStore
	Articles       *store.ArticleStore
	Messages       *store.MessageStore
	Users          *store.UserStore
	Analytics      *store.AnalyticsStore
	Inspector      *store.InspectorStore
	Transfer       *store.TransferStore
	Admin          *Admin
	Auth           *Auth
	Public         *Public
}

// newTestEnv creates a complete test environment with all handler
// dependencies backed by a throwaway database.
func newTestEnv(t *testing.T) *testEnv {
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

	storageClient, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("storage.New: %v", err)
	}

	env := &testEnv{
		DB:             db,
		Sessions:       session.NewStore(time.Hour),
		Storage:        storageClient,
		Personal:       store.NewPersonalStore(db),
		Academic:       store.NewAcademicStore(db),
		Experience:     store.NewExperienceStore(db),
		Projects:       store.NewProjectStore(db),
		Skills:         store.NewSkillStore(db),
		Certifications: store.NewCertificationStore(db),
		Testimonials:   store.NewTestimonialStore(db),
		Articles:       store.NewArticleStore(db),
		Messages:       store.NewMessageStore(db),
		Users:          store.NewUserStore(db),
		Analytics:      store.NewAnalyticsStore(db),
		Inspector:      store.NewInspectorStore(db),
		Transfer:       store.NewTransferStore(db),
	}

	env.Admin = NewAdmin(env.Sessions, env.Personal, env.Academic, env.Experience,
		env.Projects, env.Skills, env.Certifications, env.Testimonials, env.Articles,
		env.Messages, env.Users, env.Analytics, env.Inspector, env.Transfer, storageClient)
	env.Auth = NewAuth(env.Sessions, env.Users)
	env.Public = NewPublic(env.Personal, env.Academic, env.Experience, env.Projects,
		env.Skills, env.Certifications, env.Testimonials, env.Articles, env.Messages,
		storageClient)

	return env
}

// adminSession returns session data for the seeded admin account.
func (env *testEnv) adminSession(t *testing.T) *session.Data {
	t.Helper()

	user, err := env.Users.Authenticate(database.DefaultAdminUsername, database.DefaultAdminPassword)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user == nil {
		t.Fatal("seeded admin account missing")
	}
	return &session.Data{UserID: user.ID, Username: user.Username}
}

// ctxWithSession adds session data to a context using the middleware key.
func ctxWithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, middleware.SessionKey, data)
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withChiURLParams adds chi URL parameters from key/value pairs.
func withChiURLParams(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
