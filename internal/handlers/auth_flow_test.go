// auth_flow_test.go contains handler integration tests for the Auth
// handler methods: Login, Logout, and Me.
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"folio/internal/database"
	"folio/internal/session"
)

// --------------------------------------------------------------------------
// Login
// --------------------------------------------------------------------------

// TestLogin_ValidCredentials verifies that the seeded admin can log in,
// receives their account as JSON, and gets a session cookie.
func TestLogin_ValidCredentials(t *testing.T) {
	env := newTestEnv(t)

	body := `{"username":"` + database.DefaultAdminUsername + `","password":"` + database.DefaultAdminPassword + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	env.Auth.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var user struct {
		Username string `json:"username"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if user.Username != database.DefaultAdminUsername {
		t.Errorf("username: got %q, want %q", user.Username, database.DefaultAdminUsername)
	}
	if strings.Contains(rec.Body.String(), "password_hash") {
		t.Error("response must not contain the password hash")
	}

	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected %s cookie to be set after successful login", session.CookieName)
	}
}

// TestLogin_WrongPassword verifies that a wrong password is rejected with
// a uniform 401.
func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)

	body := `{"username":"` + database.DefaultAdminUsername + `","password":"definitely-wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	env.Auth.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if !strings.Contains(rec.Body.String(), "invalid username or password") {
		t.Errorf("body: got %s, want the uniform credential error", rec.Body.String())
	}
}

// TestLogin_UnknownUsername verifies that an unknown username gets the
// same 401 as a wrong password, so the response does not reveal whether
// the account exists.
func TestLogin_UnknownUsername(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"username":"nobody","password":"irrelevant"}`))
	rec := httptest.NewRecorder()

	env.Auth.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if !strings.Contains(rec.Body.String(), "invalid username or password") {
		t.Errorf("body: got %s, want the uniform credential error", rec.Body.String())
	}
}

// TestLogin_MalformedBody verifies that an unparseable request body is a
// client error, not a server error.
func TestLogin_MalformedBody(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	env.Auth.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

// --------------------------------------------------------------------------
// Logout
// --------------------------------------------------------------------------

// TestLogout_DestroysSession verifies that logging out invalidates the
// session and clears the cookie.
func TestLogout_DestroysSession(t *testing.T) {
	env := newTestEnv(t)
	sess := env.adminSession(t)

	createRec := httptest.NewRecorder()
	if _, err := env.Sessions.Create(createRec, sess); err != nil {
		t.Fatalf("create session: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	for _, c := range createRec.Result().Cookies() {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()

	env.Auth.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName && c.MaxAge >= 0 {
			t.Errorf("expected %s MaxAge < 0 (cleared), got %d", session.CookieName, c.MaxAge)
		}
	}

	// The stored session must be gone as well.
	check := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
	for _, c := range createRec.Result().Cookies() {
		check.AddCookie(c)
	}
	if env.Sessions.Get(check) != nil {
		t.Error("session still retrievable after logout")
	}
}

// TestLogout_NoCookie verifies that logging out without a session is safe.
func TestLogout_NoCookie(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	rec := httptest.NewRecorder()

	env.Auth.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
}

// --------------------------------------------------------------------------
// Me
// --------------------------------------------------------------------------

// TestMe_ReturnsAccount verifies that the session introspection endpoint
// returns the account behind the session.
func TestMe_ReturnsAccount(t *testing.T) {
	env := newTestEnv(t)
	sess := env.adminSession(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
	req = req.WithContext(ctxWithSession(req.Context(), sess))
	rec := httptest.NewRecorder()

	env.Auth.Me(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var user struct {
		Username string `json:"username"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if user.Username != sess.Username {
		t.Errorf("username: got %q, want %q", user.Username, sess.Username)
	}
}

// TestMe_AccountGone verifies that a session whose account no longer
// exists is treated as unauthenticated.
func TestMe_AccountGone(t *testing.T) {
	env := newTestEnv(t)

	sess := &session.Data{UserID: uuid.New(), Username: "ghost"}
	req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
	req = req.WithContext(ctxWithSession(req.Context(), sess))
	rec := httptest.NewRecorder()

	env.Auth.Me(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
