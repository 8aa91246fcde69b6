package handlers

import (
	"log/slog"
	"net/http"

	"folio/internal/middleware"
	"folio/internal/session"
	"folio/internal/store"
)

// Auth groups the login, logout and session introspection handlers.
type Auth struct {
	sessions  *session.Store
	userStore *store.UserStore
}

// NewAuth creates a new Auth handler group.
func NewAuth(sessions *session.Store, userStore *store.UserStore) *Auth {
	return &Auth{sessions: sessions, userStore: userStore}
}

// Login verifies the admin credentials and starts a session. Bad
// credentials get a uniform 401 so the response does not reveal whether
// the username exists.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userStore.Authenticate(req.Username, req.Password)
	if err != nil {
		slog.Error("authenticate failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if user == nil {
		slog.Info("login rejected", "username", req.Username)
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	data := &session.Data{UserID: user.ID, Username: user.Username}
	if _, err := h.sessions.Create(w, data); err != nil {
		slog.Error("create session failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	slog.Info("admin logged in", "username", user.Username)
	writeJSON(w, http.StatusOK, user)
}

// Logout destroys the current session. Safe to call without one.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Destroy(w, r)
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Me returns the admin account behind the current session.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	user, err := h.userStore.FindByID(sess.UserID)
	if err != nil {
		slog.Error("find user failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if user == nil {
		// Account deleted while the session was live.
		h.sessions.Destroy(w, r)
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
