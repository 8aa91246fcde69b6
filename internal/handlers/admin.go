// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the folio JSON API.
// Handlers are grouped by concern (public, auth, admin) and receive
// their dependencies through the handler struct.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"folio/internal/middleware"
	"folio/internal/models"
	"folio/internal/session"
	"folio/internal/storage"
	"folio/internal/store"
)

// Admin groups all admin panel HTTP handlers and their dependencies.
type Admin struct {
	sessions           *session.Store
	personalStore      *store.PersonalStore
	academicStore      *store.AcademicStore
	experienceStore    *store.ExperienceStore
	projectStore       *store.ProjectStore
	skillStore         *store.SkillStore
	certificationStore *store.CertificationStore
	testimonialStore   *store.TestimonialStore
	articleStore       *store.ArticleStore
	messageStore       *store.MessageStore
	userStore          *store.UserStore
	analyticsStore     *store.AnalyticsStore
	inspectorStore     *store.InspectorStore
	transferStore      *store.TransferStore
	storageClient      *storage.Client
}

// NewAdmin creates a new Admin handler group with the given dependencies.
func NewAdmin(sessions *session.Store, personalStore *store.PersonalStore, academicStore *store.AcademicStore, experienceStore *store.ExperienceStore, projectStore *store.ProjectStore, skillStore *store.SkillStore, certificationStore *store.CertificationStore, testimonialStore *store.TestimonialStore, articleStore *store.ArticleStore, messageStore *store.MessageStore, userStore *store.UserStore, analyticsStore *store.AnalyticsStore, inspectorStore *store.InspectorStore, transferStore *store.TransferStore, storageClient *storage.Client) *Admin {
	return &Admin{
		sessions:           sessions,
		personalStore:      personalStore,
		academicStore:      academicStore,
		experienceStore:    experienceStore,
		projectStore:       projectStore,
		skillStore:         skillStore,
		certificationStore: certificationStore,
		testimonialStore:   testimonialStore,
		articleStore:       articleStore,
		messageStore:       messageStore,
		userStore:          userStore,
		analyticsStore:     analyticsStore,
		inspectorStore:     inspectorStore,
		transferStore:      transferStore,
		storageClient:      storageClient,
	}
}

// PersonalUpdate replaces the owner profile wholesale. The CV reference
// is untouched; it is managed through the upload endpoints.
func (a *Admin) PersonalUpdate(w http.ResponseWriter, r *http.Request) {
	var info models.PersonalInfo
	if err := decodeJSON(w, r, &info); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validatePersonal(&info); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if err := a.personalStore.Save(&info); err != nil {
		slog.Error("save personal info failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// --- Education CRUD ---

// EducationCreate adds an education entry.
func (a *Admin) EducationCreate(w http.ResponseWriter, r *http.Request) {
	var entry models.AcademicEntry
	if err := decodeJSON(w, r, &entry); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateAcademic(&entry); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if err := a.academicStore.Create(&entry); err != nil {
		slog.Error("create education failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// EducationUpdate replaces an education entry.
func (a *Admin) EducationUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	existing, err := a.academicStore.FindByID(id)
	if err != nil {
		slog.Error("find education failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "education entry not found")
		return
	}

	var entry models.AcademicEntry
	if err := decodeJSON(w, r, &entry); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateAcademic(&entry); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	entry.ID = id
	if err := a.academicStore.Update(&entry); err != nil {
		slog.Error("update education failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// EducationDelete removes an education entry. Idempotent.
func (a *Admin) EducationDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := a.academicStore.Delete(id); err != nil {
		slog.Error("delete education failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// --- Experience CRUD ---

// ExperienceCreate adds a work experience entry.
func (a *Admin) ExperienceCreate(w http.ResponseWriter, r *http.Request) {
	var entry models.WorkExperience
	if err := decodeJSON(w, r, &entry); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateExperience(&entry); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if err := a.experienceStore.Create(&entry); err != nil {
		slog.Error("create experience failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// ExperienceUpdate replaces a work experience entry.
func (a *Admin) ExperienceUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	existing, err := a.experienceStore.FindByID(id)
	if err != nil {
		slog.Error("find experience failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "experience entry not found")
		return
	}

	var entry models.WorkExperience
	if err := decodeJSON(w, r, &entry); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateExperience(&entry); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	entry.ID = id
	if err := a.experienceStore.Update(&entry); err != nil {
		slog.Error("update experience failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// ExperienceDelete removes a work experience entry. Idempotent.
func (a *Admin) ExperienceDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := a.experienceStore.Delete(id); err != nil {
		slog.Error("delete experience failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// --- Project CRUD ---

// ProjectCreate adds a project. Screenshots listed in the payload are
// created with it; the files themselves arrive through the upload
// endpoint.
func (a *Admin) ProjectCreate(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := decodeJSON(w, r, &project); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateProject(&project); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if err := a.projectStore.Create(&project); err != nil {
		slog.Error("create project failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

// ProjectUpdate replaces a project's fields. Screenshots are managed
// through their own endpoints and survive the update.
func (a *Admin) ProjectUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	existing, err := a.projectStore.FindByID(id)
	if err != nil {
		slog.Error("find project failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}

	var project models.Project
	if err := decodeJSON(w, r, &project); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateProject(&project); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	project.ID = id
	if err := a.projectStore.Update(&project); err != nil {
		slog.Error("update project failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	project.Screenshots = existing.Screenshots
	writeJSON(w, http.StatusOK, project)
}

// ProjectDelete removes a project, its screenshot rows through the
// cascade, and their files best-effort.
func (a *Admin) ProjectDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	filenames, err := a.projectStore.Delete(id)
	if err != nil {
		slog.Error("delete project failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	for _, name := range filenames {
		if err := a.storageClient.Delete(screenshotDir, name); err != nil {
			slog.Warn("screenshot file delete failed", "file", name, "error", err)
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// --- Skill CRUD ---

// SkillCreate adds a skill.
func (a *Admin) SkillCreate(w http.ResponseWriter, r *http.Request) {
	var skill models.Skill
	if err := decodeJSON(w, r, &skill); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateSkill(&skill); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if err := a.skillStore.Create(&skill); err != nil {
		slog.Error("create skill failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, skill)
}

// SkillUpdate replaces a skill.
func (a *Admin) SkillUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	existing, err := a.skillStore.FindByID(id)
	if err != nil {
		slog.Error("find skill failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "skill not found")
		return
	}

	var skill models.Skill
	if err := decodeJSON(w, r, &skill); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateSkill(&skill); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	skill.ID = id
	if err := a.skillStore.Update(&skill); err != nil {
		slog.Error("update skill failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, skill)
}

// SkillDelete removes a skill. Idempotent.
func (a *Admin) SkillDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := a.skillStore.Delete(id); err != nil {
		slog.Error("delete skill failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// --- Certification CRUD ---

// CertificationCreate adds a certification.
func (a *Admin) CertificationCreate(w http.ResponseWriter, r *http.Request) {
	var cert models.Certification
	if err := decodeJSON(w, r, &cert); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateCertification(&cert); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if err := a.certificationStore.Create(&cert); err != nil {
		slog.Error("create certification failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, cert)
}

// CertificationUpdate replaces a certification.
func (a *Admin) CertificationUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	existing, err := a.certificationStore.FindByID(id)
	if err != nil {
		slog.Error("find certification failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "certification not found")
		return
	}

	var cert models.Certification
	if err := decodeJSON(w, r, &cert); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateCertification(&cert); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	cert.ID = id
	if err := a.certificationStore.Update(&cert); err != nil {
		slog.Error("update certification failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, cert)
}

// CertificationDelete removes a certification. Idempotent.
func (a *Admin) CertificationDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := a.certificationStore.Delete(id); err != nil {
		slog.Error("delete certification failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// --- Testimonial CRUD ---

// TestimonialCreate adds a testimonial.
func (a *Admin) TestimonialCreate(w http.ResponseWriter, r *http.Request) {
	var tm models.Testimonial
	if err := decodeJSON(w, r, &tm); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateTestimonial(&tm); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if err := a.testimonialStore.Create(&tm); err != nil {
		slog.Error("create testimonial failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, tm)
}

// TestimonialUpdate replaces a testimonial.
func (a *Admin) TestimonialUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	existing, err := a.testimonialStore.FindByID(id)
	if err != nil {
		slog.Error("find testimonial failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "testimonial not found")
		return
	}

	var tm models.Testimonial
	if err := decodeJSON(w, r, &tm); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateTestimonial(&tm); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	tm.ID = id
	if err := a.testimonialStore.Update(&tm); err != nil {
		slog.Error("update testimonial failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, tm)
}

// TestimonialDelete removes a testimonial. Idempotent.
func (a *Admin) TestimonialDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := a.testimonialStore.Delete(id); err != nil {
		slog.Error("delete testimonial failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// --- Article CRUD ---

// ArticlesList returns every article including drafts, newest first.
func (a *Admin) ArticlesList(w http.ResponseWriter, r *http.Request) {
	items, err := a.articleStore.List()
	if err != nil {
		slog.Error("list articles failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// ArticleCreate adds an article. A missing slug is derived from the
// title and disambiguated; an explicit slug that is taken is a conflict.
func (a *Admin) ArticleCreate(w http.ResponseWriter, r *http.Request) {
	var article models.Article
	if err := decodeJSON(w, r, &article); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateArticle(&article); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if err := a.articleStore.Create(&article); err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusConflict, "slug already in use")
			return
		}
		slog.Error("create article failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, article)
}

// ArticleUpdate replaces an article.
func (a *Admin) ArticleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	existing, err := a.articleStore.FindByID(id)
	if err != nil {
		slog.Error("find article failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "article not found")
		return
	}

	var article models.Article
	if err := decodeJSON(w, r, &article); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateArticle(&article); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	article.ID = id
	if err := a.articleStore.Update(&article); err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusConflict, "slug already in use")
			return
		}
		slog.Error("update article failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, article)
}

// ArticleDelete removes an article. Idempotent.
func (a *Admin) ArticleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := a.articleStore.Delete(id); err != nil {
		slog.Error("delete article failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// --- Message inbox ---

// MessagesList returns all contact messages, newest first.
func (a *Admin) MessagesList(w http.ResponseWriter, r *http.Request) {
	items, err := a.messageStore.List()
	if err != nil {
		slog.Error("list messages failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// MessageMarkRead flags a message as read and returns it.
func (a *Admin) MessageMarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	msg, err := a.messageStore.FindByID(id)
	if err != nil {
		slog.Error("find message failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if msg == nil {
		writeError(w, http.StatusNotFound, "message not found")
		return
	}

	if err := a.messageStore.MarkRead(id); err != nil {
		slog.Error("mark message read failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	msg.Read = true
	writeJSON(w, http.StatusOK, msg)
}

// MessageDelete removes a message. Idempotent.
func (a *Admin) MessageDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := a.messageStore.Delete(id); err != nil {
		slog.Error("delete message failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// --- Credentials ---

// CredentialsUpdate changes the admin username and password together
// after verifying the current password.
func (a *Admin) CredentialsUpdate(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req struct {
		CurrentPassword string `json:"current_password"`
		Username        string `json:"username"`
		Password        string `json:"password"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil {
		slog.Error("find user failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if user == nil || !a.userStore.CheckPassword(user, req.CurrentPassword) {
		writeError(w, http.StatusUnauthorized, "current password is incorrect")
		return
	}

	if msg := validateCredentials(req.Username, req.Password); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if err := a.userStore.UpdateCredentials(user.ID, req.Username, req.Password); err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusConflict, "username already taken")
			return
		}
		slog.Error("update credentials failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	// Keep the live session in step with the new username.
	sess.Username = req.Username
	if err := a.sessions.Update(r, sess); err != nil {
		slog.Warn("session refresh failed", "error", err)
	}

	slog.Info("admin credentials updated", "username", req.Username)
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
