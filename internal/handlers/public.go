// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"folio/internal/markdown"
	"folio/internal/models"
	"folio/internal/storage"
	"folio/internal/store"
)

// relatedArticleLimit caps the related-article list on a blog post.
const relatedArticleLimit = 3

// Public groups the handlers serving the visitor-facing JSON API. Every
// read goes straight to the stores; articles are filtered to published
// ones before anything leaves this layer.
type Public struct {
	personalStore      *store.PersonalStore
	academicStore      *store.AcademicStore
	experienceStore    *store.ExperienceStore
	projectStore       *store.ProjectStore
	skillStore         *store.SkillStore
	certificationStore *store.CertificationStore
	testimonialStore   *store.TestimonialStore
	articleStore       *store.ArticleStore
	messageStore       *store.MessageStore
	storageClient      *storage.Client
}

// NewPublic creates a new Public handler group.
func NewPublic(personalStore *store.PersonalStore, academicStore *store.AcademicStore, experienceStore *store.ExperienceStore, projectStore *store.ProjectStore, skillStore *store.SkillStore, certificationStore *store.CertificationStore, testimonialStore *store.TestimonialStore, articleStore *store.ArticleStore, messageStore *store.MessageStore, storageClient *storage.Client) *Public {
	return &Public{
		personalStore:      personalStore,
		academicStore:      academicStore,
		experienceStore:    experienceStore,
		projectStore:       projectStore,
		skillStore:         skillStore,
		certificationStore: certificationStore,
		testimonialStore:   testimonialStore,
		articleStore:       articleStore,
		messageStore:       messageStore,
		storageClient:      storageClient,
	}
}

// Portfolio returns the aggregate public dataset in one response, shaped
// like the import/export document minus messages and the CV reference.
func (p *Public) Portfolio(w http.ResponseWriter, r *http.Request) {
	personal, err := p.personalStore.Get()
	if err != nil {
		slog.Error("load personal info failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	academic, err := p.academicStore.List()
	if err != nil {
		slog.Error("list education failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	experience, err := p.experienceStore.List()
	if err != nil {
		slog.Error("list experience failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	projects, err := p.projectStore.List()
	if err != nil {
		slog.Error("list projects failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	skills, err := p.skillStore.List()
	if err != nil {
		slog.Error("list skills failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	certifications, err := p.certificationStore.List()
	if err != nil {
		slog.Error("list certifications failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	articles, err := p.articleStore.ListPublished()
	if err != nil {
		slog.Error("list articles failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	testimonials, err := p.testimonialStore.List()
	if err != nil {
		slog.Error("list testimonials failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"personal_info":   personal,
		"academic":        academic,
		"work_experience": experience,
		"projects":        projects,
		"skills":          skills,
		"certifications":  certifications,
		"articles":        articles,
		"testimonials":    testimonials,
	})
}

// Personal returns the owner profile.
func (p *Public) Personal(w http.ResponseWriter, r *http.Request) {
	personal, err := p.personalStore.Get()
	if err != nil {
		slog.Error("load personal info failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, personal)
}

// Education returns all education entries, newest first.
func (p *Public) Education(w http.ResponseWriter, r *http.Request) {
	items, err := p.academicStore.List()
	if err != nil {
		slog.Error("list education failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Experience returns all work experience entries, newest first.
func (p *Public) Experience(w http.ResponseWriter, r *http.Request) {
	items, err := p.experienceStore.List()
	if err != nil {
		slog.Error("list experience failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Projects returns all projects with their screenshots.
func (p *Public) Projects(w http.ResponseWriter, r *http.Request) {
	items, err := p.projectStore.List()
	if err != nil {
		slog.Error("list projects failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// ProjectByID returns a single project with its screenshots.
func (p *Public) ProjectByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	project, err := p.projectStore.FindByID(id)
	if err != nil {
		slog.Error("find project failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if project == nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Skills returns all skill entries.
func (p *Public) Skills(w http.ResponseWriter, r *http.Request) {
	items, err := p.skillStore.List()
	if err != nil {
		slog.Error("list skills failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Certifications returns all certification entries, newest first.
func (p *Public) Certifications(w http.ResponseWriter, r *http.Request) {
	items, err := p.certificationStore.List()
	if err != nil {
		slog.Error("list certifications failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Testimonials returns all testimonial entries.
func (p *Public) Testimonials(w http.ResponseWriter, r *http.Request) {
	items, err := p.testimonialStore.List()
	if err != nil {
		slog.Error("list testimonials failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Articles returns published articles, optionally narrowed by ?search=,
// ?category= and ?tag=, plus the distinct category and tag lists drawn
// from the full published set so filter menus stay complete.
func (p *Public) Articles(w http.ResponseWriter, r *http.Request) {
	published, err := p.articleStore.ListPublished()
	if err != nil {
		slog.Error("list articles failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	search := strings.TrimSpace(r.URL.Query().Get("search"))
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	tag := strings.TrimSpace(r.URL.Query().Get("tag"))

	filtered := filterArticles(published, search, category, tag)
	categories, tags := collectTopics(published)

	writeJSON(w, http.StatusOK, map[string]any{
		"articles":   filtered,
		"categories": categories,
		"tags":       tags,
	})
}

// filterArticles applies the blog listing filters in order: free-text
// search over title, excerpt and content, then category, then tag.
func filterArticles(articles []models.Article, search, category, tag string) []models.Article {
	filtered := articles
	if search != "" {
		needle := strings.ToLower(search)
		var matched []models.Article
		for _, a := range filtered {
			if strings.Contains(strings.ToLower(a.Title), needle) ||
				strings.Contains(strings.ToLower(a.Excerpt), needle) ||
				strings.Contains(strings.ToLower(a.Content), needle) {
				matched = append(matched, a)
			}
		}
		filtered = matched
	}
	if category != "" {
		var matched []models.Article
		for _, a := range filtered {
			if a.HasCategory(category) {
				matched = append(matched, a)
			}
		}
		filtered = matched
	}
	if tag != "" {
		var matched []models.Article
		for _, a := range filtered {
			if a.HasTag(tag) {
				matched = append(matched, a)
			}
		}
		filtered = matched
	}
	if filtered == nil {
		filtered = []models.Article{}
	}
	return filtered
}

// collectTopics returns the sorted distinct categories and tags across
// the given articles.
func collectTopics(articles []models.Article) ([]string, []string) {
	catSet := map[string]bool{}
	tagSet := map[string]bool{}
	for _, a := range articles {
		for _, c := range a.Categories {
			catSet[c] = true
		}
		for _, t := range a.Tags {
			tagSet[t] = true
		}
	}

	categories := make([]string, 0, len(catSet))
	for c := range catSet {
		categories = append(categories, c)
	}
	tags := make([]string, 0, len(tagSet))
	for t := range tagSet {
		tags = append(tags, t)
	}
	sort.Strings(categories)
	sort.Strings(tags)
	return categories, tags
}

// ArticleBySlug returns one published article with its Markdown rendered
// to HTML and up to three related published articles sharing a category
// or tag.
func (p *Public) ArticleBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	article, err := p.articleStore.FindPublishedBySlug(slug)
	if err != nil {
		slog.Error("find article failed", "error", err, "slug", slug)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if article == nil {
		writeError(w, http.StatusNotFound, "article not found")
		return
	}

	contentHTML, err := markdown.ToHTML(article.Content)
	if err != nil {
		slog.Error("render article failed", "error", err, "slug", slug)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	published, err := p.articleStore.ListPublished()
	if err != nil {
		slog.Error("list articles failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	related := relatedArticles(article, published)

	writeJSON(w, http.StatusOK, map[string]any{
		"article":      article,
		"content_html": contentHTML,
		"related":      related,
	})
}

// relatedArticles picks up to relatedArticleLimit published articles
// sharing a category or tag with the given one, preserving the newest
// first list order.
func relatedArticles(article *models.Article, published []models.Article) []models.Article {
	related := []models.Article{}
	for i := range published {
		if published[i].ID == article.ID {
			continue
		}
		if published[i].SharesTopicWith(article) {
			related = append(related, published[i])
			if len(related) == relatedArticleLimit {
				break
			}
		}
	}
	return related
}

// Contact accepts a contact form submission and stores it as an unread
// message.
func (p *Public) Contact(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg := validateContactMessage(req.Name, req.Email, req.Subject, req.Message); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	m := &models.Message{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Body:    strings.TrimSpace(req.Message),
	}
	if err := p.messageStore.Create(m); err != nil {
		slog.Error("create message failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, m)
}

// DownloadCV streams the uploaded CV as an attachment, or 404 when none
// has been uploaded.
func (p *Public) DownloadCV(w http.ResponseWriter, r *http.Request) {
	cvFile, err := p.personalStore.GetCV()
	if err != nil {
		slog.Error("load cv reference failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if cvFile == nil || *cvFile == "" {
		writeError(w, http.StatusNotFound, "no CV has been uploaded")
		return
	}

	path := p.storageClient.Path(cvDir, *cvFile)
	if _, err := os.Stat(path); err != nil {
		slog.Error("cv file missing on disk", "file", *cvFile)
		writeError(w, http.StatusNotFound, "no CV has been uploaded")
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="`+*cvFile+`"`)
	http.ServeFile(w, r, path)
}
