// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"folio/internal/models"
	"folio/internal/slug"
)

// ArticleStore handles blog article database operations.
type ArticleStore struct {
	db *sql.DB
}

// NewArticleStore creates a new ArticleStore with the given database connection.
func NewArticleStore(db *sql.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// articleColumns lists the columns selected in article queries.
const articleColumns = `id, title, slug, excerpt, content, image_url,
	categories, tags, published_date, read_time, published`

// scanArticle scans an article row, decoding the JSON list columns.
func scanArticle(scanner interface{ Scan(...any) error }) (*models.Article, error) {
	var (
		a          models.Article
		categories string
		tags       string
	)
	err := scanner.Scan(
		&a.ID, &a.Title, &a.Slug, &a.Excerpt, &a.Content, &a.ImageURL,
		&categories, &tags, &a.PublishedDate, &a.ReadTime, &a.Published,
	)
	if err != nil {
		return nil, err
	}
	a.Categories = decodeList(categories)
	a.Tags = decodeList(tags)
	return &a, nil
}

// Create inserts a new article, deriving a collision-free slug from the
// title when the caller did not supply one. An explicitly supplied slug
// that is already taken surfaces as ErrConflict.
func (s *ArticleStore) Create(a *models.Article) error {
	return insertArticle(s.db, a)
}

func insertArticle(q dbtx, a *models.Article) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if err := ensureSlug(q, a); err != nil {
		return err
	}
	_, err := q.Exec(`
		INSERT INTO articles (id, title, slug, excerpt, content, image_url,
			categories, tags, published_date, read_time, published)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, a.ID, a.Title, a.Slug, a.Excerpt, a.Content, a.ImageURL,
		encodeList(a.Categories), encodeList(a.Tags), a.PublishedDate,
		a.ReadTime, a.Published)
	if isConstraint(err) {
		return fmt.Errorf("create article: %w", ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("create article: %w", err)
	}
	return nil
}

// ensureSlug fills in a slug derived from the title, suffixed until it
// collides with no other article. An explicit slug is kept as-is.
func ensureSlug(q dbtx, a *models.Article) error {
	if a.Slug != "" {
		return nil
	}
	taken, err := articleSlugs(q, a.ID)
	if err != nil {
		return err
	}
	a.Slug = slug.Unique(slug.Generate(a.Title), taken)
	return nil
}

// articleSlugs returns every slug except the one belonging to exclude.
func articleSlugs(q dbtx, exclude uuid.UUID) ([]string, error) {
	rows, err := q.Query(`SELECT slug FROM articles WHERE id != ?`, exclude)
	if err != nil {
		return nil, fmt.Errorf("list article slugs: %w", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan article slug: %w", err)
		}
		slugs = append(slugs, s)
	}
	return slugs, rows.Err()
}

// Update replaces every field of the article, regenerating the slug when
// the caller cleared it. Updating an unknown ID is a no-op.
func (s *ArticleStore) Update(a *models.Article) error {
	if err := ensureSlug(s.db, a); err != nil {
		return err
	}
	_, err := s.db.Exec(`
		UPDATE articles
		SET title = ?, slug = ?, excerpt = ?, content = ?, image_url = ?,
			categories = ?, tags = ?, published_date = ?, read_time = ?, published = ?
		WHERE id = ?
	`, a.Title, a.Slug, a.Excerpt, a.Content, a.ImageURL,
		encodeList(a.Categories), encodeList(a.Tags), a.PublishedDate,
		a.ReadTime, a.Published, a.ID)
	if isConstraint(err) {
		return fmt.Errorf("update article: %w", ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

// Delete removes the article. Deleting an unknown ID is a no-op.
func (s *ArticleStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM articles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// FindByID retrieves an article regardless of publication state.
// Returns nil if not found.
func (s *ArticleStore) FindByID(id uuid.UUID) (*models.Article, error) {
	row := s.db.QueryRow(`SELECT `+articleColumns+` FROM articles WHERE id = ?`, id)
	a, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article by id: %w", err)
	}
	return a, nil
}

// FindPublishedBySlug retrieves a published article by its slug. Used
// for public article pages. Returns nil if not found or unpublished.
func (s *ArticleStore) FindPublishedBySlug(slug string) (*models.Article, error) {
	row := s.db.QueryRow(`
		SELECT `+articleColumns+`
		FROM articles WHERE slug = ? AND published = 1
	`, slug)
	a, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article by slug: %w", err)
	}
	return a, nil
}

// List returns all articles including drafts, newest first.
func (s *ArticleStore) List() ([]models.Article, error) {
	return listArticles(s.db)
}

func listArticles(q dbtx) ([]models.Article, error) {
	return queryArticles(q, `
		SELECT `+articleColumns+`
		FROM articles
		ORDER BY published_date DESC
	`)
}

// ListPublished returns only published articles, newest first.
func (s *ArticleStore) ListPublished() ([]models.Article, error) {
	return queryArticles(s.db, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE published = 1
		ORDER BY published_date DESC
	`)
}

func queryArticles(q dbtx, query string, args ...any) ([]models.Article, error) {
	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var items []models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}
