// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"folio/internal/models"
)

// TestimonialStore handles testimonial database operations.
type TestimonialStore struct {
	db *sql.DB
}

// NewTestimonialStore creates a new TestimonialStore with the given database connection.
func NewTestimonialStore(db *sql.DB) *TestimonialStore {
	return &TestimonialStore{db: db}
}

// testimonialColumns lists the columns selected in testimonial queries.
const testimonialColumns = `id, name, role, company, content, rating, image_url, date, featured`

// scanTestimonial scans a testimonial row from the result set.
func scanTestimonial(scanner interface{ Scan(...any) error }) (*models.Testimonial, error) {
	var t models.Testimonial
	err := scanner.Scan(
		&t.ID, &t.Name, &t.Role, &t.Company, &t.Content,
		&t.Rating, &t.ImageURL, &t.Date, &t.Featured,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a new testimonial, assigning an ID when the caller did
// not provide one.
func (s *TestimonialStore) Create(t *models.Testimonial) error {
	return insertTestimonial(s.db, t)
}

func insertTestimonial(q dbtx, t *models.Testimonial) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	_, err := q.Exec(`
		INSERT INTO testimonials (id, name, role, company, content, rating,
			image_url, date, featured)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.Name, t.Role, t.Company, t.Content, t.Rating,
		t.ImageURL, t.Date, t.Featured)
	if err != nil {
		return fmt.Errorf("create testimonial: %w", err)
	}
	return nil
}

// Update replaces every field of the testimonial. Updating an unknown ID
// is a no-op.
func (s *TestimonialStore) Update(t *models.Testimonial) error {
	_, err := s.db.Exec(`
		UPDATE testimonials
		SET name = ?, role = ?, company = ?, content = ?, rating = ?,
			image_url = ?, date = ?, featured = ?
		WHERE id = ?
	`, t.Name, t.Role, t.Company, t.Content, t.Rating,
		t.ImageURL, t.Date, t.Featured, t.ID)
	if err != nil {
		return fmt.Errorf("update testimonial: %w", err)
	}
	return nil
}

// FindByID retrieves a single testimonial. Returns nil if not found.
func (s *TestimonialStore) FindByID(id uuid.UUID) (*models.Testimonial, error) {
	row := s.db.QueryRow(`SELECT `+testimonialColumns+` FROM testimonials WHERE id = ?`, id)
	t, err := scanTestimonial(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find testimonial by id: %w", err)
	}
	return t, nil
}

// Delete removes the testimonial. Deleting an unknown ID is a no-op.
func (s *TestimonialStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM testimonials WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	return nil
}

// List returns all testimonials, most recent first.
func (s *TestimonialStore) List() ([]models.Testimonial, error) {
	return listTestimonials(s.db)
}

func listTestimonials(q dbtx) ([]models.Testimonial, error) {
	rows, err := q.Query(`SELECT ` + testimonialColumns + ` FROM testimonials ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	var items []models.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}
