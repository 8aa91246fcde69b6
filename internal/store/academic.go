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

// AcademicStore handles academic history database operations.
type AcademicStore struct {
	db *sql.DB
}

// NewAcademicStore creates a new AcademicStore with the given database connection.
func NewAcademicStore(db *sql.DB) *AcademicStore {
	return &AcademicStore{db: db}
}

// academicColumns lists the columns selected in academic queries.
const academicColumns = `id, degree, institution, year, description`

// scanAcademic scans an academic row from the result set.
func scanAcademic(scanner interface{ Scan(...any) error }) (*models.AcademicEntry, error) {
	var a models.AcademicEntry
	err := scanner.Scan(&a.ID, &a.Degree, &a.Institution, &a.Year, &a.Description)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new academic entry, assigning an ID when the caller
// did not provide one.
func (s *AcademicStore) Create(a *models.AcademicEntry) error {
	return insertAcademic(s.db, a)
}

func insertAcademic(q dbtx, a *models.AcademicEntry) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	_, err := q.Exec(`
		INSERT INTO academic (id, degree, institution, year, description)
		VALUES (?, ?, ?, ?, ?)
	`, a.ID, a.Degree, a.Institution, a.Year, a.Description)
	if err != nil {
		return fmt.Errorf("create academic entry: %w", err)
	}
	return nil
}

// Update replaces every field of the entry. Updating an unknown ID is a
// no-op.
func (s *AcademicStore) Update(a *models.AcademicEntry) error {
	_, err := s.db.Exec(`
		UPDATE academic
		SET degree = ?, institution = ?, year = ?, description = ?
		WHERE id = ?
	`, a.Degree, a.Institution, a.Year, a.Description, a.ID)
	if err != nil {
		return fmt.Errorf("update academic entry: %w", err)
	}
	return nil
}

// FindByID retrieves a single academic entry. Returns nil if not found.
func (s *AcademicStore) FindByID(id uuid.UUID) (*models.AcademicEntry, error) {
	row := s.db.QueryRow(`SELECT `+academicColumns+` FROM academic WHERE id = ?`, id)
	a, err := scanAcademic(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find academic entry by id: %w", err)
	}
	return a, nil
}

// Delete removes the entry. Deleting an unknown ID is a no-op.
func (s *AcademicStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM academic WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete academic entry: %w", err)
	}
	return nil
}

// List returns all academic entries, most recent year first.
func (s *AcademicStore) List() ([]models.AcademicEntry, error) {
	return listAcademic(s.db)
}

func listAcademic(q dbtx) ([]models.AcademicEntry, error) {
	rows, err := q.Query(`SELECT ` + academicColumns + ` FROM academic ORDER BY year DESC`)
	if err != nil {
		return nil, fmt.Errorf("list academic entries: %w", err)
	}
	defer rows.Close()

	var items []models.AcademicEntry
	for rows.Next() {
		a, err := scanAcademic(rows)
		if err != nil {
			return nil, fmt.Errorf("scan academic entry: %w", err)
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}
