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

// ExperienceStore handles work experience database operations.
type ExperienceStore struct {
	db *sql.DB
}

// NewExperienceStore creates a new ExperienceStore with the given database connection.
func NewExperienceStore(db *sql.DB) *ExperienceStore {
	return &ExperienceStore{db: db}
}

// experienceColumns lists the columns selected in work experience queries.
const experienceColumns = `id, job_title, company, location, start_date, end_date,
	current, description, responsibilities, achievements, technologies`

// scanExperience scans a work experience row, decoding the JSON list columns.
func scanExperience(scanner interface{ Scan(...any) error }) (*models.WorkExperience, error) {
	var (
		e                models.WorkExperience
		responsibilities string
		achievements     string
		technologies     string
	)
	err := scanner.Scan(
		&e.ID, &e.JobTitle, &e.Company, &e.Location, &e.StartDate, &e.EndDate,
		&e.Current, &e.Description, &responsibilities, &achievements, &technologies,
	)
	if err != nil {
		return nil, err
	}
	e.Responsibilities = decodeList(responsibilities)
	e.Achievements = decodeList(achievements)
	e.Technologies = decodeList(technologies)
	return &e, nil
}

// Create inserts a new work experience entry, assigning an ID when the
// caller did not provide one.
func (s *ExperienceStore) Create(e *models.WorkExperience) error {
	return insertExperience(s.db, e)
}

func insertExperience(q dbtx, e *models.WorkExperience) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	_, err := q.Exec(`
		INSERT INTO work_experience (id, job_title, company, location, start_date,
			end_date, current, description, responsibilities, achievements, technologies)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.JobTitle, e.Company, e.Location, e.StartDate, e.EndDate,
		e.Current, e.Description, encodeList(e.Responsibilities),
		encodeList(e.Achievements), encodeList(e.Technologies))
	if err != nil {
		return fmt.Errorf("create work experience: %w", err)
	}
	return nil
}

// Update replaces every field of the entry. Updating an unknown ID is a
// no-op.
func (s *ExperienceStore) Update(e *models.WorkExperience) error {
	_, err := s.db.Exec(`
		UPDATE work_experience
		SET job_title = ?, company = ?, location = ?, start_date = ?, end_date = ?,
			current = ?, description = ?, responsibilities = ?, achievements = ?,
			technologies = ?
		WHERE id = ?
	`, e.JobTitle, e.Company, e.Location, e.StartDate, e.EndDate,
		e.Current, e.Description, encodeList(e.Responsibilities),
		encodeList(e.Achievements), encodeList(e.Technologies), e.ID)
	if err != nil {
		return fmt.Errorf("update work experience: %w", err)
	}
	return nil
}

// FindByID retrieves a single work experience entry. Returns nil if not
// found.
func (s *ExperienceStore) FindByID(id uuid.UUID) (*models.WorkExperience, error) {
	row := s.db.QueryRow(`SELECT `+experienceColumns+` FROM work_experience WHERE id = ?`, id)
	e, err := scanExperience(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find work experience by id: %w", err)
	}
	return e, nil
}

// Delete removes the entry. Deleting an unknown ID is a no-op.
func (s *ExperienceStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM work_experience WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete work experience: %w", err)
	}
	return nil
}

// List returns all work experience entries, most recent first.
func (s *ExperienceStore) List() ([]models.WorkExperience, error) {
	return listExperience(s.db)
}

func listExperience(q dbtx) ([]models.WorkExperience, error) {
	rows, err := q.Query(`
		SELECT ` + experienceColumns + `
		FROM work_experience
		ORDER BY start_date DESC, end_date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list work experience: %w", err)
	}
	defer rows.Close()

	var items []models.WorkExperience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("scan work experience: %w", err)
		}
		items = append(items, *e)
	}
	return items, rows.Err()
}
