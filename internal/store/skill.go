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

// SkillStore handles skill database operations.
type SkillStore struct {
	db *sql.DB
}

// NewSkillStore creates a new SkillStore with the given database connection.
func NewSkillStore(db *sql.DB) *SkillStore {
	return &SkillStore{db: db}
}

// skillColumns lists the columns selected in skill queries.
const skillColumns = `id, name, level, category, icon, description`

// scanSkill scans a skill row from the result set.
func scanSkill(scanner interface{ Scan(...any) error }) (*models.Skill, error) {
	var sk models.Skill
	err := scanner.Scan(&sk.ID, &sk.Name, &sk.Level, &sk.Category, &sk.Icon, &sk.Description)
	if err != nil {
		return nil, err
	}
	return &sk, nil
}

// Create inserts a new skill, assigning an ID when the caller did not
// provide one.
func (s *SkillStore) Create(sk *models.Skill) error {
	return insertSkill(s.db, sk)
}

func insertSkill(q dbtx, sk *models.Skill) error {
	if sk.ID == uuid.Nil {
		sk.ID = uuid.New()
	}
	_, err := q.Exec(`
		INSERT INTO skills (id, name, level, category, icon, description)
		VALUES (?, ?, ?, ?, ?, ?)
	`, sk.ID, sk.Name, sk.Level, sk.Category, sk.Icon, sk.Description)
	if err != nil {
		return fmt.Errorf("create skill: %w", err)
	}
	return nil
}

// Update replaces every field of the skill. Updating an unknown ID is a
// no-op.
func (s *SkillStore) Update(sk *models.Skill) error {
	_, err := s.db.Exec(`
		UPDATE skills
		SET name = ?, level = ?, category = ?, icon = ?, description = ?
		WHERE id = ?
	`, sk.Name, sk.Level, sk.Category, sk.Icon, sk.Description, sk.ID)
	if err != nil {
		return fmt.Errorf("update skill: %w", err)
	}
	return nil
}

// FindByID retrieves a single skill. Returns nil if not found.
func (s *SkillStore) FindByID(id uuid.UUID) (*models.Skill, error) {
	row := s.db.QueryRow(`SELECT `+skillColumns+` FROM skills WHERE id = ?`, id)
	sk, err := scanSkill(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find skill by id: %w", err)
	}
	return sk, nil
}

// Delete removes the skill. Deleting an unknown ID is a no-op.
func (s *SkillStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM skills WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	return nil
}

// List returns all skills grouped by category, then by name.
func (s *SkillStore) List() ([]models.Skill, error) {
	return listSkills(s.db)
}

func listSkills(q dbtx) ([]models.Skill, error) {
	rows, err := q.Query(`SELECT ` + skillColumns + ` FROM skills ORDER BY category, name`)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	var items []models.Skill
	for rows.Next() {
		sk, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		items = append(items, *sk)
	}
	return items, rows.Err()
}
