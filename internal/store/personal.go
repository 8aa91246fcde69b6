// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"folio/internal/models"
)

// PersonalStore handles the singleton personal info row and the CV file
// reference stored alongside it.
type PersonalStore struct {
	db *sql.DB
}

// NewPersonalStore creates a new PersonalStore with the given database connection.
func NewPersonalStore(db *sql.DB) *PersonalStore {
	return &PersonalStore{db: db}
}

// Get returns the personal info. Returns nil if the row has not been
// seeded yet.
func (s *PersonalStore) Get() (*models.PersonalInfo, error) {
	return getPersonalInfo(s.db)
}

func getPersonalInfo(q dbtx) (*models.PersonalInfo, error) {
	p := &models.PersonalInfo{}
	err := q.QueryRow(`
		SELECT name, title, email, phone, location, bio,
		       github, linkedin, twitter, profile_image
		FROM personal_info WHERE id = 1
	`).Scan(
		&p.Name, &p.Title, &p.Email, &p.Phone, &p.Location, &p.Bio,
		&p.SocialLinks.GitHub, &p.SocialLinks.LinkedIn, &p.SocialLinks.Twitter,
		&p.ProfileImage,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get personal info: %w", err)
	}
	return p, nil
}

// Save replaces every profile field. The CV reference is managed
// separately through SetCV and ClearCV and survives a Save.
func (s *PersonalStore) Save(p *models.PersonalInfo) error {
	return savePersonalInfo(s.db, p)
}

func savePersonalInfo(q dbtx, p *models.PersonalInfo) error {
	_, err := q.Exec(`
		INSERT INTO personal_info (id, name, title, email, phone, location, bio,
			github, linkedin, twitter, profile_image)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name, title = excluded.title, email = excluded.email,
			phone = excluded.phone, location = excluded.location, bio = excluded.bio,
			github = excluded.github, linkedin = excluded.linkedin,
			twitter = excluded.twitter, profile_image = excluded.profile_image
	`, p.Name, p.Title, p.Email, p.Phone, p.Location, p.Bio,
		p.SocialLinks.GitHub, p.SocialLinks.LinkedIn, p.SocialLinks.Twitter,
		p.ProfileImage,
	)
	if err != nil {
		return fmt.Errorf("save personal info: %w", err)
	}
	return nil
}

// GetCV returns the stored CV filename, or nil when none is set.
func (s *PersonalStore) GetCV() (*string, error) {
	return getCVFile(s.db)
}

func getCVFile(q dbtx) (*string, error) {
	var cv sql.NullString
	err := q.QueryRow(`SELECT cv_file FROM personal_info WHERE id = 1`).Scan(&cv)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cv file: %w", err)
	}
	if !cv.Valid || cv.String == "" {
		return nil, nil
	}
	return &cv.String, nil
}

// SetCV records the filename of the uploaded CV.
func (s *PersonalStore) SetCV(filename string) error {
	return updateCVFile(s.db, &filename)
}

// ClearCV removes the CV reference. The caller deletes the backing file.
func (s *PersonalStore) ClearCV() error {
	return updateCVFile(s.db, nil)
}

func updateCVFile(q dbtx, filename *string) error {
	_, err := q.Exec(`UPDATE personal_info SET cv_file = ? WHERE id = 1`, filename)
	if err != nil {
		return fmt.Errorf("update cv file: %w", err)
	}
	return nil
}
