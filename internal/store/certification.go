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

// CertificationStore handles certification database operations.
type CertificationStore struct {
	db *sql.DB
}

// NewCertificationStore creates a new CertificationStore with the given database connection.
func NewCertificationStore(db *sql.DB) *CertificationStore {
	return &CertificationStore{db: db}
}

// certificationColumns lists the columns selected in certification queries.
const certificationColumns = `id, name, issuer, date, credential_id,
	credential_url, expiry_date, description`

// scanCertification scans a certification row from the result set.
func scanCertification(scanner interface{ Scan(...any) error }) (*models.Certification, error) {
	var c models.Certification
	err := scanner.Scan(
		&c.ID, &c.Name, &c.Issuer, &c.Date, &c.CredentialID,
		&c.CredentialURL, &c.ExpiryDate, &c.Description,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new certification, assigning an ID when the caller
// did not provide one.
func (s *CertificationStore) Create(c *models.Certification) error {
	return insertCertification(s.db, c)
}

func insertCertification(q dbtx, c *models.Certification) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	_, err := q.Exec(`
		INSERT INTO certifications (id, name, issuer, date, credential_id,
			credential_url, expiry_date, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.Name, c.Issuer, c.Date, c.CredentialID,
		c.CredentialURL, c.ExpiryDate, c.Description)
	if err != nil {
		return fmt.Errorf("create certification: %w", err)
	}
	return nil
}

// Update replaces every field of the certification. Updating an unknown
// ID is a no-op.
func (s *CertificationStore) Update(c *models.Certification) error {
	_, err := s.db.Exec(`
		UPDATE certifications
		SET name = ?, issuer = ?, date = ?, credential_id = ?,
			credential_url = ?, expiry_date = ?, description = ?
		WHERE id = ?
	`, c.Name, c.Issuer, c.Date, c.CredentialID,
		c.CredentialURL, c.ExpiryDate, c.Description, c.ID)
	if err != nil {
		return fmt.Errorf("update certification: %w", err)
	}
	return nil
}

// FindByID retrieves a single certification. Returns nil if not found.
func (s *CertificationStore) FindByID(id uuid.UUID) (*models.Certification, error) {
	row := s.db.QueryRow(`SELECT `+certificationColumns+` FROM certifications WHERE id = ?`, id)
	c, err := scanCertification(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find certification by id: %w", err)
	}
	return c, nil
}

// Delete removes the certification. Deleting an unknown ID is a no-op.
func (s *CertificationStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM certifications WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete certification: %w", err)
	}
	return nil
}

// List returns all certifications, most recent first.
func (s *CertificationStore) List() ([]models.Certification, error) {
	return listCertifications(s.db)
}

func listCertifications(q dbtx) ([]models.Certification, error) {
	rows, err := q.Query(`SELECT ` + certificationColumns + ` FROM certifications ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list certifications: %w", err)
	}
	defer rows.Close()

	var items []models.Certification
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan certification: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}
