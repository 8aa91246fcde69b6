// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"folio/internal/models"
)

// TransferStore assembles the whole portfolio into one interchange
// document and restores it wholesale. It reuses the per-entity query
// helpers so exported and imported rows go through the same code as
// normal writes.
type TransferStore struct {
	db *sql.DB
}

// NewTransferStore creates a new TransferStore with the given database connection.
func NewTransferStore(db *sql.DB) *TransferStore {
	return &TransferStore{db: db}
}

// Export collects every entity into a single document. Screenshots ride
// nested inside their projects, the CV filename alongside the profile.
func (s *TransferStore) Export() (*models.Document, error) {
	doc := &models.Document{}

	var err error
	if doc.PersonalInfo, err = getPersonalInfo(s.db); err != nil {
		return nil, err
	}
	if doc.CVFile, err = getCVFile(s.db); err != nil {
		return nil, err
	}
	if doc.Academic, err = listAcademic(s.db); err != nil {
		return nil, err
	}
	if doc.WorkExperience, err = listExperience(s.db); err != nil {
		return nil, err
	}
	if doc.Projects, err = listProjects(s.db); err != nil {
		return nil, err
	}
	if doc.Skills, err = listSkills(s.db); err != nil {
		return nil, err
	}
	if doc.Certifications, err = listCertifications(s.db); err != nil {
		return nil, err
	}
	if doc.Messages, err = listMessages(s.db); err != nil {
		return nil, err
	}
	if doc.Articles, err = listArticles(s.db); err != nil {
		return nil, err
	}
	if doc.Testimonials, err = listTestimonials(s.db); err != nil {
		return nil, err
	}
	return doc, nil
}

// Import replaces the entire portfolio with the document's contents in
// one transaction. Existing entity rows are cleared first; imported
// entities keep the IDs they carry, so screenshots stay attached to
// their projects. Analytics counters and admin accounts are untouched.
func (s *TransferStore) Import(doc *models.Document) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	// Children before parents, so the foreign key never dangles.
	for _, table := range []string{
		"project_screenshots", "projects", "academic", "work_experience",
		"skills", "certifications", "messages", "articles", "testimonials",
	} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if doc.PersonalInfo != nil {
		if err := savePersonalInfo(tx, doc.PersonalInfo); err != nil {
			return err
		}
	}
	if err := updateCVFile(tx, doc.CVFile); err != nil {
		return err
	}

	for i := range doc.Academic {
		if err := insertAcademic(tx, &doc.Academic[i]); err != nil {
			return err
		}
	}
	for i := range doc.WorkExperience {
		if err := insertExperience(tx, &doc.WorkExperience[i]); err != nil {
			return err
		}
	}
	for i := range doc.Projects {
		if err := insertProject(tx, &doc.Projects[i]); err != nil {
			return err
		}
	}
	for i := range doc.Skills {
		if err := insertSkill(tx, &doc.Skills[i]); err != nil {
			return err
		}
	}
	for i := range doc.Certifications {
		if err := insertCertification(tx, &doc.Certifications[i]); err != nil {
			return err
		}
	}
	for i := range doc.Messages {
		if err := insertMessage(tx, &doc.Messages[i]); err != nil {
			return err
		}
	}
	for i := range doc.Articles {
		if err := insertArticle(tx, &doc.Articles[i]); err != nil {
			return err
		}
	}
	for i := range doc.Testimonials {
		if err := insertTestimonial(tx, &doc.Testimonials[i]); err != nil {
			return err
		}
	}

	return tx.Commit()
}
