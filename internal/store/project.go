// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"folio/internal/models"
)

// ProjectStore handles project and screenshot database operations.
// Screenshots are owned by their project: creating a project with
// screenshots is one transaction and deleting a project cascades to its
// screenshot rows.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore creates a new ProjectStore with the given database connection.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

// projectColumns lists the columns selected in project queries.
const projectColumns = `id, title, description, technologies, github_url,
	live_url, image_url, start_date, end_date, featured`

// screenshotColumns lists the columns selected in screenshot queries.
const screenshotColumns = `id, project_id, filename, caption, uploaded_at`

// scanProject scans a project row without its screenshots.
func scanProject(scanner interface{ Scan(...any) error }) (*models.Project, error) {
	var (
		p            models.Project
		technologies string
	)
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Description, &technologies, &p.GitHubURL,
		&p.LiveURL, &p.ImageURL, &p.StartDate, &p.EndDate, &p.Featured,
	)
	if err != nil {
		return nil, err
	}
	p.Technologies = decodeList(technologies)
	p.Screenshots = []models.Screenshot{}
	return &p, nil
}

// scanScreenshot scans a screenshot row from the result set.
func scanScreenshot(scanner interface{ Scan(...any) error }) (*models.Screenshot, error) {
	var (
		sc         models.Screenshot
		uploadedAt string
	)
	err := scanner.Scan(&sc.ID, &sc.ProjectID, &sc.Filename, &sc.Caption, &uploadedAt)
	if err != nil {
		return nil, err
	}
	sc.UploadedAt = parseTime(uploadedAt)
	return &sc, nil
}

// Create inserts a project together with any screenshots it carries, in
// one transaction.
func (s *ProjectStore) Create(p *models.Project) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin create project: %w", err)
	}
	defer tx.Rollback()

	if err := insertProject(tx, p); err != nil {
		return err
	}
	return tx.Commit()
}

func insertProject(q dbtx, p *models.Project) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	_, err := q.Exec(`
		INSERT INTO projects (id, title, description, technologies, github_url,
			live_url, image_url, start_date, end_date, featured)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Title, p.Description, encodeList(p.Technologies), p.GitHubURL,
		p.LiveURL, p.ImageURL, p.StartDate, p.EndDate, p.Featured)
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	for i := range p.Screenshots {
		p.Screenshots[i].ProjectID = p.ID
		if err := insertScreenshot(q, &p.Screenshots[i]); err != nil {
			return err
		}
	}
	return nil
}

func insertScreenshot(q dbtx, sc *models.Screenshot) error {
	if sc.ID == uuid.Nil {
		sc.ID = uuid.New()
	}
	if sc.UploadedAt.IsZero() {
		sc.UploadedAt = time.Now().UTC()
	}
	_, err := q.Exec(`
		INSERT INTO project_screenshots (id, project_id, filename, caption, uploaded_at)
		VALUES (?, ?, ?, ?, ?)
	`, sc.ID, sc.ProjectID, sc.Filename, sc.Caption, fmtTime(sc.UploadedAt))
	if err != nil {
		return fmt.Errorf("create screenshot: %w", err)
	}
	return nil
}

// Update replaces project fields. Screenshots are managed separately
// through AddScreenshot and DeleteScreenshot. Updating an unknown ID is
// a no-op.
func (s *ProjectStore) Update(p *models.Project) error {
	_, err := s.db.Exec(`
		UPDATE projects
		SET title = ?, description = ?, technologies = ?, github_url = ?,
			live_url = ?, image_url = ?, start_date = ?, end_date = ?, featured = ?
		WHERE id = ?
	`, p.Title, p.Description, encodeList(p.Technologies), p.GitHubURL,
		p.LiveURL, p.ImageURL, p.StartDate, p.EndDate, p.Featured, p.ID)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete removes a project and returns the filenames of its screenshots
// so the caller can clean up the backing files. The screenshot rows go
// with the project through the foreign key cascade.
func (s *ProjectStore) Delete(id uuid.UUID) ([]string, error) {
	shots, err := s.ListScreenshots(id)
	if err != nil {
		return nil, err
	}

	if _, err := s.db.Exec(`DELETE FROM projects WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("delete project: %w", err)
	}

	filenames := make([]string, 0, len(shots))
	for _, sc := range shots {
		filenames = append(filenames, sc.Filename)
	}
	return filenames, nil
}

// FindByID retrieves a project with its screenshots. Returns nil if not found.
func (s *ProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	row := s.db.QueryRow(`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by id: %w", err)
	}

	p.Screenshots, err = s.ListScreenshots(p.ID)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns all projects with their screenshots attached, in
// insertion order.
func (s *ProjectStore) List() ([]models.Project, error) {
	return listProjects(s.db)
}

func listProjects(q dbtx) ([]models.Project, error) {
	rows, err := q.Query(`SELECT ` + projectColumns + ` FROM projects`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var items []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	byProject, err := mapScreenshots(q)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if shots, ok := byProject[items[i].ID]; ok {
			items[i].Screenshots = shots
		}
	}
	return items, nil
}

// mapScreenshots loads every screenshot grouped by project ID.
func mapScreenshots(q dbtx) (map[uuid.UUID][]models.Screenshot, error) {
	rows, err := q.Query(`
		SELECT ` + screenshotColumns + `
		FROM project_screenshots
		ORDER BY uploaded_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list screenshots: %w", err)
	}
	defer rows.Close()

	byProject := make(map[uuid.UUID][]models.Screenshot)
	for rows.Next() {
		sc, err := scanScreenshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan screenshot: %w", err)
		}
		byProject[sc.ProjectID] = append(byProject[sc.ProjectID], *sc)
	}
	return byProject, rows.Err()
}

// AddScreenshot attaches a screenshot to an existing project.
func (s *ProjectStore) AddScreenshot(sc *models.Screenshot) error {
	return insertScreenshot(s.db, sc)
}

// DeleteScreenshot removes a screenshot row and returns it so the caller
// can clean up the backing file. Returns nil if not found.
func (s *ProjectStore) DeleteScreenshot(id uuid.UUID) (*models.Screenshot, error) {
	row := s.db.QueryRow(`SELECT `+screenshotColumns+` FROM project_screenshots WHERE id = ?`, id)
	sc, err := scanScreenshot(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find screenshot: %w", err)
	}

	if _, err := s.db.Exec(`DELETE FROM project_screenshots WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("delete screenshot: %w", err)
	}
	return sc, nil
}

// ListScreenshots returns a project's screenshots in upload order.
func (s *ProjectStore) ListScreenshots(projectID uuid.UUID) ([]models.Screenshot, error) {
	rows, err := s.db.Query(`
		SELECT `+screenshotColumns+`
		FROM project_screenshots
		WHERE project_id = ?
		ORDER BY uploaded_at
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list project screenshots: %w", err)
	}
	defer rows.Close()

	items := []models.Screenshot{}
	for rows.Next() {
		sc, err := scanScreenshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan screenshot: %w", err)
		}
		items = append(items, *sc)
	}
	return items, rows.Err()
}
