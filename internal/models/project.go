// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is a portfolio entry. A project owns its screenshots: they are
// created and deleted with it and are never shared between projects.
type Project struct {
	ID           uuid.UUID    `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Technologies []string     `json:"technologies"`
	GitHubURL    string       `json:"github_url"`
	LiveURL      string       `json:"live_url"`
	ImageURL     string       `json:"image_url"`
	StartDate    string       `json:"start_date"`
	EndDate      string       `json:"end_date"`
	Featured     bool         `json:"featured"`
	Screenshots  []Screenshot `json:"screenshots"`
}

// Screenshot is an uploaded image attached to a project. The row stores
// metadata only; the file itself lives in the uploads directory.
type Screenshot struct {
	ID         uuid.UUID `json:"id"`
	ProjectID  uuid.UUID `json:"project_id"`
	Filename   string    `json:"filename"`
	Caption    string    `json:"caption"`
	UploadedAt time.Time `json:"uploaded_at"`
}
