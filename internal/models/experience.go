// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "github.com/google/uuid"

// WorkExperience is one employment record. The three list fields are stored
// as JSON arrays in the database and always decode to non-nil slices.
// Date fields are free text ("2021-03", "Jan 2021") and double as sort keys.
type WorkExperience struct {
	ID               uuid.UUID `json:"id"`
	JobTitle         string    `json:"job_title"`
	Company          string    `json:"company"`
	Location         string    `json:"location"`
	StartDate        string    `json:"start_date"`
	EndDate          string    `json:"end_date"`
	Current          bool      `json:"current"`
	Description      string    `json:"description"`
	Responsibilities []string  `json:"responsibilities"`
	Achievements     []string  `json:"achievements"`
	Technologies     []string  `json:"technologies"`
}
