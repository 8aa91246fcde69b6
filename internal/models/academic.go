package models

import "github.com/google/uuid"

// AcademicEntry is one education record (degree or course). Entries are
// listed newest first using the free-text year as the sort key.
type AcademicEntry struct {
	ID          uuid.UUID `json:"id"`
	Degree      string    `json:"degree"`
	Institution string    `json:"institution"`
	Year        string    `json:"year"`
	Description string    `json:"description"`
}
