package models

import "github.com/google/uuid"

// Skill is one entry in the skills grid. Level is a 0-100 proficiency
// value; the range is expected but not enforced by the store.
type Skill struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Level       int       `json:"level"`
	Category    string    `json:"category"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
}
