package models

import "github.com/google/uuid"

// Testimonial is a client or colleague quote. Featured testimonials are
// surfaced on the home page.
type Testimonial struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	Company  string    `json:"company"`
	Content  string    `json:"content"`
	Rating   int       `json:"rating"`
	ImageURL string    `json:"image_url"`
	Date     string    `json:"date"`
	Featured bool      `json:"featured"`
}
