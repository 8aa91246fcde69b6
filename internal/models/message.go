// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is a contact-form submission. Only the public contact endpoint
// creates messages; the admin inbox toggles the read flag and deletes them.
type Message struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Subject string    `json:"subject"`
	Body    string    `json:"message"`
	Date    time.Time `json:"date"`
	Read    bool      `json:"read"`
}
