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

// MessageStore handles contact message database operations.
type MessageStore struct {
	db *sql.DB
}

// NewMessageStore creates a new MessageStore with the given database connection.
func NewMessageStore(db *sql.DB) *MessageStore {
	return &MessageStore{db: db}
}

// messageColumns lists the columns selected in message queries.
const messageColumns = `id, name, email, subject, message, date, read`

// scanMessage scans a message row from the result set.
func scanMessage(scanner interface{ Scan(...any) error }) (*models.Message, error) {
	var (
		m    models.Message
		date string
	)
	err := scanner.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &date, &m.Read)
	if err != nil {
		return nil, err
	}
	m.Date = parseTime(date)
	return &m, nil
}

// Create stores a new contact message, stamping the received time when
// the caller did not provide one. New messages start unread.
func (s *MessageStore) Create(m *models.Message) error {
	return insertMessage(s.db, m)
}

func insertMessage(q dbtx, m *models.Message) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Date.IsZero() {
		m.Date = time.Now().UTC()
	}
	_, err := q.Exec(`
		INSERT INTO messages (id, name, email, subject, message, date, read)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.Name, m.Email, m.Subject, m.Body, fmtTime(m.Date), m.Read)
	if err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

// FindByID retrieves a message. Returns nil if not found.
func (s *MessageStore) FindByID(id uuid.UUID) (*models.Message, error) {
	row := s.db.QueryRow(`SELECT `+messageColumns+` FROM messages WHERE id = ?`, id)
	m, err := scanMessage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find message by id: %w", err)
	}
	return m, nil
}

// MarkRead flags a message as read. Marking an unknown ID is a no-op.
func (s *MessageStore) MarkRead(id uuid.UUID) error {
	_, err := s.db.Exec(`UPDATE messages SET read = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("mark message read: %w", err)
	}
	return nil
}

// Delete removes the message. Deleting an unknown ID is a no-op.
func (s *MessageStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM messages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	return nil
}

// List returns all messages, newest first.
func (s *MessageStore) List() ([]models.Message, error) {
	return listMessages(s.db)
}

func listMessages(q dbtx) ([]models.Message, error) {
	rows, err := q.Query(`SELECT ` + messageColumns + ` FROM messages ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var items []models.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}
