// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access methods for all portfolio
// entities. Each store struct wraps a *sql.DB and exposes typed query
// methods.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// ErrConflict is returned when a write violates a uniqueness constraint,
// such as a duplicate admin username or article slug.
var ErrConflict = errors.New("conflict")

// dbtx is the subset of *sql.DB and *sql.Tx the shared query helpers
// accept, so single writes and transactional bulk imports run through
// one code path.
type dbtx interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// isConstraint reports whether err is a SQLite constraint violation.
// The driver has no typed error for this, so the message is matched.
func isConstraint(err error) bool {
	return err != nil && strings.Contains(err.Error(), "constraint failed")
}

// encodeList marshals a string slice for storage in a TEXT column.
func encodeList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	b, _ := json.Marshal(items)
	return string(b)
}

// decodeList unmarshals a JSON array column into a string slice.
// The result is never nil; malformed data decodes as empty.
func decodeList(raw string) []string {
	var items []string
	if raw != "" {
		_ = json.Unmarshal([]byte(raw), &items)
	}
	if items == nil {
		items = []string{}
	}
	return items
}

// fmtTime renders a timestamp for storage. Timestamps are RFC 3339 UTC.
func fmtTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTime reads a stored RFC 3339 timestamp. Malformed or empty input
// yields the zero time.
func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

// parseTimePtr converts a nullable timestamp column.
func parseTimePtr(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t := parseTime(s.String)
	return &t
}
