// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// InspectorStore gives the admin database browser read-only access to
// the underlying tables. Table and column names are interpolated into
// SQL, so every identifier is validated before use and ad-hoc queries
// are screened against mutating keywords.
type InspectorStore struct {
	db *sql.DB
}

// NewInspectorStore creates a new InspectorStore with the given database connection.
func NewInspectorStore(db *sql.DB) *InspectorStore {
	return &InspectorStore{db: db}
}

// ErrInvalidQuery marks rejected identifiers and queries so handlers can
// report them as client errors.
var ErrInvalidQuery = errors.New("invalid query")

// identPattern accepts table and column names: letters, digits and
// underscores only.
var identPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// forbiddenPattern matches mutating keywords as whole words, so a column
// named created_at does not trip the CREATE check.
var forbiddenPattern = regexp.MustCompile(
	`\b(DROP|DELETE|UPDATE|INSERT|ALTER|CREATE|TRUNCATE|EXECUTE|EXEC)\b`)

// limitPattern detects an existing LIMIT clause.
var limitPattern = regexp.MustCompile(`\bLIMIT\b`)

// defaultQueryLimit caps ad-hoc queries that carry no LIMIT of their own.
const defaultQueryLimit = 1000

// maxPageSize caps table browsing page sizes.
const maxPageSize = 500

// Column describes one column of a browsed table.
type Column struct {
	CID        int     `json:"cid"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	NotNull    bool    `json:"notnull"`
	Default    *string `json:"default"`
	PrimaryKey bool    `json:"pk"`
}

// QueryResult holds the decoded output of a read-only query or a table
// page.
type QueryResult struct {
	Columns  []string         `json:"columns"`
	Rows     []map[string]any `json:"rows"`
	RowCount int              `json:"row_count"`
}

func validIdent(name string) error {
	if !identPattern.MatchString(name) {
		return fmt.Errorf("%w: bad identifier %q", ErrInvalidQuery, name)
	}
	return nil
}

// ListTables returns the user tables alphabetically, excluding SQLite
// internals and the migration bookkeeping table.
func (s *InspectorStore) ListTables() ([]string, error) {
	rows, err := s.db.Query(`
		SELECT name FROM sqlite_master
		WHERE type = 'table'
		  AND name NOT LIKE 'sqlite_%'
		  AND name != 'goose_db_version'
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	tables := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// TableSchema returns the column definitions of one table.
func (s *InspectorStore) TableSchema(table string) ([]Column, error) {
	if err := validIdent(table); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT cid, name, type, "notnull", dflt_value, pk
		FROM pragma_table_info(?)
	`, table)
	if err != nil {
		return nil, fmt.Errorf("table schema: %w", err)
	}
	defer rows.Close()

	cols := []Column{}
	for rows.Next() {
		var (
			c       Column
			notNull int
			pk      int
			dflt    sql.NullString
		)
		if err := rows.Scan(&c.CID, &c.Name, &c.Type, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("scan column info: %w", err)
		}
		c.NotNull = notNull != 0
		c.PrimaryKey = pk != 0
		if dflt.Valid {
			c.Default = &dflt.String
		}
		cols = append(cols, c)
	}
	return cols, rows.Err()
}

// RowCount returns the number of rows in a table.
func (s *InspectorStore) RowCount(table string) (int, error) {
	if err := validIdent(table); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM "` + table + `"`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count rows: %w", err)
	}
	return count, nil
}

// TablePage returns one page of a table's rows as column-keyed maps.
// orderBy is an optional column name; limit is clamped to 1..500.
func (s *InspectorStore) TablePage(table, orderBy string, limit, offset int) (*QueryResult, error) {
	if err := validIdent(table); err != nil {
		return nil, err
	}
	if limit < 1 {
		limit = 50
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT * FROM "` + table + `"`
	if orderBy != "" {
		if err := validIdent(orderBy); err != nil {
			return nil, err
		}
		query += ` ORDER BY "` + orderBy + `"`
	}
	query += ` LIMIT ? OFFSET ?`

	rows, err := s.db.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("table page: %w", err)
	}
	defer rows.Close()

	return collectRows(rows)
}

// ExecuteReadOnly runs an ad-hoc query after checking that it is a
// single SELECT with no mutating keyword. Queries without a LIMIT get
// one appended.
func (s *InspectorStore) ExecuteReadOnly(query string) (*QueryResult, error) {
	q := strings.TrimSpace(query)
	q = strings.TrimSuffix(q, ";")
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, fmt.Errorf("%w: empty query", ErrInvalidQuery)
	}

	upper := strings.ToUpper(q)
	if !strings.HasPrefix(upper, "SELECT") {
		return nil, fmt.Errorf("%w: only SELECT statements are allowed", ErrInvalidQuery)
	}
	if kw := forbiddenPattern.FindString(upper); kw != "" {
		return nil, fmt.Errorf("%w: %s is not allowed", ErrInvalidQuery, kw)
	}
	if !limitPattern.MatchString(upper) {
		q = fmt.Sprintf("%s LIMIT %d", q, defaultQueryLimit)
	}

	rows, err := s.db.Query(q)
	if err != nil {
		return nil, fmt.Errorf("execute query: %w", err)
	}
	defer rows.Close()

	return collectRows(rows)
}

// collectRows decodes *sql.Rows into column-keyed maps. Byte slices
// become strings; integers, floats, booleans and NULL pass through
// unchanged.
func collectRows(rows *sql.Rows) (*QueryResult, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("result columns: %w", err)
	}

	res := &QueryResult{Columns: cols, Rows: []map[string]any{}}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan result row: %w", err)
		}

		row := make(map[string]any, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		res.Rows = append(res.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	res.RowCount = len(res.Rows)
	return res, nil
}
