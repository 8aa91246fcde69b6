// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"math"
	"strconv"
	"time"

	"folio/internal/models"
)

// AnalyticsStore accumulates page view counters and visitor sessions and
// serves the aggregate summary for the admin dashboard.
type AnalyticsStore struct {
	db *sql.DB
}

// NewAnalyticsStore creates a new AnalyticsStore with the given database connection.
func NewAnalyticsStore(db *sql.DB) *AnalyticsStore {
	return &AnalyticsStore{db: db}
}

// RecordPageView bumps the per-route, daily and total counters and
// updates the visitor's session, all in one transaction so a failed
// write never leaves the counters out of step.
func (s *AnalyticsStore) RecordPageView(route, visitorID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin record page view: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO analytics_page_views (route, count) VALUES (?, 1)
		ON CONFLICT(route) DO UPDATE SET count = count + 1
	`, route); err != nil {
		return fmt.Errorf("record page view: %w", err)
	}

	today := time.Now().UTC().Format("2006-01-02")
	if _, err := tx.Exec(`
		INSERT INTO analytics_daily_views (date, count) VALUES (?, 1)
		ON CONFLICT(date) DO UPDATE SET count = count + 1
	`, today); err != nil {
		return fmt.Errorf("record daily view: %w", err)
	}

	if visitorID != "" {
		if err := recordVisitor(tx, route, visitorID); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(`
		UPDATE analytics_metadata
		SET value = CAST(value AS INTEGER) + 1
		WHERE key = 'total_views'
	`); err != nil {
		return fmt.Errorf("bump total views: %w", err)
	}

	return tx.Commit()
}

// recordVisitor tracks the visitor in the unique set and refreshes their
// session row. first_visit is written once; last_visit, the visit count
// and the visited route list move with every view.
func recordVisitor(q dbtx, route, visitorID string) error {
	if _, err := q.Exec(`
		INSERT OR IGNORE INTO analytics_unique_visitors (visitor_id) VALUES (?)
	`, visitorID); err != nil {
		return fmt.Errorf("record unique visitor: %w", err)
	}

	now := fmtTime(time.Now())

	var pagesRaw string
	err := q.QueryRow(`
		SELECT pages_visited FROM analytics_visitor_sessions WHERE visitor_id = ?
	`, visitorID).Scan(&pagesRaw)
	switch {
	case err == sql.ErrNoRows:
		_, err = q.Exec(`
			INSERT INTO analytics_visitor_sessions
				(visitor_id, first_visit, last_visit, total_visits, pages_visited)
			VALUES (?, ?, ?, 1, ?)
		`, visitorID, now, now, encodeList([]string{route}))
		if err != nil {
			return fmt.Errorf("create visitor session: %w", err)
		}
	case err != nil:
		return fmt.Errorf("load visitor session: %w", err)
	default:
		pages := decodeList(pagesRaw)
		seen := false
		for _, p := range pages {
			if p == route {
				seen = true
				break
			}
		}
		if !seen {
			pages = append(pages, route)
		}
		_, err = q.Exec(`
			UPDATE analytics_visitor_sessions
			SET last_visit = ?, total_visits = total_visits + 1, pages_visited = ?
			WHERE visitor_id = ?
		`, now, encodeList(pages), visitorID)
		if err != nil {
			return fmt.Errorf("update visitor session: %w", err)
		}
	}
	return nil
}

// RecordSectionView bumps a single section counter.
func (s *AnalyticsStore) RecordSectionView(section string) error {
	_, err := s.db.Exec(`
		INSERT INTO analytics_section_views (section, count) VALUES (?, 1)
		ON CONFLICT(section) DO UPDATE SET count = count + 1
	`, section)
	if err != nil {
		return fmt.Errorf("record section view: %w", err)
	}
	return nil
}

// Summary assembles the aggregate analytics snapshot: totals, the ten
// busiest pages and sections, the last thirty recorded days and their
// average.
func (s *AnalyticsStore) Summary() (*models.AnalyticsSummary, error) {
	sum := &models.AnalyticsSummary{
		TopPages:    []models.PageCount{},
		TopSections: []models.SectionCount{},
		DailyViews:  []models.DailyCount{},
	}

	var totalRaw string
	err := s.db.QueryRow(`SELECT value FROM analytics_metadata WHERE key = 'total_views'`).Scan(&totalRaw)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("total views: %w", err)
	}
	sum.TotalViews, _ = strconv.Atoi(totalRaw)

	if err := s.db.QueryRow(`SELECT COUNT(*) FROM analytics_unique_visitors`).Scan(&sum.UniqueVisitors); err != nil {
		return nil, fmt.Errorf("count unique visitors: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM analytics_visitor_sessions`).Scan(&sum.TotalSessions); err != nil {
		return nil, fmt.Errorf("count visitor sessions: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT route, count FROM analytics_page_views
		ORDER BY count DESC LIMIT 10
	`)
	if err != nil {
		return nil, fmt.Errorf("top pages: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var pc models.PageCount
		if err := rows.Scan(&pc.Route, &pc.Count); err != nil {
			return nil, fmt.Errorf("scan page count: %w", err)
		}
		sum.TopPages = append(sum.TopPages, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.Query(`
		SELECT section, count FROM analytics_section_views
		ORDER BY count DESC LIMIT 10
	`)
	if err != nil {
		return nil, fmt.Errorf("top sections: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var sc models.SectionCount
		if err := rows.Scan(&sc.Section, &sc.Count); err != nil {
			return nil, fmt.Errorf("scan section count: %w", err)
		}
		sum.TopSections = append(sum.TopSections, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.Query(`
		SELECT date, count FROM analytics_daily_views
		ORDER BY date DESC LIMIT 30
	`)
	if err != nil {
		return nil, fmt.Errorf("daily views: %w", err)
	}
	defer rows.Close()
	total := 0
	for rows.Next() {
		var dc models.DailyCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, fmt.Errorf("scan daily count: %w", err)
		}
		sum.DailyViews = append(sum.DailyViews, dc)
		total += dc.Count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(sum.DailyViews) > 0 {
		avg := float64(total) / float64(len(sum.DailyViews))
		sum.AvgDailyViews = math.Round(avg*100) / 100
	}

	var lastReset sql.NullString
	err = s.db.QueryRow(`SELECT value FROM analytics_metadata WHERE key = 'last_reset'`).Scan(&lastReset)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("last reset: %w", err)
	}
	sum.LastReset = parseTimePtr(lastReset)

	return sum, nil
}

// Reset clears every counter and visitor record and stamps the reset
// time, in one transaction.
func (s *AnalyticsStore) Reset() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin analytics reset: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{
		"analytics_page_views",
		"analytics_section_views",
		"analytics_daily_views",
		"analytics_unique_visitors",
		"analytics_visitor_sessions",
	} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}

	if _, err := tx.Exec(`
		UPDATE analytics_metadata SET value = '0' WHERE key = 'total_views'
	`); err != nil {
		return fmt.Errorf("reset total views: %w", err)
	}
	if _, err := tx.Exec(`
		INSERT INTO analytics_metadata (key, value) VALUES ('last_reset', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, fmtTime(time.Now())); err != nil {
		return fmt.Errorf("stamp reset time: %w", err)
	}

	return tx.Commit()
}
