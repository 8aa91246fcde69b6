// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// PageCount is a route's accumulated page-view counter.
type PageCount struct {
	Route string `json:"route"`
	Count int    `json:"count"`
}

// SectionCount is a logical section's accumulated view counter.
type SectionCount struct {
	Section string `json:"section"`
	Count   int    `json:"count"`
}

// DailyCount is the number of page views recorded on one calendar date
// (YYYY-MM-DD).
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// VisitorSession aggregates one visitor's history: first and last visit,
// total visit count, and the distinct pages they have seen.
type VisitorSession struct {
	VisitorID    string    `json:"visitor_id"`
	FirstVisit   time.Time `json:"first_visit"`
	LastVisit    time.Time `json:"last_visit"`
	TotalVisits  int       `json:"total_visits"`
	PagesVisited []string  `json:"pages_visited"`
}

// AnalyticsSummary is the aggregate view served to the admin dashboard:
// overall totals, top-10 rankings, and the 30 most recent daily counters.
type AnalyticsSummary struct {
	TotalViews     int            `json:"total_views"`
	UniqueVisitors int            `json:"unique_visitors"`
	TopPages       []PageCount    `json:"top_pages"`
	TopSections    []SectionCount `json:"top_sections"`
	DailyViews     []DailyCount   `json:"daily_views"`
	AvgDailyViews  float64        `json:"avg_daily_views"`
	TotalSessions  int            `json:"visitor_sessions"`
	LastReset      *time.Time     `json:"last_reset,omitempty"`
}
