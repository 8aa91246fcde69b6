// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"folio/internal/models"
	"folio/internal/store"
)

// --- Analytics ---

// AnalyticsSummary returns the aggregated visitor statistics.
func (a *Admin) AnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := a.analyticsStore.Summary()
	if err != nil {
		slog.Error("analytics summary failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// AnalyticsReset clears all collected analytics and stamps the reset time.
func (a *Admin) AnalyticsReset(w http.ResponseWriter, r *http.Request) {
	if err := a.analyticsStore.Reset(); err != nil {
		slog.Error("analytics reset failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	slog.Info("analytics reset")
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// --- Database inspector ---

// DatabaseTables lists the user tables the inspector can browse.
func (a *Admin) DatabaseTables(w http.ResponseWriter, r *http.Request) {
	tables, err := a.inspectorStore.ListTables()
	if err != nil {
		slog.Error("list tables failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tables": tables})
}

// DatabaseTable returns one page of a table's rows together with its
// schema and total row count. Page size and ordering come from the
// limit, offset and order_by query parameters.
func (a *Admin) DatabaseTable(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "name")

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	orderBy := strings.TrimSpace(r.URL.Query().Get("order_by"))
	if limit < 1 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}
	if offset < 0 {
		offset = 0
	}

	schema, err := a.inspectorStore.TableSchema(table)
	if err != nil {
		if errors.Is(err, store.ErrInvalidQuery) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("table schema failed", "error", err, "table", table)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if len(schema) == 0 {
		writeError(w, http.StatusNotFound, "table not found")
		return
	}

	total, err := a.inspectorStore.RowCount(table)
	if err != nil {
		slog.Error("count rows failed", "error", err, "table", table)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	page, err := a.inspectorStore.TablePage(table, orderBy, limit, offset)
	if err != nil {
		if errors.Is(err, store.ErrInvalidQuery) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("table page failed", "error", err, "table", table)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"table":      table,
		"columns":    schema,
		"rows":       page.Rows,
		"row_count":  page.RowCount,
		"total_rows": total,
		"limit":      limit,
		"offset":     offset,
	})
}

// DatabaseQuery runs an ad-hoc read-only query against the database.
func (a *Admin) DatabaseQuery(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := a.inspectorStore.ExecuteReadOnly(req.Query)
	if err != nil {
		if errors.Is(err, store.ErrInvalidQuery) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("execute query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// --- Import / export ---

// Export returns the whole portfolio as a single JSON document, offered
// as a download.
func (a *Admin) Export(w http.ResponseWriter, r *http.Request) {
	doc, err := a.transferStore.Export()
	if err != nil {
		slog.Error("export failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="portfolio-export.json"`)
	writeJSON(w, http.StatusOK, doc)
}

// Import replaces the portfolio content with an uploaded document.
// Everything is swapped in one transaction, so a bad document leaves the
// current content untouched.
func (a *Admin) Import(w http.ResponseWriter, r *http.Request) {
	var doc models.Document
	if err := decodeJSON(w, r, &doc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.transferStore.Import(&doc); err != nil {
		slog.Error("import failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	slog.Info("portfolio imported")
	writeJSON(w, http.StatusOK, map[string]string{"status": "imported"})
}
