// store_test.go provides a shared test database helper for all store
// tests. Each test gets a fresh migrated and seeded SQLite file under
// its temporary directory, so no external services are needed.
package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	"folio/internal/database"
)

// testDB opens a throwaway database, runs migrations and seeds the
// baseline rows. A cleanup function closes the connection when the test
// finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Connect(filepath.Join(t.TempDir(), "folio.db"))
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if err := database.Seed(db, "", ""); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	return db
}
