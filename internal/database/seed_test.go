package database

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestSeedIdempotent(t *testing.T) {
	db := testConnect(t)

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	// Seed creates data only when tables are empty. Call it twice to
	// verify idempotency.
	if err := Seed(db, "", ""); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := Seed(db, "", ""); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	// Verify the singleton personal info row exists exactly once.
	var infoCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM personal_info").Scan(&infoCount); err != nil {
		t.Fatalf("count personal info: %v", err)
	}
	if infoCount != 1 {
		t.Errorf("expected 1 personal info row, got %d", infoCount)
	}

	// Verify exactly one admin user exists.
	var userCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM admin_users WHERE username = ?", DefaultAdminUsername).Scan(&userCount); err != nil {
		t.Fatalf("count admin users: %v", err)
	}
	if userCount != 1 {
		t.Errorf("expected 1 admin user, got %d", userCount)
	}

	// Verify the total views counter starts at zero.
	var totalViews string
	if err := db.QueryRow("SELECT value FROM analytics_metadata WHERE key = 'total_views'").Scan(&totalViews); err != nil {
		t.Fatalf("total views: %v", err)
	}
	if totalViews != "0" {
		t.Errorf("total views: got %q, want %q", totalViews, "0")
	}
}

func TestSeedCustomAdminCredentials(t *testing.T) {
	db := testConnect(t)

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if err := Seed(db, "owner", "s3cret-pass"); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	var hash string
	if err := db.QueryRow("SELECT password_hash FROM admin_users WHERE username = 'owner'").Scan(&hash); err != nil {
		t.Fatalf("select admin: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret-pass")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

func TestSeedPreservesEdits(t *testing.T) {
	db := testConnect(t)

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if err := Seed(db, "", ""); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	if _, err := db.Exec("UPDATE personal_info SET name = 'Ada Lovelace' WHERE id = 1"); err != nil {
		t.Fatalf("update: %v", err)
	}

	// A second Seed must not overwrite edited data.
	if err := Seed(db, "", ""); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	var name string
	if err := db.QueryRow("SELECT name FROM personal_info WHERE id = 1").Scan(&name); err != nil {
		t.Fatalf("select name: %v", err)
	}
	if name != "Ada Lovelace" {
		t.Errorf("name: got %q, want %q", name, "Ada Lovelace")
	}
}
