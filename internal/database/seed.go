package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Default admin credentials used when the environment provides none.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin12345"
)

// Seed populates the database with the rows the application expects to
// exist: the singleton personal info record, the total_views counter and
// a first admin account. Each part is skipped when already present, so
// running Seed on every start is safe.
func Seed(db *sql.DB, adminUsername, adminPassword string) error {
	if err := seedPersonalInfo(db); err != nil {
		return err
	}
	if err := seedAnalyticsMetadata(db); err != nil {
		return err
	}
	return seedAdminUser(db, adminUsername, adminPassword)
}

func seedPersonalInfo(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM personal_info").Scan(&count); err != nil {
		return fmt.Errorf("seed check personal info: %w", err)
	}
	if count > 0 {
		return nil
	}

	_, err := db.Exec(`
		INSERT INTO personal_info (id, name, title, email, phone, location, bio,
			github, linkedin, twitter, profile_image, cv_file)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)
	`,
		"Your Name",
		"Full-Stack Developer",
		"your.email@example.com",
		"+1 (555) 000-0000",
		"City, Country",
		"A passionate developer creating innovative solutions.",
		"https://github.com/yourusername",
		"https://linkedin.com/in/yourusername",
		"https://twitter.com/yourusername",
		"/static/images/profile.jpg",
	)
	if err != nil {
		return fmt.Errorf("seed personal info: %w", err)
	}

	slog.Info("seeded placeholder personal info")
	return nil
}

func seedAnalyticsMetadata(db *sql.DB) error {
	_, err := db.Exec(`INSERT OR IGNORE INTO analytics_metadata (key, value) VALUES ('total_views', '0')`)
	if err != nil {
		return fmt.Errorf("seed analytics metadata: %w", err)
	}
	return nil
}

func seedAdminUser(db *sql.DB, username, password string) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM admin_users").Scan(&count); err != nil {
		return fmt.Errorf("seed check admin users: %w", err)
	}
	if count > 0 {
		return nil
	}

	if username == "" {
		username = DefaultAdminUsername
	}
	if password == "" {
		password = DefaultAdminPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO admin_users (id, username, password_hash, created_at, is_active)
		VALUES (?, ?, ?, ?, 1)
	`, uuid.New().String(), username, string(hash), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	if password == DefaultAdminPassword {
		slog.Warn("seeded admin user with the default password, change it after first login",
			"username", username,
		)
	} else {
		slog.Info("seeded admin user", "username", username)
	}
	return nil
}
