package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"folio/internal/models"
)

// UserStore handles admin account database operations.
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a new UserStore with the given database connection.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// userColumns lists the columns selected in admin user queries.
const userColumns = `id, username, password_hash, created_at, last_login, is_active`

// scanUser scans an admin user row from the result set.
func scanUser(scanner interface{ Scan(...any) error }) (*models.AdminUser, error) {
	var (
		u         models.AdminUser
		createdAt string
		lastLogin sql.NullString
	)
	err := scanner.Scan(&u.ID, &u.Username, &u.PasswordHash, &createdAt, &lastLogin, &u.Active)
	if err != nil {
		return nil, err
	}
	u.CreatedAt = parseTime(createdAt)
	u.LastLogin = parseTimePtr(lastLogin)
	return &u, nil
}

// FindByUsername retrieves an admin account by username. Returns nil if
// not found.
func (s *UserStore) FindByUsername(username string) (*models.AdminUser, error) {
	row := s.db.QueryRow(`SELECT `+userColumns+` FROM admin_users WHERE username = ?`, username)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return u, nil
}

// FindByID retrieves an admin account by its UUID. Returns nil if not found.
func (s *UserStore) FindByID(id uuid.UUID) (*models.AdminUser, error) {
	row := s.db.QueryRow(`SELECT `+userColumns+` FROM admin_users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

// Create inserts a new admin account with a bcrypt-hashed password.
// A taken username surfaces as ErrConflict.
func (s *UserStore) Create(username, password string) (*models.AdminUser, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &models.AdminUser{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
		Active:       true,
	}
	_, err = s.db.Exec(`
		INSERT INTO admin_users (id, username, password_hash, created_at, is_active)
		VALUES (?, ?, ?, ?, 1)
	`, u.ID, u.Username, u.PasswordHash, fmtTime(u.CreatedAt))
	if isConstraint(err) {
		return nil, fmt.Errorf("create user: %w", ErrConflict)
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Authenticate verifies the password for an active account and stamps
// last_login on success. Returns nil without error when the account is
// missing, inactive or the password does not match.
func (s *UserStore) Authenticate(username, password string) (*models.AdminUser, error) {
	u, err := s.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.Active {
		return nil, nil
	}
	if !s.CheckPassword(u, password) {
		return nil, nil
	}

	now := time.Now().UTC()
	if _, err := s.db.Exec(`UPDATE admin_users SET last_login = ? WHERE id = ?`, fmtTime(now), u.ID); err != nil {
		return nil, fmt.Errorf("stamp last login: %w", err)
	}
	u.LastLogin = &now
	return u, nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (s *UserStore) CheckPassword(u *models.AdminUser, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// UpdateCredentials changes an account's username and password together.
// A username taken by another account surfaces as ErrConflict.
func (s *UserStore) UpdateCredentials(id uuid.UUID, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.db.Exec(`
		UPDATE admin_users SET username = ?, password_hash = ? WHERE id = ?
	`, username, string(hash), id)
	if isConstraint(err) {
		return fmt.Errorf("update credentials: %w", ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("update credentials: %w", err)
	}
	return nil
}

// Count returns the number of admin accounts.
func (s *UserStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM admin_users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}
