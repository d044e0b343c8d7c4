package repositories

import (
	"database/sql"
	"errors"

	"clicktoride/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type AdminRepo struct {
	DB *sql.DB
}

// GetByUsername fetches the admin credential row.
func (r AdminRepo) GetByUsername(username string) (domain.Admin, error) {
	var a domain.Admin
	err := r.DB.QueryRow(`
		SELECT id, username, password_hash FROM admins WHERE username = ? LIMIT 1
	`, username).Scan(&a.ID, &a.Username, &a.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Admin{}, domain.NotFoundError{Resource: "admin", Err: err}
		}
		return domain.Admin{}, domain.InternalError{Err: err}
	}
	return a, nil
}

// EnsureDefault seeds the default operator account when no admins exist yet.
// Runs on every startup; a populated table makes it a no-op.
func (r AdminRepo) EnsureDefault(username, password string) error {
	var n int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM admins`).Scan(&n); err != nil {
		return domain.InternalError{Err: err}
	}
	if n > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if _, err := r.DB.Exec(`
		INSERT INTO admins (username, password_hash) VALUES (?, ?)
	`, username, string(hash)); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}
