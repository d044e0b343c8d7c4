package services

import (
	"clicktoride/internal/domain"
	"clicktoride/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AuthService verifies the operator credential. It is the only place that
// reads the stored password hash.
type AuthService struct {
	Admins repositories.AdminRepo
}

// Verify checks username/password against the stored admin. A missing admin
// and a wrong password both come back as a plain false so the login handler
// shows one generic message.
func (s AuthService) Verify(username, password string) (domain.Admin, bool) {
	admin, err := s.Admins.GetByUsername(username)
	if err != nil {
		return domain.Admin{}, false
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return domain.Admin{}, false
	}
	return admin, true
}
