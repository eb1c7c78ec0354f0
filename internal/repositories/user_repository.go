package repositories

import (
	"database/sql"

	intconfig "github.com/fortunegablin-rgb/PSC170/internal/config"
	"github.com/fortunegablin-rgb/PSC170/internal/domain/models"
)

// UserRepository wraps the users table used for admin/conductor login.
type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r UserRepository) GetByUsername(username string) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`SELECT id, username, password_hash, role FROM users WHERE username = ?`, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role)
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}
