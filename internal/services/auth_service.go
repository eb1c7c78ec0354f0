package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/fortunegablin-rgb/PSC170/internal/domain"
	"github.com/fortunegablin-rgb/PSC170/internal/domain/models"
	"github.com/fortunegablin-rgb/PSC170/internal/repositories"
)

// AuthService signs in admin/conductor accounts and issues JWTs.
type AuthService struct {
	UserRepo  repositories.UserRepository
	JWTSecret []byte
}

// Login verifies the credentials and returns a signed HS256 token with a
// 24-hour expiry.
func (s AuthService) Login(username, password string) (string, models.User, error) {
	user, err := s.UserRepo.GetByUsername(username)
	if errors.Is(err, sql.ErrNoRows) {
		return "", models.User{}, domain.UnauthorizedError{Msg: "Invalid username or password"}
	}
	if err != nil {
		return "", models.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", models.User{}, domain.UnauthorizedError{Msg: "Invalid username or password"}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})

	signed, err := token.SignedString(s.JWTSecret)
	if err != nil {
		return "", models.User{}, err
	}
	return signed, user, nil
}
