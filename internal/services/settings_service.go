package services

import (
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/fortunegablin-rgb/PSC170/internal/domain"
	"github.com/fortunegablin-rgb/PSC170/internal/repositories"
	"github.com/fortunegablin-rgb/PSC170/internal/utils"
)

const defaultAdminPassword = "admin123"

// SettingsService manages the admin password stored in the settings table.
// Passwords are stored as bcrypt hashes; endpoint behavior is unchanged from
// the plaintext original (403 on mismatch, change takes effect immediately).
type SettingsService struct {
	SettingsRepo repositories.SettingsRepository
	RequestID    string
}

// ChangeAdminPassword replaces the admin password after verifying the
// current one. The new hash governs all subsequent checks.
func (s SettingsService) ChangeAdminPassword(currentPassword, newPassword string) error {
	if len(newPassword) < 4 {
		return domain.ValidationError{Field: "new_password", Msg: "must be at least 4 characters"}
	}

	if err := verifyAdminPassword(s.SettingsRepo, currentPassword); err != nil {
		if domain.IsUnauthorized(err) {
			return domain.UnauthorizedError{Msg: "Incorrect current password"}
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.SettingsRepo.Set("admin_password", string(hash)); err != nil {
		return err
	}

	utils.LogEvent(s.RequestID, "settings", "password", "admin password updated")
	return nil
}

// verifyAdminPassword checks the supplied password against the stored hash.
// A missing settings row falls back to the seeded default, mirroring the
// reference system's behavior on a fresh database.
func verifyAdminPassword(repo repositories.SettingsRepository, supplied string) error {
	stored, err := repo.Get("admin_password")
	if errors.Is(err, sql.ErrNoRows) {
		if supplied == defaultAdminPassword {
			return nil
		}
		return domain.UnauthorizedError{Msg: "Invalid admin password"}
	}
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) != nil {
		return domain.UnauthorizedError{Msg: "Invalid admin password"}
	}
	return nil
}
