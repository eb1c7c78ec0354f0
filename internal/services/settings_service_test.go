package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"github.com/fortunegablin-rgb/PSC170/internal/domain"
	"github.com/fortunegablin-rgb/PSC170/internal/repositories"
)

func newSettingsService(t *testing.T) (SettingsService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := SettingsService{SettingsRepo: repositories.SettingsRepository{DB: db}}
	return svc, mock, func() { db.Close() }
}

func adminHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	return string(hash)
}

func TestChangeAdminPassword(t *testing.T) {
	svc, mock, done := newSettingsService(t)
	defer done()

	mock.ExpectQuery("SELECT value FROM settings").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(adminHash(t, "admin123")))
	mock.ExpectExec("INSERT INTO settings").
		WithArgs("admin_password", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := svc.ChangeAdminPassword("admin123", "newpass"); err != nil {
		t.Fatalf("change password error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestChangeAdminPasswordRejectsShortPassword(t *testing.T) {
	svc, _, done := newSettingsService(t)
	defer done()

	if err := svc.ChangeAdminPassword("admin123", "abc"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestChangeAdminPasswordRejectsWrongCurrent(t *testing.T) {
	svc, mock, done := newSettingsService(t)
	defer done()

	mock.ExpectQuery("SELECT value FROM settings").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(adminHash(t, "admin123")))

	err := svc.ChangeAdminPassword("wrong", "newpass")
	if !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

// Once the stored hash changes, the old password must stop working and the
// new one must be accepted immediately.
func TestVerifyAdminPasswordFollowsStoredHash(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := repositories.SettingsRepository{DB: db}

	newHash := adminHash(t, "newpass")

	mock.ExpectQuery("SELECT value FROM settings").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(newHash))
	if err := verifyAdminPassword(repo, "admin123"); !domain.IsUnauthorized(err) {
		t.Fatalf("old password should be rejected after change, got %v", err)
	}

	mock.ExpectQuery("SELECT value FROM settings").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(newHash))
	if err := verifyAdminPassword(repo, "newpass"); err != nil {
		t.Fatalf("new password should be accepted, got %v", err)
	}
}

func TestVerifyAdminPasswordFallsBackToDefaultWhenUnseeded(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := repositories.SettingsRepository{DB: db}

	mock.ExpectQuery("SELECT value FROM settings").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))
	if err := verifyAdminPassword(repo, "admin123"); err != nil {
		t.Fatalf("default password should pass on empty settings, got %v", err)
	}

	mock.ExpectQuery("SELECT value FROM settings").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))
	if err := verifyAdminPassword(repo, "other"); !domain.IsUnauthorized(err) {
		t.Fatalf("non-default password should fail on empty settings, got %v", err)
	}
}
