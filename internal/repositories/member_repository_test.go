package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCreditBalanceRoundsToTwoDigits(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := MemberRepository{DB: db}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT balance FROM members").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(10.01))
	mock.ExpectExec("UPDATE members SET balance").
		WithArgs(10.11, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	oldBalance, newBalance, err := repo.CreditBalance(1, 0.10)
	if err != nil {
		t.Fatalf("credit error: %v", err)
	}
	if oldBalance != 10.01 || newBalance != 10.11 {
		t.Fatalf("balance mismatch: old=%v new=%v", oldBalance, newBalance)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteCascadeReportsMissingMember(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := MemberRepository{DB: db}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM members").
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	if err := repo.DeleteCascade(9); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestListScansOptionalContact(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := MemberRepository{DB: db}

	mock.ExpectQuery("SELECT id, name, contact, balance FROM members").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "contact", "balance"}).
			AddRow(1, "Alice", "0800", 20.00).
			AddRow(2, "Bob", nil, 0.00))

	members, err := repo.List()
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("len = %d, want 2", len(members))
	}
	if members[1].Contact != "" {
		t.Fatalf("NULL contact should scan to empty string, got %q", members[1].Contact)
	}
}
