package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/fortunegablin-rgb/PSC170/internal/domain"
	"github.com/fortunegablin-rgb/PSC170/internal/repositories"
	"github.com/fortunegablin-rgb/PSC170/internal/utils"
)

var testNow = time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)

func newTripService(t *testing.T) (TripService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := TripService{
		TripRepo: repositories.TripRepository{DB: db},
		Guard:    NewDeductionGuardWithClock(DeductionCooldown, func() time.Time { return testNow }),
		Now:      func() time.Time { return testNow },
	}
	return svc, mock, func() { db.Close() }
}

func expectDeduction(mock sqlmock.Sqlmock, name string, balance, fare, newBalance float64) {
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT name, balance FROM members").
		WillReturnRows(sqlmock.NewRows([]string{"name", "balance"}).AddRow(name, balance))
	mock.ExpectExec("UPDATE members SET balance").
		WithArgs(fare, int64(1), fare).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO trips").
		WithArgs(int64(1), fare, utils.FormatISO(testNow), "C-1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
}

func TestDeductOneWayFare(t *testing.T) {
	svc, mock, done := newTripService(t)
	defer done()

	expectDeduction(mock, "Alice", 20.00, FareOneWay, 13.72)

	res, err := svc.Deduct(1, "C-1", "one-way")
	if err != nil {
		t.Fatalf("deduct error: %v", err)
	}
	if res.MemberName != "Alice" || res.Deducted != FareOneWay {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.OldBalance != 20.00 || res.NewBalance != 13.72 {
		t.Fatalf("balance mismatch: old=%v new=%v", res.OldBalance, res.NewBalance)
	}
	// 13.72 is above the threshold, no warning.
	if res.Warning != "" {
		t.Fatalf("unexpected warning: %q", res.Warning)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeductTwoWayFareWithLowBalanceWarning(t *testing.T) {
	svc, mock, done := newTripService(t)
	defer done()

	expectDeduction(mock, "Alice", 13.72, FareTwoWay, 1.16)

	res, err := svc.Deduct(1, "C-1", "two-way")
	if err != nil {
		t.Fatalf("deduct error: %v", err)
	}
	if res.NewBalance != 1.16 {
		t.Fatalf("new balance = %v, want 1.16", res.NewBalance)
	}
	if res.Warning != LowBalanceWarning {
		t.Fatalf("expected low balance warning, got %q", res.Warning)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeductUnknownTripTypeFallsBackToOneWay(t *testing.T) {
	if got := ResolveFare("round-trip"); got != FareOneWay {
		t.Fatalf("ResolveFare(round-trip) = %v, want one-way fare", got)
	}
	if got := ResolveFare(""); got != FareOneWay {
		t.Fatalf("ResolveFare(empty) = %v, want one-way fare", got)
	}
	if got := ResolveFare("two-way"); got != FareTwoWay {
		t.Fatalf("ResolveFare(two-way) = %v, want two-way fare", got)
	}
}

func TestDeductInsufficientBalance(t *testing.T) {
	svc, mock, done := newTripService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT name, balance FROM members").
		WillReturnRows(sqlmock.NewRows([]string{"name", "balance"}).AddRow("Alice", 5.00))
	mock.ExpectExec("UPDATE members SET balance").
		WithArgs(FareOneWay, int64(1), FareOneWay).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := svc.Deduct(1, "C-1", "one-way")
	if !domain.IsInsufficientBalance(err) {
		t.Fatalf("expected insufficient balance error, got %v", err)
	}

	// A failed attempt must not arm the duplicate guard.
	if err := svc.Guard.Check(1, FareOneWay, "C-1"); err != nil {
		t.Fatalf("failed attempt armed the guard: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeductMemberNotFound(t *testing.T) {
	svc, mock, done := newTripService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT name, balance FROM members").
		WillReturnRows(sqlmock.NewRows([]string{"name", "balance"}))
	mock.ExpectRollback()

	_, err := svc.Deduct(1, "C-1", "one-way")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestDeductDuplicateSuppressed(t *testing.T) {
	svc, mock, done := newTripService(t)
	defer done()

	expectDeduction(mock, "Alice", 20.00, FareOneWay, 13.72)

	if _, err := svc.Deduct(1, "C-1", "one-way"); err != nil {
		t.Fatalf("first deduct error: %v", err)
	}

	// Identical request inside the window never reaches the store.
	_, err := svc.Deduct(1, "C-1", "one-way")
	if !domain.IsDuplicateDeduction(err) {
		t.Fatalf("expected duplicate deduction error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// A one-way deduction followed immediately by a two-way for the same member
// and conductor is a genuinely new trip: the fares differ, so the guard lets
// it through and the balance lands at 1.16 with a warning.
func TestDeductDifferentFareImmediatelyAfterIsNotDuplicate(t *testing.T) {
	svc, mock, done := newTripService(t)
	defer done()

	expectDeduction(mock, "Alice", 20.00, FareOneWay, 13.72)
	expectDeduction(mock, "Alice", 13.72, FareTwoWay, 1.16)

	first, err := svc.Deduct(1, "C-1", "one-way")
	if err != nil {
		t.Fatalf("first deduct error: %v", err)
	}
	if first.Warning != "" {
		t.Fatalf("first deduction should carry no warning, got %q", first.Warning)
	}

	second, err := svc.Deduct(1, "C-1", "two-way")
	if err != nil {
		t.Fatalf("second deduct error: %v", err)
	}
	if second.NewBalance != 1.16 {
		t.Fatalf("second new balance = %v, want 1.16", second.NewBalance)
	}
	if second.Warning != LowBalanceWarning {
		t.Fatalf("second deduction should warn, got %q", second.Warning)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeductMissingConductorRecordedAsUnknown(t *testing.T) {
	svc, mock, done := newTripService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT name, balance FROM members").
		WillReturnRows(sqlmock.NewRows([]string{"name", "balance"}).AddRow("Alice", 20.00))
	mock.ExpectExec("UPDATE members SET balance").
		WithArgs(FareOneWay, int64(1), FareOneWay).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO trips").
		WithArgs(int64(1), FareOneWay, utils.FormatISO(testNow), "Unknown").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if _, err := svc.Deduct(1, "", "one-way"); err != nil {
		t.Fatalf("deduct error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
