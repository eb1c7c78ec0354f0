package repositories

import (
	"database/sql"
	"time"

	intconfig "github.com/fortunegablin-rgb/PSC170/internal/config"
	"github.com/fortunegablin-rgb/PSC170/internal/domain"
	"github.com/fortunegablin-rgb/PSC170/internal/domain/models"
	"github.com/fortunegablin-rgb/PSC170/internal/utils"
)

// TripRepository owns trip rows and the fare-debit transaction.
type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// DeductionRow reports the outcome of a successful fare debit.
type DeductionRow struct {
	MemberID   int64
	MemberName string
	OldBalance float64
	NewBalance float64
}

// DeductFare debits the fare and appends the trip row in one transaction.
// The balance update is conditional (balance >= fare), so two concurrent
// debits can never both observe the same old balance and each subtract
// independently; the second either sees the reduced balance or fails.
//
// Errors: domain.NotFoundError for an unknown member,
// domain.InsufficientBalanceError when the balance cannot cover the fare.
func (r TripRepository) DeductFare(memberID int64, fare float64, conductorID string, now time.Time) (DeductionRow, error) {
	tx, err := r.db().Begin()
	if err != nil {
		return DeductionRow{}, err
	}
	defer tx.Rollback()

	var (
		name       string
		oldBalance float64
	)
	err = tx.QueryRow(`SELECT name, balance FROM members WHERE id = ?`, memberID).
		Scan(&name, &oldBalance)
	if err == sql.ErrNoRows {
		return DeductionRow{}, domain.NotFoundError{Resource: "member", Err: err}
	}
	if err != nil {
		return DeductionRow{}, err
	}

	res, err := tx.Exec(`UPDATE members SET balance = ROUND(balance - ?, 2) WHERE id = ? AND balance >= ?`,
		fare, memberID, fare)
	if err != nil {
		return DeductionRow{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return DeductionRow{}, err
	}
	if affected == 0 {
		return DeductionRow{}, domain.InsufficientBalanceError{Balance: oldBalance, Required: fare}
	}

	newBalance := utils.RoundMoney(oldBalance - fare)
	if _, err := tx.Exec(`INSERT INTO trips (member_id, amount, date, conductor_id) VALUES (?, ?, ?, ?)`,
		memberID, fare, utils.FormatISO(now), conductorID); err != nil {
		return DeductionRow{}, err
	}

	if err := tx.Commit(); err != nil {
		return DeductionRow{}, err
	}

	return DeductionRow{
		MemberID:   memberID,
		MemberName: name,
		OldBalance: oldBalance,
		NewBalance: newBalance,
	}, nil
}

// ListByMember returns the member's trips, newest first.
func (r TripRepository) ListByMember(memberID int64) ([]models.Trip, error) {
	rows, err := r.db().Query(`SELECT id, member_id, amount, date, conductor_id FROM trips WHERE member_id = ? ORDER BY date DESC`, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		var t models.Trip
		if err := rows.Scan(&t.ID, &t.MemberID, &t.Amount, &t.Date, &t.ConductorID); err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
