package repositories

import (
	"database/sql"

	intconfig "github.com/fortunegablin-rgb/PSC170/internal/config"
	"github.com/fortunegablin-rgb/PSC170/internal/domain/models"
)

// PaymentRepository wraps DB access for payment rows (append-only).
type PaymentRepository struct {
	DB *sql.DB
}

func (r PaymentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r PaymentRepository) Insert(memberID int64, amount float64, receiptNumber, date string) (int64, error) {
	res, err := r.db().Exec(`INSERT INTO payments (member_id, amount, receipt_number, date) VALUES (?, ?, ?, ?)`,
		memberID, amount, receiptNumber, date)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListByMember returns the member's payments, newest first.
func (r PaymentRepository) ListByMember(memberID int64) ([]models.Payment, error) {
	rows, err := r.db().Query(`SELECT id, member_id, amount, receipt_number, date FROM payments WHERE member_id = ? ORDER BY date DESC`, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Payment{}
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.MemberID, &p.Amount, &p.ReceiptNumber, &p.Date); err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
