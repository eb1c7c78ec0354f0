package repositories

import (
	"database/sql"

	intconfig "github.com/fortunegablin-rgb/PSC170/internal/config"
	"github.com/fortunegablin-rgb/PSC170/internal/domain/models"
	"github.com/fortunegablin-rgb/PSC170/internal/utils"
)

// MemberRepository wraps DB access for member rows.
type MemberRepository struct {
	DB *sql.DB
}

func (r MemberRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Create inserts a member with an optional starting balance.
func (r MemberRepository) Create(name, contact string, initialBalance float64) (models.Member, error) {
	res, err := r.db().Exec(`INSERT INTO members (name, contact, balance) VALUES (?, ?, ?)`,
		name, contact, initialBalance)
	if err != nil {
		return models.Member{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Member{}, err
	}
	return models.Member{ID: id, Name: name, Contact: contact, Balance: initialBalance}, nil
}

func (r MemberRepository) GetByID(id int64) (models.Member, error) {
	var m models.Member
	var contact sql.NullString
	err := r.db().QueryRow(`SELECT id, name, contact, balance FROM members WHERE id = ?`, id).
		Scan(&m.ID, &m.Name, &contact, &m.Balance)
	if err != nil {
		return models.Member{}, err
	}
	m.Contact = contact.String
	return m, nil
}

func (r MemberRepository) List() ([]models.Member, error) {
	rows, err := r.db().Query(`SELECT id, name, contact, balance FROM members ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Member{}
	for rows.Next() {
		var m models.Member
		var contact sql.NullString
		if err := rows.Scan(&m.ID, &m.Name, &contact, &m.Balance); err != nil {
			return out, err
		}
		m.Contact = contact.String
		out = append(out, m)
	}
	return out, rows.Err()
}

// CreditBalance adds amount to the member balance in a single transaction and
// reports the balance before and after. Returns sql.ErrNoRows when absent.
func (r MemberRepository) CreditBalance(id int64, amount float64) (oldBalance, newBalance float64, err error) {
	tx, err := r.db().Begin()
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`SELECT balance FROM members WHERE id = ?`, id).Scan(&oldBalance); err != nil {
		return 0, 0, err
	}

	newBalance = utils.RoundMoney(oldBalance + amount)
	if _, err := tx.Exec(`UPDATE members SET balance = ? WHERE id = ?`, newBalance, id); err != nil {
		return 0, 0, err
	}

	return oldBalance, newBalance, tx.Commit()
}

// DeleteCascade removes the member together with its payments and trips.
// Returns sql.ErrNoRows when the member does not exist.
func (r MemberRepository) DeleteCascade(id int64) error {
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM members WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	if _, err := tx.Exec(`DELETE FROM payments WHERE member_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM trips WHERE member_id = ?`, id); err != nil {
		return err
	}

	return tx.Commit()
}
