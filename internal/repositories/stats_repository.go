package repositories

import (
	"database/sql"
	"sort"

	intconfig "github.com/fortunegablin-rgb/PSC170/internal/config"
)

// Activity is one line of the dashboard's recent-activity feed.
type Activity struct {
	Type     string  `json:"type"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	MemberID int64   `json:"member_id"`
}

// StatsRepository aggregates dashboard figures across the ledger tables.
type StatsRepository struct {
	DB *sql.DB
}

func (r StatsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r StatsRepository) TotalMembers() (int64, error) {
	var count int64
	err := r.db().QueryRow(`SELECT count(*) FROM members`).Scan(&count)
	return count, err
}

// TotalRevenue sums all trip fares ever charged.
func (r StatsRepository) TotalRevenue() (float64, error) {
	var total float64
	err := r.db().QueryRow(`SELECT COALESCE(sum(amount), 0) FROM trips`).Scan(&total)
	return total, err
}

// RecentActivity merges the latest trips and payments, newest first, capped
// at limit entries. ISO-8601 dates sort correctly as strings.
func (r StatsRepository) RecentActivity(limit int) ([]Activity, error) {
	trips, err := r.queryActivity(`SELECT 'Trip' as type, amount, date, member_id FROM trips ORDER BY date DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	payments, err := r.queryActivity(`SELECT 'Payment' as type, amount, date, member_id FROM payments ORDER BY date DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}

	all := append(trips, payments...)
	sort.SliceStable(all, func(i, j int) bool { return all[i].Date > all[j].Date })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r StatsRepository) queryActivity(query string, limit int) ([]Activity, error) {
	rows, err := r.db().Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Activity{}
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.Type, &a.Amount, &a.Date, &a.MemberID); err != nil {
			return out, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
