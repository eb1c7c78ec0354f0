package repositories

import (
	"database/sql"

	intconfig "github.com/fortunegablin-rgb/PSC170/internal/config"
)

// SettingsRepository wraps the key/value settings table.
type SettingsRepository struct {
	DB *sql.DB
}

func (r SettingsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r SettingsRepository) Get(key string) (string, error) {
	var value string
	err := r.db().QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

func (r SettingsRepository) Set(key, value string) error {
	_, err := r.db().Exec(`INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}
