package config

import (
	"context"
	"database/sql"
	"log"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

var (
	DB   *sql.DB
	dbMu sync.Mutex
)

// ConnectDB initializes the shared DB connection (idempotent).
func ConnectDB(dbPath string) *sql.DB {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB != nil {
		return DB
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	// SQLite serializes writers; a single open connection avoids
	// SQLITE_BUSY churn between the debit transaction and reads.
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	DB = db
	log.Printf("Connected to SQLite database at %s", dbPath)
	return DB
}

func EnsureDB() error {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB == nil {
		return sql.ErrConnDone
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return DB.PingContext(ctx)
}

func CloseDB() {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB != nil {
		_ = DB.Close()
		DB = nil
	}
}

// Migrate creates the schema and seeds default settings and users.
func Migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS members (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			contact TEXT,
			balance REAL DEFAULT 0.0
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			member_id INTEGER NOT NULL,
			amount REAL NOT NULL,
			receipt_number TEXT NOT NULL,
			date TEXT NOT NULL,
			FOREIGN KEY (member_id) REFERENCES members (id)
		)`,
		`CREATE TABLE IF NOT EXISTS trips (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			member_id INTEGER,
			amount REAL,
			date TEXT,
			conductor_id TEXT,
			FOREIGN KEY (member_id) REFERENCES members (id)
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL CHECK(role IN ('admin', 'conductor'))
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	if err := seedSetting(db, "admin_password", "admin123", true); err != nil {
		return err
	}
	if err := seedSetting(db, "fare_one_way", "6.28", false); err != nil {
		return err
	}
	if err := seedSetting(db, "fare_two_way", "12.56", false); err != nil {
		return err
	}

	if err := seedUser(db, "admin", "admin123", "admin"); err != nil {
		return err
	}
	return seedUser(db, "conductor", "conductor123", "conductor")
}

func seedSetting(db *sql.DB, key, value string, hashed bool) error {
	if hashed {
		hash, err := bcrypt.GenerateFromPassword([]byte(value), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		value = string(hash)
	}
	_, err := db.Exec(`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`, key, value)
	return err
}

func seedUser(db *sql.DB, username, password, role string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT OR IGNORE INTO users (username, password_hash, role) VALUES (?, ?, ?)`,
		username, string(hash), role)
	return err
}
