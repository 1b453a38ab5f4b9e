// Package sqlite provides SQLite-based persistent storage for daykeep.
// Uses WAL mode for concurrent reads and crash-safe writes.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// DB wraps a SQLite connection with WAL mode and migrations.
type DB struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at dir/state.db.
// Enables WAL mode, foreign keys, and 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "state.db")
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// Connection pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is single-writer
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping() error {
	return d.db.Ping()
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		// Keyed record store: one JSON document per record type per user.
		`CREATE TABLE IF NOT EXISTS records (
			namespace  TEXT NOT NULL,
			username   TEXT NOT NULL,
			value      TEXT NOT NULL,
			updated_at INTEGER NOT NULL,
			PRIMARY KEY (namespace, username)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_ns ON records(namespace)`,

		// Single-session identity: who is acting right now.
		`CREATE TABLE IF NOT EXISTS session (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// ─── Keyed Record Store (store.Backend) ─────────────────────────────────────

// Get returns the stored document for (namespace, username).
func (d *DB) Get(namespace, username string) ([]byte, bool, error) {
	var value string
	err := d.db.QueryRow(
		`SELECT value FROM records WHERE namespace = ? AND username = ?`,
		namespace, username,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

// Set stores a document under (namespace, username), replacing any
// previous value. Last write wins.
func (d *DB) Set(namespace, username string, value []byte) error {
	_, err := d.db.Exec(
		`INSERT INTO records (namespace, username, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(namespace, username) DO UPDATE SET
			value=excluded.value,
			updated_at=excluded.updated_at`,
		namespace, username, string(value), time.Now().Unix(),
	)
	return err
}

// ─── Session ────────────────────────────────────────────────────────────────

const sessionUserKey = "current_user"

// SetCurrentUser records username as the active user. Empty clears it.
func (d *DB) SetCurrentUser(username string) error {
	if username == "" {
		_, err := d.db.Exec(`DELETE FROM session WHERE key = ?`, sessionUserKey)
		return err
	}
	_, err := d.db.Exec(
		`INSERT INTO session (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		sessionUserKey, username,
	)
	return err
}

// CurrentUser returns the active username, "" when nobody is logged in.
func (d *DB) CurrentUser() (string, error) {
	var value string
	err := d.db.QueryRow(`SELECT value FROM session WHERE key = ?`, sessionUserKey).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}
