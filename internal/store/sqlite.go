// Package store provides SQLite-based persistence for yagc repository
// state: the staged set, tracked set, commit log, and head flag, plus the
// per-commit snapshot directories on the filesystem.
//
// Every read-modify-write runs in an immediate transaction, so concurrent
// invocations against the same repository serialize at the database. Lock
// waits are bounded by busy_timeout; exhausted waits surface as
// TransientIOError after the store's own bounded retries.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store represents the repository state store.
type Store struct {
	db         *sql.DB
	commitsDir string
	retry      *RetryConfig
}

// New opens the state database at dbPath. commitsDir is the directory
// holding one snapshot tree per commit.
func New(dbPath, commitsDir string, retry *RetryConfig) (*Store, error) {
	dsn := "file:" + dbPath + "?_txlock=immediate" +
		"&_pragma=journal_mode(WAL)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if retry == nil {
		retry = DefaultRetryConfig()
	}
	return &Store{db: db, commitsDir: commitsDir, retry: retry}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Initialize creates the database schema and the initial head flag.
func (s *Store) Initialize() error {
	schema := `
	-- Staged set: ordered file paths queued for the next commit
	CREATE TABLE IF NOT EXISTS staged (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		path TEXT NOT NULL UNIQUE
	);

	-- Tracked set: every path that has ever been committed
	CREATE TABLE IF NOT EXISTS tracked (
		path TEXT PRIMARY KEY
	);

	-- Commit log (append-only; truncated only by reset)
	CREATE TABLE IF NOT EXISTS commits (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		hash TEXT NOT NULL UNIQUE,
		message TEXT NOT NULL,
		timestamp TEXT NOT NULL
	);

	-- Status (head flag, etc.)
	CREATE TABLE IF NOT EXISTS status (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	return s.withRetry("initialize store", func() error {
		if _, err := s.db.Exec(schema); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		_, err := s.db.Exec(`INSERT OR IGNORE INTO status (key, value) VALUES ('head', 'true')`)
		return err
	})
}

// GetValue gets a value from the status table.
func (s *Store) GetValue(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM status WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// SetValue sets a value in the status table.
func (s *Store) SetValue(key, value string) error {
	return s.withRetry("set "+key, func() error {
		_, err := s.db.Exec(
			"INSERT INTO status (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = ?",
			key, value, value,
		)
		return err
	})
}

// IsHead reports whether the latest commit is checked out.
func (s *Store) IsHead() (bool, error) {
	v, err := s.GetValue("head")
	if err != nil {
		return false, err
	}
	return v == "true", nil
}

// SetHead sets the head flag.
func (s *Store) SetHead(head bool) error {
	v := "false"
	if head {
		v = "true"
	}
	return s.SetValue("head", v)
}

// parseTimestamp parses a stored timestamp in the formats SQLite and the
// store have used over time.
func parseTimestamp(s string) time.Time {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
