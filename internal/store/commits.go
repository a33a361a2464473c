package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ryandancy/yagc/internal/models"
)

// ErrStop can be returned from a ForEachCommit callback to stop the
// iteration early without error.
var ErrStop = errors.New("stop iteration")

// ForEachCommit streams the commit log in append order, calling fn for
// each commit. Rows are read lazily from the database.
func (s *Store) ForEachCommit(fn func(*models.Commit) error) error {
	rows, err := s.db.Query("SELECT hash, message, timestamp FROM commits ORDER BY seq")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var c models.Commit
		var ts string
		if err := rows.Scan(&c.Hash, &c.Message, &ts); err != nil {
			return err
		}
		c.Timestamp = parseTimestamp(ts)
		if err := fn(&c); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}
	}
	return rows.Err()
}

// GetCommits returns the whole commit log in append order.
func (s *Store) GetCommits() ([]*models.Commit, error) {
	var commits []*models.Commit
	err := s.ForEachCommit(func(c *models.Commit) error {
		commits = append(commits, c)
		return nil
	})
	return commits, err
}

// LastCommit returns the most recent commit, or nil if the log is empty.
func (s *Store) LastCommit() (*models.Commit, error) {
	var c models.Commit
	var ts string
	err := s.db.QueryRow(
		"SELECT hash, message, timestamp FROM commits ORDER BY seq DESC LIMIT 1").
		Scan(&c.Hash, &c.Message, &ts)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.Timestamp = parseTimestamp(ts)
	return &c, nil
}

// CommitCount returns the number of commits in the log.
func (s *Store) CommitCount() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM commits").Scan(&n)
	return n, err
}

// FinalizeCommit appends a commit to the log, clears the staged set, and
// adds the staged paths to the tracked set, all in one transaction. It is
// called only after the commit's snapshot directory has been published,
// so a failure here never leaves a commit record without its snapshot.
func (s *Store) FinalizeCommit(commit *models.Commit, staged []string) error {
	return s.withRetry("finalize commit "+commit.ShortHash(), func() error {
		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		defer tx.Rollback()

		if _, err := tx.Exec(
			"INSERT INTO commits (hash, message, timestamp) VALUES (?, ?, ?)",
			commit.Hash, commit.Message, commit.Timestamp.Format(time.RFC3339Nano),
		); err != nil {
			return fmt.Errorf("append commit: %w", err)
		}

		if _, err := tx.Exec("DELETE FROM staged"); err != nil {
			return fmt.Errorf("clear staged set: %w", err)
		}

		for _, p := range staged {
			if _, err := tx.Exec(
				"INSERT OR IGNORE INTO tracked (path) VALUES (?)", p); err != nil {
				return fmt.Errorf("track %s: %w", p, err)
			}
		}

		return tx.Commit()
	})
}

// TruncateAfter removes every commit after the one with the given hash
// and replaces the tracked set, in one transaction. The head flag is
// forced true. It returns the hashes of the removed commits so the
// caller can discard their snapshot directories.
func (s *Store) TruncateAfter(hash string, newTracked []string) (removed []string, err error) {
	err = s.withRetry("truncate log after "+hash, func() error {
		removed = removed[:0]

		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		defer tx.Rollback()

		var seq int64
		if err := tx.QueryRow("SELECT seq FROM commits WHERE hash = ?", hash).Scan(&seq); err != nil {
			return fmt.Errorf("locate commit %s: %w", hash, err)
		}

		rows, err := tx.Query("SELECT hash FROM commits WHERE seq > ? ORDER BY seq", seq)
		if err != nil {
			return err
		}
		for rows.Next() {
			var h string
			if err := rows.Scan(&h); err != nil {
				rows.Close()
				return err
			}
			removed = append(removed, h)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return err
		}
		rows.Close()

		if _, err := tx.Exec("DELETE FROM commits WHERE seq > ?", seq); err != nil {
			return fmt.Errorf("truncate commit log: %w", err)
		}

		if _, err := tx.Exec("DELETE FROM tracked"); err != nil {
			return fmt.Errorf("clear tracked set: %w", err)
		}
		for _, p := range newTracked {
			if _, err := tx.Exec("INSERT OR IGNORE INTO tracked (path) VALUES (?)", p); err != nil {
				return fmt.Errorf("track %s: %w", p, err)
			}
		}

		if _, err := tx.Exec("UPDATE status SET value = 'true' WHERE key = 'head'"); err != nil {
			return fmt.Errorf("set head flag: %w", err)
		}

		return tx.Commit()
	})
	return removed, err
}
