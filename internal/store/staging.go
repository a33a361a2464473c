package store

// AddStagedPath appends an absolute path to the staged set. It reports
// added=false when the path was already staged. The check-and-insert is
// one transaction, so two concurrent adds cannot lose a path.
func (s *Store) AddStagedPath(path string) (added bool, err error) {
	err = s.withRetry("stage "+path, func() error {
		res, err := s.db.Exec(
			"INSERT INTO staged (path) VALUES (?) ON CONFLICT(path) DO NOTHING", path)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		added = n > 0
		return nil
	})
	return added, err
}

// RemoveStagedPath removes a path from the staged set. It reports
// removed=false when the path was not staged.
func (s *Store) RemoveStagedPath(path string) (removed bool, err error) {
	err = s.withRetry("unstage "+path, func() error {
		res, err := s.db.Exec("DELETE FROM staged WHERE path = ?", path)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		removed = n > 0
		return nil
	})
	return removed, err
}

// GetStagedPaths returns the staged set in staging order.
func (s *Store) GetStagedPaths() ([]string, error) {
	rows, err := s.db.Query("SELECT path FROM staged ORDER BY seq")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

// StagedCount returns the number of staged paths.
func (s *Store) StagedCount() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM staged").Scan(&n)
	return n, err
}
