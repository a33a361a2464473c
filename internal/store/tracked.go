package store

// GetTrackedPaths returns the tracked set. Order is not significant; the
// set is returned sorted by path for stable iteration.
func (s *Store) GetTrackedPaths() ([]string, error) {
	rows, err := s.db.Query("SELECT path FROM tracked ORDER BY path")
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

// IsTracked reports whether a path is in the tracked set.
func (s *Store) IsTracked(path string) (bool, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM tracked WHERE path = ?", path).Scan(&n)
	return n > 0, err
}
