package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SnapshotPath returns the directory holding the snapshot for a commit.
func (s *Store) SnapshotPath(hash string) string {
	return filepath.Join(s.commitsDir, hash)
}

// NewSnapshotScratch creates a fresh scratch directory for building a
// snapshot. The commit hash is not known until the snapshot's contents
// have been digested, so the scratch is named by an opaque token; the
// directory only becomes visible as the commit's snapshot when
// PublishSnapshot renames it into place.
func (s *Store) NewSnapshotScratch(token string) (string, error) {
	if err := os.MkdirAll(s.commitsDir, 0755); err != nil {
		return "", fmt.Errorf("create commits directory: %w", err)
	}
	scratch := filepath.Join(s.commitsDir, ".tmp-"+token)
	if err := os.RemoveAll(scratch); err != nil {
		return "", err
	}
	if err := os.Mkdir(scratch, 0755); err != nil {
		return "", fmt.Errorf("create snapshot scratch: %w", err)
	}
	return scratch, nil
}

// PublishSnapshot atomically makes a fully written scratch directory
// visible as the snapshot for the given commit.
func (s *Store) PublishSnapshot(scratch, hash string) error {
	if err := os.Rename(scratch, s.SnapshotPath(hash)); err != nil {
		return fmt.Errorf("publish snapshot %s: %w", hash, err)
	}
	return nil
}

// DiscardScratch removes an abandoned snapshot scratch directory.
func (s *Store) DiscardScratch(scratch string) {
	if strings.HasPrefix(filepath.Base(scratch), ".tmp-") {
		os.RemoveAll(scratch)
	}
}

// SnapshotExists reports whether a readable snapshot directory exists for
// the given commit.
func (s *Store) SnapshotExists(hash string) bool {
	info, err := os.Stat(s.SnapshotPath(hash))
	return err == nil && info.IsDir()
}

// RemoveSnapshot deletes a commit's snapshot directory. Used only when
// reset truncates the log; failures are the caller's to ignore.
func (s *Store) RemoveSnapshot(hash string) error {
	return os.RemoveAll(s.SnapshotPath(hash))
}

// SnapshotFiles returns the relative path of every file in a commit's
// snapshot.
func (s *Store) SnapshotFiles(hash string) ([]string, error) {
	root := s.SnapshotPath(hash)
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk snapshot %s: %w", hash, err)
	}
	return files, nil
}
