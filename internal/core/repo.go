// Package core implements the yagc snapshot state machine: staging,
// commit snapshots with carry-forward, working-tree restore, commit-hash
// resolution, and the HEAD/detached mode rules that gate mutation.
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ryandancy/yagc/internal/apperrors"
	"github.com/ryandancy/yagc/internal/config"
	"github.com/ryandancy/yagc/internal/store"
)

// InitResult reports the outcome of initializing a repository.
type InitResult struct {
	Config  *config.Config
	Created bool // false when the repository already existed (no-op)
}

// Init initializes a yagc repository at root: the .yagc directory, its
// configuration, and the state database. Initializing an existing
// repository is a no-op, not an error.
func Init(root string) (*InitResult, error) {
	cfg, created, err := config.Initialize(root)
	if err != nil {
		return nil, err
	}

	st, err := OpenStore(cfg)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	if err := st.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize store: %w", err)
	}

	return &InitResult{Config: cfg, Created: created}, nil
}

// OpenStore opens the state store for a loaded repository configuration.
func OpenStore(cfg *config.Config) (*store.Store, error) {
	retry := &store.RetryConfig{
		MaxRetries:     cfg.RetryMaxAttempts,
		InitialBackoff: time.Duration(cfg.RetryBackoffMs) * time.Millisecond,
		MaxBackoff:     5 * time.Second,
		JitterFraction: 0.25,
	}
	return store.New(cfg.DatabasePath(), cfg.CommitsPath(), retry)
}

// ensureMutable fails with ErrNotMutable unless the latest commit is
// checked out.
func ensureMutable(st *store.Store) error {
	head, err := st.IsHead()
	if err != nil {
		return err
	}
	if !head {
		return apperrors.ErrNotMutable
	}
	return nil
}

// relPath returns path relative to the repository root. Paths outside
// the root are rejected.
func relPath(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside the repository at %s", path, root)
	}
	return rel, nil
}

// isRegularFile reports whether path exists and is a regular file.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
