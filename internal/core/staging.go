package core

import (
	"path/filepath"

	"github.com/ryandancy/yagc/internal/apperrors"
	"github.com/ryandancy/yagc/internal/config"
	"github.com/ryandancy/yagc/internal/store"
)

// StageResult reports the outcome of staging a batch of paths.
type StageResult struct {
	Staged        int // paths newly added to the staged set
	AlreadyStaged []*apperrors.AlreadyStagedError
}

// Stage queues files for the next commit. Paths may be absolute or
// relative to the repository root; they are normalized to absolute paths
// before storage. Every path is validated before any is staged, so a
// missing file leaves the staged set untouched.
func Stage(cfg *config.Config, st *store.Store, paths []string) (*StageResult, error) {
	if err := ensureMutable(st); err != nil {
		return nil, err
	}

	abs := make([]string, 0, len(paths))
	for _, p := range paths {
		a := normalizePath(cfg, p)
		if _, err := relPath(cfg.Root(), a); err != nil {
			return nil, err
		}
		if !isRegularFile(a) {
			return nil, &apperrors.FileNotFoundError{Path: a}
		}
		abs = append(abs, a)
	}

	result := &StageResult{}
	for _, a := range abs {
		added, err := st.AddStagedPath(a)
		if err != nil {
			return nil, err
		}
		if added {
			result.Staged++
		} else {
			result.AlreadyStaged = append(result.AlreadyStaged,
				&apperrors.AlreadyStagedError{Path: a})
		}
	}
	return result, nil
}

// Unstage removes a path from the staged set. The file stays tracked if
// it was committed before.
func Unstage(cfg *config.Config, st *store.Store, path string) error {
	if err := ensureMutable(st); err != nil {
		return err
	}

	a := normalizePath(cfg, path)
	removed, err := st.RemoveStagedPath(a)
	if err != nil {
		return err
	}
	if !removed {
		return &apperrors.NotStagedError{Path: a}
	}
	return nil
}

// normalizePath makes a path absolute, resolving relative paths against
// the repository root.
func normalizePath(cfg *config.Config, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(cfg.Root(), path)
}
