package core

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ryandancy/yagc/internal/apperrors"
	"github.com/ryandancy/yagc/internal/config"
	"github.com/ryandancy/yagc/internal/models"
	"github.com/ryandancy/yagc/internal/store"
)

// CheckoutOptions configures checkout behavior.
type CheckoutOptions struct {
	// Confirmed acknowledges that uncommitted working-tree changes will
	// be lost. Required for any non-latest target.
	Confirmed bool
}

// CheckoutResult contains the result of a checkout operation.
type CheckoutResult struct {
	Commit *models.Commit
	IsHead bool // true when the target is the last commit of the log
}

// Checkout restores the working tree to the snapshot of the commit that
// ref resolves to. Checking out any commit other than the latest leaves
// the repository detached: add, remove, commit, and reset are rejected
// until a checkout back to HEAD.
func Checkout(cfg *config.Config, st *store.Store, ref string, opts CheckoutOptions) (*CheckoutResult, error) {
	commit, err := ResolveRef(st, ref)
	if err != nil {
		return nil, err
	}

	last, err := st.LastCommit()
	if err != nil {
		return nil, err
	}
	isHead := last != nil && last.Hash == commit.Hash

	if !isHead && !opts.Confirmed {
		return nil, apperrors.ErrNotConfirmed
	}

	if err := restoreWorkTree(cfg, st, commit); err != nil {
		return nil, err
	}

	if err := st.SetHead(isHead); err != nil {
		return nil, err
	}

	return &CheckoutResult{Commit: commit, IsHead: isHead}, nil
}

// restoreWorkTree makes the working tree match the commit's snapshot:
// every currently tracked file is deleted, directories emptied by those
// deletions are pruned, and the snapshot tree is copied in. The snapshot
// is verified readable before the first deletion so a bad target leaves
// the tree untouched.
func restoreWorkTree(cfg *config.Config, st *store.Store, commit *models.Commit) error {
	if !st.SnapshotExists(commit.Hash) {
		return fmt.Errorf("snapshot for commit %s is missing or unreadable", commit.ShortHash())
	}

	tracked, err := st.GetTrackedPaths()
	if err != nil {
		return err
	}

	// Delete tracked files; a file already absent was deleted by the user
	// and is fine.
	dirs := make(map[string]bool)
	for _, p := range tracked {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %s: %w", p, err)
		}
		for d := filepath.Dir(p); len(d) > len(cfg.Root()); d = filepath.Dir(d) {
			dirs[d] = true
		}
	}

	// Prune directories that existed only to hold tracked files, deepest
	// first. Removal of a directory that still has entries fails; that
	// just means the directory holds something untracked, so ignore it.
	pruned := make([]string, 0, len(dirs))
	for d := range dirs {
		pruned = append(pruned, d)
	}
	sort.Slice(pruned, func(i, j int) bool { return len(pruned[i]) > len(pruned[j]) })
	for _, d := range pruned {
		_ = os.Remove(d)
	}

	// Copy the snapshot tree into the working tree.
	snapRoot := st.SnapshotPath(commit.Hash)
	return filepath.WalkDir(snapRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(snapRoot, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(cfg.Root(), rel)
		if d.IsDir() {
			if rel == "." {
				return nil
			}
			return os.MkdirAll(dst, 0755)
		}
		return copyFile(dst, path)
	})
}

// snapshotTracked returns the absolute working-tree path of every file
// in a commit's snapshot.
func snapshotTracked(cfg *config.Config, st *store.Store, hash string) ([]string, error) {
	rels, err := st.SnapshotFiles(hash)
	if err != nil {
		return nil, err
	}
	abs := make([]string, len(rels))
	for i, r := range rels {
		abs[i] = filepath.Join(cfg.Root(), r)
	}
	return abs, nil
}
