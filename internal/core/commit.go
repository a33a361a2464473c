package core

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/ryandancy/yagc/internal/apperrors"
	"github.com/ryandancy/yagc/internal/config"
	"github.com/ryandancy/yagc/internal/models"
	"github.com/ryandancy/yagc/internal/store"
)

// CommitWarning reports a non-fatal issue encountered while building a
// snapshot, such as a carry-forward source missing from the previous
// commit.
type CommitWarning struct {
	Type    string
	Message string
}

// CommitResult contains the outcome of a successful commit.
type CommitResult struct {
	Commit    *models.Commit
	Staged    int      // files copied from the working tree
	Carried   int      // files carried forward from the previous snapshot
	Deletions []string // tracked paths absent from the working tree
	Warnings  []CommitWarning
}

// Commit creates a new full-tree snapshot from the staged set plus
// carried-forward tracked files, appends it to the commit log, clears
// the staged set, and adds the staged paths to the tracked set.
//
// The snapshot is built in a scratch directory and renamed into place
// only once every copy has succeeded, then the log append, staged-set
// clear, and tracked-set update happen in one transaction: a failure at
// any point leaves the prior state readable.
//
// Unchanged tracked files are carried forward from the previous commit's
// snapshot, never re-read from the working tree, so the new snapshot is
// immune to working-tree edits made while the commit runs.
func Commit(ctx context.Context, cfg *config.Config, st *store.Store, provider MessageProvider) (*CommitResult, error) {
	if err := ensureMutable(st); err != nil {
		return nil, err
	}

	staged, err := st.GetStagedPaths()
	if err != nil {
		return nil, err
	}
	tracked, err := st.GetTrackedPaths()
	if err != nil {
		return nil, err
	}

	stagedSet := make(map[string]bool, len(staged))
	for _, p := range staged {
		stagedSet[p] = true
	}

	var deletions []string
	deleted := make(map[string]bool)
	for _, p := range tracked {
		if !isRegularFile(p) {
			deletions = append(deletions, p)
			deleted[p] = true
		}
	}

	// The no-op check comes before the message provider is consulted, so
	// the user is never prompted for a message that would be thrown away.
	if len(staged) == 0 && len(deletions) == 0 {
		return nil, apperrors.ErrNothingToCommit
	}

	message, err := provider.RequestMessage(ctx)
	if err != nil {
		return nil, fmt.Errorf("obtain commit message: %w", err)
	}

	prev, err := st.LastCommit()
	if err != nil {
		return nil, err
	}
	parentHash := ""
	if prev != nil {
		parentHash = prev.Hash
	}

	now := time.Now()
	scratch, err := st.NewSnapshotScratch(fmt.Sprintf("%d", now.UnixNano()))
	if err != nil {
		return nil, err
	}
	defer st.DiscardScratch(scratch)

	result := &CommitResult{Deletions: deletions}
	var files []models.FileDigest

	// Staged files come from the working tree.
	for _, p := range staged {
		rel, err := relPath(cfg.Root(), p)
		if err != nil {
			return nil, err
		}
		digest, err := copyFileDigest(filepath.Join(scratch, rel), p)
		if err != nil {
			return nil, fmt.Errorf("snapshot staged file %s: %w", p, err)
		}
		files = append(files, models.FileDigest{Path: rel, Digest: digest})
		result.Staged++
	}

	// Everything else tracked and not deleted is carried forward from the
	// previous commit's snapshot. A missing source is a consistency fault:
	// warn, skip the file, and finish the commit.
	if prev != nil {
		prevRoot := st.SnapshotPath(prev.Hash)
		for _, p := range tracked {
			if stagedSet[p] || deleted[p] {
				continue
			}
			rel, err := relPath(cfg.Root(), p)
			if err != nil {
				return nil, err
			}
			src := filepath.Join(prevRoot, rel)
			if !isRegularFile(src) {
				fault := &apperrors.ConsistencyFault{Path: p, Snapshot: prev.ShortHash()}
				slog.Warn("carry-forward source missing", "path", p, "snapshot", prev.Hash)
				result.Warnings = append(result.Warnings, CommitWarning{
					Type:    "consistency",
					Message: fault.Error(),
				})
				continue
			}
			digest, err := copyFileDigest(filepath.Join(scratch, rel), src)
			if err != nil {
				return nil, fmt.Errorf("carry forward %s: %w", p, err)
			}
			files = append(files, models.FileDigest{Path: rel, Digest: digest})
			result.Carried++
		}
	}

	hash := models.GenerateCommitHash(message, now, parentHash, files)

	if err := st.PublishSnapshot(scratch, hash); err != nil {
		return nil, err
	}

	commit := &models.Commit{Hash: hash, Message: message, Timestamp: now}
	if err := st.FinalizeCommit(commit, staged); err != nil {
		// The log still reflects the prior state; discard the orphaned
		// snapshot so a later commit cannot collide with it.
		if rmErr := st.RemoveSnapshot(hash); rmErr != nil {
			slog.Warn("could not remove orphaned snapshot", "hash", hash, "err", rmErr)
		}
		return nil, err
	}

	result.Commit = commit
	return result, nil
}
