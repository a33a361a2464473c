package core

import (
	"log/slog"

	"github.com/ryandancy/yagc/internal/apperrors"
	"github.com/ryandancy/yagc/internal/config"
	"github.com/ryandancy/yagc/internal/models"
	"github.com/ryandancy/yagc/internal/store"
)

// ResetOptions configures reset behavior.
type ResetOptions struct {
	// Confirmed acknowledges that every commit after the target will be
	// destroyed. Reset never proceeds without it.
	Confirmed bool
}

// ResetResult contains the result of a reset operation.
type ResetResult struct {
	Commit  *models.Commit
	Removed []string // hashes of the truncated commits, oldest first
}

// Reset restores the working tree to the target commit and irreversibly
// truncates the commit log to end there. The target becomes the new
// latest commit and the repository is left in HEAD state. The tracked
// set is rewound to the files of the restored snapshot, so a later
// commit never tries to carry forward a file the truncated history no
// longer holds.
func Reset(cfg *config.Config, st *store.Store, ref string, opts ResetOptions) (*ResetResult, error) {
	if err := ensureMutable(st); err != nil {
		return nil, err
	}

	commit, err := ResolveRef(st, ref)
	if err != nil {
		return nil, err
	}

	if !opts.Confirmed {
		return nil, apperrors.ErrNotConfirmed
	}

	if err := restoreWorkTree(cfg, st, commit); err != nil {
		return nil, err
	}

	newTracked, err := snapshotTracked(cfg, st, commit.Hash)
	if err != nil {
		return nil, err
	}

	removed, err := st.TruncateAfter(commit.Hash, newTracked)
	if err != nil {
		return nil, err
	}

	// The truncated commits are unreachable; reclaim their snapshots.
	// A removal failure leaves garbage, not corruption.
	for _, h := range removed {
		if err := st.RemoveSnapshot(h); err != nil {
			slog.Warn("could not remove truncated snapshot", "hash", h, "err", err)
		}
	}

	return &ResetResult{Commit: commit, Removed: removed}, nil
}
