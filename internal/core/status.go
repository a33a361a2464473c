package core

import (
	"github.com/ryandancy/yagc/internal/config"
	"github.com/ryandancy/yagc/internal/models"
	"github.com/ryandancy/yagc/internal/store"
)

// Status returns the repository's staged paths (relative to the root,
// in staging order) and head flag. Read-only and legal in either mode.
func Status(cfg *config.Config, st *store.Store) (*models.RepoStatus, error) {
	staged, err := st.GetStagedPaths()
	if err != nil {
		return nil, err
	}

	rel := make([]string, 0, len(staged))
	for _, p := range staged {
		r, err := relPath(cfg.Root(), p)
		if err != nil {
			// A staged path outside the root should be impossible; show
			// it as-is rather than hide it.
			r = p
		}
		rel = append(rel, r)
	}

	head, err := st.IsHead()
	if err != nil {
		return nil, err
	}

	return &models.RepoStatus{Root: cfg.Root(), Staged: rel, Head: head}, nil
}
