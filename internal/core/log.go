package core

import (
	"github.com/ryandancy/yagc/internal/models"
	"github.com/ryandancy/yagc/internal/store"
)

// Log streams the commit log in append order, calling fn once per
// commit. Commits are read lazily from the store; returning
// store.ErrStop from fn ends the walk early. Read-only and legal in
// either mode.
func Log(st *store.Store, fn func(*models.Commit) error) error {
	return st.ForEachCommit(fn)
}
