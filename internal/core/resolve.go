package core

import (
	"strings"

	"github.com/ryandancy/yagc/internal/apperrors"
	"github.com/ryandancy/yagc/internal/models"
	"github.com/ryandancy/yagc/internal/store"
)

// ResolveRef resolves a user-supplied reference to exactly one commit.
// The sentinel "HEAD" (case-insensitive) resolves to the last commit of
// the log. Anything else is treated as a case-insensitive hash prefix:
// zero matches fail with NoSuchCommitError, more than one with
// AmbiguousPrefixError.
func ResolveRef(st *store.Store, ref string) (*models.Commit, error) {
	if strings.EqualFold(ref, "HEAD") {
		last, err := st.LastCommit()
		if err != nil {
			return nil, err
		}
		if last == nil {
			return nil, apperrors.ErrEmptyHistory
		}
		return last, nil
	}

	prefix := strings.ToLower(ref)
	var match *models.Commit
	var ambiguous bool
	err := st.ForEachCommit(func(c *models.Commit) error {
		if !strings.HasPrefix(c.Hash, prefix) {
			return nil
		}
		if match != nil {
			ambiguous = true
			return store.ErrStop
		}
		match = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	if ambiguous {
		return nil, &apperrors.AmbiguousPrefixError{Prefix: ref}
	}
	if match == nil {
		return nil, &apperrors.NoSuchCommitError{Ref: ref}
	}
	return match, nil
}
