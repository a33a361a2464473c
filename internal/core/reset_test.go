package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryandancy/yagc/internal/apperrors"
)

func TestReset_TruncatesHistory(t *testing.T) {
	cfg, st := newTestRepo(t)
	writeFile(t, cfg, "a.txt", "v1")
	h1 := stageAndCommit(t, cfg, st, "first", "a.txt")
	writeFile(t, cfg, "a.txt", "v2")
	h2 := stageAndCommit(t, cfg, st, "second", "a.txt")
	writeFile(t, cfg, "a.txt", "v3")
	h3 := stageAndCommit(t, cfg, st, "third", "a.txt")

	result, err := Reset(cfg, st, h1, ResetOptions{Confirmed: true})
	require.NoError(t, err)
	assert.Equal(t, h1, result.Commit.Hash)
	assert.ElementsMatch(t, []string{h2, h3}, result.Removed)

	assert.Equal(t, "v1", readFile(t, cfg, "a.txt"))

	last, err := st.LastCommit()
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, h1, last.Hash)

	count, err := st.CommitCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestReset_RemovesTruncatedSnapshots(t *testing.T) {
	cfg, st := newTestRepo(t)
	writeFile(t, cfg, "a.txt", "v1")
	h1 := stageAndCommit(t, cfg, st, "first", "a.txt")
	writeFile(t, cfg, "a.txt", "v2")
	h2 := stageAndCommit(t, cfg, st, "second", "a.txt")

	_, err := Reset(cfg, st, h1, ResetOptions{Confirmed: true})
	require.NoError(t, err)

	assert.False(t, st.SnapshotExists(h2))
	assert.True(t, st.SnapshotExists(h1))
}

func TestReset_PrunesTrackedSet(t *testing.T) {
	cfg, st := newTestRepo(t)
	writeFile(t, cfg, "a.txt", "v1")
	h1 := stageAndCommit(t, cfg, st, "first", "a.txt")

	writeFile(t, cfg, "b.txt", "added later")
	stageAndCommit(t, cfg, st, "second", "b.txt")

	_, err := Reset(cfg, st, h1, ResetOptions{Confirmed: true})
	require.NoError(t, err)

	// b.txt never existed at the first commit; it is no longer tracked
	// and no longer on disk.
	tracked, err := st.GetTrackedPaths()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(cfg.Root(), "a.txt")}, tracked)

	isTracked, err := st.IsTracked(filepath.Join(cfg.Root(), "b.txt"))
	require.NoError(t, err)
	assert.False(t, isTracked)

	_, err = os.Stat(filepath.Join(cfg.Root(), "b.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestReset_RequiresConfirmation(t *testing.T) {
	cfg, st := newTestRepo(t)
	writeFile(t, cfg, "a.txt", "v1")
	h1 := stageAndCommit(t, cfg, st, "first", "a.txt")
	writeFile(t, cfg, "a.txt", "v2")
	stageAndCommit(t, cfg, st, "second", "a.txt")

	_, err := Reset(cfg, st, h1, ResetOptions{})
	assert.ErrorIs(t, err, apperrors.ErrNotConfirmed)

	// History is intact.
	count, err := st.CommitCount()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, "v2", readFile(t, cfg, "a.txt"))
}

func TestReset_RejectedWhenDetached(t *testing.T) {
	cfg, st := newTestRepo(t)
	writeFile(t, cfg, "a.txt", "v1")
	h1 := stageAndCommit(t, cfg, st, "first", "a.txt")
	writeFile(t, cfg, "a.txt", "v2")
	stageAndCommit(t, cfg, st, "second", "a.txt")

	_, err := Checkout(cfg, st, h1, CheckoutOptions{Confirmed: true})
	require.NoError(t, err)

	_, err = Reset(cfg, st, h1, ResetOptions{Confirmed: true})
	assert.ErrorIs(t, err, apperrors.ErrNotMutable)
}

func TestReset_ToLatestIsANoOpTruncation(t *testing.T) {
	cfg, st := newTestRepo(t)
	writeFile(t, cfg, "a.txt", "v1")
	h1 := stageAndCommit(t, cfg, st, "first", "a.txt")

	result, err := Reset(cfg, st, h1, ResetOptions{Confirmed: true})
	require.NoError(t, err)
	assert.Empty(t, result.Removed)

	head, err := st.IsHead()
	require.NoError(t, err)
	assert.True(t, head)
}
