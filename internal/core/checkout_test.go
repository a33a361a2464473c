package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryandancy/yagc/internal/apperrors"
)

func TestCheckout_RoundTrip(t *testing.T) {
	cfg, st := newTestRepo(t)
	writeFile(t, cfg, "a.txt", "v1")
	h1 := stageAndCommit(t, cfg, st, "first", "a.txt")

	writeFile(t, cfg, "a.txt", "v2")
	stageAndCommit(t, cfg, st, "second", "a.txt")

	result, err := Checkout(cfg, st, h1, CheckoutOptions{Confirmed: true})
	require.NoError(t, err)
	assert.False(t, result.IsHead)
	assert.Equal(t, "v1", readFile(t, cfg, "a.txt"))

	head, err := st.IsHead()
	require.NoError(t, err)
	assert.False(t, head)

	// Back to the latest commit.
	result, err = Checkout(cfg, st, "HEAD", CheckoutOptions{})
	require.NoError(t, err)
	assert.True(t, result.IsHead)
	assert.Equal(t, "v2", readFile(t, cfg, "a.txt"))

	head, err = st.IsHead()
	require.NoError(t, err)
	assert.True(t, head)
}

func TestCheckout_HeadIsIdempotent(t *testing.T) {
	cfg, st := newTestRepo(t)
	writeFile(t, cfg, "a.txt", "v1")
	stageAndCommit(t, cfg, st, "first", "a.txt")

	for i := 0; i < 2; i++ {
		result, err := Checkout(cfg, st, "HEAD", CheckoutOptions{})
		require.NoError(t, err)
		assert.True(t, result.IsHead)
		assert.Equal(t, "v1", readFile(t, cfg, "a.txt"))
	}
}

func TestCheckout_NonLatestRequiresConfirmation(t *testing.T) {
	cfg, st := newTestRepo(t)
	writeFile(t, cfg, "a.txt", "v1")
	h1 := stageAndCommit(t, cfg, st, "first", "a.txt")
	writeFile(t, cfg, "a.txt", "v2")
	stageAndCommit(t, cfg, st, "second", "a.txt")

	_, err := Checkout(cfg, st, h1, CheckoutOptions{})
	assert.ErrorIs(t, err, apperrors.ErrNotConfirmed)

	// Nothing was touched.
	assert.Equal(t, "v2", readFile(t, cfg, "a.txt"))
	head, err := st.IsHead()
	require.NoError(t, err)
	assert.True(t, head)
}

func TestCheckout_RestoresDeletedFiles(t *testing.T) {
	cfg, st := newTestRepo(t)
	writeFile(t, cfg, filepath.Join("docs", "readme.md"), "docs")
	stageAndCommit(t, cfg, st, "first", filepath.Join("docs", "readme.md"))

	// The user deletes the file and its directory; checkout HEAD brings
	// both back.
	require.NoError(t, os.RemoveAll(filepath.Join(cfg.Root(), "docs")))

	_, err := Checkout(cfg, st, "HEAD", CheckoutOptions{})
	require.NoError(t, err)
	assert.Equal(t, "docs", readFile(t, cfg, filepath.Join("docs", "readme.md")))
}

func TestCheckout_RemovesFilesAbsentFromTarget(t *testing.T) {
	cfg, st := newTestRepo(t)
	writeFile(t, cfg, "a.txt", "v1")
	h1 := stageAndCommit(t, cfg, st, "first", "a.txt")

	writeFile(t, cfg, filepath.Join("later", "b.txt"), "new file")
	stageAndCommit(t, cfg, st, "second", filepath.Join("later", "b.txt"))

	_, err := Checkout(cfg, st, h1, CheckoutOptions{Confirmed: true})
	require.NoError(t, err)

	// b.txt did not exist at the first commit; it and its now-empty
	// directory are gone.
	_, err = os.Stat(filepath.Join(cfg.Root(), "later", "b.txt"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(cfg.Root(), "later"))
	assert.True(t, os.IsNotExist(err))
}

func TestCheckout_KeepsDirectoriesWithUntrackedFiles(t *testing.T) {
	cfg, st := newTestRepo(t)
	writeFile(t, cfg, filepath.Join("mixed", "tracked.txt"), "v1")
	h1 := stageAndCommit(t, cfg, st, "first", filepath.Join("mixed", "tracked.txt"))

	writeFile(t, cfg, "other.txt", "v1")
	stageAndCommit(t, cfg, st, "second", "other.txt")

	// An untracked file shares the directory with a tracked one; the
	// directory must survive the restore.
	writeFile(t, cfg, filepath.Join("mixed", "untracked.txt"), "keep me")

	_, err := Checkout(cfg, st, h1, CheckoutOptions{Confirmed: true})
	require.NoError(t, err)
	assert.Equal(t, "keep me", readFile(t, cfg, filepath.Join("mixed", "untracked.txt")))
	assert.Equal(t, "v1", readFile(t, cfg, filepath.Join("mixed", "tracked.txt")))
}

func TestCheckout_MissingSnapshotLeavesTreeUntouched(t *testing.T) {
	cfg, st := newTestRepo(t)
	writeFile(t, cfg, "a.txt", "v1")
	h1 := stageAndCommit(t, cfg, st, "first", "a.txt")
	writeFile(t, cfg, "a.txt", "v2")
	stageAndCommit(t, cfg, st, "second", "a.txt")

	// Sabotage the target snapshot. The checkout must fail before any
	// deletion happens.
	require.NoError(t, st.RemoveSnapshot(h1))

	_, err := Checkout(cfg, st, h1, CheckoutOptions{Confirmed: true})
	require.Error(t, err)
	assert.Equal(t, "v2", readFile(t, cfg, "a.txt"))
}

func TestCheckout_EmptyHistory(t *testing.T) {
	cfg, st := newTestRepo(t)

	_, err := Checkout(cfg, st, "HEAD", CheckoutOptions{})
	assert.ErrorIs(t, err, apperrors.ErrEmptyHistory)
}
