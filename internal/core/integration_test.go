package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryandancy/yagc/internal/models"
)

// TestLifecycle walks a full session: two commits to the same file, a
// trip back to the first commit, and a return to the latest.
func TestLifecycle(t *testing.T) {
	cfg, st := newTestRepo(t)

	writeFile(t, cfg, "a.txt", "hello")
	_, err := Stage(cfg, st, []string{"a.txt"})
	require.NoError(t, err)

	status, err := Status(cfg, st)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, status.Staged)
	assert.True(t, status.Head)

	first, err := Commit(context.Background(), cfg, st, StaticMessage("first"))
	require.NoError(t, err)
	assert.Empty(t, first.Warnings)

	writeFile(t, cfg, "a.txt", "world")
	_, err = Stage(cfg, st, []string{"a.txt"})
	require.NoError(t, err)
	second, err := Commit(context.Background(), cfg, st, StaticMessage("second"))
	require.NoError(t, err)

	// Staging area is empty again and the file is tracked.
	status, err = Status(cfg, st)
	require.NoError(t, err)
	assert.Empty(t, status.Staged)

	// A prefix is enough to address the first commit.
	back, err := Checkout(cfg, st, first.Commit.Hash[:7], CheckoutOptions{Confirmed: true})
	require.NoError(t, err)
	assert.False(t, back.IsHead)
	assert.Equal(t, "hello", readFile(t, cfg, "a.txt"))

	status, err = Status(cfg, st)
	require.NoError(t, err)
	assert.False(t, status.Head)

	// HEAD is still the latest commit, not the checked-out one.
	forward, err := Checkout(cfg, st, "HEAD", CheckoutOptions{})
	require.NoError(t, err)
	assert.True(t, forward.IsHead)
	assert.Equal(t, second.Commit.Hash, forward.Commit.Hash)
	assert.Equal(t, "world", readFile(t, cfg, "a.txt"))

	status, err = Status(cfg, st)
	require.NoError(t, err)
	assert.True(t, status.Head)
}

// TestLifecycle_LogOrder verifies that the log replays commits oldest
// first and carries the messages and timestamps that were recorded.
func TestLifecycle_LogOrder(t *testing.T) {
	cfg, st := newTestRepo(t)

	writeFile(t, cfg, "a.txt", "one")
	h1 := stageAndCommit(t, cfg, st, "first", "a.txt")
	writeFile(t, cfg, "a.txt", "two")
	h2 := stageAndCommit(t, cfg, st, "second", "a.txt")

	var hashes []string
	err := Log(st, func(c *models.Commit) error {
		hashes = append(hashes, c.Hash)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{h1, h2}, hashes)
}
