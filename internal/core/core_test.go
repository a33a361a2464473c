package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ryandancy/yagc/internal/config"
	"github.com/ryandancy/yagc/internal/store"
)

// newTestRepo initializes a repository in a temp directory and opens its
// store.
func newTestRepo(t *testing.T) (*config.Config, *store.Store) {
	t.Helper()
	root := t.TempDir()

	result, err := Init(root)
	require.NoError(t, err)
	require.True(t, result.Created)

	st, err := OpenStore(result.Config)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	return result.Config, st
}

// writeFile writes content to a path relative to the repository root,
// creating intermediate directories.
func writeFile(t *testing.T, cfg *config.Config, rel, content string) string {
	t.Helper()
	path := filepath.Join(cfg.Root(), rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// readFile reads a path relative to the repository root.
func readFile(t *testing.T, cfg *config.Config, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(cfg.Root(), rel))
	require.NoError(t, err)
	return string(data)
}

// stageAndCommit stages the given relative paths and commits with the
// given message, returning the new commit's hash.
func stageAndCommit(t *testing.T, cfg *config.Config, st *store.Store, message string, rels ...string) string {
	t.Helper()
	paths := make([]string, len(rels))
	for i, r := range rels {
		paths[i] = filepath.Join(cfg.Root(), r)
	}
	_, err := Stage(cfg, st, paths)
	require.NoError(t, err)

	result, err := Commit(context.Background(), cfg, st, StaticMessage(message))
	require.NoError(t, err)
	return result.Commit.Hash
}
