package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"
)

// FileDigest pairs a snapshot-relative path with the hex digest of the
// file's content at commit time.
type FileDigest struct {
	Path   string
	Digest string
}

// GenerateCommitHash generates a content-derived commit hash.
// The hash covers a Merkle digest of the snapshot's files together with
// the message, parent hash, and timestamp, so two commits with identical
// trees at different points in history still get distinct hashes.
func GenerateCommitHash(message string, timestamp time.Time, parentHash string, files []FileDigest) string {
	treeHash := ComputeSnapshotHash(files)
	data := fmt.Sprintf("%s|%s|%s|%s", message, timestamp.Format(time.RFC3339Nano), parentHash, treeHash)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

// ComputeSnapshotHash computes a Merkle hash over a snapshot's files.
// Each (path, digest) pair is hashed individually, the hashes are sorted,
// and then hashed together to produce a deterministic digest.
func ComputeSnapshotHash(files []FileDigest) string {
	if len(files) == 0 {
		return ""
	}

	hashes := make([]string, len(files))
	for i, f := range files {
		h := sha256.Sum256([]byte(f.Path + "|" + f.Digest))
		hashes[i] = hex.EncodeToString(h[:])
	}

	// Sort for deterministic ordering
	sort.Strings(hashes)

	combined := strings.Join(hashes, "")
	final := sha256.Sum256([]byte(combined))
	return hex.EncodeToString(final[:])
}
