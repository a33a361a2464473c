// Package apperrors defines the typed errors surfaced by yagc operations.
// Structural errors (wrong mode, bad reference, nothing to do) abort the
// operation with no state change; TransientIOError is retryable.
package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions that carry no extra data.
var (
	// ErrNotARepository is returned when no .yagc directory can be found.
	ErrNotARepository = errors.New("not a yagc repository (or any parent up to root)")

	// ErrNotMutable is returned when add/remove/commit/reset is attempted
	// while a non-latest commit is checked out.
	ErrNotMutable = errors.New("repository is not mutable: HEAD is not checked out")

	// ErrNothingToCommit is returned when commit finds no staged files
	// and no deletions.
	ErrNothingToCommit = errors.New("nothing to commit")

	// ErrEmptyHistory is returned when HEAD is requested but the commit
	// log is empty.
	ErrEmptyHistory = errors.New("the commit log is empty")

	// ErrNotConfirmed is returned when a destructive operation was not
	// confirmed by the caller.
	ErrNotConfirmed = errors.New("operation not confirmed")
)

// FileNotFoundError reports a staging target that does not exist.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file %s doesn't exist", e.Path)
}

// AlreadyStagedError reports a path that is already in the staged set.
// Staging treats it as a per-path warning, not an abort.
type AlreadyStagedError struct {
	Path string
}

func (e *AlreadyStagedError) Error() string {
	return fmt.Sprintf("%s already staged", e.Path)
}

// NotStagedError reports an unstage target that is not in the staged set.
type NotStagedError struct {
	Path string
}

func (e *NotStagedError) Error() string {
	return fmt.Sprintf("%s not staged", e.Path)
}

// AmbiguousPrefixError reports a hash prefix matching more than one commit.
type AmbiguousPrefixError struct {
	Prefix string
}

func (e *AmbiguousPrefixError) Error() string {
	return fmt.Sprintf("%s is ambiguous; use a more specific commit hash prefix", e.Prefix)
}

// NoSuchCommitError reports a reference matching no commit.
type NoSuchCommitError struct {
	Ref string
}

func (e *NoSuchCommitError) Error() string {
	return fmt.Sprintf("%s is not a valid commit hash prefix or HEAD", e.Ref)
}

// TransientIOError wraps a storage failure that is worth retrying with
// backoff. It is surfaced only after the store's internal retries are
// exhausted.
type TransientIOError struct {
	Op  string
	Err error
}

func (e *TransientIOError) Error() string {
	return fmt.Sprintf("transient storage error during %s: %v", e.Op, e.Err)
}

func (e *TransientIOError) Unwrap() error {
	return e.Err
}

// ConsistencyFault reports a tracked file missing from the snapshot it
// should have been carried forward from. It is non-fatal: the commit
// skips the file and continues.
type ConsistencyFault struct {
	Path     string
	Snapshot string
}

func (e *ConsistencyFault) Error() string {
	return fmt.Sprintf("tracked file %s is missing from snapshot %s", e.Path, e.Snapshot)
}
