package models

// RepoStatus is the read-only view produced by the status operation.
type RepoStatus struct {
	Root   string   // repository root directory
	Staged []string // staged paths, relative to Root, in staging order
	Head   bool     // true when the latest commit is checked out
}
