package core

import "context"

// MessageProvider supplies the commit message for a commit in progress.
// It is consulted only after the engine has established there is
// something to commit. The call may block indefinitely (e.g. on an
// interactive editor); implementations should honor ctx cancellation.
type MessageProvider interface {
	RequestMessage(ctx context.Context) (string, error)
}

// StaticMessage is a MessageProvider returning a fixed string. An empty
// message is allowed.
type StaticMessage string

func (m StaticMessage) RequestMessage(ctx context.Context) (string, error) {
	return string(m), nil
}
