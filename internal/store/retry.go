package store

import (
	"errors"
	"log/slog"
	"math"
	"math/rand"
	"time"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/ryandancy/yagc/internal/apperrors"
)

// RetryConfig configures retry behavior for transient storage errors.
type RetryConfig struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	JitterFraction float64 // 0.0 to 1.0
}

// DefaultRetryConfig returns sensible retry defaults.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:     3,
		InitialBackoff: 250 * time.Millisecond,
		MaxBackoff:     5 * time.Second,
		JitterFraction: 0.25,
	}
}

// isTransient returns true for errors that are worth retrying: lock
// contention from a concurrent invocation against the same repository.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		code := se.Code() & 0xff
		return code == sqlite3.SQLITE_BUSY || code == sqlite3.SQLITE_LOCKED
	}
	return false
}

// backoff computes the delay for the given attempt with jitter.
func (rc *RetryConfig) backoff(attempt int) time.Duration {
	base := float64(rc.InitialBackoff) * math.Pow(2, float64(attempt))
	if base > float64(rc.MaxBackoff) {
		base = float64(rc.MaxBackoff)
	}
	jitter := base * rc.JitterFraction * (rand.Float64()*2 - 1) // +/- jitter
	d := time.Duration(base + jitter)
	if d < 0 {
		d = 0
	}
	return d
}

// withRetry executes fn, retrying transient errors with bounded backoff.
// An operation never blocks on a lock forever: when retries are exhausted
// the last error is surfaced as a TransientIOError.
func (s *Store) withRetry(operation string, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= s.retry.MaxRetries; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !isTransient(lastErr) {
			return lastErr
		}
		if attempt < s.retry.MaxRetries {
			d := s.retry.backoff(attempt)
			slog.Debug("retrying after transient storage error",
				"op", operation, "attempt", attempt+1, "backoff", d, "err", lastErr)
			time.Sleep(d)
		}
	}
	return &apperrors.TransientIOError{Op: operation, Err: lastErr}
}
