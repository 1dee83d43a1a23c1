// Package backend provides the local key-value stores the task list
// persists into.
//
// A backend is a minimal KV surface: Get, Put, Close, with values
// treated as opaque bytes. The default implementation is a single-file
// SQLite database; Redis and in-memory implementations cover remote and
// throwaway use.
package backend

import (
	"context"
	"errors"
)

// ErrNotFound reports that a key has no stored value. A fresh database
// returns it on first read; callers treat it as nothing persisted yet.
var ErrNotFound = errors.New("backend: key not found")

// Backend is a minimal key-value store.
//
// Implementations are not required to be safe for concurrent use; the
// task store drives them from a single goroutine.
type Backend interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores value under key, replacing any prior value.
	Put(ctx context.Context, key string, value []byte) error
	// Close releases underlying resources.
	Close() error
}
