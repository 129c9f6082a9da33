// Package db defines the storage facade consumed by repositories.
package db

import (
	"context"
	"time"
)

// Store is the database facade for the history repository.
type Store interface {
	Pinger
	ListStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ListStore provides list-based key-value operations.
type ListStore interface {
	// RPush appends values to the list at key and returns the new list length.
	RPush(ctx context.Context, key string, values []string) (int, error)
	// LRange returns list entries from start to stop (inclusive, negative
	// indexes count from the tail, Redis semantics).
	LRange(ctx context.Context, key string, start, stop int) ([]string, error)
	// Expire sets a TTL on key. When nx=true, only if the key has no expiry yet.
	Expire(ctx context.Context, key string, ttl time.Duration, nx bool) error
}
