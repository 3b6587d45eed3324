// Package store owns all domain collections and the key-value persistence
// adapter they are mirrored to. The KV interface is the only contact the
// store has with durable storage: string keys mapped to string values, one
// JSON-serialized collection or scalar per key. Drivers exist for Redis
// (primary), MySQL (single kv table) and an in-process map used by tests.
package store

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KV.Get when a key has never been written or
// has been removed. The store treats an absent collection key the same as
// an empty collection and an absent scalar key as "use the built-in default".
var ErrKeyNotFound = errors.New("key not found")

// KV is the persistence adapter contract. Writes may fail (connection loss,
// quota); the store logs and swallows such failures, so implementations
// should return errors rather than retry internally.
type KV interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
