package ports

import "context"

// Store is a small key/value capability used for durable client preferences.
// It stands in for browser local storage; implementations live in
// internal/adapters (memory, sqlite, redis, postgres).
type Store interface {
	// Get returns the value stored under key. ok is false when nothing is stored.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
