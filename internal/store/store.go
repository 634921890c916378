// Package store provides a key-value cache abstraction with in-memory and
// Redis implementations.
package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a key does not exist in the store.
var ErrNotFound = errors.New("store: key not found")

// Store defines the key-value cache operations used by the service.
type Store interface {
	// Set stores a value under key with an optional TTL (0 means no expiry).
	Set(key string, value []byte, ttl time.Duration) error

	// Get retrieves the value for key, or ErrNotFound.
	Get(key string) ([]byte, error)

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(key string) error

	// Exists reports whether key is present and unexpired.
	Exists(key string) (bool, error)

	// Incr atomically increments the integer counter stored at key and
	// returns the new value. Missing keys start at zero.
	Incr(key string) (int64, error)

	// Clear removes all keys.
	Clear() error

	// Close releases any resources held by the store.
	Close() error
}
