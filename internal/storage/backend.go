package storage

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound is returned by a Backend when the key is absent or expired
var ErrKeyNotFound = errors.New("storage: key not found")

// Backend is one physical key/value store.
// Values are opaque strings; encoding is the Adapter's job.
type Backend interface {
	// Name identifies the backend in logs ("redis", "postgres", "memory")
	Name() string
	Read(ctx context.Context, key string) (string, error)
	// Write stores value. ttl == 0 means no expiry, ttl < 0 deletes the key.
	Write(ctx context.Context, key, value string, ttl time.Duration) error
	// Delete never fails on a missing key
	Delete(ctx context.Context, key string) error
	Close() error
}
