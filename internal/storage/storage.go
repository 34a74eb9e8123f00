package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no stored value. Callers treat an
// absent key the same as a malformed one: fall back to the slice default.
var ErrNotFound = errors.New("key not found")

// Adapter is the durable key-value facility behind the application store.
// Values are opaque serialized slices; the adapter never interprets them.
type Adapter interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Config selects and configures the storage backend
type Config struct {
	Backend string // file | postgres | valkey
	DataDir string
	Valkey  ValkeyConfig
}
