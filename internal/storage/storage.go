// Package storage provides the key-value backends behind user settings.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when a key has no value
var ErrNotFound = errors.New("storage: key not found")

// Store is a small key-value store for JSON-encoded values
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Backend names accepted by Open
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Open returns the store for backend. dsn is a file path for sqlite and a
// redis:// URL for redis; it is ignored for memory.
func Open(ctx context.Context, backend, dsn string) (Store, error) {
	switch backend {
	case BackendMemory, "":
		return NewMemoryStore(), nil
	case BackendSQLite:
		return NewSQLiteStore(ctx, dsn)
	case BackendRedis:
		return NewRedisStore(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown settings backend %q", backend)
	}
}
