// Package store provides the persistent key-value storage behind visitor preferences.
// SQLite and PostgreSQL are served by Store, Redis by Redis; Cached and Scoped wrap either.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrNotFound is returned when a key is not found in the store.
var ErrNotFound = errors.New("key not found")

// Interface is implemented by every store.
type Interface interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// DBType identifies the storage backend.
type DBType int

// storage backends, selected by URL
const (
	DBTypeSQLite DBType = iota
	DBTypePostgres
	DBTypeRedis
)

// Options tune backends on Open.
type Options struct {
	RedisPrefix string // prefix for all redis keys, e.g. "shade:"
}

// Open creates a store for the given URL:
// - postgres:// or postgresql:// -> PostgreSQL
// - redis:// or rediss:// -> Redis
// - everything else -> SQLite file
func Open(ctx context.Context, url string, opts Options) (Interface, error) {
	if detectDBType(url) == DBTypeRedis {
		return NewRedis(ctx, url, opts.RedisPrefix)
	}
	return New(url)
}

// detectDBType determines database type from URL.
func detectDBType(url string) DBType {
	lower := strings.ToLower(url)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DBTypePostgres
	case strings.HasPrefix(lower, "redis://"), strings.HasPrefix(lower, "rediss://"):
		return DBTypeRedis
	default:
		return DBTypeSQLite
	}
}

// NormalizeKey normalizes a key by trimming spaces, leading/trailing slashes,
// and replacing spaces with underscores.
func NormalizeKey(key string) string {
	key = strings.TrimSpace(key)
	key = strings.Trim(key, "/")
	key = strings.ReplaceAll(key, " ", "_")
	return key
}

// RWLocker is the locking contract of Store. SQLite gets a real mutex, PostgreSQL a noop.
type RWLocker interface {
	sync.Locker
	RLock()
	RUnlock()
}

type noopLocker struct{}

func (noopLocker) Lock()    {}
func (noopLocker) Unlock()  {}
func (noopLocker) RLock()   {}
func (noopLocker) RUnlock() {}

// keyErr wraps a backend error with the operation and the key.
func keyErr(op, key string, err error) error {
	return fmt.Errorf("failed to %s key %q: %w", op, key, err)
}
