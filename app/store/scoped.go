package store

import "context"

// KV is Interface without Close.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Scoped is a view of a store where every key lives under prefix.
// A visitor gets its own Scoped view, the same way a browser origin gets its own local storage.
type Scoped struct {
	store  KV
	prefix string
}

// NewScoped makes a scoped view of st. The prefix is normalized, "a/b" and "/a/b/" are the same scope.
func NewScoped(st KV, prefix string) *Scoped {
	return &Scoped{store: st, prefix: NormalizeKey(prefix)}
}

// Get retrieves the value for key inside the scope.
func (s *Scoped) Get(ctx context.Context, key string) ([]byte, error) {
	return s.store.Get(ctx, s.key(key)) //nolint:wrapcheck // pass through, callers check ErrNotFound
}

// Set stores the value for key inside the scope.
func (s *Scoped) Set(ctx context.Context, key string, value []byte) error {
	return s.store.Set(ctx, s.key(key), value) //nolint:wrapcheck // pass through as is
}

// Delete removes key inside the scope.
func (s *Scoped) Delete(ctx context.Context, key string) error {
	return s.store.Delete(ctx, s.key(key)) //nolint:wrapcheck // pass through, callers check ErrNotFound
}

// Prefix returns the normalized scope prefix.
func (s *Scoped) Prefix() string {
	return s.prefix
}

func (s *Scoped) key(k string) string {
	k = NormalizeKey(k)
	if s.prefix == "" {
		return k
	}
	return s.prefix + "/" + k
}
