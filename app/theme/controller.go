// Package theme switches a page between light and dark styles and remembers the choice.
//
// A Controller reads the persisted mode from a Store, and pushes the matching palette
// row to a StyleSink. Both are injected, so the same controller serves an HTML page,
// a JSON client or a test.
package theme

import (
	"context"
	"errors"
	"sync"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/shade/app/enum"
	"github.com/umputun/shade/app/store"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// StorageKey is the key holding the persisted mode sentinel.
const StorageKey = "theme"

// Store is the persistent key-value capability.
// A missing key must be reported as store.ErrNotFound.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// StyleSink receives a complete palette row on every apply.
type StyleSink interface {
	Apply(s Styles)
}

// Controller keeps the current mode for one page and keeps the sink and the store in line with it.
type Controller struct {
	store Store
	sink  StyleSink

	mu   sync.Mutex
	mode enum.ThemeMode
}

// New makes a controller in light mode. Nothing is applied until Initialize.
func New(st Store, sink StyleSink) *Controller {
	return &Controller{store: st, sink: sink, mode: enum.ThemeModeLight}
}

// Initialize loads the persisted mode and applies it. Read failures resolve to light.
func (c *Controller) Initialize(ctx context.Context) enum.ThemeMode {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mode = enum.ThemeModeLight
	val, err := c.store.Get(ctx, StorageKey)
	switch {
	case errors.Is(err, store.ErrNotFound):
		log.Printf("[DEBUG] no stored theme, using %s", c.mode)
	case err != nil:
		log.Printf("[WARN] can't read stored theme, using %s: %v", c.mode, err)
	default:
		c.mode = enum.ParseSentinel(string(val))
	}

	c.apply()
	return c.mode
}

// Toggle flips the mode, persists it and applies it.
// A failed write is logged, the new mode is applied anyway.
func (c *Controller) Toggle(ctx context.Context) enum.ThemeMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(ctx, c.mode.Toggle())
	return c.mode
}

// Set switches to the given mode, persists and applies it.
func (c *Controller) Set(ctx context.Context, mode enum.ThemeMode) enum.ThemeMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	if mode != enum.ThemeModeDark {
		mode = enum.ThemeModeLight
	}
	c.set(ctx, mode)
	return c.mode
}

// Mode returns the current mode.
func (c *Controller) Mode() enum.ThemeMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// set must be called with lock held
func (c *Controller) set(ctx context.Context, mode enum.ThemeMode) {
	c.mode = mode
	if err := c.store.Set(ctx, StorageKey, []byte(mode.Sentinel())); err != nil {
		log.Printf("[WARN] can't persist theme %s: %v", mode, err)
	}
	c.apply()
}

// apply must be called with lock held
func (c *Controller) apply() {
	c.sink.Apply(Palette(c.mode))
}
