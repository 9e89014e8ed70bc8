package theme

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/shade/app/enum"
	"github.com/umputun/shade/app/store"
	"github.com/umputun/shade/app/theme/mocks"
)

func TestController_Initialize(t *testing.T) {
	tests := []struct {
		name     string
		stored   *string
		expected enum.ThemeMode
	}{
		{name: "absent", stored: nil, expected: enum.ThemeModeLight},
		{name: "light-mode", stored: ptr("light-mode"), expected: enum.ThemeModeLight},
		{name: "dark-mode", stored: ptr("dark-mode"), expected: enum.ThemeModeDark},
		{name: "unknown value", stored: ptr("blue-mode"), expected: enum.ThemeModeLight},
		{name: "empty value", stored: ptr(""), expected: enum.ThemeModeLight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := newMemStore()
			if tc.stored != nil {
				st.data[StorageKey] = []byte(*tc.stored)
			}
			rec := &Recorder{}
			c := New(st, rec)

			mode := c.Initialize(context.Background())
			assert.Equal(t, tc.expected, mode)
			assert.Equal(t, tc.expected, c.Mode())
			assert.Equal(t, Palette(tc.expected), rec.Styles())
			assert.Equal(t, tc.expected.Dark(), rec.Styles().Dark)
			assert.Equal(t, 1, rec.Applied())
			assert.Empty(t, st.SetCalls(), "initialize never writes")
		})
	}
}

func TestController_InitializeScenarios(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		rec := &Recorder{}
		New(newMemStore(), rec).Initialize(context.Background())
		assert.Equal(t, "Switch to Dark Mode", rec.Styles().ToggleText)
		bg, ok := rec.Styles().Get(VarBackgroundColor)
		require.True(t, ok)
		assert.Equal(t, "#f9f9f9", bg)
		assert.False(t, rec.Styles().Dark)
	})

	t.Run("dark stored", func(t *testing.T) {
		st := newMemStore()
		st.data[StorageKey] = []byte("dark-mode")
		rec := &Recorder{}
		New(st, rec).Initialize(context.Background())
		assert.Equal(t, "Switch to Light Mode", rec.Styles().ToggleText)
		bg, ok := rec.Styles().Get(VarBackgroundColor)
		require.True(t, ok)
		assert.Equal(t, "#333", bg)
		assert.True(t, rec.Styles().Dark)
	})
}

func TestController_InitializeReadError(t *testing.T) {
	st := &mocks.StoreMock{
		GetFunc: func(context.Context, string) ([]byte, error) { return nil, errors.New("storage disabled") },
	}
	rec := &Recorder{}
	c := New(st, rec)

	assert.Equal(t, enum.ThemeModeLight, c.Initialize(context.Background()))
	assert.Equal(t, Palette(enum.ThemeModeLight), rec.Styles())
	require.Len(t, st.GetCalls(), 1)
	assert.Equal(t, StorageKey, st.GetCalls()[0].Key)
}

func TestController_Toggle(t *testing.T) {
	t.Run("light to dark", func(t *testing.T) {
		st := newMemStore()
		st.data[StorageKey] = []byte("light-mode")
		rec := &Recorder{}
		c := New(st, rec)
		c.Initialize(context.Background())

		assert.Equal(t, enum.ThemeModeDark, c.Toggle(context.Background()))
		assert.Equal(t, "dark-mode", string(st.data[StorageKey]))
		link, _ := rec.Styles().Get(VarLinkColor)
		assert.Equal(t, "#fff", link)
		assert.True(t, rec.Styles().Dark)
	})

	t.Run("dark to light", func(t *testing.T) {
		st := newMemStore()
		st.data[StorageKey] = []byte("dark-mode")
		rec := &Recorder{}
		c := New(st, rec)
		c.Initialize(context.Background())

		assert.Equal(t, enum.ThemeModeLight, c.Toggle(context.Background()))
		assert.Equal(t, "light-mode", string(st.data[StorageKey]))
		link, _ := rec.Styles().Get(VarLinkColor)
		assert.Equal(t, "#660000", link)
		assert.False(t, rec.Styles().Dark)
	})

	t.Run("first visit toggle persists dark", func(t *testing.T) {
		st := newMemStore()
		rec := &Recorder{}
		c := New(st, rec)
		c.Initialize(context.Background())
		c.Toggle(context.Background())

		require.Len(t, st.SetCalls(), 1)
		assert.Equal(t, StorageKey, st.SetCalls()[0].Key)
		assert.Equal(t, "dark-mode", string(st.SetCalls()[0].Value))
	})
}

func TestController_ToggleIsInvolution(t *testing.T) {
	for _, stored := range []string{"", "light-mode", "dark-mode"} {
		t.Run("stored="+stored, func(t *testing.T) {
			st := newMemStore()
			if stored != "" {
				st.data[StorageKey] = []byte(stored)
			}
			rec := &Recorder{}
			c := New(st, rec)
			ctx := context.Background()

			initial := c.Initialize(ctx)
			initialStyles := rec.Styles()

			c.Toggle(ctx)
			assert.NotEqual(t, initial, c.Mode())
			assert.Equal(t, c.Mode().Sentinel(), string(st.data[StorageKey]), "stored value follows the marker")

			c.Toggle(ctx)
			assert.Equal(t, initial, c.Mode())
			assert.Equal(t, initialStyles, rec.Styles())
			assert.Equal(t, initial.Sentinel(), string(st.data[StorageKey]))
			assert.Equal(t, 3, rec.Applied())
			assert.Len(t, st.SetCalls(), 2, "one write per toggle")
		})
	}
}

func TestController_ToggleWriteError(t *testing.T) {
	st := &mocks.StoreMock{
		GetFunc: func(context.Context, string) ([]byte, error) { return nil, store.ErrNotFound },
		SetFunc: func(context.Context, string, []byte) error { return errors.New("quota exceeded") },
	}
	rec := &Recorder{}
	c := New(st, rec)
	c.Initialize(context.Background())

	assert.Equal(t, enum.ThemeModeDark, c.Toggle(context.Background()))
	assert.Equal(t, Palette(enum.ThemeModeDark), rec.Styles(), "applied even when not persisted")
	assert.Len(t, st.SetCalls(), 1)
}

func TestController_Set(t *testing.T) {
	st := newMemStore()
	rec := &Recorder{}
	c := New(st, rec)
	ctx := context.Background()
	c.Initialize(ctx)

	assert.Equal(t, enum.ThemeModeDark, c.Set(ctx, enum.ThemeModeDark))
	assert.Equal(t, "dark-mode", string(st.data[StorageKey]))
	assert.Equal(t, Palette(enum.ThemeModeDark), rec.Styles())

	// setting the same mode again still writes and applies
	assert.Equal(t, enum.ThemeModeDark, c.Set(ctx, enum.ThemeModeDark))
	assert.Len(t, st.SetCalls(), 2)

	assert.Equal(t, enum.ThemeModeLight, c.Set(ctx, enum.ThemeMode{}), "zero mode means light")
	assert.Equal(t, "light-mode", string(st.data[StorageKey]))
}

func TestController_ApplyNeverMixesRows(t *testing.T) {
	st := newMemStore()
	sink := &collectSink{}
	c := New(st, sink)
	ctx := context.Background()

	c.Initialize(ctx)
	for range 5 {
		c.Toggle(ctx)
	}

	require.Len(t, sink.applied, 6)
	for i, s := range sink.applied {
		assert.Equal(t, Palette(s.Mode), s, "apply #%d carries exactly one row", i)
		assert.Len(t, s.Vars, 6)
	}
}

type collectSink struct {
	applied []Styles
}

func (c *collectSink) Apply(s Styles) { c.applied = append(c.applied, s) }

type memStore struct {
	*mocks.StoreMock
	data map[string][]byte
}

// newMemStore makes a map-backed store mock
func newMemStore() *memStore {
	m := &memStore{data: map[string][]byte{}}
	m.StoreMock = &mocks.StoreMock{
		GetFunc: func(_ context.Context, key string) ([]byte, error) {
			if v, ok := m.data[key]; ok {
				return v, nil
			}
			return nil, store.ErrNotFound
		},
		SetFunc: func(_ context.Context, key string, value []byte) error {
			m.data[key] = value
			return nil
		},
	}
	return m
}

func ptr(s string) *string { return &s }
