package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-pkgz/testutils/containers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("creates sqlite database successfully", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "test.db")
		st, err := New(dbPath)
		require.NoError(t, err)
		defer st.Close()
		assert.NotNil(t, st.db)
		assert.Equal(t, DBTypeSQLite, st.dbType)
		assert.Equal(t, "sqlite", st.dbTypeName())
	})

	t.Run("fails with invalid path", func(t *testing.T) {
		_, err := New("/nonexistent/dir/test.db")
		require.Error(t, err)
	})

	t.Run("rejects redis url", func(t *testing.T) {
		_, err := New("redis://localhost:6379/0")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "use NewRedis")
	})

	t.Run("reopen keeps data", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "test.db")
		st, err := New(dbPath)
		require.NoError(t, err)
		require.NoError(t, st.Set(context.Background(), "theme", []byte("dark-mode")))
		require.NoError(t, st.Close())

		st, err = New(dbPath)
		require.NoError(t, err)
		defer st.Close()
		val, err := st.Get(context.Background(), "theme")
		require.NoError(t, err)
		assert.Equal(t, "dark-mode", string(val))
	})
}

func TestStore_SetGet(t *testing.T) {
	st := newTestStore(t)
	defer st.Close()
	ctx := context.Background()

	t.Run("set and get value", func(t *testing.T) {
		require.NoError(t, st.Set(ctx, "key1", []byte("value1")))
		value, err := st.Get(ctx, "key1")
		require.NoError(t, err)
		assert.Equal(t, []byte("value1"), value)
	})

	t.Run("update existing key", func(t *testing.T) {
		require.NoError(t, st.Set(ctx, "key2", []byte("light-mode")))
		require.NoError(t, st.Set(ctx, "key2", []byte("dark-mode")))
		value, err := st.Get(ctx, "key2")
		require.NoError(t, err)
		assert.Equal(t, []byte("dark-mode"), value)
	})

	t.Run("get nonexistent key returns ErrNotFound", func(t *testing.T) {
		_, err := st.Get(ctx, "nonexistent")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("handles binary data", func(t *testing.T) {
		binary := []byte{0x00, 0x01, 0xFF, 0xFE}
		require.NoError(t, st.Set(ctx, "binary", binary))
		value, err := st.Get(ctx, "binary")
		require.NoError(t, err)
		assert.Equal(t, binary, value)
	})

	t.Run("handles empty and nil value", func(t *testing.T) {
		require.NoError(t, st.Set(ctx, "empty", []byte{}))
		value, err := st.Get(ctx, "empty")
		require.NoError(t, err)
		assert.Empty(t, value)

		require.NoError(t, st.Set(ctx, "nil", nil))
		value, err = st.Get(ctx, "nil")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("canceled context fails", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		err := st.Set(cctx, "canceled", []byte("v"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestStore_Delete(t *testing.T) {
	st := newTestStore(t)
	defer st.Close()
	ctx := context.Background()

	t.Run("delete existing key", func(t *testing.T) {
		require.NoError(t, st.Set(ctx, "visitor/1/theme", []byte("dark-mode")))
		require.NoError(t, st.Delete(ctx, "visitor/1/theme"))
		_, err := st.Get(ctx, "visitor/1/theme")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete nonexistent key returns ErrNotFound", func(t *testing.T) {
		err := st.Delete(ctx, "visitor/2/theme")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStore_UpdatedAt(t *testing.T) {
	st := newTestStore(t)
	defer st.Close()
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, "timekey", []byte("v1")))

	var created, updated1 string
	require.NoError(t, st.db.Get(&created, "SELECT created_at FROM kv WHERE key = ?", "timekey"))
	require.NoError(t, st.db.Get(&updated1, "SELECT updated_at FROM kv WHERE key = ?", "timekey"))
	assert.Equal(t, created, updated1, "created_at and updated_at should match on insert")

	time.Sleep(1100 * time.Millisecond)
	require.NoError(t, st.Set(ctx, "timekey", []byte("v2")))

	var created2, updated2 string
	require.NoError(t, st.db.Get(&created2, "SELECT created_at FROM kv WHERE key = ?", "timekey"))
	require.NoError(t, st.db.Get(&updated2, "SELECT updated_at FROM kv WHERE key = ?", "timekey"))
	assert.Equal(t, created, created2, "created_at should not change on update")
	assert.NotEqual(t, updated1, updated2, "updated_at should change on update")
}

func TestStore_Closed(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Close())

	_, err := st.Get(context.Background(), "key")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `failed to get key "key"`)
}

func TestStore_AdoptQuery(t *testing.T) {
	sqlite := &Store{dbType: DBTypeSQLite}
	pg := &Store{dbType: DBTypePostgres}

	tests := []struct {
		name, query, sqlite, pg string
	}{
		{"select", "SELECT value FROM kv WHERE key = ?",
			"SELECT value FROM kv WHERE key = ?", "SELECT value FROM kv WHERE key = $1"},
		{"upsert", "INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			"INSERT INTO kv (key, value) VALUES ($1, $2) ON CONFLICT(key) DO UPDATE SET value = EXCLUDED.value"},
		{"no placeholders", "SELECT 1", "SELECT 1", "SELECT 1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.sqlite, sqlite.adoptQuery(tc.query))
			assert.Equal(t, tc.pg, pg.adoptQuery(tc.query))
		})
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := New(dbPath)
	require.NoError(t, err)
	return st
}

// PostgreSQL tests using testcontainers

func TestStore_Postgres(t *testing.T) {
	if os.Getenv("SKIP_CONTAINERS") != "" {
		t.Skip("containers disabled")
	}
	ctx := context.Background()

	t.Log("starting postgres container...")
	pgContainer := containers.NewPostgresTestContainerWithDB(ctx, t, "shade_test")
	defer pgContainer.Close(ctx)
	t.Log("postgres container started")

	st, err := New(pgContainer.ConnectionString())
	require.NoError(t, err)
	defer st.Close()

	assert.Equal(t, DBTypePostgres, st.dbType)
	assert.Equal(t, "postgres", st.dbTypeName())

	t.Run("set and get value", func(t *testing.T) {
		require.NoError(t, st.Set(ctx, "visitor/1/theme", []byte("dark-mode")))
		val, err := st.Get(ctx, "visitor/1/theme")
		require.NoError(t, err)
		assert.Equal(t, "dark-mode", string(val))
	})

	t.Run("upsert", func(t *testing.T) {
		require.NoError(t, st.Set(ctx, "visitor/1/theme", []byte("light-mode")))
		val, err := st.Get(ctx, "visitor/1/theme")
		require.NoError(t, err)
		assert.Equal(t, "light-mode", string(val))
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := st.Get(ctx, "visitor/2/theme")
		require.ErrorIs(t, err, ErrNotFound)
	})
}
