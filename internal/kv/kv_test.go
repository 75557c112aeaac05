package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lamp/pkg/types"
)

// backends returns a fresh instance of every Store implementation.
func backends(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFileStore(filepath.Join(t.TempDir(), "kv"))
	require.NoError(t, err)
	sqliteStore, err := NewSQLiteStore(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)

	stores := map[string]Store{
		"file":   fileStore,
		"sqlite": sqliteStore,
		"memory": NewMemoryStore(),
	}
	t.Cleanup(func() {
		for _, s := range stores {
			s.Close()
		}
	})
	return stores
}

func TestStoreContract(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(ctx, "bible_notes")
			assert.ErrorIs(t, err, ErrNotFound, "missing key")

			require.NoError(t, s.Set(ctx, "bible_notes", []byte(`[]`)))
			got, err := s.Get(ctx, "bible_notes")
			require.NoError(t, err)
			assert.Equal(t, `[]`, string(got))

			require.NoError(t, s.Set(ctx, "bible_notes", []byte(`[{"id":"a"}]`)))
			got, err = s.Get(ctx, "bible_notes")
			require.NoError(t, err)
			assert.Equal(t, `[{"id":"a"}]`, string(got), "set replaces the whole value")

			require.NoError(t, s.Delete(ctx, "bible_notes"))
			_, err = s.Get(ctx, "bible_notes")
			assert.ErrorIs(t, err, ErrNotFound)

			assert.NoError(t, s.Delete(ctx, "bible_notes"), "deleting a missing key succeeds")
		})
	}
}

func TestStoreRejectsInvalidKeys(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, key := range []string{"", ".", "..", "a/b", `a\b`} {
				_, err := s.Get(ctx, key)
				assert.ErrorIs(t, err, ErrInvalidKey, "get %q", key)
				assert.ErrorIs(t, s.Set(ctx, key, []byte("x")), ErrInvalidKey, "set %q", key)
				assert.ErrorIs(t, s.Delete(ctx, key), ErrInvalidKey, "delete %q", key)
			}
		})
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	value := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", value))
	value[0] = 'x'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[0] = 'y'
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Set(ctx, "bible_history", []byte(`[]`)))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "bible_history.json", entries[0].Name())
}

func TestStoreClosed(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set(ctx, "bible_notes", []byte(`[]`)))
			require.NoError(t, s.Close())
			require.NoError(t, s.Close(), "close is idempotent")

			_, err := s.Get(ctx, "bible_notes")
			assert.ErrorIs(t, err, ErrClosed)
			assert.ErrorIs(t, s.Set(ctx, "bible_notes", nil), ErrClosed)
			assert.ErrorIs(t, s.Delete(ctx, "bible_notes"), ErrClosed)
		})
	}
}

func TestFileStoreHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	assert.ErrorIs(t, s.Set(ctx, "k", []byte("v")), context.Canceled)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "annotations.db")

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "bible_bookmarks", []byte(`[1]`)))
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()
	got, err := reopened.Get(ctx, "bible_bookmarks")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(got))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		backend string
		check   func(t *testing.T, s Store)
		wantErr error
	}{
		{
			name:    "file backend creates annotations directory",
			backend: types.BackendFile,
			check: func(t *testing.T, s Store) {
				assert.IsType(t, &FileStore{}, s)
				assert.DirExists(t, filepath.Join(dir, annotationsDir))
			},
		},
		{
			name:    "sqlite backend creates annotations.db",
			backend: types.BackendSQLite,
			check: func(t *testing.T, s Store) {
				assert.IsType(t, &SQLiteStore{}, s)
				assert.FileExists(t, filepath.Join(dir, annotationsDB))
			},
		},
		{
			name:    "memory backend",
			backend: types.BackendMemory,
			check: func(t *testing.T, s Store) {
				assert.IsType(t, &MemoryStore{}, s)
			},
		},
		{
			name:    "unknown backend",
			backend: "redis",
			wantErr: types.ErrBackendUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(types.Config{Backend: tt.backend, DataDir: dir})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			defer s.Close()
			tt.check(t, s)
		})
	}
}
