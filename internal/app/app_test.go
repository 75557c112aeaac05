package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lamp/pkg/types"
)

func TestDetachedAccessFails(t *testing.T) {
	a := New()

	_, err := a.Catalog()
	assert.ErrorIs(t, err, types.ErrDetached)
	_, err = a.Annotations()
	assert.ErrorIs(t, err, types.ErrDetached)
	_, err = a.VerseOfTheDay(context.Background())
	assert.ErrorIs(t, err, types.ErrDetached)
	_, _, err = a.CatalogCounts(context.Background())
	assert.ErrorIs(t, err, types.ErrDetached)
	assert.NoError(t, a.Detach(), "detaching a detached app")
}

func TestAttachRejectsInvalidConfig(t *testing.T) {
	a := New()
	assert.ErrorIs(t, a.Attach(context.Background(), types.Config{}), types.ErrBackendEmpty)
	assert.ErrorIs(t, a.Attach(context.Background(), types.Config{Backend: "redis"}), types.ErrBackendUnknown)
}

func TestAttachTwice(t *testing.T) {
	ctx := context.Background()
	a := New()
	require.NoError(t, a.Attach(ctx, types.Config{Backend: types.BackendMemory}))
	defer a.Detach()

	assert.ErrorIs(t, a.Attach(ctx, types.Config{Backend: types.BackendMemory}), types.ErrAlreadyAttached)
}

func TestAttachMemory(t *testing.T) {
	ctx := context.Background()
	a := New()
	require.NoError(t, a.Attach(ctx, types.Config{Backend: types.BackendMemory}))
	defer a.Detach()

	c, err := a.Catalog()
	require.NoError(t, err)
	books, err := c.Books(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 66)

	nBooks, nVerses, err := a.CatalogCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 66, nBooks)
	assert.Positive(t, nVerses)

	daily, err := a.VerseOfTheDay(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, daily.Verse.Text)
	assert.NotEmpty(t, daily.Prayer)
}

func TestAnnotationsSurviveReattach(t *testing.T) {
	for _, backend := range []string{types.BackendFile, types.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			cfg := types.Config{Backend: backend, DataDir: filepath.Join(t.TempDir(), "data")}

			a := New()
			require.NoError(t, a.Attach(ctx, cfg))
			ann, err := a.Annotations()
			require.NoError(t, err)
			_, err = ann.SaveNote(ctx, "43-3-16", "remember")
			require.NoError(t, err)
			require.NoError(t, a.Detach())

			assert.FileExists(t, filepath.Join(cfg.DataDir, CatalogFile))

			require.NoError(t, a.Attach(ctx, cfg))
			defer a.Detach()
			ann, err = a.Annotations()
			require.NoError(t, err)
			notes := ann.Notes(ctx)
			require.Len(t, notes, 1)
			assert.Equal(t, "remember", notes[0].Text)
		})
	}
}

func TestAttachCatalogFailureIsFatal(t *testing.T) {
	dataDir := t.TempDir()
	// A directory where the database file belongs cannot be opened.
	require.NoError(t, os.Mkdir(filepath.Join(dataDir, CatalogFile), 0o755))

	a := New()
	err := a.Attach(context.Background(), types.Config{Backend: types.BackendFile, DataDir: dataDir})
	assert.ErrorIs(t, err, types.ErrCatalogInit)

	_, err = a.Catalog()
	assert.ErrorIs(t, err, types.ErrDetached)
}

func TestHistoryLimitFromConfig(t *testing.T) {
	ctx := context.Background()
	a := New()
	require.NoError(t, a.Attach(ctx, types.Config{Backend: types.BackendMemory, HistoryLimit: 2}))
	defer a.Detach()

	ann, err := a.Annotations()
	require.NoError(t, err)
	for _, id := range []string{"1-1-1", "1-1-2", "1-1-3"} {
		require.NoError(t, ann.AddToHistory(ctx, id, "Genesis", 1, 1, "text"))
	}
	assert.Len(t, ann.History(ctx), 2)
}
