// Package app owns the lamp application context: the verse catalog and the
// annotation store, created together by Attach and released by Detach.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/mesh-intelligence/lamp/internal/annotations"
	"github.com/mesh-intelligence/lamp/internal/catalog"
	"github.com/mesh-intelligence/lamp/internal/devotional"
	"github.com/mesh-intelligence/lamp/internal/kv"
	"github.com/mesh-intelligence/lamp/internal/log"
	"github.com/mesh-intelligence/lamp/internal/paths"
	"github.com/mesh-intelligence/lamp/pkg/types"
)

// CatalogFile is the catalog database name under the data directory.
const CatalogFile = "catalog.db"

// App is the application context. It is safe for concurrent use.
type App struct {
	mu          sync.RWMutex
	attached    bool
	config      types.Config
	catalog     *catalog.Repository
	kv          kv.Store
	annotations *annotations.Store
	logger      *slog.Logger
}

// New returns a detached App.
func New() *App {
	return &App{logger: log.WithComponent("app")}
}

// Attach validates cfg, prepares the data directory, initializes the catalog
// and opens the annotation store. A catalog failure wraps
// types.ErrCatalogInit and leaves the App detached.
func (a *App) Attach(ctx context.Context, cfg types.Config) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.attached {
		return types.ErrAlreadyAttached
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	catalogPath := ":memory:"
	if cfg.Backend != types.BackendMemory {
		if cfg.DataDir == "" {
			cfg.DataDir = "."
		}
		if err := paths.EnsureDir(cfg.DataDir); err != nil {
			return err
		}
		catalogPath = filepath.Join(cfg.DataDir, CatalogFile)
	}

	repo := catalog.NewRepository(catalogPath)
	if err := repo.Initialize(ctx); err != nil {
		repo.Close()
		return err
	}

	store, err := kv.Open(cfg)
	if err != nil {
		repo.Close()
		return fmt.Errorf("opening annotation store: %w", err)
	}

	a.catalog = repo
	a.kv = store
	a.annotations = annotations.New(store, annotations.Options{HistoryLimit: cfg.GetHistoryLimit()})
	a.config = cfg
	a.attached = true

	a.logger.Debug("attached",
		slog.String("backend", cfg.Backend),
		slog.String("data_dir", cfg.DataDir))
	return nil
}

// Detach closes the catalog and the annotation store. Detaching a detached
// App is a no-op.
func (a *App) Detach() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.attached {
		return nil
	}
	err := errors.Join(a.catalog.Close(), a.kv.Close())

	a.catalog = nil
	a.kv = nil
	a.annotations = nil
	a.attached = false
	return err
}

// Config returns the configuration passed to Attach.
func (a *App) Config() types.Config {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.config
}

// Catalog returns the verse catalog.
func (a *App) Catalog() (types.Catalog, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if !a.attached {
		return nil, types.ErrDetached
	}
	return a.catalog, nil
}

// Annotations returns the annotation store.
func (a *App) Annotations() (types.Annotations, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if !a.attached {
		return nil, types.ErrDetached
	}
	return a.annotations, nil
}

// CatalogCounts returns the number of books and verses in the catalog.
func (a *App) CatalogCounts(ctx context.Context) (books, verses int, err error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if !a.attached {
		return 0, 0, types.ErrDetached
	}
	return a.catalog.Counts(ctx)
}

// VerseOfTheDay returns a random verse with its prayer.
func (a *App) VerseOfTheDay(ctx context.Context) (devotional.Daily, error) {
	c, err := a.Catalog()
	if err != nil {
		return devotional.Daily{}, err
	}
	return devotional.VerseOfTheDay(ctx, c)
}
