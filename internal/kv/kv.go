// Package kv implements the flat, string-keyed persistent namespace that holds
// the annotation collections. Each key maps to one opaque value; writers
// replace whole values.
package kv

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/lamp/pkg/types"
)

// Store is a durable key-value namespace.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key succeeds.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Store errors.
var (
	ErrNotFound   = errors.New("key not found")
	ErrInvalidKey = errors.New("invalid key")
	ErrClosed     = errors.New("store is closed")
)

// File names used under the data directory.
const (
	annotationsDB  = "annotations.db"
	annotationsDir = "annotations"
)

// Open creates the Store selected by cfg.Backend under cfg.DataDir.
func Open(cfg types.Config) (Store, error) {
	switch cfg.Backend {
	case types.BackendFile:
		return NewFileStore(filepath.Join(dataDir(cfg), annotationsDir))
	case types.BackendSQLite:
		return NewSQLiteStore(filepath.Join(dataDir(cfg), annotationsDB))
	case types.BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, cfg.Backend)
	}
}

func dataDir(cfg types.Config) string {
	if cfg.DataDir == "" {
		return "."
	}
	return cfg.DataDir
}

// validateKey rejects keys that cannot be used as a single file name.
func validateKey(key string) error {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
