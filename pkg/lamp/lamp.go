// Package lamp is the public entry point for embedding the verse catalog and
// annotation store in another program.
//
// Example:
//
//	a := lamp.NewApp()
//	err := a.Attach(ctx, types.Config{
//	    Backend: types.BackendFile,
//	    DataDir: ".lamp-db",
//	})
//	defer a.Detach()
package lamp

import (
	"context"

	"github.com/mesh-intelligence/lamp/internal/app"
	"github.com/mesh-intelligence/lamp/pkg/types"
)

// Version is the lamp release version.
const Version = "0.1.0"

// App is an attachable application context.
type App interface {
	Attach(ctx context.Context, cfg types.Config) error
	Detach() error
	Catalog() (types.Catalog, error)
	Annotations() (types.Annotations, error)
}

// NewApp returns a detached App; call Attach before use.
func NewApp() App {
	return app.New()
}
