package lamp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lamp/pkg/types"
)

func TestNewAppLifecycle(t *testing.T) {
	ctx := context.Background()
	a := NewApp()

	_, err := a.Catalog()
	assert.ErrorIs(t, err, types.ErrDetached)

	require.NoError(t, a.Attach(ctx, types.Config{Backend: types.BackendMemory}))
	c, err := a.Catalog()
	require.NoError(t, err)
	v, err := c.Verse(ctx, 43, 3, 16)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "John", v.BookName)

	require.NoError(t, a.Detach())
}
