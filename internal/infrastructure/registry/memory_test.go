package registry

import (
	"context"
	"testing"
	"time"

	"github.com/daehokang/roomcast/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRegistry_BindResolve(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRegistry()

	require.NoError(t, r.Bind(ctx, "c1", "u1", 0))

	userID, err := r.Resolve(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestMemoryRegistry_ResolveUnbound(t *testing.T) {
	r := NewMemoryRegistry()

	_, err := r.Resolve(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrBindingNotFound)
}

func TestMemoryRegistry_RebindOverwrites(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRegistry()

	require.NoError(t, r.Bind(ctx, "c1", "u1", 0))
	require.NoError(t, r.Bind(ctx, "c1", "u2", 0))

	userID, err := r.Resolve(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "u2", userID)
}

func TestMemoryRegistry_UnbindThenResolve(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRegistry()

	require.NoError(t, r.Bind(ctx, "c1", "u1", 0))
	require.NoError(t, r.Unbind(ctx, "c1"))

	_, err := r.Resolve(ctx, "c1")
	assert.ErrorIs(t, err, domain.ErrBindingNotFound)
}

func TestMemoryRegistry_UnbindAbsentIsNoop(t *testing.T) {
	r := NewMemoryRegistry()

	assert.NoError(t, r.Unbind(context.Background(), "never-bound"))
}

func TestMemoryRegistry_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRegistry()

	require.NoError(t, r.Bind(ctx, "c1", "u1", 10*time.Millisecond))

	userID, err := r.Resolve(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)

	time.Sleep(20 * time.Millisecond)

	_, err = r.Resolve(ctx, "c1")
	assert.ErrorIs(t, err, domain.ErrBindingNotFound)
}

func TestMemoryRegistry_ZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRegistry()

	require.NoError(t, r.Bind(ctx, "c1", "u1", 0))

	time.Sleep(20 * time.Millisecond)

	userID, err := r.Resolve(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}
