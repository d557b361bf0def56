package repository

import (
	"context"
	"testing"

	"github.com/daehokang/roomcast/internal/domain"
	"github.com/daehokang/roomcast/internal/infrastructure/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserRepo() *UserRepository {
	return NewUserRepository(password.NewHasherWithCost(4))
}

func TestUserRepository_InsertHashesPassword(t *testing.T) {
	ctx := context.Background()
	hasher := password.NewHasherWithCost(4)
	r := NewUserRepository(hasher)

	user, err := domain.NewUser("alice01", "Alice")
	require.NoError(t, err)
	user.Password = "s3cret"
	require.NoError(t, r.Insert(ctx, user))

	stored := r.users[user.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret", stored.Password, "plaintext must never be stored")
	assert.True(t, hasher.Verify("s3cret", stored.Password))
	assert.Equal(t, "s3cret", user.Password, "insert must not mutate the caller's copy")
}

func TestUserRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	r := newUserRepo()

	user, err := domain.NewUser("alice01", "Alice")
	require.NoError(t, err)
	user.Password = "s3cret"
	require.NoError(t, r.Insert(ctx, user))

	got, err := r.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Name)
	assert.Empty(t, got.Password, "reads must not include the password digest")
}

func TestUserRepository_FindByUserID(t *testing.T) {
	ctx := context.Background()
	r := newUserRepo()

	user, err := domain.NewUser("alice01", "Alice")
	require.NoError(t, err)
	require.NoError(t, r.Insert(ctx, user))

	got, err := r.FindByUserID(ctx, "alice01")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestUserRepository_NotFound(t *testing.T) {
	r := newUserRepo()

	_, err := r.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = r.FindByUserID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
