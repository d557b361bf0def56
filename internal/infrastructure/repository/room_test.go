package repository

import (
	"context"
	"testing"

	"github.com/daehokang/roomcast/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoom(t *testing.T, r *RoomRepository, owner, title string) *domain.Room {
	t.Helper()
	room := domain.NewRoom(owner, title)
	require.NoError(t, r.Create(context.Background(), room))
	return room
}

func TestRoomRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	r := NewRoomRepository()

	room := newRoom(t, r, "u1", "general")

	got, err := r.GetByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, "general", got.Title)
	assert.Equal(t, "u1", got.Owner)
	assert.Empty(t, got.Members)
}

func TestRoomRepository_GetMissing(t *testing.T) {
	r := NewRoomRepository()

	_, err := r.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestRoomRepository_JoinIsIdempotent(t *testing.T) {
	ctx := context.Background()
	r := NewRoomRepository()
	room := newRoom(t, r, "u1", "general")

	first, err := r.Join(ctx, room.ID, "u2")
	require.NoError(t, err)

	second, err := r.Join(ctx, room.ID, "u2")
	require.NoError(t, err)

	assert.Equal(t, first.Members, second.Members)
	assert.Equal(t, []string{"u2"}, second.Members)
}

func TestRoomRepository_JoinMissingRoom(t *testing.T) {
	r := NewRoomRepository()

	_, err := r.Join(context.Background(), "missing", "u1")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestRoomRepository_LeaveNonMemberIsNoop(t *testing.T) {
	ctx := context.Background()
	r := NewRoomRepository()
	room := newRoom(t, r, "u1", "general")

	_, err := r.Join(ctx, room.ID, "u2")
	require.NoError(t, err)

	got, err := r.Leave(ctx, room.ID, "stranger")
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, got.Members)
}

func TestRoomRepository_LeaveMissingRoom(t *testing.T) {
	r := NewRoomRepository()

	_, err := r.Leave(context.Background(), "missing", "u1")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestRoomRepository_FindOccupied(t *testing.T) {
	ctx := context.Background()
	r := NewRoomRepository()
	room := newRoom(t, r, "u1", "general")

	got, err := r.FindOccupied(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, got, "owner without membership occupies no room")

	_, err = r.Join(ctx, room.ID, "u1")
	require.NoError(t, err)

	got, err = r.FindOccupied(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, room.ID, got.ID)
}

func TestRoomRepository_FindOccupiedConflict(t *testing.T) {
	ctx := context.Background()
	r := NewRoomRepository()
	first := newRoom(t, r, "u1", "first")
	second := newRoom(t, r, "u1", "second")

	// Bypass the gateway's leave-before-join to simulate the anomaly.
	_, err := r.Join(ctx, first.ID, "u2")
	require.NoError(t, err)
	_, err = r.Join(ctx, second.ID, "u2")
	require.NoError(t, err)

	got, err := r.FindOccupied(ctx, "u2")
	assert.ErrorIs(t, err, domain.ErrPresenceConflict)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID, "oldest room wins")
}

func TestRoomRepository_Delete(t *testing.T) {
	ctx := context.Background()
	r := NewRoomRepository()
	room := newRoom(t, r, "u1", "general")

	require.NoError(t, r.Delete(ctx, room.ID))

	_, err := r.GetByID(ctx, room.ID)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)

	assert.ErrorIs(t, r.Delete(ctx, room.ID), domain.ErrRoomNotFound)
}

func TestRoomRepository_DeleteIgnoresMembership(t *testing.T) {
	ctx := context.Background()
	r := NewRoomRepository()
	room := newRoom(t, r, "u1", "general")

	_, err := r.Join(ctx, room.ID, "u2")
	require.NoError(t, err)

	assert.NoError(t, r.Delete(ctx, room.ID))
}

func TestRoomRepository_EnsureIndexesIsNoop(t *testing.T) {
	r := NewRoomRepository()

	assert.NoError(t, r.EnsureIndexes(context.Background()))
}

func TestRoomRepository_FindAllSortedByCreation(t *testing.T) {
	ctx := context.Background()
	r := NewRoomRepository()
	newRoom(t, r, "u1", "first")
	newRoom(t, r, "u2", "second")

	all, err := r.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "first", all[0].Title)
	assert.Equal(t, "second", all[1].Title)
}
