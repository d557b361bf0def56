package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrPresenceConflict = errors.New("user occupies more than one room")
)

// Room is a named broadcast scope. Owner is a single required user id; the
// member set holds the users currently inside the room. A user is expected
// to occupy at most one room at a time, enforced by the gateway's
// leave-before-join discipline rather than by the store.
type Room struct {
	ID        string    `bson:"_id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Owner     string    `bson:"owner" json:"owner"`
	Members   []string  `bson:"members" json:"members"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// RoomRepository is the durable room store.
//
// Join and Leave are set operations: joining an existing member or leaving
// a non-member is a no-op, not an error. Both return the updated room and
// fail with ErrRoomNotFound when the room is absent. FindOccupied returns
// (nil, nil) when the user is in no room; when more than one room claims
// the user it returns the oldest match together with ErrPresenceConflict.
type RoomRepository interface {
	Create(ctx context.Context, room *Room) error
	GetByID(ctx context.Context, id string) (*Room, error)
	FindAll(ctx context.Context) ([]Room, error)
	FindOccupied(ctx context.Context, userID string) (*Room, error)
	Join(ctx context.Context, roomID, userID string) (*Room, error)
	Leave(ctx context.Context, roomID, userID string) (*Room, error)
	Delete(ctx context.Context, roomID string) error
	EnsureIndexes(ctx context.Context) error
}

func NewRoom(ownerID, title string) *Room {
	return &Room{
		ID:        uuid.NewString(),
		Title:     title,
		Owner:     ownerID,
		Members:   []string{},
		CreatedAt: time.Now(),
	}
}

func (r *Room) HasMember(userID string) bool {
	for _, m := range r.Members {
		if m == userID {
			return true
		}
	}
	return false
}
