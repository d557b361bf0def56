package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/daehokang/roomcast/internal/domain"
)

// RoomRepository is the in-memory room store. Member updates serialize on
// the store mutex, which gives the per-room linearizability the contract
// asks for on a single node.
type RoomRepository struct {
	mu    sync.RWMutex
	rooms map[string]*domain.Room
}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{
		rooms: make(map[string]*domain.Room),
	}
}

func (r *RoomRepository) Create(_ context.Context, room *domain.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := cloneRoom(room)
	r.rooms[room.ID] = cp
	return nil
}

func (r *RoomRepository) GetByID(_ context.Context, id string) (*domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return cloneRoom(room), nil
}

func (r *RoomRepository) FindAll(_ context.Context) ([]domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		all = append(all, *cloneRoom(room))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return all, nil
}

func (r *RoomRepository) FindOccupied(_ context.Context, userID string) (*domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*domain.Room
	for _, room := range r.rooms {
		if room.HasMember(userID) {
			matches = append(matches, room)
		}
	}

	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return cloneRoom(matches[0]), nil
	}

	// One room per user should hold; report the anomaly with the oldest match.
	sort.Slice(matches, func(i, j int) bool { return matches[i].CreatedAt.Before(matches[j].CreatedAt) })
	return cloneRoom(matches[0]), domain.ErrPresenceConflict
}

func (r *RoomRepository) Join(_ context.Context, roomID, userID string) (*domain.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}

	if !room.HasMember(userID) {
		room.Members = append(room.Members, userID)
	}
	return cloneRoom(room), nil
}

func (r *RoomRepository) Leave(_ context.Context, roomID, userID string) (*domain.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}

	for i, m := range room.Members {
		if m == userID {
			room.Members = append(room.Members[:i], room.Members[i+1:]...)
			break
		}
	}
	return cloneRoom(room), nil
}

func (r *RoomRepository) Delete(_ context.Context, roomID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[roomID]; !ok {
		return domain.ErrRoomNotFound
	}
	delete(r.rooms, roomID)
	return nil
}

// EnsureIndexes is a no-op; the in-memory store has nothing to index.
func (r *RoomRepository) EnsureIndexes(_ context.Context) error {
	return nil
}

func cloneRoom(room *domain.Room) *domain.Room {
	cp := *room
	cp.Members = append([]string(nil), room.Members...)
	return &cp
}
