package registry

import (
	"context"
	"sync"
	"time"

	"github.com/daehokang/roomcast/internal/domain"
)

type binding struct {
	userID    string
	expiresAt time.Time // zero means no expiry
}

// MemoryRegistry is a process-local registry with the same contract as the
// Redis one. Used by tests and single-node development setups.
type MemoryRegistry struct {
	mu       sync.RWMutex
	bindings map[string]binding
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		bindings: make(map[string]binding),
	}
}

func (r *MemoryRegistry) Bind(_ context.Context, connID, userID string, ttl time.Duration) error {
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	r.mu.Lock()
	r.bindings[connID] = binding{userID: userID, expiresAt: expiresAt}
	r.mu.Unlock()
	return nil
}

func (r *MemoryRegistry) Resolve(_ context.Context, connID string) (string, error) {
	r.mu.RLock()
	b, ok := r.bindings[connID]
	r.mu.RUnlock()

	if !ok {
		return "", domain.ErrBindingNotFound
	}
	if !b.expiresAt.IsZero() && time.Now().After(b.expiresAt) {
		r.mu.Lock()
		delete(r.bindings, connID)
		r.mu.Unlock()
		return "", domain.ErrBindingNotFound
	}

	return b.userID, nil
}

func (r *MemoryRegistry) Unbind(_ context.Context, connID string) error {
	r.mu.Lock()
	delete(r.bindings, connID)
	r.mu.Unlock()
	return nil
}
