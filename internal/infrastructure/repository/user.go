package repository

import (
	"context"
	"sync"

	"github.com/daehokang/roomcast/internal/domain"
	"github.com/daehokang/roomcast/internal/infrastructure/password"
)

// UserRepository is the in-memory user store twin of the mongo one.
type UserRepository struct {
	mu     sync.RWMutex
	hasher *password.Hasher
	users  map[string]*domain.User
}

func NewUserRepository(hasher *password.Hasher) *UserRepository {
	return &UserRepository{
		hasher: hasher,
		users:  make(map[string]*domain.User),
	}
}

// Insert stores the user, hashing the password first when one is set.
// The caller's copy is left untouched.
func (r *UserRepository) Insert(_ context.Context, user *domain.User) error {
	cp := *user
	if cp.Password != "" {
		digest, err := r.hasher.Hash(cp.Password)
		if err != nil {
			return err
		}
		cp.Password = digest
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[cp.ID] = &cp
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return withoutPassword(user), nil
}

func (r *UserRepository) FindByUserID(_ context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.UserID == userID {
			return withoutPassword(user), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindAll(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		all = append(all, *withoutPassword(user))
	}
	return all, nil
}

func withoutPassword(user *domain.User) *domain.User {
	cp := *user
	cp.Password = ""
	return &cp
}
