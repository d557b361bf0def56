package domain

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidUsername = errors.New("username can only contain letters, numbers, underscores, and hyphens")
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*[a-zA-Z0-9]$|^[a-zA-Z0-9]$`)

// User is the durable identity a connection asserts at bind time. The
// coordinator never mutates users; it only resolves them for display names
// and ownership checks.
type User struct {
	ID       string    `bson:"_id" json:"id"`
	UserID   string    `bson:"user_id" json:"userId"`
	Name     string    `bson:"name" json:"name"`
	Password string    `bson:"password" json:"-"`
	Joined   time.Time `bson:"joined" json:"joined"`
}

// UserRepository is the user-lookup collaborator. Reads never include the
// password digest.
type UserRepository interface {
	Insert(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByUserID(ctx context.Context, userID string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
}

func NewUser(userID, rawName string) (*User, error) {
	name := strings.ToLower(strings.TrimSpace(rawName))
	if len(name) < 2 || len(name) > 32 || !usernamePattern.MatchString(name) {
		return nil, ErrInvalidUsername
	}

	return &User{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   name,
		Joined: time.Now(),
	}, nil
}
