package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRoom(t *testing.T) {
	room := NewRoom("u1", "general")

	assert.NotEmpty(t, room.ID)
	assert.Equal(t, "u1", room.Owner)
	assert.Equal(t, "general", room.Title)
	assert.Empty(t, room.Members)
	assert.False(t, room.CreatedAt.IsZero())
}

func TestRoom_HasMember(t *testing.T) {
	room := NewRoom("u1", "general")
	room.Members = []string{"u2", "u3"}

	assert.True(t, room.HasMember("u2"))
	assert.False(t, room.HasMember("u1"), "ownership does not imply membership")
}
