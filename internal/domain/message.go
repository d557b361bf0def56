package domain

import (
	"context"
	"time"
)

// ChatMessage is a room-scoped broadcast payload as forwarded to the
// downstream publish collaborator.
type ChatMessage struct {
	RoomID  string    `json:"room"`
	UserID  string    `json:"user"`
	Name    string    `json:"name"`
	ConnID  string    `json:"socket"`
	Content string    `json:"content"`
	SentAt  time.Time `json:"sentAt"`
}

// MessagePublisher forwards chat messages downstream. Publishing is
// fire-and-forget: the gateway logs failures and never surfaces them to
// the peer.
type MessagePublisher interface {
	PublishChatMessage(ctx context.Context, msg ChatMessage) error
}
