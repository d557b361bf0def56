package messaging

import "github.com/daehokang/roomcast/internal/domain"

const (
	MessagesQueue   = "messages"
	DeadLetterQueue = "dead_letter_queue"
)

type ChatEventData struct {
	Message domain.ChatMessage `json:"message"`
}
