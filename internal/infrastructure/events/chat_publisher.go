package events

import (
	"context"
	"encoding/json"

	"github.com/daehokang/roomcast/internal/domain"
	"github.com/daehokang/roomcast/internal/infrastructure/contracts"
	"github.com/daehokang/roomcast/internal/infrastructure/messaging"
)

// ChatPublisher forwards chat messages to the broker. It implements
// domain.MessagePublisher.
type ChatPublisher struct {
	rabbitmq *messaging.RabbitMQ
}

func NewChatPublisher(rabbitmq *messaging.RabbitMQ) *ChatPublisher {
	return &ChatPublisher{
		rabbitmq: rabbitmq,
	}
}

func (p *ChatPublisher) PublishChatMessage(ctx context.Context, msg domain.ChatMessage) error {
	payload := messaging.ChatEventData{
		Message: msg,
	}

	chatEventJSON, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return p.rabbitmq.PublishMessage(ctx, contracts.EventMessageSent, contracts.AmqpMessage{
		UserID: msg.UserID,
		Data:   chatEventJSON,
	})
}
