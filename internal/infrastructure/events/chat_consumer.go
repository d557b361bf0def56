package events

import (
	"context"
	"encoding/json"

	"github.com/daehokang/roomcast/internal/infrastructure/contracts"
	"github.com/daehokang/roomcast/internal/infrastructure/logging"
	"github.com/daehokang/roomcast/internal/infrastructure/messaging"
	"github.com/rabbitmq/amqp091-go"
)

type chatConsumer struct {
	rabbitmq *messaging.RabbitMQ
	logger   logging.Logger
}

func NewChatConsumer(rabbitmq *messaging.RabbitMQ, logger logging.Logger) *chatConsumer {
	return &chatConsumer{
		rabbitmq: rabbitmq,
		logger:   logger,
	}
}

func (c *chatConsumer) Listen() error {
	return c.rabbitmq.ConsumeMessages(messaging.MessagesQueue, func(ctx context.Context, msg amqp091.Delivery) error {
		var message contracts.AmqpMessage
		if err := json.Unmarshal(msg.Body, &message); err != nil {
			c.logger.Errorf("failed to unmarshal amqp envelope: %v", err)
			return err
		}

		var payload messaging.ChatEventData
		if err := json.Unmarshal(message.Data, &payload); err != nil {
			c.logger.Errorf("failed to unmarshal chat event: %v", err)
			return err
		}

		c.logger.Debug(logging.RabbitMQ, logging.Message, "chat message consumed", map[logging.ExtraKey]any{
			logging.RoomID: payload.Message.RoomID,
			logging.UserID: payload.Message.UserID,
		})

		return nil
	})
}
