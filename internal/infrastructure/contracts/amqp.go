package contracts

// AmqpMessage is the message structure for AMQP.
type AmqpMessage struct {
	UserID string `json:"userId"`
	Data   []byte `json:"data"`
}

// Routing keys - using consistent event/command patterns
const (
	EventMessageSent  = "message.sent"
	EventMemberJoined = "member.joined"
	EventMemberLeft   = "member.left"
	EventDisconnected = "member.disconnected"
)
