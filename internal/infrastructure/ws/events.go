package ws

// Inbound event names.
const (
	EventConnecting     = "connecting"
	EventJoinRoom       = "join-room"
	EventLeaveRoom      = "leave-room"
	EventSendMessage    = "send-message"
	EventRefreshMessage = "refresh-message"
)

// Outbound frame events.
const (
	HandshakeEvent = "connect-message"
	ReceiveEvent   = "receive-message"
)

// Action tags the kind of notice inside a receive-message frame.
type Action string

const (
	ActionConnect     Action = "CONNECT"
	ActionJoin        Action = "JOIN"
	ActionLeave       Action = "LEAVE"
	ActionDisconnect  Action = "DISCONNECT"
	ActionSendMessage Action = "SEND_MESSAGE"
	ActionRefreshRoom Action = "REFRESH_ROOM"
)
