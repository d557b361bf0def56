package ws

import "encoding/json"

// Frame is the envelope written to the socket. Every server-initiated
// notice travels under the receive-message event, matching the wire format
// the clients already speak.
type Frame struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Inbound is the envelope read off the socket.
type Inbound struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Inbound payloads
type ConnectingData struct {
	User string `json:"user"`
}

type JoinRoomData struct {
	Room string `json:"room"`
	User string `json:"user"`
}

type LeaveRoomData struct {
	Room string `json:"room"`
	User string `json:"user"`
	Name string `json:"name"`
}

type SendMessageData struct {
	Room    string `json:"room"`
	User    string `json:"user"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// NoticePayload is the body of every receive-message frame. The connection
// id travels as "socket" and the room owner as "master" on the wire.
type NoticePayload struct {
	Type    Action `json:"type"`
	Room    string `json:"room,omitempty"`
	User    string `json:"user,omitempty"`
	Name    string `json:"name,omitempty"`
	Master  string `json:"master,omitempty"`
	ConnID  string `json:"socket,omitempty"`
	Content string `json:"content,omitempty"`
}

func NewHandshake(connID string) *Frame {
	return &Frame{
		Event: HandshakeEvent,
		Data:  connID,
	}
}

// ConnectAckPayload is the bind acknowledgment. Unlike every other notice
// the bound user id travels as "_id" on this frame, matching the shape
// existing clients expect.
type ConnectAckPayload struct {
	Type   Action `json:"type"`
	ConnID string `json:"socket"`
	User   string `json:"_id"`
}

func NewConnectAck(connID, userID string) *Frame {
	return &Frame{
		Event: ReceiveEvent,
		Data: ConnectAckPayload{
			Type:   ActionConnect,
			ConnID: connID,
			User:   userID,
		},
	}
}

func NewJoinNotice(roomID, name, userID string) *Frame {
	return &Frame{
		Event: ReceiveEvent,
		Data: NoticePayload{
			Type: ActionJoin,
			Room: roomID,
			Name: name,
			User: userID,
		},
	}
}

func NewLeaveNotice(roomID, userID, name, ownerID, connID string) *Frame {
	return &Frame{
		Event: ReceiveEvent,
		Data: NoticePayload{
			Type:   ActionLeave,
			Room:   roomID,
			User:   userID,
			Name:   name,
			Master: ownerID,
			ConnID: connID,
		},
	}
}

func NewMessageNotice(roomID, userID, name, connID, content string) *Frame {
	return &Frame{
		Event: ReceiveEvent,
		Data: NoticePayload{
			Type:    ActionSendMessage,
			Room:    roomID,
			User:    userID,
			Name:    name,
			ConnID:  connID,
			Content: content,
		},
	}
}

func NewRefreshNotice() *Frame {
	return &Frame{
		Event: ReceiveEvent,
		Data: NoticePayload{
			Type: ActionRefreshRoom,
		},
	}
}

func NewDisconnectNotice(connID, ownerID, roomID, userID string) *Frame {
	return &Frame{
		Event: ReceiveEvent,
		Data: NoticePayload{
			Type:   ActionDisconnect,
			ConnID: connID,
			Master: ownerID,
			Room:   roomID,
			User:   userID,
		},
	}
}
