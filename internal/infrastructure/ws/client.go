package ws

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"
)

// Client is one live transport session. ID is the transport-assigned
// connection id, unique for the connection's lifetime.
type Client struct {
	ws   *websocket.Conn
	conn peer
	Send chan *Frame
	ID   string
}

func NewClient(conn *websocket.Conn, id string) *Client {
	c := newClient(newConnWrapper(conn), id)
	c.ws = conn
	return c
}

func newClient(conn peer, id string) *Client {
	return &Client{
		conn: conn,
		Send: make(chan *Frame, 64), // buffered to avoid dead-locks on slow clients
		ID:   id,
	}
}

// ReadPump decodes inbound envelopes and hands them to the gateway one at
// a time, which keeps events from the same connection in arrival order.
// When the transport closes it runs the disconnect cleanup.
func (c *Client) ReadPump(gw *Gateway) {
	defer func() {
		gw.HandleDisconnect(context.Background(), c)
		_ = c.conn.Close()
	}()

	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				gw.logger.Errorf("ws read error (connection %s): %v", c.ID, err)
			}
			break
		}

		var in Inbound
		if err := json.Unmarshal(raw, &in); err != nil {
			gw.logger.Errorf("malformed envelope (connection %s): %v", c.ID, err)
			continue
		}

		gw.HandleEvent(context.Background(), c, &in)
	}
}

func (c *Client) WritePump() {
	defer func() {
		_ = c.conn.Close()
	}()

	for frame := range c.Send {
		if err := c.conn.WriteJSON(frame); err != nil {
			// Peer is assumed already cleaned up; nothing to surface.
			break
		}
	}
}
