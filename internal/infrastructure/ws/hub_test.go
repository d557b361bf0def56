package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopPeer struct{}

func (nopPeer) WriteJSON(any) error { return nil }
func (nopPeer) Close() error        { return nil }

func testClient(id string) *Client {
	return newClient(nopPeer{}, id)
}

func drain(c *Client) []*Frame {
	var out []*Frame
	for {
		select {
		case f := <-c.Send:
			out = append(out, f)
		default:
			return out
		}
	}
}

func TestHub_RoomBroadcastReachesSubscribersOnly(t *testing.T) {
	h := NewHub()
	c1, c2, c3 := testClient("c1"), testClient("c2"), testClient("c3")
	for _, c := range []*Client{c1, c2, c3} {
		h.Register(c)
	}
	h.Subscribe("r1", c1)
	h.Subscribe("r1", c2)
	h.Subscribe("r2", c3)

	h.BroadcastToRoom("r1", NewRefreshNotice())

	assert.Len(t, drain(c1), 1)
	assert.Len(t, drain(c2), 1)
	assert.Empty(t, drain(c3))
}

func TestHub_GlobalBroadcastReachesEveryone(t *testing.T) {
	h := NewHub()
	inRoom, roomless := testClient("c1"), testClient("c2")
	h.Register(inRoom)
	h.Register(roomless)
	h.Subscribe("r1", inRoom)

	h.BroadcastAll(NewRefreshNotice())

	assert.Len(t, drain(inRoom), 1)
	assert.Len(t, drain(roomless), 1)
}

func TestHub_UnregisterRevokesSubscriptions(t *testing.T) {
	h := NewHub()
	c := testClient("c1")
	h.Register(c)
	h.Subscribe("r1", c)

	h.Unregister(c)

	assert.False(t, h.Subscribed("r1", "c1"))
	h.BroadcastToRoom("r1", NewRefreshNotice())
	h.BroadcastAll(NewRefreshNotice())

	// Send channel is closed; broadcasting after unregister must not panic
	// and must not deliver.
	_, open := <-c.Send
	assert.False(t, open)
}

func TestHub_UnregisterTwiceIsSafe(t *testing.T) {
	h := NewHub()
	c := testClient("c1")
	h.Register(c)

	h.Unregister(c)
	require.NotPanics(t, func() { h.Unregister(c) })
}

func TestHub_RoomOrderPreserved(t *testing.T) {
	h := NewHub()
	c := testClient("c1")
	h.Register(c)
	h.Subscribe("r1", c)

	h.BroadcastToRoom("r1", NewJoinNotice("r1", "alice", "u1"))
	h.BroadcastToRoom("r1", NewMessageNotice("r1", "u1", "alice", "c9", "hi"))

	frames := drain(c)
	require.Len(t, frames, 2)
	assert.Equal(t, ActionJoin, frames[0].Data.(NoticePayload).Type)
	assert.Equal(t, ActionSendMessage, frames[1].Data.(NoticePayload).Type)
}
