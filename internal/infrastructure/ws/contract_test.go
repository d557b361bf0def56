package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectAckWireShape(t *testing.T) {
	raw, err := json.Marshal(NewConnectAck("c1", "u1"))
	require.NoError(t, err)

	// The bind ack carries the user id as "_id", not "user".
	assert.JSONEq(t, `{"event":"receive-message","data":{"type":"CONNECT","socket":"c1","_id":"u1"}}`, string(raw))
}

func TestNoticeOmitsAbsentFields(t *testing.T) {
	raw, err := json.Marshal(NewRefreshNotice())
	require.NoError(t, err)

	assert.JSONEq(t, `{"event":"receive-message","data":{"type":"REFRESH_ROOM"}}`, string(raw))
}

func TestMessageNoticeWireShape(t *testing.T) {
	raw, err := json.Marshal(NewMessageNotice("r1", "u1", "alice", "c1", "hi"))
	require.NoError(t, err)

	assert.JSONEq(t, `{"event":"receive-message","data":{"type":"SEND_MESSAGE","room":"r1","user":"u1","name":"alice","socket":"c1","content":"hi"}}`, string(raw))
}
