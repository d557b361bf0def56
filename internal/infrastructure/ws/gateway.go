package ws

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/daehokang/roomcast/internal/domain"
	"github.com/daehokang/roomcast/internal/infrastructure/logging"
	"github.com/daehokang/roomcast/internal/infrastructure/metrics"
)

// Gateway dispatches inbound events against the connection registry and
// room store and pushes the resulting notices through the hub. Every
// failure is caught at the event boundary and logged; nothing propagates
// back to the peer and no event can take down another connection.
type Gateway struct {
	hub        *Hub
	registry   domain.ConnectionRegistry
	rooms      domain.RoomRepository
	users      domain.UserRepository
	publisher  domain.MessagePublisher
	logger     logging.Logger
	bindingTTL time.Duration
}

func NewGateway(
	hub *Hub,
	registry domain.ConnectionRegistry,
	rooms domain.RoomRepository,
	users domain.UserRepository,
	publisher domain.MessagePublisher,
	logger logging.Logger,
	bindingTTL time.Duration,
) *Gateway {
	return &Gateway{
		hub:        hub,
		registry:   registry,
		rooms:      rooms,
		users:      users,
		publisher:  publisher,
		logger:     logger,
		bindingTTL: bindingTTL,
	}
}

// HandleConnect registers the client and acks the handshake to that
// connection only.
func (g *Gateway) HandleConnect(c *Client) {
	g.hub.Register(c)
	c.Send <- NewHandshake(c.ID)

	g.logger.Info(logging.Gateway, logging.Connect, "connection established", map[logging.ExtraKey]any{
		logging.ConnectionID: c.ID,
	})
}

func (g *Gateway) HandleEvent(ctx context.Context, c *Client, in *Inbound) {
	metrics.InboundEvents.WithLabelValues(in.Event).Inc()

	var err error
	switch in.Event {
	case EventConnecting:
		err = g.handleConnecting(ctx, c, in.Data)
	case EventJoinRoom:
		err = g.handleJoinRoom(ctx, c, in.Data)
	case EventLeaveRoom:
		err = g.handleLeaveRoom(ctx, c, in.Data)
	case EventSendMessage:
		err = g.handleSendMessage(ctx, c, in.Data)
	case EventRefreshMessage:
		g.handleRefresh()
	default:
		g.logger.Warn(logging.Gateway, logging.Message, "unknown event dropped", map[logging.ExtraKey]any{
			logging.ConnectionID: c.ID,
			logging.EventName:    in.Event,
		})
		return
	}

	if err != nil {
		metrics.DroppedEvents.WithLabelValues(in.Event).Inc()
		g.logger.Error(logging.Gateway, logging.Message, "event dropped", map[logging.ExtraKey]any{
			logging.ConnectionID: c.ID,
			logging.EventName:    in.Event,
			logging.ErrorMessage: err.Error(),
		})
	}
}

func (g *Gateway) handleConnecting(ctx context.Context, c *Client, raw json.RawMessage) error {
	var data ConnectingData
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}

	if err := g.registry.Bind(ctx, c.ID, data.User, g.bindingTTL); err != nil {
		return err
	}

	c.Send <- NewConnectAck(c.ID, data.User)

	g.logger.Info(logging.Gateway, logging.Connect, "identity bound", map[logging.ExtraKey]any{
		logging.ConnectionID: c.ID,
		logging.UserID:       data.User,
	})
	return nil
}

func (g *Gateway) handleJoinRoom(ctx context.Context, c *Client, raw json.RawMessage) error {
	var data JoinRoomData
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}

	user, err := g.users.FindByID(ctx, data.User)
	if err != nil {
		return err
	}

	// Verify the target room before touching current membership. A join
	// aimed at a missing room must drop without ejecting the user from
	// the room they are in.
	if _, err := g.rooms.GetByID(ctx, data.Room); err != nil {
		return err
	}

	// Leave-before-join keeps one room per user.
	prev, err := g.rooms.FindOccupied(ctx, data.User)
	if errors.Is(err, domain.ErrPresenceConflict) {
		g.logPresenceConflict(data.User)
	} else if err != nil {
		return err
	}
	if prev != nil && prev.ID != data.Room {
		left, err := g.rooms.Leave(ctx, prev.ID, data.User)
		if err != nil {
			return err
		}
		g.hub.BroadcastToRoom(prev.ID, NewLeaveNotice(prev.ID, user.ID, user.Name, left.Owner, c.ID))
	}

	room, err := g.rooms.Join(ctx, data.Room, data.User)
	if err != nil {
		return err
	}

	// Subscribe before broadcasting so the joiner sees its own notice.
	g.hub.Subscribe(room.ID, c)
	g.hub.BroadcastToRoom(room.ID, NewJoinNotice(room.ID, user.Name, user.ID))

	g.logger.Info(logging.Gateway, logging.JoinRoom, "user joined room", map[logging.ExtraKey]any{
		logging.ConnectionID: c.ID,
		logging.UserID:       user.ID,
		logging.RoomID:       room.ID,
	})
	return nil
}

func (g *Gateway) handleLeaveRoom(ctx context.Context, c *Client, raw json.RawMessage) error {
	var data LeaveRoomData
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}

	room, err := g.rooms.Leave(ctx, data.Room, data.User)
	if err != nil {
		return err
	}

	g.hub.BroadcastToRoom(room.ID, NewLeaveNotice(room.ID, data.User, data.Name, room.Owner, c.ID))

	g.logger.Info(logging.Gateway, logging.LeaveRoom, "user left room", map[logging.ExtraKey]any{
		logging.ConnectionID: c.ID,
		logging.UserID:       data.User,
		logging.RoomID:       room.ID,
	})
	return nil
}

func (g *Gateway) handleSendMessage(ctx context.Context, c *Client, raw json.RawMessage) error {
	var data SendMessageData
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}

	// Senders must have bound an identity.
	if _, err := g.registry.Resolve(ctx, c.ID); err != nil {
		return err
	}

	g.hub.BroadcastToRoom(data.Room, NewMessageNotice(data.Room, data.User, data.Name, c.ID, data.Content))

	// Downstream forwarding is fire-and-forget.
	msg := domain.ChatMessage{
		RoomID:  data.Room,
		UserID:  data.User,
		Name:    data.Name,
		ConnID:  c.ID,
		Content: data.Content,
		SentAt:  time.Now(),
	}
	if err := g.publisher.PublishChatMessage(ctx, msg); err != nil {
		g.logger.Error(logging.RabbitMQ, logging.Message, "downstream publish failed", map[logging.ExtraKey]any{
			logging.RoomID:       data.Room,
			logging.ErrorMessage: err.Error(),
		})
	}

	return nil
}

func (g *Gateway) handleRefresh() {
	g.hub.BroadcastAll(NewRefreshNotice())
}

// HandleDisconnect runs the transport-close cleanup: unregister from the
// hub, drop the identity binding, and pull the user out of their occupied
// room, telling the room about it. A failed cleanup is logged and never
// blocks other connections.
func (g *Gateway) HandleDisconnect(ctx context.Context, c *Client) {
	g.hub.Unregister(c)

	userID, err := g.registry.Resolve(ctx, c.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrBindingNotFound) {
			g.logger.Error(logging.Gateway, logging.Disconnect, "binding resolve failed", map[logging.ExtraKey]any{
				logging.ConnectionID: c.ID,
				logging.ErrorMessage: err.Error(),
			})
		}
		return
	}

	if err := g.registry.Unbind(ctx, c.ID); err != nil {
		g.logger.Error(logging.Gateway, logging.Disconnect, "unbind failed", map[logging.ExtraKey]any{
			logging.ConnectionID: c.ID,
			logging.ErrorMessage: err.Error(),
		})
	}

	room, err := g.rooms.FindOccupied(ctx, userID)
	if errors.Is(err, domain.ErrPresenceConflict) {
		g.logPresenceConflict(userID)
	} else if err != nil {
		g.logger.Error(logging.Gateway, logging.Disconnect, "occupancy lookup failed", map[logging.ExtraKey]any{
			logging.UserID:       userID,
			logging.ErrorMessage: err.Error(),
		})
		return
	}
	if room == nil {
		return
	}

	if _, err := g.rooms.Leave(ctx, room.ID, userID); err != nil {
		g.logger.Error(logging.Gateway, logging.Disconnect, "leave on disconnect failed", map[logging.ExtraKey]any{
			logging.UserID:       userID,
			logging.RoomID:       room.ID,
			logging.ErrorMessage: err.Error(),
		})
	}

	g.hub.BroadcastToRoom(room.ID, NewDisconnectNotice(c.ID, room.Owner, room.ID, userID))

	g.logger.Info(logging.Gateway, logging.Disconnect, "connection cleaned up", map[logging.ExtraKey]any{
		logging.ConnectionID: c.ID,
		logging.UserID:       userID,
		logging.RoomID:       room.ID,
	})
}

func (g *Gateway) logPresenceConflict(userID string) {
	g.logger.Warn(logging.Gateway, logging.JoinRoom, "user occupies more than one room", map[logging.ExtraKey]any{
		logging.UserID: userID,
	})
}
