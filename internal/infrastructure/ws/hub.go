package ws

import (
	"sync"

	"github.com/daehokang/roomcast/internal/infrastructure/metrics"
)

// Hub is the outbound broadcast channel: it tracks every connected client
// and the delivery group for each room label. Subscription happens on
// join-room and is only revoked when the connection unregisters, not on
// leave-room.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client            // connID -> client
	rooms   map[string]map[string]*Client // room label -> connID -> client
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		rooms:   make(map[string]map[string]*Client),
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.clients[c.ID]; exists {
		return
	}
	h.clients[c.ID] = c
	metrics.OpenConnections.Inc()
}

// Unregister drops the client from the connection set and every delivery
// group, and closes its send channel. Safe to call more than once.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.clients[c.ID]; !exists {
		return
	}
	delete(h.clients, c.ID)

	for label, group := range h.rooms {
		if _, ok := group[c.ID]; ok {
			delete(group, c.ID)
			if len(group) == 0 {
				delete(h.rooms, label)
			}
		}
	}

	close(c.Send)
	metrics.OpenConnections.Dec()
}

func (h *Hub) Subscribe(roomID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	group, ok := h.rooms[roomID]
	if !ok {
		group = make(map[string]*Client)
		h.rooms[roomID] = group
	}
	group[c.ID] = c
}

func (h *Hub) Subscribed(roomID, connID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, ok := h.rooms[roomID][connID]
	return ok
}

// BroadcastToRoom delivers the frame to every connection subscribed to the
// room label, at most once each. Slow clients are skipped rather than
// blocking the rest of the group.
func (h *Hub) BroadcastToRoom(roomID string, frame *Frame) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.rooms[roomID] {
		select {
		case c.Send <- frame:
		default:
		}
	}
	metrics.Broadcasts.WithLabelValues("room").Inc()
}

// BroadcastAll delivers the frame to every connected peer, whether or not
// it is in a room.
func (h *Hub) BroadcastAll(frame *Frame) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		select {
		case c.Send <- frame:
		default:
		}
	}
	metrics.Broadcasts.WithLabelValues("global").Inc()
}
