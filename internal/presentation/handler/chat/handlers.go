package chat

import (
	"net/http"

	"github.com/daehokang/roomcast/internal/infrastructure/logging"
	"github.com/daehokang/roomcast/internal/infrastructure/ws"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Handler struct {
	gateway  *ws.Gateway
	logger   logging.Logger
	upgrader websocket.Upgrader
}

func NewHandler(gateway *ws.Gateway, logger logging.Logger, allowedOrigins []string) *Handler {
	return &Handler{
		gateway: gateway,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

// ServeWS upgrades the request and starts the connection's pumps. Each
// connection gets one reader goroutine, so its events dispatch in arrival
// order.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Errorf("ws upgrade failed: %v", err)
		return
	}

	client := ws.NewClient(conn, uuid.NewString())

	go client.WritePump()
	h.gateway.HandleConnect(client)
	go client.ReadPump(h.gateway)
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || a == origin {
				return true
			}
		}
		return false
	}
}
