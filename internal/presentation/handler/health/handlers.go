package health

import (
	"encoding/json"
	"net/http"
	"time"
)

type Handler struct {
	startedAt time.Time
}

func NewHandler() *Handler {
	return &Handler{
		startedAt: time.Now(),
	}
}

func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := Response{
		Status: "ok",
		Uptime: time.Since(h.startedAt).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}
