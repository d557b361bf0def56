package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OpenConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "roomcast_open_connections",
		Help: "Number of currently connected peers.",
	})

	InboundEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roomcast_inbound_events_total",
		Help: "Inbound gateway events by name.",
	}, []string{"event"})

	DroppedEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roomcast_dropped_events_total",
		Help: "Events dropped at the gateway boundary after a failure.",
	}, []string{"event"})

	Broadcasts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roomcast_broadcasts_total",
		Help: "Broadcast deliveries by scope (room or global).",
	}, []string{"scope"})
)
