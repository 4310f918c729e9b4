package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "chat_room"

// Metrics groups the counters of the chat room core.
type Metrics struct {
	MessagesAccepted  prometheus.Counter
	MessagesRejected  *prometheus.CounterVec
	RoomsClosed       *prometheus.CounterVec
	EventsDelivered   *prometheus.CounterVec
	SinksDropped      prometheus.Counter
	AdmissionDuration prometheus.Histogram
}

// NewMetrics registers every collector on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		MessagesAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_accepted_total",
			Help:      "Messages persisted in a room ledger.",
		}),
		MessagesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_rejected_total",
			Help:      "Send requests rejected before any write, by outcome code.",
		}, []string{"code"}),
		RoomsClosed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rooms_closed_total",
			Help:      "Rooms deleted, by closure cause.",
		}, []string{"cause"}),
		EventsDelivered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_delivered_total",
			Help:      "Events handed to live subscribers, by event type.",
		}, []string{"type"}),
		SinksDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sinks_dropped_total",
			Help:      "Live connections dropped because they could not keep up.",
		}),
		AdmissionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "admission_duration_seconds",
			Help:      "Time spent inside the per-room admission critical section.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14),
		}),
	}
	reg.MustRegister(
		m.MessagesAccepted,
		m.MessagesRejected,
		m.RoomsClosed,
		m.EventsDelivered,
		m.SinksDropped,
		m.AdmissionDuration,
	)
	return m
}

// RegisterSubscribers exposes the live subscription count read from fn.
func RegisterSubscribers(reg prometheus.Registerer, fn func() int) {
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "live_subscriptions",
		Help:      "Current (connection, room) subscriptions.",
	}, func() float64 { return float64(fn()) }))
}
