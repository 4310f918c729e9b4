package workers

import (
	"chat-room/contract"
	"chat-room/domain/event"
	"chat-room/observability"
	"context"
	"log/slog"
	"time"
)

// EventFanout delivers the events of one outbox shard to the live subscribers of each room.
//
// Rooms hash onto a single shard, so events of a room are delivered in publish order.
// Delivery is best-effort per connection: a sink that fails or misses its deadline
// is dropped from every room and closed, it never stalls the other subscribers.
type EventFanout struct {
	log         *slog.Logger
	registry    contract.IRegistry
	outbox      *Outbox
	sinkTimeout time.Duration
	metrics     *observability.Metrics
}

func NewEventFanout(
	log *slog.Logger,
	registry contract.IRegistry,
	outbox *Outbox,
	sinkTimeout time.Duration,
	metrics *observability.Metrics,
) *EventFanout {
	return &EventFanout{
		log:         log,
		registry:    registry,
		outbox:      outbox,
		sinkTimeout: sinkTimeout,
		metrics:     metrics,
	}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping event fanout")
			return nil
		case <-w.outbox.Ready():
			for _, evt := range w.outbox.Drain() {
				w.Fanout(ctx, evt)
			}
		}
	}
}

// Fanout One consume for each subscriber of the event room
func (w *EventFanout) Fanout(ctx context.Context, evt event.DomainEvent) {
	roomID := evt.RoomID()
	for connID, sink := range w.registry.GetSinksForRoom(roomID) {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		err := sink.Consume(sinkCtx, evt)
		cancel()
		if err != nil {
			w.log.Warn("Dropping slow or broken subscriber", "conn", connID, "room", roomID, "error", err)
			w.registry.UnsubscribeAll(connID)
			sink.Close()
			if w.metrics != nil {
				w.metrics.SinksDropped.Inc()
			}
			continue
		}
		if w.metrics != nil {
			w.metrics.EventsDelivered.WithLabelValues(event.Type(evt)).Inc()
		}
	}

	if _, ok := evt.(event.RoomClosed); ok {
		w.registry.DropRoom(roomID)
	}
}
