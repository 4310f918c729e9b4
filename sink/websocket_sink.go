package sink

import (
	"chat-room/contract"
	"chat-room/domain/event"
	"chat-room/errors"
	"context"
	"fmt"
	"sync"
)

// WebsocketSink buffers the events of one live connection until its write pump sends them.
// The buffer is bounded: a connection that does not drain it within the consume deadline
// is reported full and gets dropped by the delivery worker.
type WebsocketSink struct {
	events chan event.DomainEvent
	done   chan struct{}
	once   sync.Once
}

var _ contract.EventSink = (*WebsocketSink)(nil)

func NewWebsocketSink(bufferSize int) *WebsocketSink {
	return &WebsocketSink{
		events: make(chan event.DomainEvent, bufferSize),
		done:   make(chan struct{}),
	}
}

func (s *WebsocketSink) Consume(ctx context.Context, e event.DomainEvent) error {
	select {
	case <-s.done:
		return errors.ErrSinkClosed
	default:
	}

	select {
	case s.events <- e:
		return nil
	case <-s.done:
		return errors.ErrSinkClosed
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", errors.ErrSinkFull, ctx.Err())
	}
}

// Close is idempotent, pending events are discarded.
func (s *WebsocketSink) Close() {
	s.once.Do(func() { close(s.done) })
}

// Events is drained by the connection write pump.
func (s *WebsocketSink) Events() <-chan event.DomainEvent {
	return s.events
}

// Done is closed once the sink has been dropped or the connection is gone.
func (s *WebsocketSink) Done() <-chan struct{} {
	return s.done
}
