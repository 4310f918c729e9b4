package workers

import (
	"chat-room/domain/event"
	"sync"
)

// Outbox is an ordered, unbounded hand-off queue between admission and delivery.
// Push never blocks, so it may be called inside a room critical section.
type Outbox struct {
	mu     sync.Mutex
	events []event.DomainEvent
	ready  chan struct{}
}

func NewOutbox() *Outbox {
	return &Outbox{ready: make(chan struct{}, 1)}
}

func (o *Outbox) Push(e event.DomainEvent) {
	o.mu.Lock()
	o.events = append(o.events, e)
	o.mu.Unlock()

	select {
	case o.ready <- struct{}{}:
	default:
	}
}

// Ready is signaled when events may be pending.
func (o *Outbox) Ready() <-chan struct{} {
	return o.ready
}

// Drain takes every pending event in push order.
func (o *Outbox) Drain() []event.DomainEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	events := o.events
	o.events = nil
	return events
}

func (o *Outbox) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.events)
}
