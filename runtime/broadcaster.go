package runtime

import (
	"chat-room/contract"
	"chat-room/domain/chat"
	"chat-room/domain/event"
	"chat-room/runtime/workers"
	"hash/fnv"
)

// Broadcaster routes each event to the outbox shard owning its room.
// A room always lands on the same shard, which keeps its events in publish order.
type Broadcaster struct {
	outboxes []*workers.Outbox
}

var _ contract.IPublisher = (*Broadcaster)(nil)

func NewBroadcaster(shards int) *Broadcaster {
	if shards < 1 {
		shards = 1
	}
	outboxes := make([]*workers.Outbox, shards)
	for i := range outboxes {
		outboxes[i] = workers.NewOutbox()
	}
	return &Broadcaster{outboxes: outboxes}
}

func (b *Broadcaster) Publish(e event.DomainEvent) {
	b.shard(e.RoomID()).Push(e)
}

func (b *Broadcaster) Outboxes() []*workers.Outbox {
	return b.outboxes
}

// Pending is the number of events not yet picked up by a delivery worker.
func (b *Broadcaster) Pending() int {
	total := 0
	for _, o := range b.outboxes {
		total += o.Len()
	}
	return total
}

func (b *Broadcaster) shard(roomID chat.RoomID) *workers.Outbox {
	h := fnv.New32a()
	_, _ = h.Write([]byte(roomID))
	return b.outboxes[h.Sum32()%uint32(len(b.outboxes))]
}
