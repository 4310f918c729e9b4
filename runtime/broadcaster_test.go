package runtime

import (
	"chat-room/domain/chat"
	"chat-room/domain/event"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBroadcaster_Same_Room_Same_Shard(t *testing.T) {
	req := require.New(t)
	b := NewBroadcaster(4)

	for i := 1; i <= 5; i++ {
		b.Publish(event.MessagePosted{Message: chat.Message{Room: "room-a", Seq: i}})
	}
	req.Equal(5, b.Pending())

	var owner []event.DomainEvent
	for _, outbox := range b.Outboxes() {
		if drained := outbox.Drain(); len(drained) > 0 {
			req.Nil(owner, "a room must land on a single shard")
			owner = drained
		}
	}
	req.Len(owner, 5)
	for i, e := range owner {
		req.Equal(i+1, e.(event.MessagePosted).Message.Seq)
	}
}

func TestBroadcaster_Spreads_Rooms(t *testing.T) {
	req := require.New(t)
	b := NewBroadcaster(4)

	for i := 0; i < 64; i++ {
		b.Publish(event.NewRoomClosed(chat.RoomID(fmt.Sprintf("room-%d", i)), event.CauseQuota, time.Now()))
	}

	used := 0
	for _, outbox := range b.Outboxes() {
		if outbox.Len() > 0 {
			used++
		}
	}
	req.Greater(used, 1)
}

func TestBroadcaster_At_Least_One_Shard(t *testing.T) {
	require.Len(t, NewBroadcaster(0).Outboxes(), 1)
}
