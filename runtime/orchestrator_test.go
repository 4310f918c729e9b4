package runtime

import (
	"chat-room/domain/chat"
	"chat-room/domain/event"
	"chat-room/runtime/workers"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu     sync.Mutex
	events []event.DomainEvent
	closed bool
}

func (s *recordingSink) Consume(_ context.Context, e event.DomainEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *recordingSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func TestOrchestrator_Delivers_Published_Events(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := NewRegistry()
	broadcaster := NewBroadcaster(3)
	supervisor := workers.NewSupervisor(log, 10*time.Millisecond)
	orchestrator := NewOrchestrator(log, supervisor, registry, broadcaster, time.Second, nil)

	sink := &recordingSink{}
	registry.Subscribe("conn-1", "room-1", sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		orchestrator.Start(ctx)
		close(done)
	}()

	broadcaster.Publish(event.MessagePosted{Message: chat.Message{Room: "room-1", Seq: 1}})
	broadcaster.Publish(event.MessagePosted{Message: chat.Message{Room: "room-2", Seq: 1}})
	broadcaster.Publish(event.NewRoomClosed("room-1", event.CauseDeleted, time.Now()))

	req.Eventually(func() bool { return sink.count() == 2 }, time.Second, 5*time.Millisecond)
	req.Eventually(func() bool { return registry.Count() == 0 }, time.Second, 5*time.Millisecond)

	orchestrator.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("orchestrator did not stop")
	}
}
