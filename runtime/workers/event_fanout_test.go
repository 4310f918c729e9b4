package workers_test

import (
	"chat-room/contract"
	"chat-room/domain/chat"
	"chat-room/domain/event"
	"chat-room/errors"
	"chat-room/mocks"
	"chat-room/observability"
	"chat-room/runtime"
	"chat-room/runtime/workers"
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedTime = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func posted(room chat.RoomID, seq int) event.MessagePosted {
	return event.MessagePosted{Message: chat.Message{Room: room, SenderID: "alice", Content: "hi", Seq: seq, CreatedAt: fixedTime}}
}

func TestEventFanout_Fanout_Delivers_To_Every_Room_Sink(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	sink1 := mocks.NewMockEventSink(ctrl)
	sink2 := mocks.NewMockEventSink(ctrl)
	metrics := observability.NewMetrics(prometheus.NewRegistry())

	evt := posted("room-1", 1)

	// Given two subscribers in the room
	mockRegistry.EXPECT().GetSinksForRoom(chat.RoomID("room-1")).
		Return(map[contract.ConnID]contract.EventSink{"c1": sink1, "c2": sink2}).Times(1)
	sink1.EXPECT().Consume(gomock.Any(), evt).Return(nil).Times(1)
	sink2.EXPECT().Consume(gomock.Any(), evt).Return(nil).Times(1)

	// When the event is fanned out
	workers.NewEventFanout(log, mockRegistry, workers.NewOutbox(), time.Second, metrics).Fanout(context.Background(), evt)

	// Then both received it
	req.Equal(float64(2), testutil.ToFloat64(metrics.EventsDelivered.WithLabelValues("new-message")))
}

func TestEventFanout_Fanout_Drops_Failing_Sink(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	healthy := mocks.NewMockEventSink(ctrl)
	slow := mocks.NewMockEventSink(ctrl)
	metrics := observability.NewMetrics(prometheus.NewRegistry())

	evt := posted("room-1", 1)

	mockRegistry.EXPECT().GetSinksForRoom(chat.RoomID("room-1")).
		Return(map[contract.ConnID]contract.EventSink{"healthy": healthy, "slow": slow}).Times(1)
	healthy.EXPECT().Consume(gomock.Any(), evt).Return(nil).Times(1)
	// Given a subscriber whose buffer is full
	slow.EXPECT().Consume(gomock.Any(), evt).Return(errors.ErrSinkFull).Times(1)

	// Then it is removed from every room and closed
	mockRegistry.EXPECT().UnsubscribeAll(contract.ConnID("slow")).Times(1)
	slow.EXPECT().Close().Times(1)

	workers.NewEventFanout(log, mockRegistry, workers.NewOutbox(), time.Second, metrics).Fanout(context.Background(), evt)

	req.Equal(float64(1), testutil.ToFloat64(metrics.SinksDropped))
}

func TestEventFanout_Fanout_RoomClosed_Drops_Room(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	sink := mocks.NewMockEventSink(ctrl)

	closed := event.NewRoomClosed("room-1", event.CauseQuota, fixedTime)

	gomock.InOrder(
		mockRegistry.EXPECT().GetSinksForRoom(chat.RoomID("room-1")).
			Return(map[contract.ConnID]contract.EventSink{"c1": sink}),
		sink.EXPECT().Consume(gomock.Any(), closed).Return(nil),
		mockRegistry.EXPECT().DropRoom(chat.RoomID("room-1")),
	)

	workers.NewEventFanout(log, mockRegistry, workers.NewOutbox(), time.Second, nil).Fanout(context.Background(), closed)
}

func TestEventFanout_Run_Preserves_Room_Order(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	sink := mocks.NewMockEventSink(ctrl)
	outbox := workers.NewOutbox()

	received := make(chan int, 10)
	mockRegistry.EXPECT().GetSinksForRoom(chat.RoomID("room-1")).
		Return(map[contract.ConnID]contract.EventSink{"c1": sink}).AnyTimes()
	sink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e event.DomainEvent) error {
			received <- e.(event.MessagePosted).Message.Seq
			return nil
		}).Times(10)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = workers.NewEventFanout(log, mockRegistry, outbox, time.Second, nil).Run(ctx)
		close(done)
	}()

	for seq := 1; seq <= 10; seq++ {
		outbox.Push(posted("room-1", seq))
	}

	for want := 1; want <= 10; want++ {
		select {
		case got := <-received:
			req.Equal(want, got)
		case <-time.After(time.Second):
			req.FailNow("event not delivered in time")
		}
	}
	cancel()
	<-done
}

type stalledSink struct {
	calls  atomic.Int32
	closed atomic.Bool
}

// Consume never completes on its own, only the delivery deadline releases it.
func (s *stalledSink) Consume(ctx context.Context, _ event.DomainEvent) error {
	s.calls.Add(1)
	<-ctx.Done()
	return ctx.Err()
}

func (s *stalledSink) Close() { s.closed.Store(true) }

type channelSink struct {
	seqs chan int
}

func (s *channelSink) Consume(_ context.Context, e event.DomainEvent) error {
	s.seqs <- e.(event.MessagePosted).Message.Seq
	return nil
}

func (s *channelSink) Close() {}

func TestEventFanout_Run_Stalled_Sink_Does_Not_Block_Room(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := runtime.NewRegistry()
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	outbox := workers.NewOutbox()

	// Given a healthy and a stalled subscriber in the same room
	stalled := &stalledSink{}
	healthy := &channelSink{seqs: make(chan int, 10)}
	registry.Subscribe("stalled", "room-1", stalled)
	registry.Subscribe("healthy", "room-1", healthy)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = workers.NewEventFanout(log, registry, outbox, 20*time.Millisecond, metrics).Run(ctx)
		close(done)
	}()

	// When several messages are published
	for seq := 1; seq <= 5; seq++ {
		outbox.Push(posted("room-1", seq))
	}

	// Then the healthy subscriber receives all of them in order
	for want := 1; want <= 5; want++ {
		select {
		case got := <-healthy.seqs:
			req.Equal(want, got)
		case <-time.After(time.Second):
			req.FailNow("event not delivered in time")
		}
	}

	// And the stalled one was dropped after its first missed deadline
	req.Equal(int32(1), stalled.calls.Load())
	req.True(stalled.closed.Load())
	req.Equal(float64(1), testutil.ToFloat64(metrics.SinksDropped))
	req.Equal(float64(5), testutil.ToFloat64(metrics.EventsDelivered.WithLabelValues("new-message")))
	sinks := registry.GetSinksForRoom("room-1")
	req.Len(sinks, 1)
	req.Contains(sinks, contract.ConnID("healthy"))

	cancel()
	<-done
}
