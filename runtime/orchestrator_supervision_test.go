package runtime_test

import (
	"chat-room/mocks"
	"chat-room/runtime"
	"chat-room/runtime/workers"
	"context"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
)

func TestOrchestrator_Supervises_One_Fanout_Per_Shard(t *testing.T) {
	ctrl := gomock.NewController(t)
	supervisor := mocks.NewMockISupervisor(ctrl)
	broadcaster := runtime.NewBroadcaster(3)
	orchestrator := runtime.NewOrchestrator(slog.Default(), supervisor, runtime.NewRegistry(), broadcaster, time.Second, nil)

	ctx := context.Background()
	gomock.InOrder(
		supervisor.EXPECT().Add(gomock.AssignableToTypeOf(&workers.EventFanout{})).Return(supervisor).Times(3),
		supervisor.EXPECT().Run(ctx).Times(1),
	)

	orchestrator.Start(ctx)
}

func TestOrchestrator_Stop_Stops_Supervisor(t *testing.T) {
	ctrl := gomock.NewController(t)
	supervisor := mocks.NewMockISupervisor(ctrl)
	orchestrator := runtime.NewOrchestrator(slog.Default(), supervisor, runtime.NewRegistry(), runtime.NewBroadcaster(1), time.Second, nil)

	supervisor.EXPECT().Stop().Times(1)

	orchestrator.Stop()
}
