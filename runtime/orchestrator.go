// Package runtime handles event propagation to live subscribers and per-room serialization.
// It orchestrates the system without containing business logic or domain rules.
package runtime

import (
	"chat-room/contract"
	"chat-room/observability"
	"chat-room/runtime/workers"
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Orchestrator owns the delivery side: one supervised fanout worker per outbox shard.
type Orchestrator struct {
	log         *slog.Logger
	supervisor  contract.ISupervisor
	registry    contract.IRegistry
	broadcaster *Broadcaster
	sinkTimeout time.Duration
	metrics     *observability.Metrics
}

func NewOrchestrator(
	log *slog.Logger,
	supervisor contract.ISupervisor,
	registry contract.IRegistry,
	broadcaster *Broadcaster,
	sinkTimeout time.Duration,
	metrics *observability.Metrics,
) *Orchestrator {
	return &Orchestrator{
		log:         log,
		supervisor:  supervisor,
		registry:    registry,
		broadcaster: broadcaster,
		sinkTimeout: sinkTimeout,
		metrics:     metrics,
	}
}

// Start blocks until ctx is canceled or Stop is called.
func (o *Orchestrator) Start(ctx context.Context) {
	for _, outbox := range o.broadcaster.Outboxes() {
		o.supervisor.Add(workers.NewEventFanout(o.log, o.registry, outbox, o.sinkTimeout, o.metrics))
	}
	o.log.Info(fmt.Sprintf("Starting %d delivery workers", len(o.broadcaster.Outboxes())))
	o.supervisor.Run(ctx)
}

func (o *Orchestrator) Stop() {
	o.supervisor.Stop()
}
