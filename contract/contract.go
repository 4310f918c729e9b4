//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-room/domain/chat"
	"chat-room/domain/event"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// ConnID identifies one live connection, a user may hold several.
type ConnID string

// EventSink is the delivery end of a live connection.
// Consume must not block beyond the context deadline.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
	Close()
}

type IRegistry interface {
	GetSinksForRoom(roomID chat.RoomID) map[ConnID]EventSink
	Subscribe(connID ConnID, roomID chat.RoomID, sink EventSink)
	Unsubscribe(connID ConnID, roomID chat.RoomID)
	UnsubscribeAll(connID ConnID)
	DropRoom(roomID chat.RoomID)
}

// IPublisher hands an event off for asynchronous, per-room ordered delivery.
// Publish never blocks on subscriber I/O.
type IPublisher interface {
	Publish(e event.DomainEvent)
}
