package services

import (
	"chat-room/contract"
	"chat-room/domain/chat"
	"chat-room/domain/event"
	"chat-room/errors"
	"chat-room/observability"
	"chat-room/repositories"
	"chat-room/runtime"
	"context"
	"fmt"
	"log/slog"
	"time"
)

// LifecycleService performs the terminal transition of a room.
// The room and its ledger are deleted in one transaction, then the closure is published.
type LifecycleService struct {
	log       *slog.Logger
	rooms     repositories.IRoomRepository
	locks     *runtime.RoomLocks
	publisher contract.IPublisher
	metrics   *observability.Metrics
	now       func() time.Time
}

func NewLifecycleService(
	log *slog.Logger,
	rooms repositories.IRoomRepository,
	locks *runtime.RoomLocks,
	publisher contract.IPublisher,
	metrics *observability.Metrics,
) *LifecycleService {
	return &LifecycleService{
		log:       log,
		rooms:     rooms,
		locks:     locks,
		publisher: publisher,
		metrics:   metrics,
		now:       time.Now,
	}
}

// Close deletes a room without any authorization check.
func (s *LifecycleService) Close(ctx context.Context, roomID chat.RoomID, cause event.ClosureCause) (event.RoomClosed, error) {
	if err := ctx.Err(); err != nil {
		return event.RoomClosed{}, err
	}
	var closed event.RoomClosed
	err := s.locks.WithLock(roomID, func() error {
		var err error
		closed, err = s.closeLocked(roomID, cause)
		return err
	})
	return closed, err
}

// Delete is the explicit deletion requested by a participant.
func (s *LifecycleService) Delete(ctx context.Context, cmd chat.DeleteRoomCommand) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.locks.WithLock(cmd.Room, func() error {
		room, err := s.rooms.GetRoom(cmd.Room)
		if err != nil {
			return err
		}
		if !room.HasParticipant(cmd.CallerID) {
			return errors.ErrNotParticipant
		}
		_, err = s.closeLocked(cmd.Room, event.CauseDeleted)
		return err
	})
}

// closeLocked must run inside the room critical section.
// Losing a race against another closure surfaces as ErrRoomNotFound and publishes nothing.
func (s *LifecycleService) closeLocked(roomID chat.RoomID, cause event.ClosureCause) (event.RoomClosed, error) {
	deleted, err := s.rooms.DeleteRoom(roomID)
	if err != nil {
		return event.RoomClosed{}, fmt.Errorf("close room %s: %w", roomID, err)
	}

	closed := event.NewRoomClosed(roomID, cause, s.now().UTC())
	s.publisher.Publish(closed)
	if s.metrics != nil {
		s.metrics.RoomsClosed.WithLabelValues(string(cause)).Inc()
	}
	s.log.Info("Chat room closed", "room_id", roomID, "cause", cause, "messages", deleted)
	return closed, nil
}
