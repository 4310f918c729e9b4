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

	"github.com/google/uuid"
)

// ContentFilter masks forbidden words of an already trimmed content.
type ContentFilter interface {
	Censor(content string) (string, []string)
}

// AdmissionService decides, for each send request, between accept, reject and room closure.
// Reading the quota state and acting on it happen inside the room critical section,
// so concurrent senders of a room are linearized and different rooms never wait on each other.
type AdmissionService struct {
	log       *slog.Logger
	rooms     repositories.IRoomRepository
	messages  repositories.IMessageRepository
	locks     *runtime.RoomLocks
	lifecycle *LifecycleService
	publisher contract.IPublisher
	names     INameResolver
	quota     chat.Quota
	filter    ContentFilter
	metrics   *observability.Metrics
	now       func() time.Time
}

func NewAdmissionService(
	log *slog.Logger,
	rooms repositories.IRoomRepository,
	messages repositories.IMessageRepository,
	locks *runtime.RoomLocks,
	lifecycle *LifecycleService,
	publisher contract.IPublisher,
	names INameResolver,
	quota chat.Quota,
	metrics *observability.Metrics,
) *AdmissionService {
	return &AdmissionService{
		log:       log,
		rooms:     rooms,
		messages:  messages,
		locks:     locks,
		lifecycle: lifecycle,
		publisher: publisher,
		names:     names,
		quota:     quota,
		metrics:   metrics,
		now:       time.Now,
	}
}

// WithFilter censors accepted content before it is persisted.
func (s *AdmissionService) WithFilter(filter ContentFilter) *AdmissionService {
	s.filter = filter
	return s
}

// Submit returns the persisted message, or one of ErrInvalidContent, ErrRoomNotFound,
// ErrNotParticipant and ErrRoomClosed. ErrRoomClosed means this request closed the room
// and its content was discarded.
func (s *AdmissionService) Submit(ctx context.Context, cmd chat.PostMessageCommand) (chat.Message, error) {
	content, ok := chat.NormalizeContent(cmd.Content)
	if !ok {
		s.rejected(errors.ErrInvalidContent)
		return chat.Message{}, errors.ErrInvalidContent
	}
	if err := ctx.Err(); err != nil {
		return chat.Message{}, err
	}

	// Resolved outside the critical section, it may hit the user directory.
	sender := s.names.Resolve(cmd.SenderID)

	var accepted chat.Message
	err := s.locks.WithLock(cmd.Room, func() error {
		if s.metrics != nil {
			defer func(start time.Time) {
				s.metrics.AdmissionDuration.Observe(time.Since(start).Seconds())
			}(time.Now())
		}

		room, err := s.rooms.GetRoom(cmd.Room)
		if err != nil {
			return err
		}
		if !room.HasParticipant(cmd.SenderID) {
			return errors.ErrNotParticipant
		}

		state, err := s.messages.QuotaState(cmd.Room, cmd.SenderID)
		if err != nil {
			return fmt.Errorf("read quota state: %w", err)
		}
		if s.quota.Breached(state) {
			if _, err := s.lifecycle.closeLocked(cmd.Room, event.CauseQuota); err != nil {
				return err
			}
			return errors.ErrRoomClosed
		}

		message, err := s.newMessage(cmd, content, state)
		if err != nil {
			return err
		}
		if err := s.messages.StoreMessage(toDiskMessage(message)); err != nil {
			return fmt.Errorf("store message: %w", err)
		}
		s.publisher.Publish(event.MessagePosted{Message: message, SenderName: sender.Username})
		accepted = message
		return nil
	})
	if err != nil {
		s.rejected(err)
		return chat.Message{}, err
	}

	if s.metrics != nil {
		s.metrics.MessagesAccepted.Inc()
	}
	s.log.Debug("Message accepted", "room_id", cmd.Room, "user_id", cmd.SenderID, "seq", accepted.Seq)
	return accepted, nil
}

func (s *AdmissionService) newMessage(cmd chat.PostMessageCommand, content string, state chat.QuotaState) (chat.Message, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return chat.Message{}, fmt.Errorf("message id: %w", err)
	}

	at := cmd.CreatedAt
	if at.IsZero() {
		at = s.now()
	}
	at = at.UTC()
	// History is ordered by timestamp, keep it strictly increasing within a room.
	if !at.After(state.LastAt) {
		at = state.LastAt.Add(time.Nanosecond)
	}

	if s.filter != nil {
		var words []string
		content, words = s.filter.Censor(content)
		if len(words) > 0 {
			s.log.Info("Message censored", "room_id", cmd.Room, "user_id", cmd.SenderID, "words", len(words))
		}
	}

	return chat.Message{
		ID:        id,
		Room:      cmd.Room,
		SenderID:  cmd.SenderID,
		Content:   content,
		Kind:      chat.KindUser,
		Seq:       state.Total + 1,
		CreatedAt: at,
	}, nil
}

func (s *AdmissionService) rejected(err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.MessagesRejected.WithLabelValues(string(errors.CodeOf(err))).Inc()
}

func toDiskMessage(m chat.Message) repositories.DiskMessage {
	return repositories.DiskMessage{
		ID:      m.ID,
		Room:    m.Room,
		Author:  m.SenderID,
		Content: m.Content,
		Kind:    m.Kind,
		Seq:     m.Seq,
		At:      m.CreatedAt,
	}
}

func fromDiskMessage(m repositories.DiskMessage) chat.Message {
	return chat.Message{
		ID:        m.ID,
		Room:      m.Room,
		SenderID:  m.Author,
		Content:   m.Content,
		Kind:      m.Kind,
		Seq:       m.Seq,
		CreatedAt: m.At,
	}
}
