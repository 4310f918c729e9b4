//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"chat-room/contract"
	"chat-room/domain/chat"
	"chat-room/errors"
	"chat-room/repositories"
	"chat-room/runtime"
	"context"
	"log/slog"
)

// IChatService is what transports see of the chat room core.
type IChatService interface {
	PostMessage(ctx context.Context, cmd chat.PostMessageCommand) (MessageView, error)
	GetMessages(ctx context.Context, cmd chat.GetMessagesCommand) ([]MessageView, error)
	DeleteRoom(ctx context.Context, cmd chat.DeleteRoomCommand) error
	JoinRoom(ctx context.Context, cmd chat.JoinRoomCommand, connID contract.ConnID, sink contract.EventSink) error
	LeaveRoom(connID contract.ConnID, roomID chat.RoomID)
	Disconnect(connID contract.ConnID)
}

type ChatService struct {
	log               *slog.Logger
	admission         *AdmissionService
	lifecycle         *LifecycleService
	query             *QueryService
	rooms             repositories.IRoomRepository
	registry          contract.IRegistry
	locks             *runtime.RoomLocks
	names             INameResolver
	requireMembership bool
}

var _ IChatService = (*ChatService)(nil)

func NewChatService(
	log *slog.Logger,
	admission *AdmissionService,
	lifecycle *LifecycleService,
	query *QueryService,
	rooms repositories.IRoomRepository,
	registry contract.IRegistry,
	locks *runtime.RoomLocks,
	names INameResolver,
	requireMembership bool,
) *ChatService {
	return &ChatService{
		log:               log,
		admission:         admission,
		lifecycle:         lifecycle,
		query:             query,
		rooms:             rooms,
		registry:          registry,
		locks:             locks,
		names:             names,
		requireMembership: requireMembership,
	}
}

func (s *ChatService) PostMessage(ctx context.Context, cmd chat.PostMessageCommand) (MessageView, error) {
	message, err := s.admission.Submit(ctx, cmd)
	if err != nil {
		return MessageView{}, err
	}
	return MessageView{Message: message, Sender: s.names.Resolve(message.SenderID)}, nil
}

func (s *ChatService) GetMessages(ctx context.Context, cmd chat.GetMessagesCommand) ([]MessageView, error) {
	return s.query.ListMessages(ctx, cmd)
}

func (s *ChatService) DeleteRoom(ctx context.Context, cmd chat.DeleteRoomCommand) error {
	return s.lifecycle.Delete(ctx, cmd)
}

// JoinRoom subscribes a live connection to a room.
// The check and the subscription share the room critical section, so a connection
// never ends up subscribed to a room whose closure was already published.
// A missing room is rejected in both modes: its subscription would never be dropped.
func (s *ChatService) JoinRoom(ctx context.Context, cmd chat.JoinRoomCommand, connID contract.ConnID, sink contract.EventSink) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.locks.WithLock(cmd.Room, func() error {
		room, err := s.rooms.GetRoom(cmd.Room)
		if err != nil {
			return err
		}
		if s.requireMembership && !room.HasParticipant(cmd.CallerID) {
			return errors.ErrNotParticipant
		}
		s.registry.Subscribe(connID, cmd.Room, sink)
		s.log.Debug("Connection joined room", "room_id", cmd.Room, "user_id", cmd.CallerID, "conn_id", connID)
		return nil
	})
}

func (s *ChatService) LeaveRoom(connID contract.ConnID, roomID chat.RoomID) {
	s.registry.Unsubscribe(connID, roomID)
	s.log.Debug("Connection left room", "room_id", roomID, "conn_id", connID)
}

func (s *ChatService) Disconnect(connID contract.ConnID) {
	s.registry.UnsubscribeAll(connID)
}
