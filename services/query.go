package services

import (
	"chat-room/domain/chat"
	"chat-room/errors"
	"chat-room/repositories"
	"context"
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// MessageView is a persisted message with its sender resolved.
type MessageView struct {
	chat.Message
	Sender Sender
}

// QueryService reads the history of a room, gated by the same participant rule as sends.
type QueryService struct {
	rooms    repositories.IRoomRepository
	messages repositories.IMessageRepository
	names    INameResolver
}

func NewQueryService(rooms repositories.IRoomRepository, messages repositories.IMessageRepository, names INameResolver) *QueryService {
	return &QueryService{rooms: rooms, messages: messages, names: names}
}

// ListMessages returns a snapshot of the room history, oldest first.
func (s *QueryService) ListMessages(ctx context.Context, cmd chat.GetMessagesCommand) ([]MessageView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	room, err := s.rooms.GetRoom(cmd.Room)
	if err != nil {
		return nil, err
	}
	if !room.HasParticipant(cmd.CallerID) {
		return nil, errors.ErrNotParticipant
	}

	stored, err := s.messages.GetMessages(cmd.Room)
	if err != nil {
		return nil, fmt.Errorf("list messages of %s: %w", cmd.Room, err)
	}

	views := lo.Map(stored, func(m repositories.DiskMessage, _ int) MessageView {
		return MessageView{Message: fromDiskMessage(m), Sender: s.names.Resolve(m.Author)}
	})
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].CreatedAt.Before(views[j].CreatedAt)
	})
	return views, nil
}
