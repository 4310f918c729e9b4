//go:generate protoc -I ../proto --go_out=.. --go_opt=module=chat-room ../proto/storage/records.proto
package repositories

import (
	"chat-room/domain/chat"
	"chat-room/errors"
	pb "chat-room/proto/storage"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
)

// Records are stored as protobuf, see proto/storage/records.proto.

func encodeMessage(m DiskMessage) ([]byte, error) {
	return proto.Marshal(&pb.Message{
		Id:         m.ID.String(),
		Room:       string(m.Room),
		Author:     string(m.Author),
		Content:    m.Content,
		Kind:       int32(m.Kind),
		Seq:        int64(m.Seq),
		AtUnixNano: m.At.UnixNano(),
	})
}

func decodeMessage(b []byte) (DiskMessage, error) {
	var record pb.Message
	if err := proto.Unmarshal(b, &record); err != nil {
		return DiskMessage{}, fmt.Errorf("%w: %v", errors.ErrInvalidRecord, err)
	}
	id, err := uuid.Parse(record.GetId())
	if err != nil {
		return DiskMessage{}, fmt.Errorf("%w: message id: %v", errors.ErrInvalidRecord, err)
	}
	return DiskMessage{
		ID:      id,
		Room:    chat.RoomID(record.GetRoom()),
		Author:  chat.UserID(record.GetAuthor()),
		Content: record.GetContent(),
		Kind:    chat.MessageKind(record.GetKind()),
		Seq:     int(record.GetSeq()),
		At:      time.Unix(0, record.GetAtUnixNano()).UTC(),
	}, nil
}

func encodeRoom(r chat.Room) ([]byte, error) {
	return proto.Marshal(&pb.Room{
		Id: string(r.ID),
		Participants: lo.Map(r.Participants, func(p chat.UserID, _ int) string {
			return string(p)
		}),
		CreatedAtUnixNano: r.CreatedAt.UnixNano(),
	})
}

func decodeRoom(b []byte) (chat.Room, error) {
	var record pb.Room
	if err := proto.Unmarshal(b, &record); err != nil {
		return chat.Room{}, fmt.Errorf("%w: %v", errors.ErrInvalidRecord, err)
	}
	return chat.Room{
		ID: chat.RoomID(record.GetId()),
		Participants: lo.Map(record.GetParticipants(), func(p string, _ int) chat.UserID {
			return chat.UserID(p)
		}),
		CreatedAt: time.Unix(0, record.GetCreatedAtUnixNano()).UTC(),
	}, nil
}

func encodeUser(u User) ([]byte, error) {
	return proto.Marshal(&pb.User{
		Id:       string(u.ID),
		Username: u.Username,
		Email:    u.Email,
	})
}

func decodeUser(b []byte) (User, error) {
	var record pb.User
	if err := proto.Unmarshal(b, &record); err != nil {
		return User{}, fmt.Errorf("%w: %v", errors.ErrInvalidRecord, err)
	}
	return User{
		ID:       chat.UserID(record.GetId()),
		Username: record.GetUsername(),
		Email:    record.GetEmail(),
	}, nil
}
