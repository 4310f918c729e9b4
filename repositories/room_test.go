package repositories

import (
	"chat-room/domain/chat"
	"chat-room/errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRoomRepository_Create_And_Get(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repository := NewRoomRepository(db, slog.Default())

	room := chat.NewRoom("room-1", "alice", "bob")
	req.NoError(repository.CreateRoom(room))

	fetched, err := repository.GetRoom("room-1")
	req.NoError(err)
	req.Equal(room.ID, fetched.ID)
	req.Equal([]chat.UserID{"alice", "bob"}, fetched.Participants)
	req.Equal(room.CreatedAt.UnixNano(), fetched.CreatedAt.UnixNano())

	// Given the room already exists
	err = repository.CreateRoom(room)
	req.ErrorIs(err, errors.ErrRoomAlreadyExists)

	exists, err := repository.Exists("room-1")
	req.NoError(err)
	req.True(exists)

	exists, err = repository.Exists("unknown")
	req.NoError(err)
	req.False(exists)
}

func TestRoomRepository_Rejects_Separator_In_ID(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repository := NewRoomRepository(db, slog.Default())

	err := repository.CreateRoom(chat.NewRoom("a:b", "alice"))
	req.ErrorIs(err, errors.ErrInvalidRecord)

	_, err = repository.GetRoom("a:b")
	req.ErrorIs(err, errors.ErrRoomNotFound)
}

func TestRoomRepository_Delete_Cascades_To_Messages(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	rooms := NewRoomRepository(db, slog.Default())
	messages := NewMessageRepository(db, slog.Default())

	req.NoError(rooms.CreateRoom(chat.NewRoom("room-1", "alice", "bob")))
	req.NoError(rooms.CreateRoom(chat.NewRoom("room-10", "alice", "bob")))
	at := time.Now().UTC()
	for i := 1; i <= 3; i++ {
		req.NoError(messages.StoreMessage(DiskMessage{
			ID: uuid.New(), Room: "room-1", Author: "alice", Content: "hi", Seq: i, At: at,
		}))
	}
	// A room sharing the id prefix must not be touched
	req.NoError(messages.StoreMessage(DiskMessage{
		ID: uuid.New(), Room: "room-10", Author: "bob", Content: "other", Seq: 1, At: at,
	}))

	// When the room is deleted
	deleted, err := rooms.DeleteRoom("room-1")
	req.NoError(err)
	req.Equal(3, deleted)

	// Then the room and its messages are gone
	_, err = rooms.GetRoom("room-1")
	req.ErrorIs(err, errors.ErrRoomNotFound)
	remaining, err := messages.GetMessages("room-1")
	req.NoError(err)
	req.Empty(remaining)

	// And the other room is intact
	other, err := messages.GetMessages("room-10")
	req.NoError(err)
	req.Len(other, 1)

	// And a second deletion is detected
	_, err = rooms.DeleteRoom("room-1")
	req.ErrorIs(err, errors.ErrRoomNotFound)
}
