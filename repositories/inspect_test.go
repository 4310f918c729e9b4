package repositories

import (
	"chat-room/domain/chat"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestScan_Describes_Records(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	log := slog.Default()
	rooms := NewRoomRepository(db, log)
	messages := NewMessageRepository(db, log)

	req.NoError(rooms.CreateRoom(chat.NewRoom("room-1", "alice", "bob")))
	req.NoError(messages.StoreMessage(DiskMessage{
		ID: uuid.Must(uuid.NewV7()), Room: "room-1", Author: "alice", Content: "hi", Seq: 1, At: time.Now(),
	}))
	req.NoError(NewUserRepository(db).SaveUser(User{ID: "alice", Username: "Alice", Email: "a@example.com"}))

	var views []RecordView
	req.NoError(Scan(db, "", func(view RecordView) error {
		views = append(views, view)
		return nil
	}))

	req.Len(views, 3)
	// Keys come in lexical order: msg:, room:, user:
	req.Equal("message", views[0].Kind)
	req.Equal("#1 alice: hi", views[0].Detail)
	req.Equal("room", views[1].Kind)
	req.Equal("alice,bob", views[1].Detail)
	req.Equal("user", views[2].Kind)
	req.Equal("Alice <a@example.com>", views[2].Detail)

	var onlyRooms int
	req.NoError(Scan(db, "room:", func(RecordView) error {
		onlyRooms++
		return nil
	}))
	req.Equal(1, onlyRooms)
}
