package event

import (
	"chat-room/domain/chat"
	"time"
)

// DomainEvent is anything the Broadcaster delivers to a room's live subscribers.
type DomainEvent interface {
	RoomID() chat.RoomID
}

// MessagePosted is emitted once a message has been persisted in the ledger.
type MessagePosted struct {
	Message    chat.Message
	SenderName string
}

func (m MessagePosted) RoomID() chat.RoomID {
	return m.Message.Room
}

type ClosureCause string

const (
	CauseQuota   ClosureCause = "quota"
	CauseDeleted ClosureCause = "deleted"
)

const (
	ReasonQuota   = "Chat room has been closed due to message limits."
	ReasonDeleted = "Chat room has been deleted by a participant."
)

// RoomClosed is emitted exactly once per room, after the room and its messages are gone.
type RoomClosed struct {
	Room   chat.RoomID
	Cause  ClosureCause
	Reason string
	At     time.Time
}

func (r RoomClosed) RoomID() chat.RoomID {
	return r.Room
}

func NewRoomClosed(room chat.RoomID, cause ClosureCause, at time.Time) RoomClosed {
	reason := ReasonQuota
	if cause == CauseDeleted {
		reason = ReasonDeleted
	}
	return RoomClosed{Room: room, Cause: cause, Reason: reason, At: at}
}

// Type returns the wire name of an event.
func Type(e DomainEvent) string {
	switch e.(type) {
	case MessagePosted:
		return "new-message"
	case RoomClosed:
		return "room-closed"
	default:
		return "unknown"
	}
}
