package chat

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type MessageKind int

const (
	KindUser MessageKind = iota
	KindSystem
)

func (k MessageKind) String() string {
	switch k {
	case KindSystem:
		return "system"
	default:
		return "user"
	}
}

// Message is an immutable chat entry of a room.
// Seq is its 1-based position in the room ledger.
type Message struct {
	ID        uuid.UUID
	Room      RoomID
	SenderID  UserID
	Content   string
	Kind      MessageKind
	Seq       int
	CreatedAt time.Time
}

// NormalizeContent trims surrounding whitespace.
// An empty result means the content is not admissible.
func NormalizeContent(content string) (string, bool) {
	trimmed := strings.TrimSpace(content)
	return trimmed, trimmed != ""
}
