// Package chat contains the core concepts of the chat room subsystem.
// No runtime, network or storage logic should be added here.
package chat

import (
	"time"

	"github.com/samber/lo"
)

type RoomID string

type UserID string

// Room is a bounded-lifetime conversation scope.
// Participants are fixed at creation and never mutated afterwards.
type Room struct {
	ID           RoomID
	Participants []UserID
	CreatedAt    time.Time
}

func NewRoom(id RoomID, participants ...UserID) Room {
	return Room{
		ID:           id,
		Participants: lo.Uniq(participants),
		CreatedAt:    time.Now().UTC(),
	}
}

// HasParticipant reports whether the user may read or write the room.
func (r Room) HasParticipant(userID UserID) bool {
	return lo.Contains(r.Participants, userID)
}
