package repositories

import (
	"chat-room/domain/chat"
	"fmt"
	"strings"
)

// Key layout:
//
//	room:{room_id}             -> room record
//	msg:{room_id}:{seq_padded} -> message record, seq is 1-based and zero padded
//	user:{user_id}             -> user record
//
// The padded sequence keeps a prefix scan in creation order.
const (
	roomPrefix    = "room:"
	messagePrefix = "msg:"
	userPrefix    = "user:"
	separator     = ":"
)

func roomKey(id chat.RoomID) []byte {
	return []byte(roomPrefix + string(id))
}

func messagePrefixKey(id chat.RoomID) []byte {
	return []byte(messagePrefix + string(id) + separator)
}

func messageKey(id chat.RoomID, seq int) []byte {
	return []byte(fmt.Sprintf("%s%s%s%06d", messagePrefix, id, separator, seq))
}

func userKey(id chat.UserID) []byte {
	return []byte(userPrefix + string(id))
}

// validID rejects ids that would break prefix isolation between rooms.
func validID(id string) bool {
	return id != "" && !strings.Contains(id, separator)
}
