package chat

import "time"

type Command interface {
	RoomID() RoomID
}

type PostMessageCommand struct {
	Room      RoomID
	SenderID  UserID
	Content   string
	CreatedAt time.Time
}

func (p PostMessageCommand) RoomID() RoomID {
	return p.Room
}

type GetMessagesCommand struct {
	Room     RoomID
	CallerID UserID
}

func (g GetMessagesCommand) RoomID() RoomID {
	return g.Room
}

type DeleteRoomCommand struct {
	Room     RoomID
	CallerID UserID
}

func (d DeleteRoomCommand) RoomID() RoomID {
	return d.Room
}

type JoinRoomCommand struct {
	Room     RoomID
	CallerID UserID
}

func (j JoinRoomCommand) RoomID() RoomID {
	return j.Room
}
