package errors

import "fmt"

var (
	ErrInvalidContent    = fmt.Errorf("content is empty")
	ErrRoomNotFound      = fmt.Errorf("chat room not found")
	ErrNotParticipant    = fmt.Errorf("caller is not a participant of the chat room")
	ErrRoomClosed        = fmt.Errorf("chat room closed due to message limits")
	ErrRoomAlreadyExists = fmt.Errorf("chat room already exists")
	ErrUserNotFound      = fmt.Errorf("user not found")
	ErrInvalidToken      = fmt.Errorf("invalid or expired token")
	ErrMissingToken      = fmt.Errorf("authorization token is missing")
	ErrSinkFull          = fmt.Errorf("sink buffer is full")
	ErrSinkClosed        = fmt.Errorf("sink is closed")
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrInvalidRecord     = fmt.Errorf("invalid stored record")
	ErrEmptyWords        = fmt.Errorf("no words have been found")
)
