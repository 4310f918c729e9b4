package errors

import (
	"errors"
	"net/http"
)

// Code is the machine-readable discriminator sent in error bodies.
type Code string

const (
	CodeInvalidContent  Code = "INVALID_CONTENT"
	CodeRoomNotFound    Code = "ROOM_NOT_FOUND"
	CodeNotParticipant  Code = "NOT_PARTICIPANT"
	CodeRoomClosed      Code = "ROOM_CLOSED"
	CodeUnauthenticated Code = "UNAUTHENTICATED"
	CodeBadRequest      Code = "BAD_REQUEST"
	CodeInternal        Code = "INTERNAL_ERROR"
)

// MapToHTTPStatus translates the core taxonomy into a status and a code.
// Anything unknown is an infrastructure failure and maps to 500.
func MapToHTTPStatus(err error) (int, Code) {
	switch {
	case err == nil:
		return http.StatusOK, ""
	case errors.Is(err, ErrInvalidContent):
		return http.StatusBadRequest, CodeInvalidContent
	case errors.Is(err, ErrRoomNotFound):
		return http.StatusNotFound, CodeRoomNotFound
	case errors.Is(err, ErrNotParticipant):
		return http.StatusForbidden, CodeNotParticipant
	case errors.Is(err, ErrRoomClosed):
		return http.StatusOK, CodeRoomClosed
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrMissingToken):
		return http.StatusUnauthorized, CodeUnauthenticated
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// CodeOf returns only the code part of MapToHTTPStatus.
func CodeOf(err error) Code {
	_, code := MapToHTTPStatus(err)
	return code
}
