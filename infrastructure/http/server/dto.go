package server

import (
	"chat-room/domain/chat"
	"chat-room/domain/event"
	"chat-room/services"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

const (
	messageClosed  = "Chat room closed due to message limits."
	messageDeleted = "Chat room and all associated messages have been deleted successfully."
	messageFailure = "Internal server error"
)

// Content emptiness is decided by admission, so a blank content is INVALID_CONTENT and not BAD_REQUEST.
type PostMessageRequest struct {
	ChatRoomID string `json:"chatRoomId" validate:"required,excludesall=:"`
	Content    string `json:"content"`
}

type SenderResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

type MessageResponse struct {
	ID          string         `json:"id"`
	ChatRoomID  string         `json:"chatRoomId"`
	Sender      SenderResponse `json:"sender"`
	Content     string         `json:"content"`
	MessageType string         `json:"messageType"`
	Seq         int            `json:"seq"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type StatusResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func toMessageResponse(m chat.Message, sender services.Sender) MessageResponse {
	return MessageResponse{
		ID:          m.ID.String(),
		ChatRoomID:  string(m.Room),
		Sender:      SenderResponse{ID: string(sender.ID), Username: sender.Username, Email: sender.Email},
		Content:     m.Content,
		MessageType: m.Kind.String(),
		Seq:         m.Seq,
		CreatedAt:   m.CreatedAt,
	}
}

func toHistoryResponse(views []services.MessageView) []MessageResponse {
	return lo.Map(views, func(v services.MessageView, _ int) MessageResponse {
		return toMessageResponse(v.Message, v.Sender)
	})
}

// Live frames, the type field is the discriminator.
const (
	frameJoinRoom    = "join-room"
	frameLeaveRoom   = "leave-room"
	frameSendMessage = "send-message"
	framePing        = "ping"

	frameRoomJoined = "room-joined"
	frameRoomLeft   = "room-left"
	frameNewMessage = "new-message"
	frameRoomClosed = "room-closed"
	frameSendResult = "send-result"
	frameError      = "error"
	framePong       = "pong"
)

type InboundFrame struct {
	Type       string `json:"type" validate:"required,oneof=join-room leave-room send-message ping"`
	ChatRoomID string `json:"chatRoomId" validate:"required_unless=Type ping,excludesall=:"`
	Content    string `json:"content"`
}

type OutboundFrame struct {
	Type       string `json:"type"`
	ChatRoomID string `json:"chatRoomId,omitempty"`
	Status     string `json:"status,omitempty"`
	Code       string `json:"code,omitempty"`
	Message    any    `json:"message,omitempty"`
}

func eventFrame(e event.DomainEvent) (OutboundFrame, bool) {
	switch evt := e.(type) {
	case event.MessagePosted:
		sender := services.Sender{ID: evt.Message.SenderID, Username: evt.SenderName}
		return OutboundFrame{
			Type:       frameNewMessage,
			ChatRoomID: string(evt.Message.Room),
			Message:    toMessageResponse(evt.Message, sender),
		}, true
	case event.RoomClosed:
		return OutboundFrame{
			Type:       frameRoomClosed,
			ChatRoomID: string(evt.Room),
			Status:     string(evt.Cause),
			Message:    evt.Reason,
		}, true
	default:
		return OutboundFrame{}, false
	}
}
