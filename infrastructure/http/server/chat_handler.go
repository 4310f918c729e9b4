package server

import (
	"chat-room/auth"
	"chat-room/domain/chat"
	"chat-room/errors"
	"chat-room/services"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
)

const maxBodyBytes = 1 << 20

type ChatHandler struct {
	log     *slog.Logger
	chat    services.IChatService
	failure func(w http.ResponseWriter, err error)
}

func NewChatHandler(log *slog.Logger, chat services.IChatService) *ChatHandler {
	return &ChatHandler{log: log, chat: chat, failure: errorWriter(log)}
}

// PostMessage answers 201 with the stored message, or 200 when this send closed the room.
func (h *ChatHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.failure(w, errors.ErrMissingToken)
		return
	}

	var body PostMessageRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		badRequest(w, fmt.Errorf("invalid body: %w", err))
		return
	}
	if err := validate.Struct(body); err != nil {
		badRequest(w, err)
		return
	}

	view, err := h.chat.PostMessage(r.Context(), chat.PostMessageCommand{
		Room:     chat.RoomID(body.ChatRoomID),
		SenderID: userID,
		Content:  body.Content,
	})
	switch {
	case stderrors.Is(err, errors.ErrRoomClosed):
		writeJSON(w, http.StatusOK, StatusResponse{Message: messageClosed})
	case err != nil:
		h.failure(w, err)
	default:
		writeJSON(w, http.StatusCreated, toMessageResponse(view.Message, view.Sender))
	}
}

func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.failure(w, errors.ErrMissingToken)
		return
	}

	views, err := h.chat.GetMessages(r.Context(), chat.GetMessagesCommand{
		Room:     chat.RoomID(mux.Vars(r)["chatRoomId"]),
		CallerID: userID,
	})
	if err != nil {
		h.failure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryResponse(views))
}

func (h *ChatHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.failure(w, errors.ErrMissingToken)
		return
	}

	err := h.chat.DeleteRoom(r.Context(), chat.DeleteRoomCommand{
		Room:     chat.RoomID(mux.Vars(r)["chatRoomId"]),
		CallerID: userID,
	})
	if err != nil {
		h.failure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{Message: messageDeleted})
}
