package server

import (
	"chat-room/auth"
	"chat-room/contract"
	"chat-room/domain/chat"
	"chat-room/errors"
	"chat-room/services"
	"chat-room/sink"
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/samber/lo"
	"golang.org/x/time/rate"
)

type WSConfig struct {
	BufferSize     int
	WriteWait      time.Duration
	PongWait       time.Duration
	PingInterval   time.Duration
	MaxMessageSize int64
	InboundRate    float64
	InboundBurst   int
	AllowedOrigins []string
}

// WSHandler serves the live channel: join and leave rooms, send messages, receive room events.
// The caller identity is the one of the upgrade request, never a field of a frame.
type WSHandler struct {
	log      *slog.Logger
	chat     services.IChatService
	cfg      WSConfig
	upgrader websocket.Upgrader

	mu       sync.Mutex
	conns    map[*connection]struct{}
	closing  bool
	inflight sync.WaitGroup
}

func NewWSHandler(log *slog.Logger, chat services.IChatService, cfg WSConfig) *WSHandler {
	h := &WSHandler{log: log, chat: chat, cfg: cfg, conns: make(map[*connection]struct{})}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		errorWriter(h.log)(w, errors.ErrMissingToken)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed", "user_id", userID, "error", err)
		return
	}

	c := &connection{
		id:      contract.ConnID(uuid.NewString()),
		userID:  userID,
		conn:    conn,
		sink:    sink.NewWebsocketSink(h.cfg.BufferSize),
		replies: make(chan OutboundFrame, h.cfg.BufferSize),
		limiter: rate.NewLimiter(rate.Limit(h.cfg.InboundRate), h.cfg.InboundBurst),
		handler: h,
	}
	if !h.track(c) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(h.cfg.WriteWait))
		_ = conn.Close()
		return
	}
	defer h.untrack(c)
	h.log.Debug("Websocket connected", "user_id", userID, "conn_id", c.id)

	go c.writePump()
	c.readPump(r.Context())
}

// Shutdown closes every live connection and waits until their read pumps returned,
// so no request reaches the chat service afterwards.
// http.Server.Shutdown does not cover hijacked connections.
func (h *WSHandler) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	h.closing = true
	for c := range h.conns {
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(h.cfg.WriteWait))
		_ = c.conn.Close()
	}
	open := len(h.conns)
	h.mu.Unlock()

	done := make(chan struct{})
	go func() {
		h.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		h.log.Info("Websocket connections closed", "count", open)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *WSHandler) track(c *connection) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closing {
		return false
	}
	h.conns[c] = struct{}{}
	h.inflight.Add(1)
	return true
}

func (h *WSHandler) untrack(c *connection) {
	h.mu.Lock()
	delete(h.conns, c)
	h.mu.Unlock()
	h.inflight.Done()
}

// checkOrigin accepts requests without Origin (non browser clients) and the configured origins.
func (h *WSHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(h.cfg.AllowedOrigins) == 0 {
		return true
	}
	return lo.Contains(h.cfg.AllowedOrigins, "*") || lo.Contains(h.cfg.AllowedOrigins, origin)
}

type connection struct {
	id      contract.ConnID
	userID  chat.UserID
	conn    *websocket.Conn
	sink    *sink.WebsocketSink
	replies chan OutboundFrame
	limiter *rate.Limiter
	handler *WSHandler
}

func (c *connection) readPump(ctx context.Context) {
	log := c.handler.log
	cfg := c.handler.cfg
	defer func() {
		c.handler.chat.Disconnect(c.id)
		c.sink.Close()
		_ = c.conn.Close()
		log.Debug("Websocket disconnected", "user_id", c.userID, "conn_id", c.id)
	}()

	c.conn.SetReadLimit(cfg.MaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(cfg.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(cfg.PongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug("Websocket read failed", "conn_id", c.id, "error", err)
			}
			return
		}
		if !c.limiter.Allow() {
			c.reply(errorFrame(string(errors.CodeBadRequest), "Too many frames, slow down"))
			continue
		}
		c.handle(ctx, data)
	}
}

func (c *connection) handle(ctx context.Context, data []byte) {
	var frame InboundFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		c.reply(errorFrame(string(errors.CodeBadRequest), "Invalid frame format"))
		return
	}
	if err := validate.Struct(frame); err != nil {
		c.reply(errorFrame(string(errors.CodeBadRequest), err.Error()))
		return
	}
	roomID := chat.RoomID(frame.ChatRoomID)

	switch frame.Type {
	case framePing:
		c.reply(OutboundFrame{Type: framePong})

	case frameJoinRoom:
		err := c.handler.chat.JoinRoom(ctx, chat.JoinRoomCommand{Room: roomID, CallerID: c.userID}, c.id, c.sink)
		if err != nil {
			c.replyError(err)
			return
		}
		c.reply(OutboundFrame{Type: frameRoomJoined, ChatRoomID: frame.ChatRoomID})

	case frameLeaveRoom:
		c.handler.chat.LeaveRoom(c.id, roomID)
		c.reply(OutboundFrame{Type: frameRoomLeft, ChatRoomID: frame.ChatRoomID})

	case frameSendMessage:
		view, err := c.handler.chat.PostMessage(ctx, chat.PostMessageCommand{
			Room:     roomID,
			SenderID: c.userID,
			Content:  frame.Content,
		})
		switch {
		case stderrors.Is(err, errors.ErrRoomClosed):
			c.reply(OutboundFrame{Type: frameSendResult, ChatRoomID: frame.ChatRoomID, Status: "closed", Message: messageClosed})
		case err != nil:
			c.replyError(err)
		default:
			c.reply(OutboundFrame{
				Type:       frameSendResult,
				ChatRoomID: frame.ChatRoomID,
				Status:     "accepted",
				Message:    toMessageResponse(view.Message, view.Sender),
			})
		}
	}
}

func (c *connection) replyError(err error) {
	status, code := errors.MapToHTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		c.handler.log.Error("Live request failed", "conn_id", c.id, "error", err)
		message = messageFailure
	}
	c.reply(errorFrame(string(code), message))
}

// reply gives up once the connection is being torn down.
func (c *connection) reply(frame OutboundFrame) {
	select {
	case c.replies <- frame:
	case <-c.sink.Done():
	}
}

// writePump is the only writer of the connection.
func (c *connection) writePump() {
	cfg := c.handler.cfg
	ticker := time.NewTicker(cfg.PingInterval)
	defer func() {
		ticker.Stop()
		c.sink.Close()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-c.sink.Done():
			_ = c.conn.SetWriteDeadline(time.Now().Add(cfg.WriteWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "subscriber dropped"))
			return

		case e := <-c.sink.Events():
			frame, ok := eventFrame(e)
			if !ok {
				continue
			}
			if err := c.write(frame); err != nil {
				return
			}

		case frame := <-c.replies:
			if err := c.write(frame); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *connection) write(frame OutboundFrame) error {
	_ = c.conn.SetWriteDeadline(time.Now().Add(c.handler.cfg.WriteWait))
	if err := c.conn.WriteJSON(frame); err != nil {
		c.handler.log.Debug("Websocket write failed", "conn_id", c.id, "error", err)
		return err
	}
	return nil
}

func errorFrame(code, message string) OutboundFrame {
	return OutboundFrame{Type: frameError, Code: code, Message: message}
}
