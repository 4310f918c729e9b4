package server

import (
	"chat-room/contract"
	"chat-room/domain/chat"
	"chat-room/domain/event"
	"chat-room/errors"
	"chat-room/mocks"
	"chat-room/services"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func dial(t *testing.T, server *httptest.Server, header http.Header, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws" + query
	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var frame map[string]any
	require.NoError(t, conn.ReadJSON(&frame))
	return frame
}

func TestWSHandler_Join_Receive_And_Send(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	chatService := mocks.NewMockIChatService(ctrl)
	router, tokens := newTestRouter(t, chatService)
	server := httptest.NewServer(router)
	defer server.Close()

	joined := make(chan contract.EventSink, 1)
	chatService.EXPECT().
		JoinRoom(gomock.Any(), chat.JoinRoomCommand{Room: "room-1", CallerID: "bob"}, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ chat.JoinRoomCommand, _ contract.ConnID, sink contract.EventSink) error {
			joined <- sink
			return nil
		})
	chatService.EXPECT().
		PostMessage(gomock.Any(), chat.PostMessageCommand{Room: "room-1", SenderID: "bob", Content: "hello"}).
		Return(sampleView(), nil)
	chatService.EXPECT().Disconnect(gomock.Any()).AnyTimes()

	header := http.Header{}
	header.Set("Authorization", bearer(t, tokens, "bob"))
	conn := dial(t, server, header, "")

	req.NoError(conn.WriteJSON(map[string]string{"type": "join-room", "chatRoomId": "room-1"}))
	frame := readFrame(t, conn)
	req.Equal("room-joined", frame["type"])
	sink := <-joined

	// When a message is delivered to the connection sink
	view := sampleView()
	req.NoError(sink.Consume(context.Background(), event.MessagePosted{Message: view.Message, SenderName: "Alice"}))
	frame = readFrame(t, conn)
	req.Equal("new-message", frame["type"])
	message := frame["message"].(map[string]any)
	req.Equal("hi", message["content"])
	req.Equal("Alice", message["sender"].(map[string]any)["username"])

	// When the caller sends a message, the sender field of the frame is ignored
	req.NoError(conn.WriteJSON(map[string]string{"type": "send-message", "chatRoomId": "room-1", "content": "hello", "senderId": "alice"}))
	frame = readFrame(t, conn)
	req.Equal("send-result", frame["type"])
	req.Equal("accepted", frame["status"])

	req.NoError(sink.Consume(context.Background(), event.NewRoomClosed("room-1", event.CauseQuota, time.Now())))
	frame = readFrame(t, conn)
	req.Equal("room-closed", frame["type"])
	req.Equal(event.ReasonQuota, frame["message"])
}

func TestWSHandler_Errors(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	chatService := mocks.NewMockIChatService(ctrl)
	router, tokens := newTestRouter(t, chatService)
	server := httptest.NewServer(router)
	defer server.Close()

	chatService.EXPECT().
		JoinRoom(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.ErrNotParticipant)
	chatService.EXPECT().
		PostMessage(gomock.Any(), gomock.Any()).
		Return(services.MessageView{}, errors.ErrRoomClosed)
	chatService.EXPECT().Disconnect(gomock.Any()).AnyTimes()

	token := strings.TrimPrefix(bearer(t, tokens, "mallory"), "Bearer ")
	conn := dial(t, server, nil, "?token="+token)

	req.NoError(conn.WriteJSON(map[string]string{"type": "join-room", "chatRoomId": "room-1"}))
	frame := readFrame(t, conn)
	req.Equal("error", frame["type"])
	req.Equal("NOT_PARTICIPANT", frame["code"])

	req.NoError(conn.WriteJSON(map[string]string{"type": "send-message", "chatRoomId": "room-1", "content": "x"}))
	frame = readFrame(t, conn)
	req.Equal("send-result", frame["type"])
	req.Equal("closed", frame["status"])

	req.NoError(conn.WriteJSON(map[string]string{"type": "dance"}))
	frame = readFrame(t, conn)
	req.Equal("BAD_REQUEST", frame["code"])

	req.NoError(conn.WriteMessage(websocket.TextMessage, []byte("{")))
	frame = readFrame(t, conn)
	req.Equal("BAD_REQUEST", frame["code"])

	req.NoError(conn.WriteJSON(map[string]string{"type": "ping"}))
	frame = readFrame(t, conn)
	req.Equal("pong", frame["type"])
}

func TestWSHandler_Disconnect_Unsubscribes(t *testing.T) {
	ctrl := gomock.NewController(t)
	chatService := mocks.NewMockIChatService(ctrl)
	router, tokens := newTestRouter(t, chatService)
	server := httptest.NewServer(router)
	defer server.Close()

	disconnected := make(chan struct{})
	chatService.EXPECT().Disconnect(gomock.Any()).Do(func(contract.ConnID) { close(disconnected) })

	header := http.Header{}
	header.Set("Authorization", bearer(t, tokens, "bob"))
	conn := dial(t, server, header, "")
	_ = conn.Close()

	select {
	case <-disconnected:
	case <-time.After(2 * time.Second):
		require.Fail(t, "connection was not cleaned up")
	}
}

func TestWSHandler_Rejects_Without_Token(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	router, _ := newTestRouter(t, mocks.NewMockIChatService(ctrl))
	server := httptest.NewServer(router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	req.Error(err)
	req.NotNil(resp)
	req.Equal(http.StatusUnauthorized, resp.StatusCode)
}
