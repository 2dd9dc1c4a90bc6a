package ws

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexbridge/relay/internal/app"
	"github.com/lexbridge/relay/internal/config"
	"github.com/lexbridge/relay/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		AllowedOrigin: "*",
		ReadLimit:     32768,
		PingPeriod:    54 * time.Second,
		WriteTimeout:  5 * time.Second,
		SendBuffer:    32,
	}
}

func startRelay(t *testing.T, cfg *config.Config) (*httptest.Server, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gw := app.NewGateway(app.NewRegistry(), app.NewRoomManager()).WithTypingTTL(cfg.TypingTTL)
	ctl := NewController(gw, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	r := gin.New()
	r.GET("/ws", func(c *gin.Context) { ctl.HandleWS(ctx, c) })

	srv := httptest.NewServer(r)
	t.Cleanup(func() {
		cancel()
		srv.Close()
	})
	return srv, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

type wireEvent struct {
	Event          string           `json:"event"`
	Error          string           `json:"error"`
	UserID         string           `json:"userId"`
	UserRole       string           `json:"userRole"`
	ConversationID string           `json:"conversationId"`
	Members        []app.MemberInfo `json:"members"`
	Count          int              `json:"count"`
	IsTyping       bool             `json:"isTyping"`
	Message        domain.Message   `json:"message"`
}

func send(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(v))
}

func readEvent(t *testing.T, conn *websocket.Conn) wireEvent {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var e wireEvent
	require.NoError(t, json.Unmarshal(data, &e))
	return e
}

func authenticate(t *testing.T, conn *websocket.Conn, userID, role string) {
	t.Helper()
	send(t, conn, map[string]any{"event": "authenticate", "userId": userID, "userRole": role})
}

func join(t *testing.T, conn *websocket.Conn, conversationID string) wireEvent {
	t.Helper()
	send(t, conn, map[string]any{"event": "join-conversation", "conversationId": conversationID})
	e := readEvent(t, conn)
	require.Equal(t, "conversation-joined", e.Event)
	return e
}

func TestConversationFlow(t *testing.T) {
	_, url := startRelay(t, testConfig())

	client := dial(t, url)
	authenticate(t, client, "u1", "client")

	lawyer := dial(t, url)
	authenticate(t, lawyer, "u2", "lawyer")

	// The first peer sees the second one come online.
	e := readEvent(t, client)
	assert.Equal(t, "user-connected", e.Event)
	assert.Equal(t, "u2", e.UserID)
	assert.Equal(t, "lawyer", e.UserRole)

	e = join(t, client, "c1")
	assert.Equal(t, "c1", e.ConversationID)
	assert.Equal(t, 1, e.Count)

	e = join(t, lawyer, "c1")
	assert.Equal(t, 2, e.Count)
	require.Len(t, e.Members, 2)

	msg := domain.Message{
		ID:             "m1",
		ConversationID: "c1",
		SenderID:       "u1",
		SenderName:     "Asha",
		SenderRole:     domain.RoleClient,
		Content:        "hello counsel",
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}
	send(t, client, map[string]any{"event": "send-message", "message": msg})

	// Both room members receive the relayed copy, sender included.
	for _, conn := range []*websocket.Conn{client, lawyer} {
		e = readEvent(t, conn)
		require.Equal(t, "new-message", e.Event)
		assert.Equal(t, "m1", e.Message.ID)
		assert.Equal(t, "hello counsel", e.Message.Content)
	}

	// Typing reaches the other side only, never echoes back.
	send(t, lawyer, map[string]any{"event": "typing", "conversationId": "c1", "isTyping": true, "userId": "u2"})
	e = readEvent(t, client)
	require.Equal(t, "typing", e.Event)
	assert.True(t, e.IsTyping)
	assert.Equal(t, "u2", e.UserID)

	// If the indicator echoed, the lawyer's next frame would be typing.
	msg.ID, msg.Content = "m2", "any update?"
	send(t, client, map[string]any{"event": "send-message", "message": msg})
	e = readEvent(t, lawyer)
	require.Equal(t, "new-message", e.Event)
	assert.Equal(t, "m2", e.Message.ID)
}

func TestAuthenticateRejectsUnknownRole(t *testing.T) {
	_, url := startRelay(t, testConfig())

	conn := dial(t, url)
	authenticate(t, conn, "u1", "judge")

	e := readEvent(t, conn)
	assert.Equal(t, "error", e.Event)
	assert.Equal(t, "invalid_identity", e.Error)
}

func TestJoinWithoutConversationIDIsBadPayload(t *testing.T) {
	_, url := startRelay(t, testConfig())

	conn := dial(t, url)
	send(t, conn, map[string]any{"event": "join-conversation"})

	e := readEvent(t, conn)
	assert.Equal(t, "error", e.Event)
	assert.Equal(t, "bad_payload", e.Error)
}

func TestSendToUnjoinedConversationIsSilentlyDropped(t *testing.T) {
	_, url := startRelay(t, testConfig())

	conn := dial(t, url)
	send(t, conn, map[string]any{"event": "send-message", "message": domain.Message{
		ID:             "m1",
		ConversationID: "ghost",
		Content:        "into the void",
	}})
	join(t, conn, "c1")

	// The join ack arriving first proves no error or echo preceded it.
}

func TestDisconnectAnnouncedToRemainingPeer(t *testing.T) {
	_, url := startRelay(t, testConfig())

	a := dial(t, url)
	authenticate(t, a, "u1", "client")
	b := dial(t, url)
	authenticate(t, b, "u2", "lawyer")
	readEvent(t, a) // u2's user-connected

	require.NoError(t, b.Close())

	e := readEvent(t, a)
	assert.Equal(t, "user-disconnected", e.Event)
	assert.Equal(t, "u2", e.UserID)
}

func TestMessageRateLimitClosesTheFirehose(t *testing.T) {
	cfg := testConfig()
	cfg.MsgRateLimit = 2
	cfg.MsgRateEvery = time.Minute
	_, url := startRelay(t, cfg)

	conn := dial(t, url)
	join(t, conn, "c1")

	msg := map[string]any{"event": "send-message", "message": domain.Message{
		ID:             "m",
		ConversationID: "c1",
		Content:        "spam",
	}}
	for i := 0; i < 3; i++ {
		send(t, conn, msg)
	}

	readEvent(t, conn) // first relay
	readEvent(t, conn) // second relay
	e := readEvent(t, conn)
	assert.Equal(t, "error", e.Event)
	assert.Equal(t, "rate_limited", e.Error)
}
