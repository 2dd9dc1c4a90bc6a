// Package ws is the websocket transport adapter in front of the gateway.
// It owns connection lifecycles and translates wire events into gateway
// calls; all routing state lives behind the gateway.
package ws

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/lexbridge/relay/internal/app"
	"github.com/lexbridge/relay/internal/config"
	"github.com/lexbridge/relay/internal/core"
)

var ErrBackpressure = errors.New("backpressure")

type Controller struct {
	Gateway  *app.Gateway
	cfg      *config.Config
	upgrader websocket.Upgrader
	limiter  *MessageRateLimiter
}

func NewController(gw *app.Gateway, cfg *config.Config) *Controller {
	ctl := &Controller{
		Gateway: gw,
		cfg:     cfg,
		upgrader: websocket.Upgrader{
			CheckOrigin: originChecker(cfg.AllowedOrigin),
		},
	}
	if cfg.MsgRateLimit > 0 {
		ctl.limiter = NewMessageRateLimiter(cfg.MsgRateLimit, cfg.MsgRateEvery)
	}
	return ctl
}

func originChecker(allowed string) func(*http.Request) bool {
	if allowed == "" || allowed == "*" {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		return r.Header.Get("Origin") == allowed
	}
}

// wsConn pairs the raw socket with its buffered send queue. TrySend never
// blocks; a full queue is reported as backpressure and the frame is lost
// for this peer only.
type wsConn struct {
	conn *websocket.Conn
	send chan core.Frame

	mu     sync.RWMutex
	closed bool
}

func (c *wsConn) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errors.New("connection closed")
	}
	select {
	case c.send <- f:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *wsConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

// HandleWS upgrades the request and runs the connection until the transport
// closes. Identity is declared later via the authenticate event.
func (ctl *Controller) HandleWS(ctx context.Context, c *gin.Context) {
	socket, err := ctl.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Str("module", "gateway.ws").Err(err).Msg("ws upgrade")
		return
	}

	connID := core.ConnID(uuid.NewString())
	conn := &wsConn{
		conn: socket,
		send: make(chan core.Frame, ctl.cfg.SendBuffer),
	}
	log.Info().Str("module", "gateway.ws").Str("conn", string(connID)).Msg("new WS connection")

	ctl.Gateway.Connect(connID, conn)
	ctx, cancel := context.WithCancel(ctx)

	go ctl.writePump(ctx, conn)
	go func() {
		defer cancel()
		ctl.readPump(ctx, connID, conn)
	}()
}
