package ws

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/lexbridge/relay/internal/core"
)

func (ctl *Controller) writePump(ctx context.Context, c *wsConn) {
	ticker := time.NewTicker(ctl.cfg.PingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Debug().Str("module", "gateway.ws").Msg("writePump ctx done")
			return
		case <-ticker.C:
			deadline := time.Now().Add(ctl.cfg.WriteTimeout)
			if err := c.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				log.Debug().Str("module", "gateway.ws").Err(err).Msg("writePump ping")
				return
			}
		case data, ok := <-c.send:
			if !ok {
				log.Debug().Str("module", "gateway.ws").Msg("writePump channel closed")
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(ctl.cfg.WriteTimeout)); err != nil {
				log.Error().Str("module", "gateway.ws").Err(err).Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Str("module", "gateway.ws").Err(err).Msg("writePump write error")
				return
			}
		}
	}
}

func (ctl *Controller) readPump(ctx context.Context, connID core.ConnID, c *wsConn) {
	defer func() {
		log.Info().Str("module", "gateway.ws").Str("conn", string(connID)).Msg("readPump closing")
		ctl.Gateway.Disconnect(connID)
		if ctl.limiter != nil {
			ctl.limiter.Forget(connID)
		}
		c.Close()
	}()

	c.conn.SetReadLimit(ctl.cfg.ReadLimit)
	readWindow := ctl.cfg.PingPeriod + ctl.cfg.WriteTimeout
	_ = c.conn.SetReadDeadline(time.Now().Add(readWindow))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(readWindow))
	})

	for {
		select {
		case <-ctx.Done():
			log.Debug().Str("module", "gateway.ws").Str("conn", string(connID)).Msg("readPump ctx done")
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				log.Debug().Str("module", "gateway.ws").Str("conn", string(connID)).Err(err).Msg("readPump read error")
				return
			}
			ctl.handleEvent(connID, c, data)
		}
	}
}

func (ctl *Controller) handleEvent(connID core.ConnID, c *wsConn, data []byte) {
	var env struct {
		Event string `json:"event"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		log.Warn().Str("module", "gateway.ws").Err(err).Msg("bad json frame")
		ctl.sendError(c, "bad_payload")
		return
	}

	switch env.Event {
	case "authenticate":
		ctl.handleAuthenticate(connID, c, data)
	case "join-conversation":
		ctl.handleJoin(connID, c, data)
	case "leave-conversation":
		ctl.handleLeave(connID, c, data)
	case "send-message":
		ctl.handleSendMessage(connID, c, data)
	case "typing":
		ctl.handleTyping(connID, c, data)
	default:
		log.Warn().Str("module", "gateway.ws").Str("event", env.Event).Msg("unknown event")
	}
}

func (ctl *Controller) sendJSON(c *wsConn, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Str("module", "gateway.ws").Err(err).Msg("sendJSON marshal")
		return
	}
	_ = c.TrySend(b)
}

func (ctl *Controller) sendError(c *wsConn, reason string) {
	ctl.sendJSON(c, map[string]any{
		"event": "error",
		"error": reason,
	})
}
