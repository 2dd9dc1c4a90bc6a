package ws

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/lexbridge/relay/internal/core"
	"github.com/lexbridge/relay/internal/domain"
)

func (ctl *Controller) handleSendMessage(connID core.ConnID, c *wsConn, data []byte) {
	var p struct {
		Event   string         `json:"event"`
		Message domain.Message `json:"message"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Str("module", "gateway.ws").Msg("bad send-message payload")
		ctl.sendError(c, "bad_payload")
		return
	}

	if ctl.limiter != nil && !ctl.limiter.Allow(connID) {
		log.Warn().Str("module", "gateway.ws").Str("conn", string(connID)).Msg("message rate limit hit")
		ctl.sendError(c, "rate_limited")
		return
	}

	res := ctl.Gateway.Relay(p.Message)
	log.Debug().Str("module", "gateway.ws").Str("conn", string(connID)).Str("conversation", string(p.Message.ConversationID)).Int("sent_to", res.SentTo).Msg("message relayed")
}
