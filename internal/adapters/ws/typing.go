package ws

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/lexbridge/relay/internal/core"
	"github.com/lexbridge/relay/internal/domain"
)

func (ctl *Controller) handleTyping(connID core.ConnID, c *wsConn, data []byte) {
	var p struct {
		Event          string `json:"event"`
		ConversationID string `json:"conversationId"`
		IsTyping       bool   `json:"isTyping"`
		UserID         string `json:"userId"`
	}
	if err := json.Unmarshal(data, &p); err != nil || p.ConversationID == "" {
		log.Warn().Str("module", "gateway.ws").Msg("bad typing payload")
		ctl.sendError(c, "bad_payload")
		return
	}

	ctl.Gateway.Typing(connID, domain.ConversationID(p.ConversationID), domain.UserID(p.UserID), p.IsTyping)
}
