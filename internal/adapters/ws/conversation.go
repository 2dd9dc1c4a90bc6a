package ws

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/lexbridge/relay/internal/app"
	"github.com/lexbridge/relay/internal/core"
	"github.com/lexbridge/relay/internal/domain"
)

type conversationPayload struct {
	Event          string `json:"event"`
	ConversationID string `json:"conversationId"`
}

func (ctl *Controller) handleJoin(connID core.ConnID, c *wsConn, data []byte) {
	var p conversationPayload
	if err := json.Unmarshal(data, &p); err != nil || p.ConversationID == "" {
		log.Warn().Str("module", "gateway.ws").Msg("bad join payload")
		ctl.sendError(c, "bad_payload")
		return
	}

	log.Info().Str("module", "gateway.ws").Str("conn", string(connID)).Str("conversation", p.ConversationID).Msg("join conversation")
	members, count := ctl.Gateway.Join(connID, domain.ConversationID(p.ConversationID))

	resp := struct {
		Event          string           `json:"event"`
		ConversationID string           `json:"conversationId"`
		Members        []app.MemberInfo `json:"members"`
		Count          int              `json:"count"`
	}{
		Event:          "conversation-joined",
		ConversationID: p.ConversationID,
		Members:        members,
		Count:          count,
	}
	ctl.sendJSON(c, resp)
}

func (ctl *Controller) handleLeave(connID core.ConnID, c *wsConn, data []byte) {
	var p conversationPayload
	if err := json.Unmarshal(data, &p); err != nil || p.ConversationID == "" {
		log.Warn().Str("module", "gateway.ws").Msg("bad leave payload")
		ctl.sendError(c, "bad_payload")
		return
	}

	log.Info().Str("module", "gateway.ws").Str("conn", string(connID)).Str("conversation", p.ConversationID).Msg("leave conversation")
	ctl.Gateway.Leave(connID, domain.ConversationID(p.ConversationID))
}
