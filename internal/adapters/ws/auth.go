package ws

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/lexbridge/relay/internal/core"
	"github.com/lexbridge/relay/internal/domain"
)

func (ctl *Controller) handleAuthenticate(connID core.ConnID, c *wsConn, data []byte) {
	var p struct {
		Event    string `json:"event"`
		UserID   string `json:"userId"`
		UserRole string `json:"userRole"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Str("module", "gateway.ws").Err(err).Msg("bad authenticate payload")
		ctl.sendError(c, "bad_payload")
		return
	}

	role, err := domain.ParseRole(p.UserRole)
	var user *domain.User
	if err == nil {
		user, err = domain.NewUser(p.UserID, role)
	}
	if err != nil {
		log.Warn().Str("module", "gateway.ws").Str("conn", string(connID)).Err(err).Msg("authenticate rejected")
		ctl.sendError(c, "invalid_identity")
		return
	}

	log.Info().Str("module", "gateway.ws").Str("conn", string(connID)).Str("user", string(user.ID)).Str("role", string(user.Role)).Msg("authenticate")
	ctl.Gateway.Authenticate(connID, user.ID, user.Role)
}
