package http

import (
	"context"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/lexbridge/relay/internal/adapters/ws"
	"github.com/lexbridge/relay/internal/analysis"
	"github.com/lexbridge/relay/internal/app"
	"github.com/lexbridge/relay/internal/config"
)

// ClientTokenMiddleware pins a stable browser identity cookie so a client
// keeps the same token across reconnects.
func ClientTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie("ct")
		if token == "" {
			token = uuid.NewString()
			c.SetCookie("ct", token, 3600*24*7, "/", "", false, true)
		}
		c.Set("client_token", token)
		c.Next()
	}
}

func SetupRouter(ctx context.Context, cfg *config.Config, gw *app.Gateway, matcher *analysis.Matcher, search *SearchProxy) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte(cfg.Secret))
	r.Use(sessions.Sessions("LexBridgeSessions", store))
	r.Use(ClientTokenMiddleware())

	h := &Handlers{Gateway: gw, Matcher: matcher, Search: search}

	r.GET("/health", h.Health)

	api := r.Group("/api")
	api.POST("/ipc-search", h.IPCSearch)
	api.POST("/analyze", h.Analyze)

	wsCtl := ws.NewController(gw, cfg)
	r.GET("/ws", func(c *gin.Context) {
		log.Info().Str("module", "adapters.http").Str("token", c.GetString("client_token")).Msg("ws endpoint hit")
		wsCtl.HandleWS(ctx, c)
	})

	return r
}
