// Package http exposes the server over HTTP: a WebSocket endpoint speaking
// the same line protocol, plus read-only JSON listings of the model state.
package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/linechat/linechat-server/internal/config"
	"github.com/linechat/linechat-server/internal/hub"
)

// NewServer builds the HTTP server with its routes.
func NewServer(h *hub.Hub, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	handlers := &Handlers{hub: h, log: logger}
	router.GET("/health", handlers.Health)

	api := router.Group("/api")
	api.GET("/users", handlers.ListUsers)
	api.GET("/channels", handlers.ListChannels)
	api.GET("/channels/:name/members", handlers.ChannelMembers)

	router.GET("/ws", gin.WrapH(NewWSHandler(h, logger)))

	return &stdhttp.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
