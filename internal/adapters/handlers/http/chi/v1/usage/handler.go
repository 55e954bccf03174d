package usage

import (
	"log/slog"
	"time"

	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/notification/websocket"
	"github.com/Charlelielataste/escoffier-gallery/internal/config"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/port"
	"github.com/go-chi/chi/v5"
	gorilla "github.com/gorilla/websocket"
)

// HandlerV1 is the handler for v1 usage routes
type HandlerV1 struct {
	usageService   port.UsageService
	feed           port.UsageFeed
	hub            *websocket.Hub
	upgrader       gorilla.Upgrader
	allowedOrigins []string
	maxAge         time.Duration
	env            config.Env
	logger         *slog.Logger
}

// NewUsageHandlerV1 creates HandlerV1. feed and hub may be nil when the poller is disabled.
func NewUsageHandlerV1(service port.UsageService, feed port.UsageFeed, hub *websocket.Hub, env config.Env, server config.ServerConfig, usage config.UsageConfig, logger *slog.Logger) *HandlerV1 {
	h := &HandlerV1{
		usageService:   service,
		feed:           feed,
		hub:            hub,
		allowedOrigins: server.AllowedOrigins,
		maxAge:         2 * usage.PollInterval,
		env:            env,
		logger:         logger,
	}
	h.upgrader = gorilla.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.GetUsageV1)
	if h.hub != nil {
		router.Get("/ws", h.StreamUsageV1)
	}

	return router
}
