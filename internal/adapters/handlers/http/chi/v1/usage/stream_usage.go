package usage

import (
	"net/http"
	"net/url"
	"path"

	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/notification/websocket"
)

// StreamUsageV1 upgrades the connection and subscribes it to usage snapshots
func (h *HandlerV1) StreamUsageV1(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader already replied
		h.logger.Warn("websocket upgrade failed", "error", err, "origin", r.Header.Get("Origin"))
		return
	}

	client := websocket.NewClient(h.hub, conn, h.logger)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}

// checkOrigin accepts requests without Origin (non browser clients) and
// origins matching one of the allowed patterns, e.g. http://localhost:*
func (h *HandlerV1) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if _, err := url.Parse(origin); err != nil {
		return false
	}
	for _, pattern := range h.allowedOrigins {
		if pattern == "*" || pattern == origin {
			return true
		}
		if ok, _ := path.Match(pattern, origin); ok {
			return true
		}
	}
	return false
}
