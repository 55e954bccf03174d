package websocket

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/handlers/http/dto"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
)

// Hub fans usage snapshots out to the connected clients.
// It implements port.UsageBroadcaster.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan domain.UsageSnapshot
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	// last message, replayed to every new client
	last *dto.Message

	mu     sync.RWMutex
	logger *slog.Logger
}

// NewHub creates a new hub
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan domain.UsageSnapshot, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run serves registrations and broadcasts until ctx is done, then disconnects every client
func (h *Hub) Run(ctx context.Context) {
	h.logger.Info("websocket hub started")

	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Info("websocket hub stopped")
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			if h.last != nil {
				client.send <- *h.last
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Debug("client registered", "total_clients", total)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Debug("client unregistered", "total_clients", total)

		case snapshot := <-h.broadcast:
			message := dto.Message{Type: dto.MessageTypeUsage, Data: dto.NewUsage(snapshot)}
			h.mu.Lock()
			h.last = &message
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
					h.logger.Warn("client channel full, disconnected")
				}
			}
			h.mu.Unlock()
		}
	}
}

// Register registers a new client. A client registering on a stopped hub is closed at once.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		close(client.send)
	}
}

// Unregister removes a client
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// BroadcastUsage queues a snapshot for every client. A full queue drops the snapshot.
func (h *Hub) BroadcastUsage(snapshot domain.UsageSnapshot) {
	select {
	case h.broadcast <- snapshot:
	default:
		h.logger.Warn("broadcast channel full, dropping usage snapshot")
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
