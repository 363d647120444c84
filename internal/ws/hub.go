// Package ws streams flushed onboarding lifecycle events to connected
// dashboard clients. The hub is an analytics sink: it never blocks the
// emitter, and a slow client just misses events.
package ws

import (
	"encoding/json"
	"sync"

	"artist_marketplace/internal/domain"
	"artist_marketplace/internal/logger"
)

type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	logger.Debug("funnel client connected", "clients", h.ClientCount())
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FlushEvents implements service.Sink: broadcast each event to every
// connected client, dropping for clients whose send buffer is full.
func (h *Hub) FlushEvents(events []domain.LifecycleEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.clients) == 0 {
		return
	}
	for _, ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			continue
		}
		for c := range h.clients {
			select {
			case c.send <- payload:
			default:
			}
		}
	}
}
