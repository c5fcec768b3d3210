package live

import (
	"sync"

	"prospecttrack/internal/domain"

	"github.com/gorilla/websocket"
)

// Event is a real-time update pushed to subscribers of a prospect.
type Event struct {
	Type       string               `json:"type"`
	ProspectID string               `json:"prospect_id"`
	Summary    domain.RatingSummary `json:"summary"`
}

// Hub fans rating updates out to websocket subscribers keyed by prospect.
// A connection that fails a write is dropped; the triggering submission is
// never affected.
type Hub struct {
	subscribers map[string]map[*websocket.Conn]bool
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[*websocket.Conn]bool),
	}
}

func (h *Hub) Subscribe(prospectID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.subscribers[prospectID] == nil {
		h.subscribers[prospectID] = make(map[*websocket.Conn]bool)
	}
	h.subscribers[prospectID][conn] = true
}

func (h *Hub) Unsubscribe(prospectID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.dropLocked(prospectID, conn)
}

func (h *Hub) dropLocked(prospectID string, conn *websocket.Conn) {
	if conns, exists := h.subscribers[prospectID]; exists {
		if conns[conn] {
			_ = conn.Close()
			delete(conns, conn)
		}
		if len(conns) == 0 {
			delete(h.subscribers, prospectID)
		}
	}
}

// RatingUpdated implements the rating module's Broadcaster.
func (h *Hub) RatingUpdated(prospectID string, summary domain.RatingSummary) {
	event := Event{Type: "rating_updated", ProspectID: prospectID, Summary: summary}

	h.mutex.RLock()
	conns := make([]*websocket.Conn, 0, len(h.subscribers[prospectID]))
	for conn := range h.subscribers[prospectID] {
		conns = append(conns, conn)
	}
	h.mutex.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(event); err != nil {
			h.Unsubscribe(prospectID, conn)
		}
	}
}

func (h *Hub) SubscriberCount(prospectID string) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.subscribers[prospectID])
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for prospectID, conns := range h.subscribers {
		for conn := range conns {
			_ = conn.Close()
		}
		delete(h.subscribers, prospectID)
	}
}
