package websocket

import (
	"log"
	"sync"
)

// Notification types pushed to connected dashboards
const (
	NotificationTypeNewRequest    = "newInterviewRequest"
	NotificationTypeStatusUpdated = "requestStatusUpdated"
	NotificationTypeConnected     = "connected"
)

// Notification represents a message sent over WebSocket
type Notification struct {
	Type    string      `json:"type"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Hub maintains the set of active clients and broadcasts events to them.
// There is no backlog: a client registered after Broadcast returns never
// sees that event. Dashboard polling covers the gap.
type Hub struct {
	clients map[string]*Client
	mu      sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	h.clients[client.ID] = client
	h.mu.Unlock()
}

// Unregister removes a client, closing its queue and connection. Calling it
// again for the same client is a no-op.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.ID]; !ok {
		return
	}
	delete(h.clients, client.ID)
	close(client.send)
	if client.conn != nil {
		client.conn.Close()
	}
}

// Broadcast queues a notification for every connected client. Delivery is
// best-effort: a client whose queue is full misses the event, and no client
// can delay another client or the caller.
func (h *Hub) Broadcast(notification Notification) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients {
		select {
		case client.send <- notification:
		default:
			log.Printf("websocket: dropping %s event for slow client %s", notification.Type, client.ID)
		}
	}
}

// ClientCount returns the number of currently connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
