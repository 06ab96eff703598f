package websocket

import (
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// sendQueueSize bounds how far a slow client may lag before events are
// dropped for it.
const sendQueueSize = 16

// Client represents a connected dashboard session
type Client struct {
	ID   string
	conn *websocket.Conn
	send chan Notification
}

// NewClient wraps an upgraded connection in a client with a fresh id.
func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		ID:   uuid.NewString(),
		conn: conn,
		send: make(chan Notification, sendQueueSize),
	}
}

// writePump drains the send queue onto the connection. It exits when the
// queue is closed by Unregister or when a write fails.
func (c *Client) writePump() {
	for notification := range c.send {
		if err := c.conn.WriteJSON(notification); err != nil {
			return
		}
	}
}
