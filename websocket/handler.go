package websocket

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket upgrades the request and keeps the client registered until
// its connection drops. The channel is unauthenticated; the client only
// listens.
func HandleWebSocket(c echo.Context, hub *Hub) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := NewClient(conn)
	hub.Register(client)
	go client.writePump()

	// Welcome message goes through the queue so it never races event writes
	client.send <- Notification{
		Type:    NotificationTypeConnected,
		Message: "WebSocket connection established",
	}

	go func() {
		defer hub.Unregister(client)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}()

	return nil
}
