package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs attaches conn to the hub and blocks until the peer disconnects.
func ServeWs(hub *Hub, conn *websocket.Conn, userID uuid.UUID) {
	client := &Client{Hub: hub, Conn: conn, UserID: userID, Send: make(chan []byte, sendBufferSize)}
	if !hub.Register(client) {
		conn.Close()
		return
	}

	go client.writePump()
	client.readPump()
}
