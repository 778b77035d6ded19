package handlers

import (
	"log"

	"github.com/edmondkiprop/tutor_connect/websocket"
	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// ServeWs upgrades a client onto the snapshot hub. The first frame must be
// an auth message carrying a JWT; after that the hub owns the connection and
// pushes full snapshots until the client disconnects.
func ServeWs(c *websocketcontrib.Conn) {
	type AuthMessage struct {
		Type  string `json:"type"`
		Token string `json:"token"`
	}
	var authMsg AuthMessage
	if err := c.ReadJSON(&authMsg); err != nil || authMsg.Type != "auth" {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid or missing auth message"})
		c.Close()
		return
	}

	claims, err := parseToken(authMsg.Token)
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid token"})
		c.Close()
		return
	}

	userID, role, err := claimsIdentity(claims)
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid user ID"})
		c.Close()
		return
	}

	client := &websocket.Client{UserID: userID, Role: role, Conn: c}
	websocket.Register <- client
	defer func() {
		websocket.Unregister <- client
		c.Close()
	}()

	log.Printf("WebSocket client registered: %s", userID)

	// Reads are only used to detect disconnect; the hub never expects
	// client frames after auth.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
