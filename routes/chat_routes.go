package routes

import (
	"github.com/edmondkiprop/tutor_connect/handlers"
	"github.com/edmondkiprop/tutor_connect/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func ChatRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/assistant/chat", middleware.Protected(), handlers.StudyHelperChat)

	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws", websocket.New(handlers.ServeWs))
}
