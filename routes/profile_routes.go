package routes

import (
	"github.com/edmondkiprop/tutor_connect/handlers"
	"github.com/edmondkiprop/tutor_connect/middleware"
	"github.com/gofiber/fiber/v2"
)

func ProfileRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile", middleware.Protected())
	profile.Get("/me", handlers.GetProfile)
	profile.Put("/me", handlers.UpdateProfile)
}
