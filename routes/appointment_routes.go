package routes

import (
	"github.com/edmondkiprop/tutor_connect/handlers"
	"github.com/edmondkiprop/tutor_connect/middleware"
	"github.com/gofiber/fiber/v2"
)

func AppointmentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/teacher/appointments", middleware.Protected(), middleware.TeacherRequired(), handlers.CreateAppointment)
	api.Get("/calendar/upcoming", middleware.Protected(), handlers.GetUpcoming)
}
