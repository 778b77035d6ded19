package routes

import (
	"github.com/edmondkiprop/tutor_connect/handlers"
	"github.com/edmondkiprop/tutor_connect/middleware"
	"github.com/gofiber/fiber/v2"
)

func TeacherRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/teachers", middleware.Protected(), handlers.ListTeachers)
	api.Get("/teachers/:teacherId", middleware.Protected(), handlers.GetTeacher)
	api.Get("/teachers/:teacherId/ratings", middleware.Protected(), handlers.GetTeacherRatings)
	api.Put("/teachers/:teacherId/rating", middleware.Protected(), middleware.StudentRequired(), handlers.RateTeacher)
}
