package routes

import (
	"github.com/edmondkiprop/tutor_connect/handlers"
	"github.com/edmondkiprop/tutor_connect/middleware"
	"github.com/gofiber/fiber/v2"
)

func RosterRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	roster := api.Group("/teacher/students", middleware.Protected(), middleware.TeacherRequired())
	roster.Get("", handlers.ListMyStudents)
	roster.Get("/search", handlers.SearchStudents)
	roster.Post("", handlers.AddStudent)
	roster.Delete("/:studentId", handlers.RemoveStudent)

	myTeachers := api.Group("/student/teachers", middleware.Protected(), middleware.StudentRequired())
	myTeachers.Get("", handlers.ListMyTeachers)
	myTeachers.Delete("/:teacherId", handlers.LeaveTeacher)
}
