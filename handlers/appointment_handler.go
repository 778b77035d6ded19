package handlers

import (
	"errors"
	"time"

	"github.com/edmondkiprop/tutor_connect/database"
	"github.com/edmondkiprop/tutor_connect/models"
	"github.com/edmondkiprop/tutor_connect/notifications"
	"github.com/edmondkiprop/tutor_connect/services"
	"github.com/edmondkiprop/tutor_connect/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	StartsAt  string `json:"starts_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Notes     string `json:"notes"`
}

func CreateAppointment(c *fiber.Ctx) error {
	teacherID, _ := currentUser(c)

	var req CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	studentID, _ := uuid.Parse(req.StudentID)
	startsAt, _ := time.Parse(time.RFC3339, req.StartsAt)

	var teacher models.User
	if err := database.DB.First(&teacher, "id = ?", teacherID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	var student models.User
	if err := database.DB.Where("id = ? AND role = ?", studentID, "student").First(&student).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	var notes *string
	if req.Notes != "" {
		notes = &req.Notes
	}

	id, err := services.Schedule(teacherID, teacher.FullName, studentID, student.FullName, startsAt, notes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPastDateTime):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Select a future date and time"})
		case errors.Is(err, services.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student is not on your roster"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save appointment"})
		}
	}

	go notifications.SendLessonScheduled(teacher, student, startsAt)

	websocket.NotifyUsers(teacherID, studentID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"appointment_id": id})
}

// GetUpcoming returns the caller's calendar view: scheduled, not yet
// started, soonest first.
func GetUpcoming(c *fiber.Ctx) error {
	userID, role := currentUser(c)

	entries, err := services.UpcomingFor(userID, role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load calendar"})
	}
	return c.JSON(entries)
}
