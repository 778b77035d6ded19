package handlers

import (
	"errors"

	"github.com/edmondkiprop/tutor_connect/database"
	"github.com/edmondkiprop/tutor_connect/models"
	"github.com/edmondkiprop/tutor_connect/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RateTeacherRequest struct {
	Score float64 `json:"score" validate:"required"`
}

// RateTeacher upserts the calling student's score for a teacher. One rating
// per pair; rating again replaces the previous score.
func RateTeacher(c *fiber.Ctx) error {
	studentID, _ := currentUser(c)
	teacherID, err := uuid.Parse(c.Params("teacherId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid teacher id"})
	}

	var req RateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var student models.User
	if err := database.DB.First(&student, "id = ?", studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	if err := services.Rate(teacherID, studentID, student.FullName, req.Score); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidScore):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Score must be between 1 and 5"})
		case errors.Is(err, services.ErrNotEligible):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only rate teachers you have had at least one lesson with"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit rating"})
		}
	}

	summary, err := services.AggregateRatings(teacherID, studentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit rating"})
	}
	return c.JSON(summary)
}

func GetTeacherRatings(c *fiber.Ctx) error {
	callerID, role := currentUser(c)
	teacherID, err := uuid.Parse(c.Params("teacherId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid teacher id"})
	}

	ratingCaller := uuid.Nil
	if role == "student" {
		ratingCaller = callerID
	}
	summary, err := services.AggregateRatings(teacherID, ratingCaller)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load ratings"})
	}
	return c.JSON(summary)
}
