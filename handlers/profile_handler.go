package handlers

import (
	"github.com/edmondkiprop/tutor_connect/database"
	"github.com/edmondkiprop/tutor_connect/models"
	"github.com/gofiber/fiber/v2"
)

type UpdateProfileRequest struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	City     *string `json:"city"`

	// Teacher profile fields; rejected for students.
	Subjects []string `json:"subjects"`
	Points   *string  `json:"points"`
	Location *string  `json:"location"`
	Rules    *string  `json:"rules"`
}

func GetProfile(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(user)
}

func UpdateProfile(c *fiber.Ctx) error {
	userID, role := currentUser(c)

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if role != "teacher" && (req.Subjects != nil || req.Points != nil || req.Location != nil || req.Rules != nil) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only teachers can set teaching profile fields"})
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.City != nil {
		user.City = req.City
	}
	if role == "teacher" {
		if req.Subjects != nil {
			if len(req.Subjects) == 0 {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Select at least one subject"})
			}
			user.Subjects = req.Subjects
		}
		if req.Points != nil {
			user.Points = req.Points
		}
		if req.Location != nil {
			user.Location = req.Location
		}
		if req.Rules != nil {
			user.Rules = req.Rules
		}
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}
	return c.JSON(user)
}
