package handlers

import (
	"log"

	"github.com/edmondkiprop/tutor_connect/services"
	"github.com/gofiber/fiber/v2"
)

type ChatRequest struct {
	Messages []services.ChatMessage `json:"messages" validate:"required,min=1,dive"`
}

// StudyHelperChat relays the conversation to the generative API. Failures
// come back as a chat message rather than an HTTP error so the client can
// show them inline; there is no retry.
func StudyHelperChat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	reply, err := services.AskStudyHelper(req.Messages)
	if err != nil {
		log.Printf("Study helper request failed: %v", err)
		return c.JSON(fiber.Map{
			"role": "assistant",
			"text": "Sorry, I could not answer right now. Please try again.",
		})
	}

	return c.JSON(fiber.Map{"role": "assistant", "text": reply})
}
