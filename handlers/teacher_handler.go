package handlers

import (
	"strings"

	"github.com/edmondkiprop/tutor_connect/database"
	"github.com/edmondkiprop/tutor_connect/models"
	"github.com/edmondkiprop/tutor_connect/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TeacherCardResponse struct {
	ID            uuid.UUID `json:"id"`
	FullName      string    `json:"full_name"`
	Subjects      []string  `json:"subjects,omitempty"`
	Points        *string   `json:"points,omitempty"`
	Location      *string   `json:"location,omitempty"`
	Email         string    `json:"email"`
	Phone         *string   `json:"phone,omitempty"`
	Rules         *string   `json:"rules,omitempty"`
	AverageRating float64   `json:"average_rating"`
	RatingCount   int       `json:"rating_count"`
	OwnScore      *float64  `json:"own_score,omitempty"`
	HasLessons    bool      `json:"has_lessons"`
}

// ListTeachers is the discovery directory. Subject filtering is an exact
// match against the subject list, location a case-insensitive substring.
// For a student caller each card also carries rating eligibility and their
// own existing score.
func ListTeachers(c *fiber.Ctx) error {
	callerID, role := currentUser(c)
	subject := c.Query("subject")
	location := strings.ToLower(c.Query("location"))

	var teachers []models.User
	if err := database.DB.Where("role = ?", "teacher").Find(&teachers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load teachers"})
	}

	cards := make([]TeacherCardResponse, 0, len(teachers))
	for i := range teachers {
		t := &teachers[i]
		if subject != "" && subject != "all" && !hasSubject(t.Subjects, subject) {
			continue
		}
		if location != "" && (t.Location == nil || !strings.Contains(strings.ToLower(*t.Location), location)) {
			continue
		}

		card, err := buildTeacherCard(t, callerID, role)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load teachers"})
		}
		cards = append(cards, card)
	}
	return c.JSON(cards)
}

func GetTeacher(c *fiber.Ctx) error {
	callerID, role := currentUser(c)
	teacherID, err := uuid.Parse(c.Params("teacherId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid teacher id"})
	}

	var teacher models.User
	if err := database.DB.Where("id = ? AND role = ?", teacherID, "teacher").First(&teacher).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher not found"})
	}

	card, err := buildTeacherCard(&teacher, callerID, role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load teacher"})
	}
	return c.JSON(card)
}

func buildTeacherCard(t *models.User, callerID uuid.UUID, role string) (TeacherCardResponse, error) {
	ratingCaller := uuid.Nil
	if role == "student" {
		ratingCaller = callerID
	}
	summary, err := services.AggregateRatings(t.ID, ratingCaller)
	if err != nil {
		return TeacherCardResponse{}, err
	}

	card := TeacherCardResponse{
		ID:            t.ID,
		FullName:      t.FullName,
		Subjects:      t.Subjects,
		Points:        t.Points,
		Location:      t.Location,
		Email:         t.Email,
		Phone:         t.Phone,
		Rules:         t.Rules,
		AverageRating: summary.Average,
		RatingCount:   summary.Count,
		OwnScore:      summary.OwnScore,
	}
	if role == "student" {
		hasLessons, err := services.HasLesson(t.ID, callerID)
		if err != nil {
			return TeacherCardResponse{}, err
		}
		card.HasLessons = hasLessons
	}
	return card, nil
}

func hasSubject(subjects []string, want string) bool {
	for _, s := range subjects {
		if strings.EqualFold(s, want) {
			return true
		}
	}
	return false
}
