package handlers

import (
	"errors"

	"github.com/edmondkiprop/tutor_connect/database"
	"github.com/edmondkiprop/tutor_connect/models"
	"github.com/edmondkiprop/tutor_connect/services"
	"github.com/edmondkiprop/tutor_connect/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AddStudentRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
}

type RosterEntryResponse struct {
	models.StudentLink
	Appointments []models.Appointment `json:"appointments"`
}

// SearchStudents looks up student accounts by partial email or phone so a
// teacher can add them to their roster.
func SearchStudents(c *fiber.Ctx) error {
	q := c.Query("q")
	by := c.Query("by", "email")
	if by != "email" && by != "phone" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Search type must be email or phone"})
	}
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Enter an email or phone number"})
	}

	results, err := services.SearchStudents(q, by)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to search"})
	}

	type result struct {
		ID       uuid.UUID `json:"id"`
		FullName string    `json:"full_name"`
		Email    string    `json:"email"`
		Phone    *string   `json:"phone,omitempty"`
	}
	out := make([]result, 0, len(results))
	for _, u := range results {
		out = append(out, result{ID: u.ID, FullName: u.FullName, Email: u.Email, Phone: u.Phone})
	}
	return c.JSON(out)
}

func AddStudent(c *fiber.Ctx) error {
	teacherID, _ := currentUser(c)

	var req AddStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	studentID, _ := uuid.Parse(req.StudentID)

	var student models.User
	if err := database.DB.Where("id = ? AND role = ?", studentID, "student").First(&student).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	link, err := services.AddStudent(teacherID, &student)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyLinked) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Student already in your list"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add student"})
	}

	websocket.NotifyUsers(teacherID, studentID)
	return c.Status(fiber.StatusCreated).JSON(link)
}

// ListMyStudents returns the teacher's roster, each entry carrying the full
// appointment history with that student.
func ListMyStudents(c *fiber.Ctx) error {
	teacherID, _ := currentUser(c)

	links, err := services.ListStudents(teacherID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load students"})
	}

	entries := make([]RosterEntryResponse, 0, len(links))
	for _, link := range links {
		appointments, err := services.AppointmentsBetween(teacherID, link.StudentID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load students"})
		}
		entries = append(entries, RosterEntryResponse{StudentLink: link, Appointments: appointments})
	}
	return c.JSON(entries)
}

// RemoveStudent severs the relationship from the teacher's side: the link,
// every shared appointment and both calendar mirrors go in one shot.
func RemoveStudent(c *fiber.Ctx) error {
	teacherID, _ := currentUser(c)
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student id"})
	}

	if err := services.SeverLink(teacherID, studentID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not on your roster"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to remove student"})
	}

	websocket.NotifyUsers(teacherID, studentID)
	return c.JSON(fiber.Map{"message": "Student removed"})
}

// ListMyTeachers is the student's mirror of the roster: every teacher who
// has added them, with rating aggregates and the student's own score.
func ListMyTeachers(c *fiber.Ctx) error {
	studentID, role := currentUser(c)

	linked, err := services.LinkedTeacherIDs(studentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load teachers"})
	}

	cards := make([]TeacherCardResponse, 0, len(linked))
	for teacherID := range linked {
		var teacher models.User
		if err := database.DB.First(&teacher, "id = ?", teacherID).Error; err != nil {
			continue
		}
		card, err := buildTeacherCard(&teacher, studentID, role)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load teachers"})
		}
		cards = append(cards, card)
	}
	return c.JSON(cards)
}

// LeaveTeacher is the student-initiated teardown. Same end state as
// RemoveStudent.
func LeaveTeacher(c *fiber.Ctx) error {
	studentID, _ := currentUser(c)
	teacherID, err := uuid.Parse(c.Params("teacherId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid teacher id"})
	}

	if err := services.SeverLink(teacherID, studentID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "You are not on this teacher's roster"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to leave teacher"})
	}

	websocket.NotifyUsers(teacherID, studentID)
	return c.JSON(fiber.Map{"message": "Left teacher"})
}
