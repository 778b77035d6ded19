package services

import (
	"errors"
	"strings"

	"github.com/edmondkiprop/tutor_connect/database"
	"github.com/edmondkiprop/tutor_connect/models"
	"github.com/edmondkiprop/tutor_connect/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddStudent puts a student on a teacher's roster. The link stores a
// snapshot of the student's name and contact details as they are right now;
// later profile edits do not flow into it.
func AddStudent(teacherID uuid.UUID, student *models.User) (*models.StudentLink, error) {
	var existing models.StudentLink
	err := database.DB.
		Where("teacher_id = ? AND student_id = ?", teacherID, student.ID).
		First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyLinked
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	link := models.StudentLink{
		TeacherID: teacherID,
		StudentID: student.ID,
		Name:      student.FullName,
		Email:     &student.Email,
		Phone:     student.Phone,
	}
	if err := database.DB.Create(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// HasLesson is the rating eligibility gate: the link must exist AND the pair
// must share at least one appointment, past or future, any status.
func HasLesson(teacherID, studentID uuid.UUID) (bool, error) {
	var link models.StudentLink
	err := database.DB.
		Where("teacher_id = ? AND student_id = ?", teacherID, studentID).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var count int64
	err = database.DB.Model(&models.Appointment{}).
		Where("teacher_id = ? AND student_id = ?", teacherID, studentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// SearchStudents scans the student directory by partial email or phone.
// Email matching is a case-insensitive substring test. Phone matching
// compares digits only and accepts a partial number from either side.
func SearchStudents(query, by string) ([]models.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	var students []models.User
	if err := database.DB.Where("role = ?", "student").Find(&students).Error; err != nil {
		return nil, err
	}

	lower := strings.ToLower(query)
	var results []models.User
	for _, s := range students {
		if by == "phone" {
			if s.Phone != nil && utils.PhonesOverlap(*s.Phone, query) {
				results = append(results, s)
			}
			continue
		}
		if strings.Contains(strings.ToLower(s.Email), lower) {
			results = append(results, s)
		}
	}
	return results, nil
}

// ListStudents returns a teacher's roster.
func ListStudents(teacherID uuid.UUID) ([]models.StudentLink, error) {
	var links []models.StudentLink
	err := database.DB.
		Where("teacher_id = ?", teacherID).
		Order("created_at asc").
		Find(&links).Error
	return links, err
}

// LinkedTeacherIDs returns the ids of every teacher whose roster contains
// the student. Used to validate calendar mirrors against live links.
func LinkedTeacherIDs(studentID uuid.UUID) (map[uuid.UUID]bool, error) {
	var links []models.StudentLink
	if err := database.DB.Where("student_id = ?", studentID).Find(&links).Error; err != nil {
		return nil, err
	}
	ids := make(map[uuid.UUID]bool, len(links))
	for _, l := range links {
		ids[l.TeacherID] = true
	}
	return ids, nil
}
