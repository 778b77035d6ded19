package services

import (
	"errors"

	"github.com/edmondkiprop/tutor_connect/database"
	"github.com/edmondkiprop/tutor_connect/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeverLink removes a student from a teacher's roster together with every
// appointment the pair shares and both calendar mirrors of each, all in one
// transaction. Either party may trigger it; the resulting state is the same.
// Ratings are left in place on purpose: a re-added student keeps their old
// score.
func SeverLink(teacherID, studentID uuid.UUID) error {
	var link models.StudentLink
	err := database.DB.
		Where("teacher_id = ? AND student_id = ?", teacherID, studentID).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		var appointments []models.Appointment
		if err := tx.Where("teacher_id = ? AND student_id = ?", teacherID, studentID).
			Find(&appointments).Error; err != nil {
			return err
		}

		for _, a := range appointments {
			if err := tx.Where("appointment_id = ? AND owner_id IN ?", a.ID, []uuid.UUID{teacherID, studentID}).
				Delete(&models.CalendarEntry{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.Appointment{}, "id = ?", a.ID).Error; err != nil {
				return err
			}
		}

		return tx.Where("teacher_id = ? AND student_id = ?", teacherID, studentID).
			Delete(&models.StudentLink{}).Error
	})
}
