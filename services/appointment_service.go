package services

import (
	"errors"
	"time"

	"github.com/edmondkiprop/tutor_connect/database"
	"github.com/edmondkiprop/tutor_connect/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Schedule books a lesson between a teacher and a student already on their
// roster. It validates before touching the store, then writes the canonical
// appointment and both calendar mirrors under one fresh id inside a single
// transaction, so a failed write never leaves a partial set.
func Schedule(teacherID uuid.UUID, teacherName string, studentID uuid.UUID, studentName string, startsAt time.Time, notes *string) (uuid.UUID, error) {
	if !startsAt.After(time.Now()) {
		return uuid.Nil, ErrPastDateTime
	}

	var link models.StudentLink
	err := database.DB.
		Where("teacher_id = ? AND student_id = ?", teacherID, studentID).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, ErrNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		appointment := models.Appointment{
			ID:          id,
			TeacherID:   teacherID,
			TeacherName: teacherName,
			StudentID:   studentID,
			StudentName: studentName,
			StartsAt:    startsAt,
			Notes:       notes,
			Status:      models.AppointmentStatusScheduled,
		}
		if err := tx.Create(&appointment).Error; err != nil {
			return err
		}

		teacherEntry := models.CalendarEntry{
			OwnerID:       teacherID,
			AppointmentID: id,
			PartyID:       studentID,
			PartyName:     studentName,
			StartsAt:      startsAt,
			Notes:         notes,
			Status:        models.AppointmentStatusScheduled,
		}
		if err := tx.Create(&teacherEntry).Error; err != nil {
			return err
		}

		studentEntry := models.CalendarEntry{
			OwnerID:       studentID,
			AppointmentID: id,
			PartyID:       teacherID,
			PartyName:     teacherName,
			StartsAt:      startsAt,
			Notes:         notes,
			Status:        models.AppointmentStatusScheduled,
		}
		return tx.Create(&studentEntry).Error
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// UpcomingFor returns the user's calendar mirrors that are still scheduled
// and not yet started, soonest first. "Now" is evaluated per call, so an
// appointment drops out of the list once its time passes. Student views are
// additionally checked against the roster: a mirror whose teacher link was
// severed is never surfaced.
func UpcomingFor(userID uuid.UUID, role string) ([]models.CalendarEntry, error) {
	var entries []models.CalendarEntry
	err := database.DB.
		Where("owner_id = ? AND status = ? AND starts_at >= ?", userID, models.AppointmentStatusScheduled, time.Now()).
		Order("starts_at asc").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	if role != "student" {
		return entries, nil
	}

	linked, err := LinkedTeacherIDs(userID)
	if err != nil {
		return nil, err
	}
	visible := entries[:0]
	for _, e := range entries {
		if linked[e.PartyID] {
			visible = append(visible, e)
		}
	}
	return visible, nil
}

// AppointmentsBetween returns every canonical appointment for the pair,
// regardless of status or date.
func AppointmentsBetween(teacherID, studentID uuid.UUID) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := database.DB.
		Where("teacher_id = ? AND student_id = ?", teacherID, studentID).
		Order("starts_at asc").
		Find(&appointments).Error
	return appointments, err
}
