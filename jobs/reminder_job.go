package jobs

import (
	"log"
	"time"

	"github.com/edmondkiprop/tutor_connect/database"
	"github.com/edmondkiprop/tutor_connect/models"
	"github.com/edmondkiprop/tutor_connect/notifications"
)

// SendLessonReminders emails both parties of every appointment starting in
// roughly one hour. The window matches the cron cadence so each appointment
// is picked up exactly once.
func SendLessonReminders() {
	log.Println("Running job: SendLessonReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var upcoming []models.Appointment
	err := database.DB.
		Where("status = ? AND starts_at BETWEEN ? AND ?", models.AppointmentStatusScheduled, lowerBound, upperBound).
		Find(&upcoming).Error
	if err != nil {
		log.Printf("Error checking for upcoming lessons: %v", err)
		return
	}

	for _, apt := range upcoming {
		var teacher, student models.User
		if err := database.DB.First(&teacher, "id = ?", apt.TeacherID).Error; err != nil {
			log.Printf("Reminder skipped, teacher %s not found: %v", apt.TeacherID, err)
			continue
		}
		if err := database.DB.First(&student, "id = ?", apt.StudentID).Error; err != nil {
			log.Printf("Reminder skipped, student %s not found: %v", apt.StudentID, err)
			continue
		}

		go notifications.SendLessonReminder(teacher, student, apt.StartsAt)
	}
}
