package services

import (
	"github.com/edmondkiprop/tutor_connect/database"
	"github.com/edmondkiprop/tutor_connect/models"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

type RatingSummary struct {
	Average  float64  `json:"average"`
	Count    int      `json:"count"`
	OwnScore *float64 `json:"own_score,omitempty"`
}

// Rate records a student's score for a teacher. Score bounds are checked
// before anything else; eligibility requires a roster link plus at least one
// shared appointment. The write is an upsert keyed on (teacher, student), so
// repeating a rating overwrites rather than duplicates.
func Rate(teacherID, studentID uuid.UUID, studentName string, score float64) error {
	if score < 1 || score > 5 {
		return ErrInvalidScore
	}

	eligible, err := HasLesson(teacherID, studentID)
	if err != nil {
		return err
	}
	if !eligible {
		return ErrNotEligible
	}

	rating := models.Rating{
		TeacherID:   teacherID,
		StudentID:   studentID,
		Score:       score,
		StudentName: studentName,
	}
	return database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "teacher_id"}, {Name: "student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "student_name", "updated_at"}),
	}).Create(&rating).Error
}

// AggregateRatings computes a teacher's mean score and rating count in one
// pass, skipping rows whose score fell outside [1,5] (legacy bad writes).
// With no valid ratings it reports (0, 0). When callerID is set, the
// caller's own score is picked out of the same pass.
func AggregateRatings(teacherID, callerID uuid.UUID) (RatingSummary, error) {
	var ratings []models.Rating
	if err := database.DB.Where("teacher_id = ?", teacherID).Find(&ratings).Error; err != nil {
		return RatingSummary{}, err
	}

	var summary RatingSummary
	var total float64
	for _, r := range ratings {
		if r.Score < 1 || r.Score > 5 {
			continue
		}
		total += r.Score
		summary.Count++
		if callerID != uuid.Nil && r.StudentID == callerID {
			score := r.Score
			summary.OwnScore = &score
		}
	}
	if summary.Count > 0 {
		summary.Average = total / float64(summary.Count)
	}
	return summary, nil
}
