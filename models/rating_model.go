package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating is one student's score for one teacher. The student id is the
// canonical key; writing again overwrites. Ratings survive a roster
// teardown, so a re-added student keeps their old score.
type Rating struct {
	TeacherID   uuid.UUID `gorm:"type:uuid;primary_key" json:"teacher_id"`
	StudentID   uuid.UUID `gorm:"type:uuid;primary_key" json:"student_id"`
	Score       float64   `gorm:"not null" json:"score"`
	StudentName string    `gorm:"size:255;not null" json:"student_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
