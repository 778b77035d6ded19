package models

import (
	"time"

	"github.com/google/uuid"
)

const AppointmentStatusScheduled = "scheduled"

// Appointment is the canonical lesson record. Every appointment has exactly
// two CalendarEntry mirrors (one per party) sharing its ID and start time;
// the three rows are written and deleted together in one transaction.
type Appointment struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TeacherID   uuid.UUID `gorm:"type:uuid;not null;index" json:"teacher_id"`
	TeacherName string    `gorm:"size:255;not null" json:"teacher_name"`
	StudentID   uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	StudentName string    `gorm:"size:255;not null" json:"student_name"`
	StartsAt    time.Time `gorm:"not null" json:"starts_at"`
	Notes       *string   `gorm:"type:text" json:"notes"`
	Status      string    `gorm:"size:20;not null;default:'scheduled'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
