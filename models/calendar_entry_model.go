package models

import (
	"time"

	"github.com/google/uuid"
)

// CalendarEntry is a per-user mirror of an Appointment filed in that user's
// own calendar. It names the OTHER party: a teacher's entry carries the
// student, a student's entry carries the teacher.
type CalendarEntry struct {
	OwnerID       uuid.UUID `gorm:"type:uuid;primary_key" json:"owner_id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;primary_key" json:"appointment_id"`
	PartyID       uuid.UUID `gorm:"type:uuid;not null" json:"party_id"`
	PartyName     string    `gorm:"size:255;not null" json:"party_name"`
	StartsAt      time.Time `gorm:"not null" json:"starts_at"`
	Notes         *string   `gorm:"type:text" json:"notes"`
	Status        string    `gorm:"size:20;not null;default:'scheduled'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
