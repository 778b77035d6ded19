package models

import (
	"time"

	"github.com/google/uuid"
)

// StudentLink is the teacher-owned roster record asserting "this student is
// mine". Its existence gates scheduling and rating. Name/contact fields are
// snapshots taken when the teacher added the student; they are not kept in
// sync with later profile edits.
type StudentLink struct {
	TeacherID uuid.UUID `gorm:"type:uuid;primary_key" json:"teacher_id"`
	StudentID uuid.UUID `gorm:"type:uuid;primary_key" json:"student_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     *string   `gorm:"size:255" json:"email"`
	Phone     *string   `gorm:"size:30" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
