package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FullName string    `gorm:"size:255;not null" json:"full_name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;not null;default:'student'" json:"role"`
	Phone    *string   `gorm:"size:30" json:"phone"`
	City     *string   `gorm:"size:100" json:"city"`

	// Teacher profile. Subject is the retired singular column; it is folded
	// into Subjects by database.MigrateLegacySubjects and never read by
	// business logic.
	Subjects []string `gorm:"serializer:json" json:"subjects,omitempty"`
	Subject  *string  `gorm:"size:100" json:"-"`
	Points   *string  `gorm:"size:50" json:"points,omitempty"`
	Location *string  `gorm:"size:100" json:"location,omitempty"`
	Rules    *string  `gorm:"type:text" json:"rules,omitempty"`

	IsActive bool `gorm:"default:true" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
