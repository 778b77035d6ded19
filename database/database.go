package database

import (
	"fmt"
	"log"

	config "github.com/edmondkiprop/tutor_connect/configs"
	"github.com/edmondkiprop/tutor_connect/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.StudentLink{},
		&models.Appointment{},
		&models.CalendarEntry{},
		&models.Rating{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")

	if err := MigrateLegacySubjects(DB); err != nil {
		log.Fatalf("🔥 Failed to migrate legacy subject column: %v", err)
	}
}

// MigrateLegacySubjects folds the retired singular subject column into the
// subjects list and clears it. Runs once per deploy; teachers created before
// multi-subject support get a one-element list, everyone else is untouched.
func MigrateLegacySubjects(db *gorm.DB) error {
	var teachers []models.User
	if err := db.Where("role = ? AND subject IS NOT NULL", "teacher").Find(&teachers).Error; err != nil {
		return err
	}

	for i := range teachers {
		t := &teachers[i]
		if *t.Subject != "" && !containsSubject(t.Subjects, *t.Subject) {
			t.Subjects = append(t.Subjects, *t.Subject)
		}
		t.Subject = nil
		if err := db.Model(t).Select("Subjects", "Subject").Updates(t).Error; err != nil {
			return err
		}
	}

	if len(teachers) > 0 {
		log.Printf("Migrated legacy subject field for %d teacher(s)", len(teachers))
	}
	return nil
}

func containsSubject(subjects []string, s string) bool {
	for _, v := range subjects {
		if v == s {
			return true
		}
	}
	return false
}
