package database_test

import (
	"testing"

	"github.com/edmondkiprop/tutor_connect/database"
	"github.com/edmondkiprop/tutor_connect/models"
	"github.com/edmondkiprop/tutor_connect/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestMigrateLegacySubjects(t *testing.T) {
	db := testutil.Open(t)

	legacy := models.User{
		FullName: "old teacher",
		Email:    "old@teachers.test",
		Password: "x",
		Role:     "teacher",
		Subject:  strPtr("Physics"),
	}
	require.NoError(t, db.Create(&legacy).Error)

	partial := models.User{
		FullName: "half migrated",
		Email:    "half@teachers.test",
		Password: "x",
		Role:     "teacher",
		Subject:  strPtr("Math"),
		Subjects: []string{"Math", "Chemistry"},
	}
	require.NoError(t, db.Create(&partial).Error)

	modern := models.User{
		FullName: "new teacher",
		Email:    "new@teachers.test",
		Password: "x",
		Role:     "teacher",
		Subjects: []string{"Biology"},
	}
	require.NoError(t, db.Create(&modern).Error)

	require.NoError(t, database.MigrateLegacySubjects(db))

	var gotLegacy models.User
	require.NoError(t, db.First(&gotLegacy, "email = ?", "old@teachers.test").Error)
	assert.Equal(t, []string{"Physics"}, gotLegacy.Subjects)
	assert.Nil(t, gotLegacy.Subject)

	var gotPartial models.User
	require.NoError(t, db.First(&gotPartial, "email = ?", "half@teachers.test").Error)
	assert.Equal(t, []string{"Math", "Chemistry"}, gotPartial.Subjects, "no duplicate when already listed")
	assert.Nil(t, gotPartial.Subject)

	var gotModern models.User
	require.NoError(t, db.First(&gotModern, "email = ?", "new@teachers.test").Error)
	assert.Equal(t, []string{"Biology"}, gotModern.Subjects)

	// Running again is a no-op.
	require.NoError(t, database.MigrateLegacySubjects(db))
	var legacyCount int64
	db.Model(&models.User{}).Where("subject IS NOT NULL").Count(&legacyCount)
	assert.Zero(t, legacyCount)
}
