package services_test

import (
	"testing"
	"time"

	"github.com/edmondkiprop/tutor_connect/models"
	"github.com/edmondkiprop/tutor_connect/services"
	"github.com/edmondkiprop/tutor_connect/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func link(t *testing.T, teacher, student *models.User) {
	t.Helper()
	_, err := services.AddStudent(teacher.ID, student)
	require.NoError(t, err)
}

func TestScheduleCreatesThreeRecords(t *testing.T) {
	db := testutil.Open(t)
	teacher := newTeacher(t, db, "alice")
	student := newStudent(t, db, "bob", "")
	link(t, teacher, student)

	when := time.Date(2099, 1, 1, 10, 0, 0, 0, time.UTC)
	notes := "bring homework"
	id, err := services.Schedule(teacher.ID, teacher.FullName, student.ID, student.FullName, when, &notes)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	var apt models.Appointment
	require.NoError(t, db.First(&apt, "id = ?", id).Error)
	assert.Equal(t, "scheduled", apt.Status)
	assert.True(t, apt.StartsAt.Equal(when))
	assert.Equal(t, teacher.ID, apt.TeacherID)
	assert.Equal(t, student.ID, apt.StudentID)

	var mirrors []models.CalendarEntry
	require.NoError(t, db.Where("appointment_id = ?", id).Find(&mirrors).Error)
	require.Len(t, mirrors, 2)
	byOwner := map[uuid.UUID]models.CalendarEntry{}
	for _, m := range mirrors {
		assert.True(t, m.StartsAt.Equal(when))
		assert.Equal(t, "scheduled", m.Status)
		byOwner[m.OwnerID] = m
	}
	// Each mirror names the other party.
	assert.Equal(t, student.ID, byOwner[teacher.ID].PartyID)
	assert.Equal(t, "bob", byOwner[teacher.ID].PartyName)
	assert.Equal(t, teacher.ID, byOwner[student.ID].PartyID)
	assert.Equal(t, "alice", byOwner[student.ID].PartyName)
}

func TestScheduleRejectsPastAndNow(t *testing.T) {
	db := testutil.Open(t)
	teacher := newTeacher(t, db, "alice")
	student := newStudent(t, db, "bob", "")
	link(t, teacher, student)

	for _, when := range []time.Time{
		time.Now().Add(-time.Hour),
		time.Now(), // equal to now is not strictly future
	} {
		_, err := services.Schedule(teacher.ID, teacher.FullName, student.ID, student.FullName, when, nil)
		assert.ErrorIs(t, err, services.ErrPastDateTime)
	}

	var appointments, mirrors int64
	db.Model(&models.Appointment{}).Count(&appointments)
	db.Model(&models.CalendarEntry{}).Count(&mirrors)
	assert.Zero(t, appointments, "a rejected schedule writes nothing")
	assert.Zero(t, mirrors)
}

func TestScheduleRequiresLink(t *testing.T) {
	db := testutil.Open(t)
	teacher := newTeacher(t, db, "alice")
	student := newStudent(t, db, "bob", "")

	_, err := services.Schedule(teacher.ID, teacher.FullName, student.ID, student.FullName,
		time.Now().Add(time.Hour), nil)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestUpcomingForOrderingAndFiltering(t *testing.T) {
	db := testutil.Open(t)
	teacher := newTeacher(t, db, "alice")
	student := newStudent(t, db, "bob", "")
	link(t, teacher, student)

	later := time.Now().Add(48 * time.Hour)
	sooner := time.Now().Add(2 * time.Hour)
	_, err := services.Schedule(teacher.ID, teacher.FullName, student.ID, student.FullName, later, nil)
	require.NoError(t, err)
	_, err = services.Schedule(teacher.ID, teacher.FullName, student.ID, student.FullName, sooner, nil)
	require.NoError(t, err)

	// A mirror whose time already passed drops out without any event.
	past := models.CalendarEntry{
		OwnerID:       teacher.ID,
		AppointmentID: uuid.New(),
		PartyID:       student.ID,
		PartyName:     "bob",
		StartsAt:      time.Now().Add(-time.Hour),
		Status:        models.AppointmentStatusScheduled,
	}
	require.NoError(t, db.Create(&past).Error)

	entries, err := services.UpcomingFor(teacher.ID, "teacher")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].StartsAt.Before(entries[1].StartsAt), "ascending by start time")
}

func TestUpcomingForStudentHidesOrphanedMirrors(t *testing.T) {
	db := testutil.Open(t)
	teacher := newTeacher(t, db, "alice")
	student := newStudent(t, db, "bob", "")
	link(t, teacher, student)

	_, err := services.Schedule(teacher.ID, teacher.FullName, student.ID, student.FullName,
		time.Now().Add(time.Hour), nil)
	require.NoError(t, err)

	// An orphaned mirror from a teacher who never linked (or whose link is
	// gone) must not surface in the student view.
	orphan := models.CalendarEntry{
		OwnerID:       student.ID,
		AppointmentID: uuid.New(),
		PartyID:       uuid.New(),
		PartyName:     "ghost",
		StartsAt:      time.Now().Add(time.Hour),
		Status:        models.AppointmentStatusScheduled,
	}
	require.NoError(t, db.Create(&orphan).Error)

	entries, err := services.UpcomingFor(student.ID, "student")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, teacher.ID, entries[0].PartyID)

	// The teacher view does not apply the roster check.
	entries, err = services.UpcomingFor(student.ID, "teacher")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestAppointmentsBetween(t *testing.T) {
	db := testutil.Open(t)
	teacher := newTeacher(t, db, "alice")
	s1 := newStudent(t, db, "bob", "")
	s2 := newStudent(t, db, "carla", "")
	link(t, teacher, s1)
	link(t, teacher, s2)

	_, err := services.Schedule(teacher.ID, teacher.FullName, s1.ID, s1.FullName, time.Now().Add(time.Hour), nil)
	require.NoError(t, err)
	_, err = services.Schedule(teacher.ID, teacher.FullName, s2.ID, s2.FullName, time.Now().Add(time.Hour), nil)
	require.NoError(t, err)

	appointments, err := services.AppointmentsBetween(teacher.ID, s1.ID)
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, s1.ID, appointments[0].StudentID)

	cross := services.SeverLink(teacher.ID, s2.ID)
	require.NoError(t, cross)
	appointments, err = services.AppointmentsBetween(teacher.ID, s1.ID)
	require.NoError(t, err)
	assert.Len(t, appointments, 1, "severing one pair leaves other pairs alone")
}
