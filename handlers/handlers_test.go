package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/edmondkiprop/tutor_connect/routes"
	"github.com/edmondkiprop/tutor_connect/testutil"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	testutil.Open(t)

	app := fiber.New()
	routes.AuthRoutes(app)
	routes.ProfileRoutes(app)
	routes.TeacherRoutes(app)
	routes.RosterRoutes(app)
	routes.AppointmentRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func registerAndLogin(t *testing.T, app *fiber.App, role, name string) (id, token string) {
	t.Helper()
	payload := map[string]any{
		"full_name": name + " person",
		"email":     name + "@example.test",
		"password":  "secret123",
		"role":      role,
		"phone":     "+254712345678",
	}
	if role == "teacher" {
		payload["subjects"] = []string{"Math"}
		payload["location"] = "Nairobi"
	}
	resp, body := doJSON(t, app, "POST", "/api/v1/auth/register", "", payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, "register %s: %v", name, body)
	id = body["id"].(string)

	resp, body = doJSON(t, app, "POST", "/api/v1/auth/login", "", map[string]any{
		"email":    name + "@example.test",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	token = body["token"].(string)
	return id, token
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/api/v1/auth/register", "", map[string]any{
		"full_name": "no phone", "email": "a@b.test", "password": "secret123", "role": "student", "phone": "123",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "invalid phone")

	resp, _ = doJSON(t, app, "POST", "/api/v1/auth/register", "", map[string]any{
		"full_name": "subjectless", "email": "c@d.test", "password": "secret123", "role": "teacher", "phone": "+254712345678",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "teacher without subjects")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := newTestApp(t)

	payload := map[string]any{
		"full_name": "first signup", "email": "dup@example.test", "password": "secret123",
		"role": "student", "phone": "+254712345678",
	}
	resp, _ := doJSON(t, app, "POST", "/api/v1/auth/register", "", payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	payload["full_name"] = "second signup"
	resp, body := doJSON(t, app, "POST", "/api/v1/auth/register", "", payload)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Email already exists", body["error"])
}

func TestRosterAndSchedulingFlow(t *testing.T) {
	app := newTestApp(t)
	_, teacherTok := registerAndLogin(t, app, "teacher", "alice")
	studentID, studentTok := registerAndLogin(t, app, "student", "bob")

	// Students cannot touch the roster endpoints.
	resp, _ := doJSON(t, app, "POST", "/api/v1/teacher/students", studentTok, map[string]any{"student_id": studentID})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/api/v1/teacher/students", teacherTok, map[string]any{"student_id": studentID})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/api/v1/teacher/students", teacherTok, map[string]any{"student_id": studentID})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode, "adding twice")

	// Past time is rejected before anything is written.
	resp, _ = doJSON(t, app, "POST", "/api/v1/teacher/appointments", teacherTok, map[string]any{
		"student_id": studentID,
		"starts_at":  time.Now().Add(-time.Hour).Format(time.RFC3339),
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, body := doJSON(t, app, "POST", "/api/v1/teacher/appointments", teacherTok, map[string]any{
		"student_id": studentID,
		"starts_at":  time.Now().Add(2 * time.Hour).Format(time.RFC3339),
		"notes":      "algebra",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, "schedule: %v", body)
	assert.NotEmpty(t, body["appointment_id"])

	// Both calendars see the lesson.
	for _, tok := range []string{teacherTok, studentTok} {
		req := httptest.NewRequest("GET", "/api/v1/calendar/upcoming", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		r, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, r.StatusCode)
		var entries []map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&entries))
		assert.Len(t, entries, 1)
	}
}

func TestRatingFlow(t *testing.T) {
	app := newTestApp(t)
	teacherID, teacherTok := registerAndLogin(t, app, "teacher", "alice")
	studentID, studentTok := registerAndLogin(t, app, "student", "bob")

	ratePath := fmt.Sprintf("/api/v1/teachers/%s/rating", teacherID)

	// Teachers cannot rate at all.
	resp, _ := doJSON(t, app, "PUT", ratePath, teacherTok, map[string]any{"score": 5})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Linked but no lesson yet.
	resp, _ = doJSON(t, app, "POST", "/api/v1/teacher/students", teacherTok, map[string]any{"student_id": studentID})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp, _ = doJSON(t, app, "PUT", ratePath, studentTok, map[string]any{"score": 5})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/api/v1/teacher/appointments", teacherTok, map[string]any{
		"student_id": studentID,
		"starts_at":  "2099-01-01T10:00:00Z",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, "PUT", ratePath, studentTok, map[string]any{"score": 9})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "score out of range")

	resp, body := doJSON(t, app, "PUT", ratePath, studentTok, map[string]any{"score": 5})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 5.0, body["average"])
	assert.Equal(t, 1.0, body["count"])

	// Severing the link preserves the rating.
	resp, _ = doJSON(t, app, "DELETE", "/api/v1/student/teachers/"+teacherID, studentTok, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, "GET", fmt.Sprintf("/api/v1/teachers/%s/ratings", teacherID), teacherTok, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1.0, body["count"])
}
