package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	config "github.com/edmondkiprop/tutor_connect/configs"
	"github.com/edmondkiprop/tutor_connect/models"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// Mailer delivers transactional email through Brevo. All sends are
// best-effort: a delivery failure is logged, never surfaced to the caller.
type Mailer struct {
	apiKey string
	sender party
	client *http.Client
}

var mailer *Mailer

type party struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type transactionalEmail struct {
	Sender      party   `json:"sender"`
	To          []party `json:"to"`
	Subject     string  `json:"subject"`
	HTMLContent string  `json:"htmlContent"`
}

func InitEmailService() {
	apiKey := config.Config("BREVO_API_KEY")
	senderEmail := config.Config("EMAIL_SENDER")
	senderName := config.Config("EMAIL_SENDER_NAME")

	if apiKey == "" || senderEmail == "" {
		log.Println("⚠️ Email service not configured, notifications disabled.")
		mailer = nil
		return
	}

	mailer = &Mailer{
		apiKey: apiKey,
		sender: party{Name: senderName, Email: senderEmail},
		client: &http.Client{Timeout: 10 * time.Second},
	}
	log.Println("✅ Email service initialized successfully.")
}

// SendWelcome greets a freshly registered user.
func SendWelcome(user models.User) {
	deliver(user, "Welcome to TutorConnect!",
		"<h1>Welcome!</h1><p>Your account is ready.</p>")
}

// SendLessonScheduled tells both parties about a newly booked lesson.
func SendLessonScheduled(teacher, student models.User, startsAt time.Time) {
	when := startsAt.Format("Mon, 02 Jan 2006 15:04")
	deliver(student, "New Lesson Scheduled",
		fmt.Sprintf("<h1>Lesson Scheduled</h1><p>%s booked a lesson with you for %s.</p>", teacher.FullName, when))
	deliver(teacher, "Lesson Scheduled",
		fmt.Sprintf("<h1>Lesson Scheduled</h1><p>Your lesson with %s is set for %s.</p>", student.FullName, when))
}

// SendLessonReminder nudges both parties an hour before the lesson.
func SendLessonReminder(teacher, student models.User, startsAt time.Time) {
	subject := "Reminder: Your Lesson Starts in 1 Hour!"
	body := fmt.Sprintf(
		"<h1>Lesson Reminder</h1><p>Your lesson between %s and %s starts at %s.</p>",
		teacher.FullName, student.FullName, startsAt.Format(time.Kitchen),
	)
	deliver(student, subject, body)
	deliver(teacher, subject, body)
}

func deliver(to models.User, subject, htmlContent string) {
	if mailer == nil {
		return
	}
	if err := mailer.send(to, subject, htmlContent); err != nil {
		log.Printf("🔥 Failed to send email to %s: %v", to.Email, err)
		return
	}
	log.Printf("✅ Email sent successfully to %s", to.Email)
}

func (m *Mailer) send(to models.User, subject, htmlContent string) error {
	at := strings.Index(to.Email, "@")
	if at <= 0 {
		return fmt.Errorf("invalid recipient email: %s", to.Email)
	}
	name := to.FullName
	if name == "" {
		name = to.Email[:at]
	}

	body, err := json.Marshal(transactionalEmail{
		Sender:      m.sender,
		To:          []party{{Name: name, Email: to.Email}},
		Subject:     subject,
		HTMLContent: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %v", err)
	}

	req, err := http.NewRequest("POST", brevoEndpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", m.apiKey)
	req.Header.Set("content-type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		detail, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("brevo returned %d: %s", resp.StatusCode, detail)
	}
	return nil
}
