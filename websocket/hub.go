package websocket

import (
	"log"
	"sync"

	"github.com/edmondkiprop/tutor_connect/database"
	"github.com/edmondkiprop/tutor_connect/models"
	"github.com/edmondkiprop/tutor_connect/services"
	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// The hub pushes live query snapshots instead of deltas: whenever something
// a user can see changes, their ENTIRE current view (upcoming calendar plus
// roster) is re-read and re-sent. Clients replace their state wholesale on
// every delivery.

type Client struct {
	UserID uuid.UUID
	Role   string
	Conn   *websocket.Conn
}

// Snapshot is one full delivery for one user.
type Snapshot struct {
	Type     string                 `json:"type"`
	Upcoming []models.CalendarEntry `json:"upcoming"`
	Students []models.StudentLink   `json:"students,omitempty"`
	Teachers []teacherCard          `json:"teachers,omitempty"`
}

type teacherCard struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Subjects []string  `json:"subjects,omitempty"`
	Location *string   `json:"location,omitempty"`
	Average  float64   `json:"average_rating"`
	Count    int       `json:"rating_count"`
}

var (
	clients    = make(map[uuid.UUID]*Client)
	clientsMu  sync.RWMutex
	Register   = make(chan *Client)
	Unregister = make(chan *Client)
	Invalidate = make(chan uuid.UUID, 64)
)

func RunHub() {
	for {
		select {
		case client := <-Register:
			clientsMu.Lock()
			clients[client.UserID] = client
			clientsMu.Unlock()
			pushSnapshot(client)
		case client := <-Unregister:
			clientsMu.Lock()
			if c, ok := clients[client.UserID]; ok && c.Conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case userID := <-Invalidate:
			clientsMu.RLock()
			client, ok := clients[userID]
			clientsMu.RUnlock()
			if ok {
				pushSnapshot(client)
			}
		}
	}
}

// NotifyUsers queues a snapshot refresh for each user. Services call this
// after every mutation; users without an open connection are skipped.
func NotifyUsers(userIDs ...uuid.UUID) {
	for _, id := range userIDs {
		select {
		case Invalidate <- id:
		default:
			log.Printf("snapshot queue full, dropping refresh for %s", id)
		}
	}
}

func pushSnapshot(client *Client) {
	snap, err := buildSnapshot(client.UserID, client.Role)
	if err != nil {
		log.Printf("Failed to build snapshot for %s: %v", client.UserID, err)
		return
	}
	if err := client.Conn.WriteJSON(snap); err != nil {
		log.Printf("Failed to push snapshot to %s: %v", client.UserID, err)
		client.Conn.Close()
		clientsMu.Lock()
		if c, ok := clients[client.UserID]; ok && c.Conn == client.Conn {
			delete(clients, client.UserID)
		}
		clientsMu.Unlock()
	}
}

func buildSnapshot(userID uuid.UUID, role string) (*Snapshot, error) {
	upcoming, err := services.UpcomingFor(userID, role)
	if err != nil {
		return nil, err
	}
	snap := &Snapshot{Type: "snapshot", Upcoming: upcoming}

	if role == "teacher" {
		students, err := services.ListStudents(userID)
		if err != nil {
			return nil, err
		}
		snap.Students = students
		return snap, nil
	}

	linked, err := services.LinkedTeacherIDs(userID)
	if err != nil {
		return nil, err
	}
	for teacherID := range linked {
		var teacher models.User
		if err := database.DB.First(&teacher, "id = ?", teacherID).Error; err != nil {
			continue
		}
		summary, err := services.AggregateRatings(teacherID, userID)
		if err != nil {
			return nil, err
		}
		snap.Teachers = append(snap.Teachers, teacherCard{
			ID:       teacher.ID,
			FullName: teacher.FullName,
			Subjects: teacher.Subjects,
			Location: teacher.Location,
			Average:  summary.Average,
			Count:    summary.Count,
		})
	}
	return snap, nil
}
