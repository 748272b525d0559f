package eventservice

import (
	"context"
	"database/sql"
	"time"
)

type Event struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	DueDate     time.Time `json:"due_date"`
	Image       string    `json:"image"`
	WebLink     string    `json:"web_link"`
	Description string    `json:"description"`
	UserID      int       `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateEventRequest takes due_date as a string so the service can report a
// malformed date as a domain error instead of a decode failure.
type CreateEventRequest struct {
	Title       string `json:"title"`
	Location    string `json:"location"`
	DueDate     string `json:"due_date"`
	Image       string `json:"image"`
	WebLink     string `json:"web_link"`
	Description string `json:"description"`
	UserID      int    `json:"userId"`
}

type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Location    *string `json:"location"`
	DueDate     *string `json:"due_date"`
	Image       *string `json:"image"`
	WebLink     *string `json:"web_link"`
	Description *string `json:"description"`
}

type UserFinder interface {
	UserExists(ctx context.Context, id int) (bool, error)
}

type EventModel struct {
	db *sql.DB
}

type EventService struct {
	m     *EventModel
	users UserFinder
}
