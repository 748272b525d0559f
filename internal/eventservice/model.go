package eventservice

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sushihentaime/blogora/internal/common"
)

func newEventModel(db *sql.DB) *EventModel {
	return &EventModel{db: db}
}

const eventColumns = "id, title, location, due_date, image, web_link, description, user_id, created_at, updated_at"

func scanEvent(row *sql.Row) (*Event, error) {
	var e Event
	err := row.Scan(&e.ID, &e.Title, &e.Location, &e.DueDate, &e.Image, &e.WebLink, &e.Description, &e.UserID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &e, nil
}

func (m *EventModel) insert(ctx context.Context, req *CreateEventRequest, dueDate time.Time) (*Event, error) {
	query := `
		INSERT INTO events (title, location, due_date, image, web_link, description, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + eventColumns

	return scanEvent(m.db.QueryRowContext(ctx, query, req.Title, req.Location, dueDate, req.Image, req.WebLink, req.Description, req.UserID))
}

func (m *EventModel) getEvent(ctx context.Context, id int) (*Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1`

	return scanEvent(m.db.QueryRowContext(ctx, query, id))
}

func (m *EventModel) getEvents(ctx context.Context) ([]Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY due_date ASC`

	return m.queryEvents(ctx, query)
}

func (m *EventModel) getEventsByUser(ctx context.Context, userID int) ([]Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE user_id = $1
		ORDER BY due_date ASC`

	return m.queryEvents(ctx, query, userID)
}

func (m *EventModel) queryEvents(ctx context.Context, query string, args ...any) ([]Event, error) {
	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		err := rows.Scan(&e.ID, &e.Title, &e.Location, &e.DueDate, &e.Image, &e.WebLink, &e.Description, &e.UserID, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (m *EventModel) update(ctx context.Context, id int, req *UpdateEventRequest, dueDate *time.Time) (*Event, error) {
	query := `
		UPDATE events
		SET title = COALESCE($1, title),
			location = COALESCE($2, location),
			due_date = COALESCE($3, due_date),
			image = COALESCE($4, image),
			web_link = COALESCE($5, web_link),
			description = COALESCE($6, description),
			updated_at = now()
		WHERE id = $7
		RETURNING ` + eventColumns

	return scanEvent(m.db.QueryRowContext(ctx, query, req.Title, req.Location, dueDate, req.Image, req.WebLink, req.Description, id))
}

func (m *EventModel) delete(ctx context.Context, id int) (*Event, error) {
	query := `
		DELETE FROM events
		WHERE id = $1
		RETURNING ` + eventColumns

	return scanEvent(m.db.QueryRowContext(ctx, query, id))
}
