package eventservice

import (
	"context"
	"database/sql"
	"time"

	"github.com/sushihentaime/blogora/internal/common"
)

func NewEventService(db *sql.DB, users UserFinder) *EventService {
	return &EventService{
		m:     newEventModel(db),
		users: users,
	}
}

// parseDueDate accepts RFC 3339 timestamps and bare dates.
func parseDueDate(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02", value)
}

func (s *EventService) CreateEvent(ctx context.Context, req *CreateEventRequest) (*Event, error) {
	if req.Title == "" || req.Location == "" || req.DueDate == "" || req.Image == "" || req.WebLink == "" || req.Description == "" || req.UserID == 0 {
		return nil, common.NewDomainError("title, location, due_date, image, web_link, description and userId must be provided")
	}

	if len(req.Title) < 3 {
		return nil, common.NewDomainError("title must be at least 3 characters long")
	}

	if len(req.Description) < 100 {
		return nil, common.NewDomainError("description must be at least 100 characters long")
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, common.NewDomainError("due_date must be a valid date")
	}

	ok, err := s.users.UserExists(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.NewDomainError("userId must be an existing user")
	}

	return s.m.insert(ctx, req, dueDate)
}

func (s *EventService) GetEvent(ctx context.Context, id int) (*Event, error) {
	return s.m.getEvent(ctx, id)
}

func (s *EventService) GetEvents(ctx context.Context) ([]Event, error) {
	return s.m.getEvents(ctx)
}

func (s *EventService) GetEventsByUser(ctx context.Context, userID int) ([]Event, error) {
	return s.m.getEventsByUser(ctx, userID)
}

// UpdateEvent patches only the provided fields, re-validating each one with
// the creation rule. The target row is resolved before any field check so a
// missing event surfaces as not-found rather than a validation failure.
func (s *EventService) UpdateEvent(ctx context.Context, id int, req *UpdateEventRequest) (*Event, error) {
	if _, err := s.m.getEvent(ctx, id); err != nil {
		return nil, err
	}

	if req.Title != nil && len(*req.Title) < 3 {
		return nil, common.NewDomainError("title must be at least 3 characters long")
	}

	if req.Description != nil && len(*req.Description) < 100 {
		return nil, common.NewDomainError("description must be at least 100 characters long")
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		t, err := parseDueDate(*req.DueDate)
		if err != nil {
			return nil, common.NewDomainError("due_date must be a valid date")
		}
		dueDate = &t
	}

	return s.m.update(ctx, id, req, dueDate)
}

func (s *EventService) DeleteEvent(ctx context.Context, id int) (*Event, error) {
	return s.m.delete(ctx, id)
}

// DeleteAllEvents is a test teardown helper and is not routed.
func (s *EventService) DeleteAllEvents(ctx context.Context) error {
	events, err := s.m.getEvents(ctx)
	if err != nil {
		return err
	}

	for _, e := range events {
		if _, err := s.m.delete(ctx, e.ID); err != nil {
			return err
		}
	}

	return nil
}
