// Package event implements the promotional events catalogue.
package event

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	eventRepo "eraflix/database/repository/event"
	"eraflix/models"
	"eraflix/services/apperr"
	"eraflix/services/catalog"
)

type EventService interface {
	CreateEvent(ctx context.Context, req models.CreateEventRequest) (*models.Event, error)
	UpdateEvent(ctx context.Context, event models.Event) (*models.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
	ListUpcoming(ctx context.Context) ([]models.Event, error)
	ListAll(ctx context.Context) ([]models.Event, error)
}

// DefaultEventService is the production EventService.
type DefaultEventService struct {
	Repo eventRepo.EventRepository
}

func (s *DefaultEventService) CreateEvent(ctx context.Context, req models.CreateEventRequest) (*models.Event, error) {
	day, err := catalog.ValidateDate(req.Date)
	if err != nil {
		return nil, err
	}

	event := models.Event{
		Title:       req.Title,
		Description: req.Description,
		ScreenID:    req.ScreenID,
		Date:        day,
		ImageURL:    req.ImageURL,
		Active:      true,
	}
	id, err := s.Repo.Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	event.ID = id
	return &event, nil
}

func (s *DefaultEventService) UpdateEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	if err := s.Repo.Update(ctx, event); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFoundError("event", event.ID)
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return &event, nil
}

func (s *DefaultEventService) DeleteEvent(ctx context.Context, eventID string) error {
	if err := s.Repo.DeleteByID(ctx, eventID); err != nil {
		if err == mongo.ErrNoDocuments {
			return apperr.NewNotFoundError("event", eventID)
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

func (s *DefaultEventService) ListUpcoming(ctx context.Context) ([]models.Event, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	events, err := s.Repo.ListActiveUpcoming(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}
	return events, nil
}

func (s *DefaultEventService) ListAll(ctx context.Context) ([]models.Event, error) {
	events, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}
