package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/model"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/repository"
)

// EventService records and retrieves application events. Services write an
// event on every mutation so the event log doubles as an audit trail.
type EventService struct {
	eventRepo *repository.EventRepository
}

// NewEventService creates a new EventService
func NewEventService(eventRepo *repository.EventRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
	}
}

// Record writes one event. Callers treat failures as non-fatal: a mutation
// must not roll back because its audit entry could not be written.
func (s *EventService) Record(ctx context.Context, category model.EventCategory, level model.EventLevel, message, entityID string) error {
	event := model.Event{
		ID:       uuid.New().String(),
		Category: string(category),
		Level:    string(level),
		Message:  message,
		EntityID: entityID,
	}

	if err := s.eventRepo.InsertEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}
	return nil
}

// GetEvents retrieves events matching the filters.
func (s *EventService) GetEvents(filters model.EventFilters) ([]model.Event, error) {
	return s.eventRepo.GetEvents(filters)
}
