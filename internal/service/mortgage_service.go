package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/model"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/repository"
)

// MortgageService handles mortgage CRUD. A property owns at most one
// mortgage; the repository surfaces the constraint as ErrMortgageExists.
type MortgageService struct {
	mortgageRepo *repository.MortgageRepository
	propertyRepo *repository.PropertyRepository
	eventService *EventService
}

// NewMortgageService creates a new MortgageService
func NewMortgageService(
	mortgageRepo *repository.MortgageRepository,
	propertyRepo *repository.PropertyRepository,
	eventService *EventService,
) *MortgageService {
	return &MortgageService{
		mortgageRepo: mortgageRepo,
		propertyRepo: propertyRepo,
		eventService: eventService,
	}
}

// GetMortgage retrieves a single mortgage by ID.
func (s *MortgageService) GetMortgage(mortgageID string) (model.Mortgage, error) {
	return s.mortgageRepo.GetMortgageOnID(mortgageID)
}

// GetMortgageForProperty retrieves the mortgage owned by a property.
func (s *MortgageService) GetMortgageForProperty(propertyID string) (model.Mortgage, error) {
	return s.mortgageRepo.GetMortgageOnPropertyID(propertyID)
}

// CreateMortgage stores a new mortgage after confirming the property
// exists.
func (s *MortgageService) CreateMortgage(ctx context.Context, m model.Mortgage) (model.Mortgage, error) {
	if _, err := s.propertyRepo.GetPropertyOnID(m.PropertyID); err != nil {
		return model.Mortgage{}, err
	}

	m.ID = uuid.New().String()
	if m.RateType == "" {
		m.RateType = model.RateTypeFixed
	}
	if m.PaymentFrequency == "" {
		m.PaymentFrequency = "monthly"
	}

	if err := s.mortgageRepo.InsertMortgage(ctx, m); err != nil {
		return model.Mortgage{}, err
	}

	s.recordEvent(ctx, fmt.Sprintf("mortgage created for property %s", m.PropertyID), m.ID)

	return s.mortgageRepo.GetMortgageOnID(m.ID)
}

// UpdateMortgage updates a stored mortgage.
func (s *MortgageService) UpdateMortgage(ctx context.Context, m model.Mortgage) (model.Mortgage, error) {
	if err := s.mortgageRepo.UpdateMortgage(ctx, m); err != nil {
		return model.Mortgage{}, err
	}

	s.recordEvent(ctx, "mortgage updated", m.ID)

	return s.mortgageRepo.GetMortgageOnID(m.ID)
}

// DeleteMortgage removes a mortgage row.
func (s *MortgageService) DeleteMortgage(ctx context.Context, mortgageID string) error {
	if err := s.mortgageRepo.DeleteMortgage(ctx, mortgageID); err != nil {
		return err
	}

	s.recordEvent(ctx, "mortgage deleted", mortgageID)

	return nil
}

func (s *MortgageService) recordEvent(ctx context.Context, message, entityID string) {
	if s.eventService == nil {
		return
	}
	_ = s.eventService.Record(ctx, model.EventMortgage, model.LevelInfo, message, entityID)
}
