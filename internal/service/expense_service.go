package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/model"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/repository"
)

// ExpenseService handles expense CRUD and filtered listing.
type ExpenseService struct {
	expenseRepo  *repository.ExpenseRepository
	propertyRepo *repository.PropertyRepository
	eventService *EventService
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(
	expenseRepo *repository.ExpenseRepository,
	propertyRepo *repository.PropertyRepository,
	eventService *EventService,
) *ExpenseService {
	return &ExpenseService{
		expenseRepo:  expenseRepo,
		propertyRepo: propertyRepo,
		eventService: eventService,
	}
}

// GetExpenses retrieves expenses matching the filter.
func (s *ExpenseService) GetExpenses(filter model.ExpenseFilter) ([]model.Expense, error) {
	return s.expenseRepo.GetExpenses(filter)
}

// GetExpense retrieves a single expense by ID.
func (s *ExpenseService) GetExpense(expenseID string) (model.Expense, error) {
	return s.expenseRepo.GetExpenseOnID(expenseID)
}

// CreateExpense stores a new expense after confirming the property exists.
func (s *ExpenseService) CreateExpense(ctx context.Context, e model.Expense) (model.Expense, error) {
	if _, err := s.propertyRepo.GetPropertyOnID(e.PropertyID); err != nil {
		return model.Expense{}, err
	}

	e.ID = uuid.New().String()

	if err := s.expenseRepo.InsertExpense(ctx, e); err != nil {
		return model.Expense{}, err
	}

	s.recordEvent(ctx, fmt.Sprintf("expense recorded for property %s", e.PropertyID), e.ID)

	return s.expenseRepo.GetExpenseOnID(e.ID)
}

// UpdateExpense updates a stored expense.
func (s *ExpenseService) UpdateExpense(ctx context.Context, e model.Expense) (model.Expense, error) {
	if err := s.expenseRepo.UpdateExpense(ctx, e); err != nil {
		return model.Expense{}, err
	}

	s.recordEvent(ctx, "expense updated", e.ID)

	return s.expenseRepo.GetExpenseOnID(e.ID)
}

// DeleteExpense removes an expense row.
func (s *ExpenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		return err
	}

	s.recordEvent(ctx, "expense deleted", expenseID)

	return nil
}

func (s *ExpenseService) recordEvent(ctx context.Context, message, entityID string) {
	if s.eventService == nil {
		return
	}
	_ = s.eventService.Record(ctx, model.EventExpense, model.LevelInfo, message, entityID)
}
