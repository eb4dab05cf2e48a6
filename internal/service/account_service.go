package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	apperrors "github.com/tvandenberg/Property-Investment-Manager-Backend/internal/errors"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/finance"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/model"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/repository"
)

// AccountService handles account CRUD, portfolio summaries, and the demo
// seeding hook on first read.
type AccountService struct {
	accountRepo     *repository.AccountRepository
	userRepo        *repository.UserRepository
	propertyService *PropertyService
	demoService     *DemoService
	eventService    *EventService
}

// NewAccountService creates a new AccountService
func NewAccountService(
	accountRepo *repository.AccountRepository,
	userRepo *repository.UserRepository,
	propertyService *PropertyService,
	demoService *DemoService,
	eventService *EventService,
) *AccountService {
	return &AccountService{
		accountRepo:     accountRepo,
		userRepo:        userRepo,
		propertyService: propertyService,
		demoService:     demoService,
		eventService:    eventService,
	}
}

// GetAccounts retrieves accounts matching the filter. When the store holds
// no accounts at all and seeding is enabled, a demo account is seeded first
// so a fresh install has something to show.
func (s *AccountService) GetAccounts(ctx context.Context, filter model.AccountFilter) ([]model.Account, error) {
	if s.demoService != nil {
		if err := s.demoService.SeedIfEmpty(ctx); err != nil {
			return nil, fmt.Errorf("failed to seed demo account: %w", err)
		}
	}

	return s.accountRepo.GetAccounts(filter)
}

// GetAccount retrieves a single account by ID.
func (s *AccountService) GetAccount(accountID string) (model.Account, error) {
	return s.accountRepo.GetAccountOnID(accountID)
}

// CreateAccount stores a new account. Accounts created without an explicit
// owner are attached to the oldest user, created on the fly for a fresh
// install.
func (s *AccountService) CreateAccount(ctx context.Context, a model.Account) (model.Account, error) {
	a.ID = uuid.New().String()
	if a.Currency == "" {
		a.Currency = "CAD"
	}

	if a.UserID == "" {
		userID, err := s.resolveOwner(ctx)
		if err != nil {
			return model.Account{}, err
		}
		a.UserID = userID
	}

	if err := s.accountRepo.InsertAccount(ctx, a); err != nil {
		return model.Account{}, err
	}

	s.recordEvent(ctx, fmt.Sprintf("account %q created", a.Name), a.ID)

	return s.accountRepo.GetAccountOnID(a.ID)
}

// UpdateAccount updates a stored account.
func (s *AccountService) UpdateAccount(ctx context.Context, a model.Account) (model.Account, error) {
	if err := s.accountRepo.UpdateAccount(ctx, a); err != nil {
		return model.Account{}, err
	}

	s.recordEvent(ctx, fmt.Sprintf("account %q updated", a.Name), a.ID)

	return s.accountRepo.GetAccountOnID(a.ID)
}

// DeleteAccount removes an account and everything under it.
func (s *AccountService) DeleteAccount(ctx context.Context, accountID string) error {
	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		return err
	}

	s.recordEvent(ctx, "account deleted", accountID)

	return nil
}

// GetAccountSummary aggregates the derived metrics of every property in the
// account. Per-property metrics are independent, so the aggregate is a
// plain sum; ordering does not matter.
func (s *AccountService) GetAccountSummary(accountID string) (model.AccountSummary, error) {
	account, err := s.accountRepo.GetAccountOnID(accountID)
	if err != nil {
		return model.AccountSummary{}, err
	}

	properties, err := s.propertyService.GetEnrichedProperties(model.PropertyFilter{AccountID: accountID})
	if err != nil {
		return model.AccountSummary{}, err
	}

	summary := model.AccountSummary{
		ID:            account.ID,
		Name:          account.Name,
		PropertyCount: len(properties),
		IsDemo:        account.IsDemo,
	}

	for _, p := range properties {
		summary.TotalValue += p.CurrentMarketValue
		summary.TotalPurchasePrice += p.PurchasePrice
		summary.TotalInvested += p.Metrics.TotalInvestment
		summary.MonthlyRent += p.MonthlyRent
		summary.MonthlyCashFlow += p.Metrics.MonthlyCashFlow
		summary.AnnualCashFlow += p.Metrics.AnnualCashFlow
		summary.TotalAppreciation += p.Metrics.Appreciation
	}

	summary.TotalValue = finance.Round2(summary.TotalValue)
	summary.TotalPurchasePrice = finance.Round2(summary.TotalPurchasePrice)
	summary.TotalInvested = finance.Round2(summary.TotalInvested)
	summary.MonthlyRent = finance.Round2(summary.MonthlyRent)
	summary.MonthlyCashFlow = finance.Round2(summary.MonthlyCashFlow)
	summary.AnnualCashFlow = finance.Round2(summary.AnnualCashFlow)
	summary.TotalAppreciation = finance.Round2(summary.TotalAppreciation)

	return summary, nil
}

// resolveOwner returns the oldest user's ID, creating a local owner user
// when the store holds none yet.
func (s *AccountService) resolveOwner(ctx context.Context) (string, error) {
	u, err := s.userRepo.GetFirstUser()
	if err == nil {
		return u.ID, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return "", err
	}

	owner := model.User{
		ID:          uuid.New().String(),
		Email:       "owner@localhost",
		DisplayName: "Owner",
	}
	if err := s.userRepo.InsertUser(ctx, owner); err != nil {
		return "", fmt.Errorf("failed to create default user: %w", err)
	}
	return owner.ID, nil
}

func (s *AccountService) recordEvent(ctx context.Context, message, entityID string) {
	if s.eventService == nil {
		return
	}
	_ = s.eventService.Record(ctx, model.EventAccount, model.LevelInfo, message, entityID)
}
