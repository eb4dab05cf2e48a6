package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/model"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/repository"
)

// DemoService seeds a demo account with realistic sample data the first
// time the account list is read on an empty store. The seed runs in one
// transaction so a half-written demo account can never be observed.
type DemoService struct {
	db           *sql.DB
	userRepo     *repository.UserRepository
	accountRepo  *repository.AccountRepository
	propertyRepo *repository.PropertyRepository
	mortgageRepo *repository.MortgageRepository
	expenseRepo  *repository.ExpenseRepository
}

// NewDemoService creates a new DemoService
func NewDemoService(
	db *sql.DB,
	userRepo *repository.UserRepository,
	accountRepo *repository.AccountRepository,
	propertyRepo *repository.PropertyRepository,
	mortgageRepo *repository.MortgageRepository,
	expenseRepo *repository.ExpenseRepository,
) *DemoService {
	return &DemoService{
		db:           db,
		userRepo:     userRepo,
		accountRepo:  accountRepo,
		propertyRepo: propertyRepo,
		mortgageRepo: mortgageRepo,
		expenseRepo:  expenseRepo,
	}
}

// SeedIfEmpty creates the demo user and account when no accounts exist.
// Safe to call on every list read: the count guard makes it a no-op once
// anything has been created.
func (s *DemoService) SeedIfEmpty(ctx context.Context) error {
	count, err := s.accountRepo.CountAccounts()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := s.seed(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	return nil
}

//nolint:funlen // Fixture data is long but flat
func (s *DemoService) seed(ctx context.Context, tx *sql.Tx) error {
	user := model.User{
		ID:          uuid.New().String(),
		Email:       "demo@example.com",
		DisplayName: "Demo Investor",
	}
	if err := s.userRepo.WithTx(tx).InsertUser(ctx, user); err != nil {
		return err
	}

	account := model.Account{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		Name:        "Demo Portfolio",
		Description: "Sample properties to explore the application",
		Currency:    "CAD",
		IsDemo:      true,
	}
	if err := s.accountRepo.WithTx(tx).InsertAccount(ctx, account); err != nil {
		return err
	}

	lastYear := time.Now().Year() - 1

	condo := model.Property{
		ID:                 uuid.New().String(),
		AccountID:          account.ID,
		Name:               "King West Condo",
		Address:            "12 Charlotte St",
		City:               "Toronto",
		Province:           "ON",
		Type:               "Condo",
		UnitConfiguration:  "1+1",
		SizeSqFt:           650,
		YearBuilt:          2015,
		PurchaseDate:       date(lastYear-2, 6, 15),
		PurchasePrice:      600000,
		ClosingCosts:       9000,
		RenovationCosts:    5000,
		CurrentMarketValue: 655000,
		MonthlyRent:        2800,
	}
	if err := s.propertyRepo.WithTx(tx).InsertProperty(ctx, condo); err != nil {
		return err
	}

	condoMortgage := model.Mortgage{
		ID:                uuid.New().String(),
		PropertyID:        condo.ID,
		Lender:            "First National",
		OriginalAmount:    480000,
		InterestRate:      0.0489,
		RateType:          model.RateTypeFixed,
		TermMonths:        60,
		AmortizationYears: 25,
		PaymentFrequency:  "monthly",
		StartDate:         condo.PurchaseDate,
	}
	if err := s.mortgageRepo.WithTx(tx).InsertMortgage(ctx, condoMortgage); err != nil {
		return err
	}

	duplex := model.Property{
		ID:                 uuid.New().String(),
		AccountID:          account.ID,
		Name:               "Hamilton Duplex",
		Address:            "48 Barton St E",
		City:               "Hamilton",
		Province:           "ON",
		Type:               "Duplex",
		UnitConfiguration:  "2x2BR",
		SizeSqFt:           1800,
		YearBuilt:          1948,
		PurchaseDate:       date(lastYear-1, 3, 1),
		PurchasePrice:      710000,
		ClosingCosts:       11000,
		RenovationCosts:    42000,
		InitialRenovations: 15000,
		CurrentMarketValue: 768000,
		MonthlyRent:        4150,
	}
	if err := s.propertyRepo.WithTx(tx).InsertProperty(ctx, duplex); err != nil {
		return err
	}

	duplexMortgage := model.Mortgage{
		ID:                uuid.New().String(),
		PropertyID:        duplex.ID,
		Lender:            "Scotiabank",
		OriginalAmount:    568000,
		InterestRate:      0.0544,
		RateType:          model.RateTypeVariable,
		TermMonths:        60,
		AmortizationYears: 30,
		PaymentFrequency:  "bi-weekly",
		StartDate:         duplex.PurchaseDate,
	}
	if err := s.mortgageRepo.WithTx(tx).InsertMortgage(ctx, duplexMortgage); err != nil {
		return err
	}

	expenses := []struct {
		property model.Property
		month    time.Month
		amount   float64
		category string
		note     string
	}{
		{condo, time.February, 2350, "Property Tax", "annual property tax"},
		{condo, time.January, 540, "Condo Fees", "maintenance fee"},
		{condo, time.March, 620, "Insurance", "condo insurance renewal"},
		{duplex, time.February, 4900, "Property Tax", "annual property tax"},
		{duplex, time.April, 1450, "Insurance", "landlord policy"},
		{duplex, time.July, 2100, "Maintenance", "roof repair"},
		{duplex, time.September, 380, "Professional Fees", "bookkeeping"},
		{duplex, time.October, 920, "Utilities", "shared hydro"},
	}

	for _, e := range expenses {
		expense := model.Expense{
			ID:          uuid.New().String(),
			PropertyID:  e.property.ID,
			Date:        date(lastYear, e.month, 15),
			Amount:      e.amount,
			Category:    e.category,
			Description: e.note,
		}
		if err := s.expenseRepo.WithTx(tx).InsertExpense(ctx, expense); err != nil {
			return err
		}
	}

	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
