package service

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/finance"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/model"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/repository"
)

// EnrichedProperty is a property with its sub-resources attached and the
// derived financial figures computed. It is rebuilt from the stored rows on
// every load and never persisted.
type EnrichedProperty struct {
	model.Property
	AnnualRent      float64
	LandTransferTax float64 // resolved: manual override or computed schedule
	Mortgage        *model.Mortgage
	MonthlyExpenses finance.MonthlySummary
	Metrics         finance.Metrics
}

// PropertyService handles property CRUD and enrichment.
type PropertyService struct {
	propertyRepo *repository.PropertyRepository
	accountRepo  *repository.AccountRepository
	dataLoader   *DataLoaderService
	eventService *EventService
}

// NewPropertyService creates a new PropertyService
func NewPropertyService(
	propertyRepo *repository.PropertyRepository,
	accountRepo *repository.AccountRepository,
	dataLoader *DataLoaderService,
	eventService *EventService,
) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		accountRepo:  accountRepo,
		dataLoader:   dataLoader,
		eventService: eventService,
	}
}

// GetEnrichedProperties retrieves properties matching the filter with
// mortgages, expense summaries, and metrics attached.
func (s *PropertyService) GetEnrichedProperties(filter model.PropertyFilter) ([]EnrichedProperty, error) {
	properties, err := s.propertyRepo.GetProperties(filter)
	if err != nil {
		return nil, err
	}

	mortgages, expenses, err := s.dataLoader.LoadSubResources(properties)
	if err != nil {
		return nil, fmt.Errorf("failed to load property sub-resources: %w", err)
	}

	enriched := make([]EnrichedProperty, len(properties))
	for i, p := range properties {
		enriched[i] = enrichProperty(p, mortgages, expenses)
	}

	return enriched, nil
}

// GetEnrichedProperty retrieves a single property with derivations attached.
func (s *PropertyService) GetEnrichedProperty(propertyID string) (EnrichedProperty, error) {
	p, err := s.propertyRepo.GetPropertyOnID(propertyID)
	if err != nil {
		return EnrichedProperty{}, err
	}

	mortgages, expenses, err := s.dataLoader.LoadSubResources([]model.Property{p})
	if err != nil {
		return EnrichedProperty{}, fmt.Errorf("failed to load property sub-resources: %w", err)
	}

	return enrichProperty(p, mortgages, expenses), nil
}

// GetProperty retrieves the bare stored row.
func (s *PropertyService) GetProperty(propertyID string) (model.Property, error) {
	return s.propertyRepo.GetPropertyOnID(propertyID)
}

// CreateProperty stores a new property and returns it enriched.
func (s *PropertyService) CreateProperty(ctx context.Context, p model.Property) (EnrichedProperty, error) {
	if _, err := s.accountRepo.GetAccountOnID(p.AccountID); err != nil {
		return EnrichedProperty{}, err
	}

	p.ID = uuid.New().String()

	if err := s.propertyRepo.InsertProperty(ctx, p); err != nil {
		return EnrichedProperty{}, err
	}

	s.recordEvent(ctx, model.LevelInfo, fmt.Sprintf("property %q created", p.Name), p.ID)

	return s.GetEnrichedProperty(p.ID)
}

// UpdateProperty updates a stored property and returns it enriched.
func (s *PropertyService) UpdateProperty(ctx context.Context, p model.Property) (EnrichedProperty, error) {
	if err := s.propertyRepo.UpdateProperty(ctx, p); err != nil {
		return EnrichedProperty{}, err
	}

	s.recordEvent(ctx, model.LevelInfo, fmt.Sprintf("property %q updated", p.Name), p.ID)

	return s.GetEnrichedProperty(p.ID)
}

// DeleteProperty removes a property; its mortgage and expenses cascade.
func (s *PropertyService) DeleteProperty(ctx context.Context, propertyID string) error {
	if err := s.propertyRepo.DeleteProperty(ctx, propertyID); err != nil {
		return err
	}

	s.recordEvent(ctx, model.LevelInfo, "property deleted", propertyID)

	return nil
}

func (s *PropertyService) recordEvent(ctx context.Context, level model.EventLevel, message, entityID string) {
	if s.eventService == nil {
		return
	}
	// Audit failures never fail the mutation.
	_ = s.eventService.Record(ctx, model.EventProperty, level, message, entityID)
}

// enrichProperty assembles the property aggregate and runs the derivation
// chain: coalesce stored numerics, resolve the land transfer tax, summarize
// expenses, and compute metrics. Mortgage payment figures are re-derived
// here on every pass rather than trusted from any cached copy.
func enrichProperty(
	p model.Property,
	mortgagesByProperty map[string]model.Mortgage,
	expensesByProperty map[string][]model.Expense,
) EnrichedProperty {
	sanitizeProperty(&p)

	var mortgage *model.Mortgage
	var terms *finance.MortgageTerms
	if m, ok := mortgagesByProperty[p.ID]; ok {
		mortgage = &m
		t := mortgageTerms(m)
		terms = &t
	}

	records := expenseRecords(expensesByProperty[p.ID])
	summary := finance.SummarizeMonthlyExpenses(records, terms)

	landTransferTax := finance.LandTransferTax(p.PurchasePrice, p.City, p.Province, p.LandTransferTax)

	financials := finance.PropertyFinancials{
		PurchasePrice:      p.PurchasePrice,
		ClosingCosts:       p.ClosingCosts,
		RenovationCosts:    p.RenovationCosts,
		InitialRenovations: p.InitialRenovations,
		LandTransferTax:    landTransferTax,
		CurrentMarketValue: p.CurrentMarketValue,
		SizeSqFt:           p.SizeSqFt,
		MonthlyRent:        p.MonthlyRent,
		Mortgage:           terms,
		MonthlyExpenses:    summary,
	}

	// The raw summary feeds the metrics chain at full precision; the copy
	// surfaced to callers is rounded to cents like every other figure.
	return EnrichedProperty{
		Property:        p,
		AnnualRent:      finance.Round2(p.MonthlyRent * 12),
		LandTransferTax: landTransferTax,
		Mortgage:        mortgage,
		MonthlyExpenses: summary.Rounded(),
		Metrics:         finance.ComputeMetrics(financials),
	}
}

// mortgageTerms converts a stored mortgage row into amortization inputs.
func mortgageTerms(m model.Mortgage) finance.MortgageTerms {
	return finance.MortgageTerms{
		Principal:         coalesce(m.OriginalAmount),
		InterestRate:      coalesce(m.InterestRate),
		AmortizationYears: float64(m.AmortizationYears),
		Frequency:         finance.PaymentFrequency(m.PaymentFrequency),
		StartDate:         m.StartDate,
	}
}

func expenseRecords(expenses []model.Expense) []finance.ExpenseRecord {
	records := make([]finance.ExpenseRecord, len(expenses))
	for i, e := range expenses {
		records[i] = finance.ExpenseRecord{
			Date:     e.Date,
			Amount:   coalesce(e.Amount),
			Category: finance.ExpenseCategory(e.Category),
		}
	}
	return records
}

// sanitizeProperty coalesces malformed numerics to zero so nothing feeds
// NaN or Inf into the calculation chain.
func sanitizeProperty(p *model.Property) {
	fields := []*float64{
		&p.SizeSqFt,
		&p.PurchasePrice,
		&p.ClosingCosts,
		&p.RenovationCosts,
		&p.InitialRenovations,
		&p.CurrentMarketValue,
		&p.MonthlyRent,
	}
	for _, f := range fields {
		*f = coalesce(*f)
	}
	if p.LandTransferTax != nil {
		value := coalesce(*p.LandTransferTax)
		p.LandTransferTax = &value
	}
}

func coalesce(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}
