package service

import (
	"golang.org/x/sync/errgroup"

	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/model"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/repository"
)

// DataLoaderService fetches the sub-resources of a property set. Mortgages
// and expenses live in independent tables, so the two queries run
// concurrently and the results are merged by property ID.
type DataLoaderService struct {
	mortgageRepo *repository.MortgageRepository
	expenseRepo  *repository.ExpenseRepository
}

// NewDataLoaderService creates a new DataLoaderService
func NewDataLoaderService(
	mortgageRepo *repository.MortgageRepository,
	expenseRepo *repository.ExpenseRepository,
) *DataLoaderService {
	return &DataLoaderService{
		mortgageRepo: mortgageRepo,
		expenseRepo:  expenseRepo,
	}
}

// LoadSubResources retrieves the mortgages and expenses for the given
// properties, keyed by property ID. Properties without a mortgage are
// absent from the mortgage map; properties without expenses map to nil.
func (s *DataLoaderService) LoadSubResources(properties []model.Property) (map[string]model.Mortgage, map[string][]model.Expense, error) {
	propertyIDs := make([]string, len(properties))
	for i, p := range properties {
		propertyIDs[i] = p.ID
	}

	var (
		mortgagesByProperty map[string]model.Mortgage
		expensesByProperty  map[string][]model.Expense
	)

	var g errgroup.Group

	g.Go(func() error {
		var err error
		mortgagesByProperty, err = s.mortgageRepo.GetMortgagesOnPropertyIDs(propertyIDs)
		return err
	})

	g.Go(func() error {
		var err error
		expensesByProperty, err = s.expenseRepo.GetExpensesOnPropertyIDs(propertyIDs)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return mortgagesByProperty, expensesByProperty, nil
}
