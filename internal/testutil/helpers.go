package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/repository"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/service"
)

func NewTestEventService(t *testing.T, db *sql.DB) *service.EventService {
	t.Helper()

	return service.NewEventService(repository.NewEventRepository(db))
}

func NewTestDataLoaderService(t *testing.T, db *sql.DB) *service.DataLoaderService {
	t.Helper()

	mortgageRepo := repository.NewMortgageRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)

	return service.NewDataLoaderService(mortgageRepo, expenseRepo)
}

func NewTestPropertyService(t *testing.T, db *sql.DB) *service.PropertyService {
	t.Helper()

	propertyRepo := repository.NewPropertyRepository(db)
	accountRepo := repository.NewAccountRepository(db)

	return service.NewPropertyService(
		propertyRepo,
		accountRepo,
		NewTestDataLoaderService(t, db),
		NewTestEventService(t, db),
	)
}

// NewTestAccountService wires an AccountService without demo seeding, so
// tests observe exactly the rows they create.
func NewTestAccountService(t *testing.T, db *sql.DB) *service.AccountService {
	t.Helper()

	accountRepo := repository.NewAccountRepository(db)
	userRepo := repository.NewUserRepository(db)

	return service.NewAccountService(
		accountRepo,
		userRepo,
		NewTestPropertyService(t, db),
		nil,
		NewTestEventService(t, db),
	)
}

// NewTestAccountServiceWithDemo wires an AccountService with demo seeding
// enabled, for exercising the first-read seed path.
func NewTestAccountServiceWithDemo(t *testing.T, db *sql.DB) *service.AccountService {
	t.Helper()

	accountRepo := repository.NewAccountRepository(db)
	userRepo := repository.NewUserRepository(db)

	return service.NewAccountService(
		accountRepo,
		userRepo,
		NewTestPropertyService(t, db),
		NewTestDemoService(t, db),
		NewTestEventService(t, db),
	)
}

func NewTestMortgageService(t *testing.T, db *sql.DB) *service.MortgageService {
	t.Helper()

	mortgageRepo := repository.NewMortgageRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)

	return service.NewMortgageService(
		mortgageRepo,
		propertyRepo,
		NewTestEventService(t, db),
	)
}

func NewTestExpenseService(t *testing.T, db *sql.DB) *service.ExpenseService {
	t.Helper()

	expenseRepo := repository.NewExpenseRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)

	return service.NewExpenseService(
		expenseRepo,
		propertyRepo,
		NewTestEventService(t, db),
	)
}

func NewTestDemoService(t *testing.T, db *sql.DB) *service.DemoService {
	t.Helper()

	return service.NewDemoService(
		db,
		repository.NewUserRepository(db),
		repository.NewAccountRepository(db),
		repository.NewPropertyRepository(db),
		repository.NewMortgageRepository(db),
		repository.NewExpenseRepository(db),
	)
}

func NewTestSnapshotService(t *testing.T, db *sql.DB) *service.SnapshotService {
	t.Helper()

	return service.NewSnapshotService(
		repository.NewAccountRepository(db),
		repository.NewSnapshotRepository(db),
		NewTestPropertyService(t, db),
		NewTestEventService(t, db),
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

func NewTestReportService(t *testing.T, db *sql.DB) *service.ReportService {
	t.Helper()

	return service.NewReportService(
		NewTestAccountService(t, db),
		NewTestPropertyService(t, db),
	)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeEmail generates a unique email address for testing.
func MakeEmail() string {
	return "user-" + randomAlphanumeric(8) + "@example.com"
}

// MakeAccountName generates a unique account name for testing.
//
// Example usage:
//
//	name := testutil.MakeAccountName("Rentals")
//	// Returns: "Rentals ABC123"
func MakeAccountName(base string) string {
	if base == "" {
		base = "Account"
	}
	return base + " " + randomAlphanumeric(6)
}

// MakePropertyName generates a unique property name for testing.
func MakePropertyName(base string) string {
	if base == "" {
		base = "Property"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
