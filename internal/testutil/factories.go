package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/model"
)

// CreateUser inserts a user row and returns it. Accounts require an owning
// user, so most account tests start here (or let AccountBuilder do it).
func CreateUser(t *testing.T, db *sql.DB) model.User {
	t.Helper()

	u := model.User{
		ID:          MakeID(),
		Email:       MakeEmail(),
		DisplayName: "Test User",
	}

	_, err := db.Exec(
		`INSERT INTO user (id, email, display_name) VALUES (?, ?, ?)`,
		u.ID, u.Email, u.DisplayName,
	)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return u
}

// AccountBuilder provides a fluent interface for creating test accounts.
//
// Example usage:
//
//	// Simple creation with defaults
//	account := testutil.NewAccount().Build(t, db)
//
//	// Customized account
//	account := testutil.NewAccount().
//	    WithName("Rentals").
//	    Archived().
//	    Build(t, db)
type AccountBuilder struct {
	ID          string
	UserID      string
	Name        string
	Description string
	Currency    string
	IsDemo      bool
	IsArchived  bool
}

// NewAccount creates an AccountBuilder with sensible defaults.
func NewAccount() *AccountBuilder {
	return &AccountBuilder{
		ID:          MakeID(),
		Name:        MakeAccountName("Test Account"),
		Description: "Test description",
		Currency:    "CAD",
	}
}

// WithID sets a custom ID.
func (b *AccountBuilder) WithID(id string) *AccountBuilder {
	b.ID = id
	return b
}

// WithUserID sets the owning user. When unset, Build creates a user.
func (b *AccountBuilder) WithUserID(userID string) *AccountBuilder {
	b.UserID = userID
	return b
}

// WithName sets a custom name.
func (b *AccountBuilder) WithName(name string) *AccountBuilder {
	b.Name = name
	return b
}

// WithDescription sets a custom description.
func (b *AccountBuilder) WithDescription(desc string) *AccountBuilder {
	b.Description = desc
	return b
}

// WithCurrency sets a custom currency code.
func (b *AccountBuilder) WithCurrency(currency string) *AccountBuilder {
	b.Currency = currency
	return b
}

// Demo marks the account as the demo account.
func (b *AccountBuilder) Demo() *AccountBuilder {
	b.IsDemo = true
	return b
}

// Archived marks the account as archived.
func (b *AccountBuilder) Archived() *AccountBuilder {
	b.IsArchived = true
	return b
}

// Build creates the account in the database and returns it.
func (b *AccountBuilder) Build(t *testing.T, db *sql.DB) model.Account {
	t.Helper()

	if b.UserID == "" {
		b.UserID = CreateUser(t, db).ID
	}

	query := `
		INSERT INTO account (id, user_id, name, description, currency, is_demo, is_archived)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.UserID, b.Name, b.Description, b.Currency, b.IsDemo, b.IsArchived)
	if err != nil {
		t.Fatalf("Failed to create test account: %v", err)
	}

	return model.Account{
		ID:          b.ID,
		UserID:      b.UserID,
		Name:        b.Name,
		Description: b.Description,
		Currency:    b.Currency,
		IsDemo:      b.IsDemo,
		IsArchived:  b.IsArchived,
	}
}

// Convenience functions

// CreateAccount creates an account with the given name and default values.
func CreateAccount(t *testing.T, db *sql.DB, name string) model.Account {
	t.Helper()
	return NewAccount().WithName(name).Build(t, db)
}

// CreateArchivedAccount creates an archived account.
func CreateArchivedAccount(t *testing.T, db *sql.DB, name string) model.Account {
	t.Helper()
	return NewAccount().WithName(name).Archived().Build(t, db)
}

// PropertyBuilder provides a fluent interface for creating test properties.
//
// Example usage:
//
//	property := testutil.NewProperty(account.ID).
//	    WithName("King West Condo").
//	    WithCity("Toronto").
//	    WithPurchasePrice(600000).
//	    Build(t, db)
type PropertyBuilder struct {
	ID                 string
	AccountID          string
	Name               string
	Address            string
	City               string
	Province           string
	Type               string
	UnitConfiguration  string
	SizeSqFt           float64
	YearBuilt          int
	PurchaseDate       time.Time
	PurchasePrice      float64
	ClosingCosts       float64
	RenovationCosts    float64
	InitialRenovations float64
	LandTransferTax    *float64
	CurrentMarketValue float64
	MonthlyRent        float64
}

// NewProperty creates a PropertyBuilder with sensible defaults.
func NewProperty(accountID string) *PropertyBuilder {
	return &PropertyBuilder{
		ID:                 MakeID(),
		AccountID:          accountID,
		Name:               MakePropertyName("Test Property"),
		Address:            "123 Main St",
		City:               "Toronto",
		Province:           "ON",
		Type:               "condo",
		UnitConfiguration:  "2+1",
		SizeSqFt:           800,
		YearBuilt:          2015,
		PurchaseDate:       time.Date(2022, 6, 15, 0, 0, 0, 0, time.UTC),
		PurchasePrice:      500000,
		ClosingCosts:       5000,
		CurrentMarketValue: 550000,
		MonthlyRent:        2500,
	}
}

// WithID sets a custom ID.
func (b *PropertyBuilder) WithID(id string) *PropertyBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *PropertyBuilder) WithName(name string) *PropertyBuilder {
	b.Name = name
	return b
}

// WithCity sets a custom city.
func (b *PropertyBuilder) WithCity(city string) *PropertyBuilder {
	b.City = city
	return b
}

// WithProvince sets a custom province code.
func (b *PropertyBuilder) WithProvince(province string) *PropertyBuilder {
	b.Province = province
	return b
}

// WithPurchasePrice sets a custom purchase price.
func (b *PropertyBuilder) WithPurchasePrice(price float64) *PropertyBuilder {
	b.PurchasePrice = price
	return b
}

// WithMarketValue sets a custom current market value.
func (b *PropertyBuilder) WithMarketValue(value float64) *PropertyBuilder {
	b.CurrentMarketValue = value
	return b
}

// WithMonthlyRent sets a custom monthly rent.
func (b *PropertyBuilder) WithMonthlyRent(rent float64) *PropertyBuilder {
	b.MonthlyRent = rent
	return b
}

// WithSizeSqFt sets a custom size.
func (b *PropertyBuilder) WithSizeSqFt(size float64) *PropertyBuilder {
	b.SizeSqFt = size
	return b
}

// WithLandTransferTax sets a manual land transfer tax override.
func (b *PropertyBuilder) WithLandTransferTax(amount float64) *PropertyBuilder {
	b.LandTransferTax = &amount
	return b
}

// Build creates the property in the database and returns it.
func (b *PropertyBuilder) Build(t *testing.T, db *sql.DB) model.Property {
	t.Helper()

	query := `
		INSERT INTO property (
			id, account_id, name, address, city, province, type,
			unit_configuration, size_sq_ft, year_built, purchase_date,
			purchase_price, closing_costs, renovation_costs,
			initial_renovations, land_transfer_tax, current_market_value,
			monthly_rent
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.AccountID, b.Name, b.Address, b.City, b.Province, b.Type,
		b.UnitConfiguration, b.SizeSqFt, b.YearBuilt, b.PurchaseDate.Format("2006-01-02"),
		b.PurchasePrice, b.ClosingCosts, b.RenovationCosts,
		b.InitialRenovations, b.LandTransferTax, b.CurrentMarketValue,
		b.MonthlyRent,
	)
	if err != nil {
		t.Fatalf("Failed to create test property: %v", err)
	}

	return model.Property{
		ID:                 b.ID,
		AccountID:          b.AccountID,
		Name:               b.Name,
		Address:            b.Address,
		City:               b.City,
		Province:           b.Province,
		Type:               b.Type,
		UnitConfiguration:  b.UnitConfiguration,
		SizeSqFt:           b.SizeSqFt,
		YearBuilt:          b.YearBuilt,
		PurchaseDate:       b.PurchaseDate,
		PurchasePrice:      b.PurchasePrice,
		ClosingCosts:       b.ClosingCosts,
		RenovationCosts:    b.RenovationCosts,
		InitialRenovations: b.InitialRenovations,
		LandTransferTax:    b.LandTransferTax,
		CurrentMarketValue: b.CurrentMarketValue,
		MonthlyRent:        b.MonthlyRent,
	}
}

// CreateProperty creates a property under the account with default values.
func CreateProperty(t *testing.T, db *sql.DB, accountID, name string) model.Property {
	t.Helper()
	return NewProperty(accountID).WithName(name).Build(t, db)
}

// MortgageBuilder provides a fluent interface for creating test mortgages.
type MortgageBuilder struct {
	ID                string
	PropertyID        string
	Lender            string
	OriginalAmount    float64
	InterestRate      float64
	RateType          model.RateType
	TermMonths        int
	AmortizationYears int
	PaymentFrequency  string
	StartDate         time.Time
}

// NewMortgage creates a MortgageBuilder with sensible defaults.
func NewMortgage(propertyID string) *MortgageBuilder {
	return &MortgageBuilder{
		ID:                MakeID(),
		PropertyID:        propertyID,
		Lender:            "Test Bank",
		OriginalAmount:    400000,
		InterestRate:      0.05,
		RateType:          model.RateTypeFixed,
		TermMonths:        60,
		AmortizationYears: 25,
		PaymentFrequency:  "monthly",
		StartDate:         time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

// WithAmount sets a custom original amount.
func (b *MortgageBuilder) WithAmount(amount float64) *MortgageBuilder {
	b.OriginalAmount = amount
	return b
}

// WithRate sets a custom interest rate (decimal fraction).
func (b *MortgageBuilder) WithRate(rate float64) *MortgageBuilder {
	b.InterestRate = rate
	return b
}

// WithRateType sets a custom rate type.
func (b *MortgageBuilder) WithRateType(rateType model.RateType) *MortgageBuilder {
	b.RateType = rateType
	return b
}

// WithAmortizationYears sets a custom amortization period.
func (b *MortgageBuilder) WithAmortizationYears(years int) *MortgageBuilder {
	b.AmortizationYears = years
	return b
}

// WithFrequency sets a custom payment frequency.
func (b *MortgageBuilder) WithFrequency(frequency string) *MortgageBuilder {
	b.PaymentFrequency = frequency
	return b
}

// WithStartDate sets a custom start date.
func (b *MortgageBuilder) WithStartDate(startDate time.Time) *MortgageBuilder {
	b.StartDate = startDate
	return b
}

// Build creates the mortgage in the database and returns it.
func (b *MortgageBuilder) Build(t *testing.T, db *sql.DB) model.Mortgage {
	t.Helper()

	query := `
		INSERT INTO mortgage (
			id, property_id, lender, original_amount, interest_rate,
			rate_type, term_months, amortization_years, payment_frequency,
			start_date
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.PropertyID, b.Lender, b.OriginalAmount, b.InterestRate,
		string(b.RateType), b.TermMonths, b.AmortizationYears, b.PaymentFrequency,
		b.StartDate.Format("2006-01-02"),
	)
	if err != nil {
		t.Fatalf("Failed to create test mortgage: %v", err)
	}

	return model.Mortgage{
		ID:                b.ID,
		PropertyID:        b.PropertyID,
		Lender:            b.Lender,
		OriginalAmount:    b.OriginalAmount,
		InterestRate:      b.InterestRate,
		RateType:          b.RateType,
		TermMonths:        b.TermMonths,
		AmortizationYears: b.AmortizationYears,
		PaymentFrequency:  b.PaymentFrequency,
		StartDate:         b.StartDate,
	}
}

// ExpenseBuilder provides a fluent interface for creating test expenses.
type ExpenseBuilder struct {
	ID          string
	PropertyID  string
	Date        time.Time
	Amount      float64
	Category    string
	Description string
}

// NewExpense creates an ExpenseBuilder with sensible defaults.
func NewExpense(propertyID string) *ExpenseBuilder {
	return &ExpenseBuilder{
		ID:         MakeID(),
		PropertyID: propertyID,
		Date:       time.Date(time.Now().Year()-1, 3, 1, 0, 0, 0, 0, time.UTC),
		Amount:     300,
		Category:   "Maintenance",
	}
}

// WithDate sets a custom date.
func (b *ExpenseBuilder) WithDate(date time.Time) *ExpenseBuilder {
	b.Date = date
	return b
}

// WithAmount sets a custom amount.
func (b *ExpenseBuilder) WithAmount(amount float64) *ExpenseBuilder {
	b.Amount = amount
	return b
}

// WithCategory sets a custom category.
func (b *ExpenseBuilder) WithCategory(category string) *ExpenseBuilder {
	b.Category = category
	return b
}

// WithDescription sets a custom description.
func (b *ExpenseBuilder) WithDescription(desc string) *ExpenseBuilder {
	b.Description = desc
	return b
}

// Build creates the expense in the database and returns it.
func (b *ExpenseBuilder) Build(t *testing.T, db *sql.DB) model.Expense {
	t.Helper()

	query := `
		INSERT INTO expense (id, property_id, date, amount, category, description)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.PropertyID, b.Date.Format("2006-01-02"), b.Amount, b.Category, b.Description,
	)
	if err != nil {
		t.Fatalf("Failed to create test expense: %v", err)
	}

	return model.Expense{
		ID:          b.ID,
		PropertyID:  b.PropertyID,
		Date:        b.Date,
		Amount:      b.Amount,
		Category:    b.Category,
		Description: b.Description,
	}
}

// CreateExpense creates an expense under the property with default values.
func CreateExpense(t *testing.T, db *sql.DB, propertyID string, amount float64, category string) model.Expense {
	t.Helper()
	return NewExpense(propertyID).WithAmount(amount).WithCategory(category).Build(t, db)
}
