package model

import "time"

// Account represents an investment account from the database. An account
// groups the properties one user manages together.
type Account struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Currency    string    `json:"currency"`
	IsDemo      bool      `json:"isDemo"`
	IsArchived  bool      `json:"isArchived"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AccountFilter for querying accounts
type AccountFilter struct {
	IncludeArchived bool
	UserID          string
}

// AccountSummary represents the aggregated state of an account's property
// portfolio. All monetary values are rounded to two decimal places.
type AccountSummary struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	PropertyCount      int     `json:"propertyCount"`
	TotalValue         float64 `json:"totalValue"`         // Sum of current market values
	TotalPurchasePrice float64 `json:"totalPurchasePrice"` // Sum of purchase prices
	TotalInvested      float64 `json:"totalInvested"`      // Sum of cash invested
	MonthlyRent        float64 `json:"monthlyRent"`        // Sum of monthly rents
	MonthlyCashFlow    float64 `json:"monthlyCashFlow"`    // Sum of monthly cash flows
	AnnualCashFlow     float64 `json:"annualCashFlow"`     // Sum of annual cash flows
	TotalAppreciation  float64 `json:"totalAppreciation"`  // Sum of appreciation
	IsDemo             bool    `json:"isDemo"`
}
