package model

import "time"

// Property represents a property row from the database. Monetary fields
// default to zero when the user has not filled them in yet; only the land
// transfer tax override is nullable, because nil means "compute it".
type Property struct {
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
	CreatedAt          time.Time
}

// PropertyFilter for querying properties
type PropertyFilter struct {
	AccountID string
}
