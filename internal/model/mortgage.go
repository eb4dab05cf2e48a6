package model

import "time"

// RateType enumerates mortgage rate types.
type RateType string

const (
	RateTypeFixed    RateType = "fixed"
	RateTypeVariable RateType = "variable"
)

// ValidRateTypes is the set of accepted rate type values.
var ValidRateTypes = map[RateType]bool{
	RateTypeFixed:    true,
	RateTypeVariable: true,
}

// Mortgage represents a mortgage row from the database. A property owns at
// most one mortgage. InterestRate is a decimal fraction (0.05 = 5%).
type Mortgage struct {
	ID                string
	PropertyID        string
	Lender            string
	OriginalAmount    float64
	InterestRate      float64
	RateType          RateType
	TermMonths        int
	AmortizationYears int
	PaymentFrequency  string
	StartDate         time.Time
	CreatedAt         time.Time
}
