package model

import "time"

// ValuationSnapshot represents a pre-calculated account valuation for a
// specific date. Snapshots are materialized by the nightly job so history
// queries never recompute past states.
type ValuationSnapshot struct {
	ID             string    // Primary key
	AccountID      string    // Account identifier
	Date           time.Time // Date of this snapshot
	PropertyCount  int       // Number of properties on this date
	TotalValue     float64   // Sum of current market values
	TotalInvested  float64   // Sum of cash invested
	AnnualCashFlow float64   // Sum of annual cash flows
	CalculatedAt   time.Time // When this record was calculated
}
