package model

import "time"

// Expense represents an expense row from the database.
type Expense struct {
	ID          string
	PropertyID  string
	Date        time.Time
	Amount      float64
	Category    string
	Description string
	CreatedAt   time.Time
}

// ExpenseFilter for querying expenses. Zero values mean "no constraint".
type ExpenseFilter struct {
	PropertyID string
	Category   string
	Year       int
}
