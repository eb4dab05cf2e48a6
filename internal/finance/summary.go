package finance

import (
	"math"
	"time"
)

// ExpenseCategory enumerates the persisted expense categories.
type ExpenseCategory string

const (
	CategoryPropertyTax      ExpenseCategory = "Property Tax"
	CategoryCondoFees        ExpenseCategory = "Condo Fees"
	CategoryInsurance        ExpenseCategory = "Insurance"
	CategoryMaintenance      ExpenseCategory = "Maintenance"
	CategoryProfessionalFees ExpenseCategory = "Professional Fees"
	CategoryUtilities        ExpenseCategory = "Utilities"
	CategoryOther            ExpenseCategory = "Other"
)

// ValidExpenseCategories is the set of accepted expense category values.
var ValidExpenseCategories = map[ExpenseCategory]bool{
	CategoryPropertyTax:      true,
	CategoryCondoFees:        true,
	CategoryInsurance:        true,
	CategoryMaintenance:      true,
	CategoryProfessionalFees: true,
	CategoryUtilities:        true,
	CategoryOther:            true,
}

// OperatingCategories are the categories counted as operating expenses.
// "Other" is excluded: it may contain capital or one-off items and is not
// part of NOI. Debt service is never an expense category; mortgage figures
// are carried separately on the summary.
var OperatingCategories = []ExpenseCategory{
	CategoryPropertyTax,
	CategoryCondoFees,
	CategoryInsurance,
	CategoryMaintenance,
	CategoryProfessionalFees,
	CategoryUtilities,
}

// ExpenseRecord is the minimal view of a stored expense the summary needs.
type ExpenseRecord struct {
	Date     time.Time
	Amount   float64
	Category ExpenseCategory
}

// MonthlySummary holds per-category monthly expense averages plus the
// derived monthly mortgage figures. Total is the monthly operating sum plus
// the mortgage payment: the figure cash flow subtracts from rent.
type MonthlySummary struct {
	Categories        map[ExpenseCategory]float64
	MortgagePayment   float64
	MortgageInterest  float64
	MortgagePrincipal float64
	Total             float64
}

// OperatingTotal sums the monthly figures of the operating categories,
// excluding mortgage debt service and the Other category.
func (s MonthlySummary) OperatingTotal() float64 {
	var total float64
	for _, c := range OperatingCategories {
		total += s.Categories[c]
	}
	return total
}

// Rounded returns a copy with every figure rounded to cents. Callers keep
// the unrounded summary for downstream arithmetic and surface this copy.
func (s MonthlySummary) Rounded() MonthlySummary {
	rounded := MonthlySummary{
		Categories:        make(map[ExpenseCategory]float64, len(s.Categories)),
		MortgagePayment:   Round2(s.MortgagePayment),
		MortgageInterest:  Round2(s.MortgageInterest),
		MortgagePrincipal: Round2(s.MortgagePrincipal),
		Total:             Round2(s.Total),
	}
	for category, amount := range s.Categories {
		rounded.Categories[category] = Round2(amount)
	}
	return rounded
}

// SummarizeMonthlyExpenses computes per-category monthly averages from the
// most recent calendar year that has a non-zero expense total. Historic
// records may trail the current year, so a fixed "this year" basis would
// read all zeros; instead the newest year with data wins.
//
// The mortgage figures are re-derived from the terms on every call rather
// than trusted from storage. A nil mortgage contributes zeros.
func SummarizeMonthlyExpenses(expenses []ExpenseRecord, mortgage *MortgageTerms) MonthlySummary {
	summary := MonthlySummary{
		Categories: make(map[ExpenseCategory]float64, len(OperatingCategories)+1),
	}

	if year, ok := latestYearWithExpenses(expenses); ok {
		totals := make(map[ExpenseCategory]float64)
		for _, e := range expenses {
			if e.Date.Year() == year && e.Amount > 0 {
				totals[e.Category] += e.Amount
			}
		}
		for category, total := range totals {
			summary.Categories[category] = total / 12
		}
	}

	if mortgage != nil {
		summary.MortgagePayment = PeriodicPayment(*mortgage)
		summary.MortgageInterest = MonthlyInterest(*mortgage)
		summary.MortgagePrincipal = MonthlyPrincipal(*mortgage)
	}

	summary.Total = summary.OperatingTotal() + summary.MortgagePayment
	return summary
}

// latestYearWithExpenses returns the most recent calendar year whose
// expense amounts sum to a positive total.
func latestYearWithExpenses(expenses []ExpenseRecord) (int, bool) {
	totalsByYear := make(map[int]float64)
	for _, e := range expenses {
		if !e.Date.IsZero() && !math.IsNaN(e.Amount) {
			totalsByYear[e.Date.Year()] += e.Amount
		}
	}

	best := 0
	for year, total := range totalsByYear {
		if total > 0 && year > best {
			best = year
		}
	}
	return best, best != 0
}
