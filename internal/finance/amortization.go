// Package finance implements the property investment calculation core:
// mortgage amortization, land transfer tax, monthly expense summaries, and
// per-property investment metrics.
//
// Every function in this package is pure and follows a permissive-default
// policy: missing or malformed numeric inputs produce 0 (or a safe floor)
// rather than an error, so a partially filled property record never breaks
// a caller. Ratio computations guard their denominators and never produce
// Inf or NaN.
package finance

import (
	"math"
	"time"
)

// PaymentFrequency enumerates supported mortgage payment schedules.
type PaymentFrequency string

const (
	FrequencyMonthly             PaymentFrequency = "monthly"
	FrequencySemiMonthly         PaymentFrequency = "semi-monthly"
	FrequencyBiWeekly            PaymentFrequency = "bi-weekly"
	FrequencyAcceleratedBiWeekly PaymentFrequency = "accelerated-bi-weekly"
	FrequencyWeekly              PaymentFrequency = "weekly"
	FrequencyAcceleratedWeekly   PaymentFrequency = "accelerated-weekly"
)

// ValidPaymentFrequencies is the set of accepted payment frequency values.
var ValidPaymentFrequencies = map[PaymentFrequency]bool{
	FrequencyMonthly:             true,
	FrequencySemiMonthly:         true,
	FrequencyBiWeekly:            true,
	FrequencyAcceleratedBiWeekly: true,
	FrequencyWeekly:              true,
	FrequencyAcceleratedWeekly:   true,
}

// MortgageTerms carries the inputs the amortization functions need.
// InterestRate is an annual rate expressed as a decimal fraction (0.05 = 5%).
type MortgageTerms struct {
	Principal         float64
	InterestRate      float64
	AmortizationYears float64
	Frequency         PaymentFrequency
	StartDate         time.Time
}

// PeriodsPerYear maps a payment frequency to the number of payment periods
// per year. Unknown frequencies fall back to monthly.
func PeriodsPerYear(f PaymentFrequency) float64 {
	switch f {
	case FrequencyMonthly:
		return 12
	case FrequencySemiMonthly:
		return 24
	case FrequencyBiWeekly, FrequencyAcceleratedBiWeekly:
		return 26
	case FrequencyWeekly, FrequencyAcceleratedWeekly:
		return 52
	default:
		return 12
	}
}

// PeriodicPayment computes the fixed payment per period for a standard
// amortizing loan:
//
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
//
// where r is the per-period rate and n the total number of periods. A zero
// rate degenerates to a straight-line split of the principal. Invalid terms
// (non-positive principal or amortization, negative rate) yield 0.
func PeriodicPayment(m MortgageTerms) float64 {
	if m.Principal <= 0 || m.InterestRate < 0 || m.AmortizationYears <= 0 {
		return 0
	}

	periodsPerYear := PeriodsPerYear(m.Frequency)
	totalPeriods := m.AmortizationYears * periodsPerYear
	periodRate := m.InterestRate / periodsPerYear

	if periodRate == 0 {
		return m.Principal / totalPeriods
	}

	factor := math.Pow(1+periodRate, totalPeriods)
	return m.Principal * periodRate * factor / (factor - 1)
}

// MonthlyInterest approximates the interest portion of one month of
// payments as principal * annualRate / 12. The true interest portion
// shrinks as the principal is paid down; this deliberately does not walk
// the schedule, matching how the stored figures were produced.
func MonthlyInterest(m MortgageTerms) float64 {
	if m.Principal <= 0 || m.InterestRate < 0 || m.AmortizationYears <= 0 {
		return 0
	}
	return m.Principal * m.InterestRate / 12
}

// MonthlyPrincipal is the payment remainder after interest, floored at zero.
func MonthlyPrincipal(m MortgageTerms) float64 {
	principal := PeriodicPayment(m) - MonthlyInterest(m)
	if principal < 0 {
		return 0
	}
	return principal
}

// RemainingBalance computes the outstanding principal after paymentsMade
// periods using the present value of the remaining payment annuity:
//
//	balance = payment * (1 - (1+r)^-remaining) / r
//
// With a zero rate the balance declines linearly. Invalid terms return the
// principal unchanged.
func RemainingBalance(m MortgageTerms, paymentsMade float64) float64 {
	if m.Principal <= 0 || m.InterestRate < 0 || m.AmortizationYears <= 0 {
		return m.Principal
	}

	periodsPerYear := PeriodsPerYear(m.Frequency)
	totalPeriods := m.AmortizationYears * periodsPerYear
	periodRate := m.InterestRate / periodsPerYear
	payment := PeriodicPayment(m)

	remaining := totalPeriods - paymentsMade
	if remaining <= 0 {
		return 0
	}

	if periodRate == 0 {
		balance := m.Principal - payment*paymentsMade
		if balance < 0 {
			return 0
		}
		return balance
	}

	return payment * (1 - math.Pow(1+periodRate, -remaining)) / periodRate
}

// PaymentsMadeSince counts full payment periods elapsed between the mortgage
// start date and the given date. Returns 0 when the mortgage has not started.
func PaymentsMadeSince(m MortgageTerms, asOf time.Time) float64 {
	if m.StartDate.IsZero() || asOf.Before(m.StartDate) {
		return 0
	}
	years := asOf.Sub(m.StartDate).Hours() / 24 / 365.25
	return math.Floor(years * PeriodsPerYear(m.Frequency))
}
