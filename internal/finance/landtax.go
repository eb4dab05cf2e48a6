package finance

import (
	"strings"

	"github.com/shopspring/decimal"
)

// taxBracket is one marginal bracket. A zero upTo means the bracket is
// open-ended.
type taxBracket struct {
	upTo decimal.Decimal
	rate decimal.Decimal
}

func bracket(upTo float64, rate string) taxBracket {
	return taxBracket{
		upTo: decimal.NewFromFloat(upTo),
		rate: decimal.RequireFromString(rate),
	}
}

// Ontario provincial land transfer tax schedule, 2024.
var ontarioBrackets = []taxBracket{
	bracket(55_000, "0.005"),
	bracket(250_000, "0.01"),
	bracket(400_000, "0.015"),
	bracket(2_000_000, "0.02"),
	bracket(0, "0.025"),
}

// Toronto municipal land transfer tax schedule, 2024, including the
// graduated luxury brackets introduced January 2024. Applied in addition to
// the provincial tax, never instead of it.
var torontoBrackets = []taxBracket{
	bracket(55_000, "0.005"),
	bracket(250_000, "0.01"),
	bracket(400_000, "0.015"),
	bracket(2_000_000, "0.02"),
	bracket(3_000_000, "0.025"),
	bracket(4_000_000, "0.035"),
	bracket(5_000_000, "0.045"),
	bracket(10_000_000, "0.055"),
	bracket(20_000_000, "0.065"),
	bracket(0, "0.075"),
}

// LandTransferTax computes the Ontario land transfer tax on a purchase
// price, adding the Toronto municipal tax when the city contains "Toronto"
// (case-insensitive). A non-nil manual override is returned unchanged, so
// user-entered figures always win over the computed schedule.
//
// The province parameter is carried for API symmetry; only Ontario
// schedules are implemented.
func LandTransferTax(purchasePrice float64, city, province string, manualOverride *float64) float64 {
	if manualOverride != nil {
		return *manualOverride
	}
	if purchasePrice <= 0 {
		return 0
	}

	price := decimal.NewFromFloat(purchasePrice)
	tax := marginalTax(price, ontarioBrackets)

	if strings.Contains(strings.ToLower(city), "toronto") {
		tax = tax.Add(marginalTax(price, torontoBrackets))
	}

	return Round2(tax.InexactFloat64())
}

// marginalTax applies a marginal bracket schedule: each bracket's rate is
// charged only on the slice of the price that falls inside it.
func marginalTax(price decimal.Decimal, brackets []taxBracket) decimal.Decimal {
	total := decimal.Zero
	lower := decimal.Zero

	for _, b := range brackets {
		upper := price
		if !b.upTo.IsZero() && b.upTo.LessThan(price) {
			upper = b.upTo
		}
		if upper.GreaterThan(lower) {
			total = total.Add(upper.Sub(lower).Mul(b.rate))
		}
		if b.upTo.IsZero() || price.LessThanOrEqual(b.upTo) {
			break
		}
		lower = b.upTo
	}

	return total
}
