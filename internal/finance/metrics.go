package finance

import "math"

// PropertyFinancials is the aggregate the metrics functions consume: the
// stored property figures, the optional mortgage terms, and the derived
// monthly expense summary. Missing numeric fields are expected to be zero,
// not NaN; callers coalesce at the boundary.
type PropertyFinancials struct {
	PurchasePrice      float64
	ClosingCosts       float64
	RenovationCosts    float64
	InitialRenovations float64
	LandTransferTax    float64
	CurrentMarketValue float64
	SizeSqFt           float64
	MonthlyRent        float64
	Mortgage           *MortgageTerms
	MonthlyExpenses    MonthlySummary
}

// Metrics carries the derived investment figures for one property. All
// values are rounded to two decimal places; intermediates keep full
// precision.
type Metrics struct {
	DownPayment        float64 `json:"downPayment"`
	TotalInvestment    float64 `json:"totalInvestment"`
	AnnualOperating    float64 `json:"annualOperatingExpenses"`
	NetOperatingIncome float64 `json:"netOperatingIncome"`
	CapRate            float64 `json:"capRate"`
	MonthlyCashFlow    float64 `json:"monthlyCashFlow"`
	AnnualCashFlow     float64 `json:"annualCashFlow"`
	CashOnCashReturn   float64 `json:"cashOnCashReturn"`
	Appreciation       float64 `json:"appreciation"`
	PricePerSquareFoot float64 `json:"pricePerSquareFoot"`
}

// Round2 rounds a monetary value to two decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// DownPayment is the purchase price less the financed amount, floored at
// zero for overfinanced purchases. A cash purchase (no mortgage) puts the
// whole price down.
func DownPayment(p PropertyFinancials) float64 {
	financed := 0.0
	if p.Mortgage != nil {
		financed = p.Mortgage.Principal
	}
	down := p.PurchasePrice - financed
	if down < 0 {
		return 0
	}
	return down
}

// TotalInvestment is the total cash put into the property: down payment,
// closing costs, renovations, and land transfer tax.
func TotalInvestment(p PropertyFinancials) float64 {
	return DownPayment(p) + p.ClosingCosts + p.RenovationCosts + p.InitialRenovations + p.LandTransferTax
}

// AnnualOperatingExpenses annualizes the monthly operating categories.
// Debt service is excluded: mortgage payments are financing, not operations.
func AnnualOperatingExpenses(p PropertyFinancials) float64 {
	return p.MonthlyExpenses.OperatingTotal() * 12
}

// NetOperatingIncome is annual rent less annual operating expenses.
func NetOperatingIncome(p PropertyFinancials) float64 {
	return p.MonthlyRent*12 - AnnualOperatingExpenses(p)
}

// CapRate is annual rent over current market value as a percentage, 0 when
// the market value is not positive.
func CapRate(p PropertyFinancials) float64 {
	if p.CurrentMarketValue <= 0 {
		return 0
	}
	return p.MonthlyRent * 12 / p.CurrentMarketValue * 100
}

// MonthlyCashFlow is rent less the full monthly expense total, which
// includes debt service (unlike NOI).
func MonthlyCashFlow(p PropertyFinancials) float64 {
	return p.MonthlyRent - p.MonthlyExpenses.Total
}

// AnnualCashFlow annualizes the monthly cash flow.
func AnnualCashFlow(p PropertyFinancials) float64 {
	return MonthlyCashFlow(p) * 12
}

// CashOnCashReturn is annual cash flow over total cash invested as a
// percentage, 0 when nothing was invested.
func CashOnCashReturn(p PropertyFinancials) float64 {
	invested := TotalInvestment(p)
	if invested <= 0 {
		return 0
	}
	return AnnualCashFlow(p) / invested * 100
}

// Appreciation is the market value change since purchase; negative when the
// property lost value.
func Appreciation(p PropertyFinancials) float64 {
	return p.CurrentMarketValue - p.PurchasePrice
}

// PricePerSquareFoot is current market value over size, 0 when size is not
// positive.
func PricePerSquareFoot(p PropertyFinancials) float64 {
	if p.SizeSqFt <= 0 {
		return 0
	}
	return p.CurrentMarketValue / p.SizeSqFt
}

// ComputeMetrics evaluates the full derivation chain for one property and
// rounds every surfaced figure to cents.
func ComputeMetrics(p PropertyFinancials) Metrics {
	return Metrics{
		DownPayment:        Round2(DownPayment(p)),
		TotalInvestment:    Round2(TotalInvestment(p)),
		AnnualOperating:    Round2(AnnualOperatingExpenses(p)),
		NetOperatingIncome: Round2(NetOperatingIncome(p)),
		CapRate:            Round2(CapRate(p)),
		MonthlyCashFlow:    Round2(MonthlyCashFlow(p)),
		AnnualCashFlow:     Round2(AnnualCashFlow(p)),
		CashOnCashReturn:   Round2(CashOnCashReturn(p)),
		Appreciation:       Round2(Appreciation(p)),
		PricePerSquareFoot: Round2(PricePerSquareFoot(p)),
	}
}
