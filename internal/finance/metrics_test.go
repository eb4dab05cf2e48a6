package finance

import (
	"reflect"
	"testing"
)

func sampleProperty() PropertyFinancials {
	mortgage := &MortgageTerms{
		Principal:         400000,
		InterestRate:      0.05,
		AmortizationYears: 25,
		Frequency:         FrequencyMonthly,
	}

	return PropertyFinancials{
		PurchasePrice:      600000,
		ClosingCosts:       8000,
		RenovationCosts:    15000,
		InitialRenovations: 5000,
		LandTransferTax:    8475,
		CurrentMarketValue: 650000,
		SizeSqFt:           1000,
		MonthlyRent:        3200,
		Mortgage:           mortgage,
		MonthlyExpenses: SummarizeMonthlyExpenses([]ExpenseRecord{
			{Date: mustDate("2025-03-01"), Amount: 3600, Category: CategoryPropertyTax},
			{Date: mustDate("2025-06-01"), Amount: 1200, Category: CategoryInsurance},
		}, mortgage),
	}
}

func TestTotalInvestment(t *testing.T) {
	t.Run("sums down payment and acquisition costs", func(t *testing.T) {
		p := sampleProperty()

		got := TotalInvestment(p)
		want := (600000.0 - 400000) + 8000 + 15000 + 5000 + 8475

		if got != want {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("cash purchase puts full price down", func(t *testing.T) {
		p := sampleProperty()
		p.Mortgage = nil

		if got := DownPayment(p); got != 600000 {
			t.Errorf("Expected 600000, got %v", got)
		}
	})

	t.Run("overfinanced purchase floors down payment at zero", func(t *testing.T) {
		p := sampleProperty()
		p.Mortgage = &MortgageTerms{Principal: 700000, InterestRate: 0.05, AmortizationYears: 25}

		if got := DownPayment(p); got != 0 {
			t.Errorf("Expected 0, got %v", got)
		}
	})
}

func TestNetOperatingIncome(t *testing.T) {
	p := sampleProperty()

	// Operating: (3600 + 1200) / 12 per month, annualized back to 4800.
	got := NetOperatingIncome(p)
	want := 3200.0*12 - 4800

	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestCapRate(t *testing.T) {
	t.Run("annual rent over market value", func(t *testing.T) {
		p := sampleProperty()

		got := CapRate(p)
		want := 3200.0 * 12 / 650000 * 100

		if got != want {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("zero market value guards division", func(t *testing.T) {
		p := sampleProperty()
		p.CurrentMarketValue = 0

		if got := CapRate(p); got != 0 {
			t.Errorf("Expected 0, got %v", got)
		}
	})
}

func TestCashFlow(t *testing.T) {
	t.Run("monthly cash flow includes debt service", func(t *testing.T) {
		p := sampleProperty()

		got := MonthlyCashFlow(p)
		want := 3200 - p.MonthlyExpenses.Total

		if got != want {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("annual cash flow is twelve months", func(t *testing.T) {
		p := sampleProperty()

		if got, want := AnnualCashFlow(p), MonthlyCashFlow(p)*12; got != want {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("zero investment guards cash-on-cash", func(t *testing.T) {
		p := PropertyFinancials{MonthlyRent: 2000}

		if got := CashOnCashReturn(p); got != 0 {
			t.Errorf("Expected 0, got %v", got)
		}
	})
}

func TestAppreciation(t *testing.T) {
	t.Run("equal purchase and market value is zero", func(t *testing.T) {
		p := PropertyFinancials{PurchasePrice: 600000, CurrentMarketValue: 600000}

		if got := Appreciation(p); got != 0 {
			t.Errorf("Expected 0, got %v", got)
		}
	})

	t.Run("can be negative", func(t *testing.T) {
		p := PropertyFinancials{PurchasePrice: 600000, CurrentMarketValue: 550000}

		if got := Appreciation(p); got != -50000 {
			t.Errorf("Expected -50000, got %v", got)
		}
	})
}

func TestPricePerSquareFoot(t *testing.T) {
	t.Run("market value over size", func(t *testing.T) {
		p := sampleProperty()

		if got := PricePerSquareFoot(p); got != 650 {
			t.Errorf("Expected 650, got %v", got)
		}
	})

	t.Run("zero size guards division", func(t *testing.T) {
		p := sampleProperty()
		p.SizeSqFt = 0

		if got := PricePerSquareFoot(p); got != 0 {
			t.Errorf("Expected 0, got %v", got)
		}
	})
}

func TestComputeMetrics(t *testing.T) {
	t.Run("is deterministic for identical input", func(t *testing.T) {
		p := sampleProperty()

		first := ComputeMetrics(p)
		second := ComputeMetrics(p)

		if !reflect.DeepEqual(first, second) {
			t.Errorf("Expected identical metrics, got %+v and %+v", first, second)
		}
	})

	t.Run("empty property yields all zeros without panic", func(t *testing.T) {
		got := ComputeMetrics(PropertyFinancials{})

		if !reflect.DeepEqual(got, Metrics{}) {
			t.Errorf("Expected zero metrics, got %+v", got)
		}
	})

	t.Run("values are rounded to cents", func(t *testing.T) {
		p := sampleProperty()
		p.MonthlyRent = 3333.333

		m := ComputeMetrics(p)

		if m.MonthlyCashFlow != Round2(m.MonthlyCashFlow) {
			t.Errorf("MonthlyCashFlow not rounded: %v", m.MonthlyCashFlow)
		}
		if m.CapRate != Round2(m.CapRate) {
			t.Errorf("CapRate not rounded: %v", m.CapRate)
		}
	})
}
