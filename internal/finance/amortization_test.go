package finance

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestPeriodicPayment(t *testing.T) {
	t.Run("zero rate splits principal evenly", func(t *testing.T) {
		m := MortgageTerms{
			Principal:         360000,
			InterestRate:      0,
			AmortizationYears: 30,
			Frequency:         FrequencyMonthly,
		}

		got := PeriodicPayment(m)
		want := 360000.0 / (30 * 12)

		if got != want {
			t.Errorf("Expected payment %v, got %v", want, got)
		}
	})

	t.Run("standard 25 year annuity at 5 percent", func(t *testing.T) {
		m := MortgageTerms{
			Principal:         500000,
			InterestRate:      0.05,
			AmortizationYears: 25,
			Frequency:         FrequencyMonthly,
		}

		got := PeriodicPayment(m)

		if !almostEqual(got, 2922.95, 0.01) {
			t.Errorf("Expected payment ~2922.95, got %v", got)
		}
	})

	t.Run("bi-weekly frequency uses 26 periods", func(t *testing.T) {
		m := MortgageTerms{
			Principal:         260000,
			InterestRate:      0,
			AmortizationYears: 10,
			Frequency:         FrequencyBiWeekly,
		}

		got := PeriodicPayment(m)
		want := 260000.0 / (10 * 26)

		if got != want {
			t.Errorf("Expected payment %v, got %v", want, got)
		}
	})

	t.Run("invalid terms return zero", func(t *testing.T) {
		cases := []struct {
			name string
			m    MortgageTerms
		}{
			{"zero principal", MortgageTerms{Principal: 0, InterestRate: 0.05, AmortizationYears: 25}},
			{"negative principal", MortgageTerms{Principal: -100, InterestRate: 0.05, AmortizationYears: 25}},
			{"negative rate", MortgageTerms{Principal: 100000, InterestRate: -0.01, AmortizationYears: 25}},
			{"zero amortization", MortgageTerms{Principal: 100000, InterestRate: 0.05, AmortizationYears: 0}},
		}

		for _, tc := range cases {
			if got := PeriodicPayment(tc.m); got != 0 {
				t.Errorf("%s: expected 0, got %v", tc.name, got)
			}
		}
	})
}

func TestMonthlyInterest(t *testing.T) {
	t.Run("uses principal times annual rate over twelve", func(t *testing.T) {
		m := MortgageTerms{
			Principal:         500000,
			InterestRate:      0.05,
			AmortizationYears: 25,
			Frequency:         FrequencyMonthly,
		}

		got := MonthlyInterest(m)
		want := 500000 * 0.05 / 12

		if got != want {
			t.Errorf("Expected interest %v, got %v", want, got)
		}
	})

	t.Run("invalid terms return zero", func(t *testing.T) {
		m := MortgageTerms{Principal: -1, InterestRate: 0.05, AmortizationYears: 25}
		if got := MonthlyInterest(m); got != 0 {
			t.Errorf("Expected 0, got %v", got)
		}
	})
}

func TestMonthlyPrincipal(t *testing.T) {
	t.Run("is payment minus interest", func(t *testing.T) {
		m := MortgageTerms{
			Principal:         500000,
			InterestRate:      0.05,
			AmortizationYears: 25,
			Frequency:         FrequencyMonthly,
		}

		got := MonthlyPrincipal(m)
		want := PeriodicPayment(m) - MonthlyInterest(m)

		if got != want {
			t.Errorf("Expected principal %v, got %v", want, got)
		}
		if got <= 0 {
			t.Errorf("Expected positive principal portion, got %v", got)
		}
	})

	t.Run("floors at zero when interest exceeds payment", func(t *testing.T) {
		// Weekly payments on a high rate: the per-period payment is far
		// below one month of interest.
		m := MortgageTerms{
			Principal:         500000,
			InterestRate:      0.10,
			AmortizationYears: 30,
			Frequency:         FrequencyWeekly,
		}

		if got := MonthlyPrincipal(m); got != 0 {
			t.Errorf("Expected 0, got %v", got)
		}
	})
}

func TestRemainingBalance(t *testing.T) {
	m := MortgageTerms{
		Principal:         500000,
		InterestRate:      0.05,
		AmortizationYears: 25,
		Frequency:         FrequencyMonthly,
	}

	t.Run("zero payments made leaves full balance", func(t *testing.T) {
		got := RemainingBalance(m, 0)

		if !almostEqual(got, 500000, 0.01) {
			t.Errorf("Expected full principal, got %v", got)
		}
	})

	t.Run("fully amortized at term end", func(t *testing.T) {
		got := RemainingBalance(m, 25*12)

		if !almostEqual(got, 0, 0.01) {
			t.Errorf("Expected ~0 balance, got %v", got)
		}
	})

	t.Run("balance declines monotonically", func(t *testing.T) {
		previous := RemainingBalance(m, 0)
		for payments := 12.0; payments <= 300; payments += 12 {
			balance := RemainingBalance(m, payments)
			if balance >= previous {
				t.Fatalf("Balance did not decline at %v payments: %v >= %v", payments, balance, previous)
			}
			previous = balance
		}
	})

	t.Run("zero rate declines linearly", func(t *testing.T) {
		flat := MortgageTerms{
			Principal:         120000,
			InterestRate:      0,
			AmortizationYears: 10,
			Frequency:         FrequencyMonthly,
		}

		got := RemainingBalance(flat, 60)
		want := 120000.0 / 2

		if !almostEqual(got, want, 0.01) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("invalid terms return principal unchanged", func(t *testing.T) {
		invalid := MortgageTerms{Principal: 100000, InterestRate: -0.05, AmortizationYears: 25}

		if got := RemainingBalance(invalid, 10); got != 100000 {
			t.Errorf("Expected principal back, got %v", got)
		}
	})
}

func TestPaymentsMadeSince(t *testing.T) {
	terms := MortgageTerms{
		Principal:         400000,
		InterestRate:      0.05,
		AmortizationYears: 25,
		Frequency:         FrequencyMonthly,
		StartDate:         time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("counts full periods since the start date", func(t *testing.T) {
		got := PaymentsMadeSince(terms, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))

		if got != 24 {
			t.Errorf("Expected 24 monthly payments after two years, got %v", got)
		}
	})

	t.Run("weekly frequency counts weeks", func(t *testing.T) {
		weekly := terms
		weekly.Frequency = FrequencyWeekly

		got := PaymentsMadeSince(weekly, time.Date(2022, 1, 31, 0, 0, 0, 0, time.UTC))

		if got != 4 {
			t.Errorf("Expected 4 weekly payments after 30 days, got %v", got)
		}
	})

	t.Run("before the start date returns zero", func(t *testing.T) {
		got := PaymentsMadeSince(terms, time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC))

		if got != 0 {
			t.Errorf("Expected 0 payments before the start date, got %v", got)
		}
	})

	t.Run("zero start date returns zero", func(t *testing.T) {
		unstarted := terms
		unstarted.StartDate = time.Time{}

		got := PaymentsMadeSince(unstarted, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

		if got != 0 {
			t.Errorf("Expected 0 payments for an unstarted mortgage, got %v", got)
		}
	})
}

func TestPeriodsPerYear(t *testing.T) {
	cases := []struct {
		frequency PaymentFrequency
		want      float64
	}{
		{FrequencyMonthly, 12},
		{FrequencySemiMonthly, 24},
		{FrequencyBiWeekly, 26},
		{FrequencyAcceleratedBiWeekly, 26},
		{FrequencyWeekly, 52},
		{FrequencyAcceleratedWeekly, 52},
		{PaymentFrequency("unknown"), 12},
	}

	for _, tc := range cases {
		if got := PeriodsPerYear(tc.frequency); got != tc.want {
			t.Errorf("%s: expected %v periods, got %v", tc.frequency, tc.want, got)
		}
	}
}
