package request

// CreateMortgageRequest represents the request body for attaching a mortgage
// to a property. InterestRate is a decimal fraction (0.05 = 5%).
type CreateMortgageRequest struct {
	PropertyID        string  `json:"propertyId"`
	Lender            string  `json:"lender"`
	OriginalAmount    float64 `json:"originalAmount"`
	InterestRate      float64 `json:"interestRate"`
	RateType          string  `json:"rateType"`
	TermMonths        int     `json:"termMonths"`
	AmortizationYears int     `json:"amortizationYears"`
	PaymentFrequency  string  `json:"paymentFrequency"`
	StartDate         string  `json:"startDate"`
}

type UpdateMortgageRequest struct {
	Lender            *string  `json:"lender,omitempty"`
	OriginalAmount    *float64 `json:"originalAmount,omitempty"`
	InterestRate      *float64 `json:"interestRate,omitempty"`
	RateType          *string  `json:"rateType,omitempty"`
	TermMonths        *int     `json:"termMonths,omitempty"`
	AmortizationYears *int     `json:"amortizationYears,omitempty"`
	PaymentFrequency  *string  `json:"paymentFrequency,omitempty"`
	StartDate         *string  `json:"startDate,omitempty"`
}
