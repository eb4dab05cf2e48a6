package request

// CreatePropertyRequest represents the request body for creating a property.
// Rent may be supplied monthly or annually; when only annualRent is set the
// monthly figure is derived from it.
type CreatePropertyRequest struct {
	AccountID          string   `json:"accountId"`
	Name               string   `json:"name"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	Province           string   `json:"province"`
	Type               string   `json:"type"`
	UnitConfiguration  string   `json:"unitConfiguration"`
	SizeSqFt           float64  `json:"sizeSqFt"`
	YearBuilt          int      `json:"yearBuilt"`
	PurchaseDate       string   `json:"purchaseDate"`
	PurchasePrice      float64  `json:"purchasePrice"`
	ClosingCosts       float64  `json:"closingCosts"`
	RenovationCosts    float64  `json:"renovationCosts"`
	InitialRenovations float64  `json:"initialRenovations"`
	LandTransferTax    *float64 `json:"landTransferTax,omitempty"`
	CurrentMarketValue float64  `json:"currentMarketValue"`
	MonthlyRent        float64  `json:"monthlyRent"`
	AnnualRent         float64  `json:"annualRent"`
}

// EffectiveMonthlyRent resolves the rent fields to a single monthly figure.
func (r CreatePropertyRequest) EffectiveMonthlyRent() float64 {
	if r.MonthlyRent == 0 && r.AnnualRent != 0 {
		return r.AnnualRent / 12
	}
	return r.MonthlyRent
}

type UpdatePropertyRequest struct {
	Name               *string  `json:"name,omitempty"`
	Address            *string  `json:"address,omitempty"`
	City               *string  `json:"city,omitempty"`
	Province           *string  `json:"province,omitempty"`
	Type               *string  `json:"type,omitempty"`
	UnitConfiguration  *string  `json:"unitConfiguration,omitempty"`
	SizeSqFt           *float64 `json:"sizeSqFt,omitempty"`
	YearBuilt          *int     `json:"yearBuilt,omitempty"`
	PurchaseDate       *string  `json:"purchaseDate,omitempty"`
	PurchasePrice      *float64 `json:"purchasePrice,omitempty"`
	ClosingCosts       *float64 `json:"closingCosts,omitempty"`
	RenovationCosts    *float64 `json:"renovationCosts,omitempty"`
	InitialRenovations *float64 `json:"initialRenovations,omitempty"`
	LandTransferTax    *float64 `json:"landTransferTax,omitempty"`
	CurrentMarketValue *float64 `json:"currentMarketValue,omitempty"`
	MonthlyRent        *float64 `json:"monthlyRent,omitempty"`
	AnnualRent         *float64 `json:"annualRent,omitempty"`
}
