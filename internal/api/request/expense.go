package request

// CreateExpenseRequest represents the request body for recording an expense
type CreateExpenseRequest struct {
	PropertyID  string  `json:"propertyId"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

type UpdateExpenseRequest struct {
	Date        *string  `json:"date,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
}
