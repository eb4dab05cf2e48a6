package request

// CreateAccountRequest represents the request body for creating an account
type CreateAccountRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Currency    string `json:"currency"`
}

type UpdateAccountRequest struct {
	ID          *string `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Currency    *string `json:"currency,omitempty"`
	IsArchived  *bool   `json:"isArchived,omitempty"`
}
