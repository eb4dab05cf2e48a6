package validation

import (
	"fmt"
	"strings"

	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/api/request"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/finance"
)

// ValidateCreateExpense validates an expense creation request.
//
// Required fields:
//   - propertyId: Must be a valid UUID
//   - date: Must be in YYYY-MM-DD format
//   - amount: Must be positive
//   - category: Must be a known expense category
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateExpense(req request.CreateExpenseRequest) error {
	propertyErr := ValidateUUID(req.PropertyID)
	if propertyErr != nil {
		return propertyErr
	}

	errors := make(map[string]string)

	validateDate(errors, "date", req.Date)

	if req.Amount <= 0.0 {
		errors["amount"] = "amount must be positive"
	}

	if strings.TrimSpace(req.Category) == "" {
		errors["category"] = "category is required"
	} else if !finance.ValidExpenseCategories[finance.ExpenseCategory(req.Category)] {
		errors["category"] = fmt.Sprintf("invalid category: %s", req.Category)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateExpense validates an expense update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
func ValidateUpdateExpense(req request.UpdateExpenseRequest) error {
	errors := make(map[string]string)

	if req.Date != nil {
		validateDate(errors, "date", *req.Date)
	}

	if req.Amount != nil && *req.Amount <= 0.0 {
		errors["amount"] = "amount must be positive"
	}

	if req.Category != nil {
		if strings.TrimSpace(*req.Category) == "" {
			errors["category"] = "category is required"
		} else if !finance.ValidExpenseCategories[finance.ExpenseCategory(*req.Category)] {
			errors["category"] = fmt.Sprintf("invalid category: %s", *req.Category)
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
