package validation

import (
	"strings"
	"time"

	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/api/request"
)

// ValidateCreateProperty validates a property creation request.
//
// Required fields:
//   - accountId: Must be a valid UUID
//   - name: Non-empty, 200 characters or less
//
// Monetary fields may be zero (an empty shell property is legal) but never
// negative. purchaseDate is optional; when present it must be YYYY-MM-DD.
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateProperty(req request.CreatePropertyRequest) error {
	accountErr := ValidateUUID(req.AccountID)
	if accountErr != nil {
		return accountErr
	}

	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 200 {
		errors["name"] = "name must be 200 characters or less"
	}

	if req.PurchaseDate != "" {
		if _, err := time.Parse("2006-01-02", req.PurchaseDate); err != nil {
			errors["purchaseDate"] = err.Error()
		}
	}

	validateNonNegative(errors, "sizeSqFt", req.SizeSqFt)
	validateNonNegative(errors, "purchasePrice", req.PurchasePrice)
	validateNonNegative(errors, "closingCosts", req.ClosingCosts)
	validateNonNegative(errors, "renovationCosts", req.RenovationCosts)
	validateNonNegative(errors, "initialRenovations", req.InitialRenovations)
	validateNonNegative(errors, "currentMarketValue", req.CurrentMarketValue)
	validateNonNegative(errors, "monthlyRent", req.MonthlyRent)
	validateNonNegative(errors, "annualRent", req.AnnualRent)

	if req.LandTransferTax != nil && *req.LandTransferTax < 0 {
		errors["landTransferTax"] = "landTransferTax cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateProperty validates a property update request.
// All fields are optional, but if provided, they must meet the same
// constraints as create.
func ValidateUpdateProperty(req request.UpdatePropertyRequest) error {
	errors := make(map[string]string)

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name cannot be empty"
		} else if len(*req.Name) > 200 {
			errors["name"] = "name must be 200 characters or less"
		}
	}

	if req.PurchaseDate != nil && *req.PurchaseDate != "" {
		if _, err := time.Parse("2006-01-02", *req.PurchaseDate); err != nil {
			errors["purchaseDate"] = err.Error()
		}
	}

	validateNonNegativePtr(errors, "sizeSqFt", req.SizeSqFt)
	validateNonNegativePtr(errors, "purchasePrice", req.PurchasePrice)
	validateNonNegativePtr(errors, "closingCosts", req.ClosingCosts)
	validateNonNegativePtr(errors, "renovationCosts", req.RenovationCosts)
	validateNonNegativePtr(errors, "initialRenovations", req.InitialRenovations)
	validateNonNegativePtr(errors, "landTransferTax", req.LandTransferTax)
	validateNonNegativePtr(errors, "currentMarketValue", req.CurrentMarketValue)
	validateNonNegativePtr(errors, "monthlyRent", req.MonthlyRent)
	validateNonNegativePtr(errors, "annualRent", req.AnnualRent)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func validateNonNegative(errors map[string]string, field string, value float64) {
	if value < 0 {
		errors[field] = field + " cannot be negative"
	}
}

func validateNonNegativePtr(errors map[string]string, field string, value *float64) {
	if value != nil && *value < 0 {
		errors[field] = field + " cannot be negative"
	}
}
