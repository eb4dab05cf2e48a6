package validation

import (
	"fmt"
	"strings"

	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/api/request"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/finance"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/model"
)

// ValidateCreateMortgage validates a mortgage creation request.
// Checks all required fields and validates their formats and constraints.
//
// Required fields:
//   - propertyId: Must be a valid UUID
//   - originalAmount: Must be positive
//   - rateType: Must be one of: fixed, variable
//   - amortizationYears: Must be positive
//   - paymentFrequency: Must be a known frequency value
//   - startDate: Must be in YYYY-MM-DD format
//
// InterestRate may be zero for rate-free carry arrangements but never negative.
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateMortgage(req request.CreateMortgageRequest) error {
	propertyErr := ValidateUUID(req.PropertyID)
	if propertyErr != nil {
		return propertyErr
	}

	errors := make(map[string]string)

	if req.OriginalAmount <= 0.0 {
		errors["originalAmount"] = "originalAmount must be positive"
	}

	if req.InterestRate < 0.0 {
		errors["interestRate"] = "interestRate cannot be negative"
	}

	if strings.TrimSpace(req.RateType) == "" {
		errors["rateType"] = "rateType is required"
	} else if !model.ValidRateTypes[model.RateType(req.RateType)] {
		errors["rateType"] = fmt.Sprintf("invalid rateType: %s", req.RateType)
	}

	if req.AmortizationYears <= 0 {
		errors["amortizationYears"] = "amortizationYears must be positive"
	}

	if req.TermMonths < 0 {
		errors["termMonths"] = "termMonths cannot be negative"
	}

	if strings.TrimSpace(req.PaymentFrequency) == "" {
		errors["paymentFrequency"] = "paymentFrequency is required"
	} else if !finance.ValidPaymentFrequencies[finance.PaymentFrequency(req.PaymentFrequency)] {
		errors["paymentFrequency"] = fmt.Sprintf("invalid paymentFrequency: %s", req.PaymentFrequency)
	}

	validateDate(errors, "startDate", req.StartDate)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateMortgage validates a mortgage update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
func ValidateUpdateMortgage(req request.UpdateMortgageRequest) error {
	errors := make(map[string]string)

	if req.OriginalAmount != nil && *req.OriginalAmount <= 0.0 {
		errors["originalAmount"] = "originalAmount must be positive"
	}

	if req.InterestRate != nil && *req.InterestRate < 0.0 {
		errors["interestRate"] = "interestRate cannot be negative"
	}

	if req.RateType != nil {
		if strings.TrimSpace(*req.RateType) == "" {
			errors["rateType"] = "rateType is required"
		} else if !model.ValidRateTypes[model.RateType(*req.RateType)] {
			errors["rateType"] = fmt.Sprintf("invalid rateType: %s", *req.RateType)
		}
	}

	if req.AmortizationYears != nil && *req.AmortizationYears <= 0 {
		errors["amortizationYears"] = "amortizationYears must be positive"
	}

	if req.TermMonths != nil && *req.TermMonths < 0 {
		errors["termMonths"] = "termMonths cannot be negative"
	}

	if req.PaymentFrequency != nil {
		if strings.TrimSpace(*req.PaymentFrequency) == "" {
			errors["paymentFrequency"] = "paymentFrequency is required"
		} else if !finance.ValidPaymentFrequencies[finance.PaymentFrequency(*req.PaymentFrequency)] {
			errors["paymentFrequency"] = fmt.Sprintf("invalid paymentFrequency: %s", *req.PaymentFrequency)
		}
	}

	if req.StartDate != nil {
		validateDate(errors, "startDate", *req.StartDate)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
