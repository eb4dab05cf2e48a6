package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/api/request"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/api/response"
	apperrors "github.com/tvandenberg/Property-Investment-Manager-Backend/internal/errors"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/finance"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/model"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/service"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/validation"
)

// MortgageHandler handles HTTP requests for mortgage endpoints.
type MortgageHandler struct {
	mortgageService *service.MortgageService
}

// NewMortgageHandler creates a new MortgageHandler with the provided service dependency.
func NewMortgageHandler(mortgageService *service.MortgageService) *MortgageHandler {
	return &MortgageHandler{
		mortgageService: mortgageService,
	}
}

// MortgageResponse represents a mortgage in API responses. PaymentsMade and
// RemainingBalance are derived from the terms at read time, never stored.
type MortgageResponse struct {
	ID                string  `json:"id"`
	PropertyID        string  `json:"propertyId"`
	Lender            string  `json:"lender"`
	OriginalAmount    float64 `json:"originalAmount"`
	InterestRate      float64 `json:"interestRate"`
	RateType          string  `json:"rateType"`
	TermMonths        int     `json:"termMonths"`
	AmortizationYears int     `json:"amortizationYears"`
	PaymentFrequency  string  `json:"paymentFrequency"`
	StartDate         string  `json:"startDate"`
	PaymentsMade      int     `json:"paymentsMade"`
	RemainingBalance  float64 `json:"remainingBalance"`
}

func toMortgageResponse(m model.Mortgage) MortgageResponse {
	terms := finance.MortgageTerms{
		Principal:         m.OriginalAmount,
		InterestRate:      m.InterestRate,
		AmortizationYears: float64(m.AmortizationYears),
		Frequency:         finance.PaymentFrequency(m.PaymentFrequency),
		StartDate:         m.StartDate,
	}
	paymentsMade := finance.PaymentsMadeSince(terms, time.Now())

	return MortgageResponse{
		ID:                m.ID,
		PropertyID:        m.PropertyID,
		Lender:            m.Lender,
		OriginalAmount:    m.OriginalAmount,
		InterestRate:      m.InterestRate,
		RateType:          string(m.RateType),
		TermMonths:        m.TermMonths,
		AmortizationYears: m.AmortizationYears,
		PaymentFrequency:  m.PaymentFrequency,
		StartDate:         m.StartDate.Format("2006-01-02"),
		PaymentsMade:      int(paymentsMade),
		RemainingBalance:  finance.Round2(finance.RemainingBalance(terms, paymentsMade)),
	}
}

// GetMortgage handles GET requests to retrieve a single mortgage by ID.
//
// Endpoint: GET /api/mortgage/{uuid}
// Response: 200 OK with MortgageResponse
// Error: 400 Bad Request if mortgage ID is invalid (validated by middleware)
// Error: 404 Not Found if mortgage not found
// Error: 500 Internal Server Error if retrieval fails
func (h *MortgageHandler) GetMortgage(w http.ResponseWriter, r *http.Request) {
	mortgageID := chi.URLParam(r, "uuid")

	mortgage, err := h.mortgageService.GetMortgage(mortgageID)
	if err != nil {
		if errors.Is(err, apperrors.ErrMortgageNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrMortgageNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve mortgage", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, toMortgageResponse(mortgage))
}

// MortgagePerProperty handles GET requests to retrieve the mortgage attached
// to a property.
//
// Endpoint: GET /api/mortgage/property/{uuid}
// Response: 200 OK with MortgageResponse
// Error: 400 Bad Request if property ID is invalid (validated by middleware)
// Error: 404 Not Found if the property has no mortgage
// Error: 500 Internal Server Error if retrieval fails
func (h *MortgageHandler) MortgagePerProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "uuid")

	mortgage, err := h.mortgageService.GetMortgageForProperty(propertyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrMortgageNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrMortgageNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve mortgage", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, toMortgageResponse(mortgage))
}

// CreateMortgage handles POST requests to attach a mortgage to a property.
// A property owns at most one mortgage.
//
// Endpoint: POST /api/mortgage
// Request Body: CreateMortgageRequest
// Response: 201 Created with MortgageResponse
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the target property does not exist
// Error: 409 Conflict if the property already has a mortgage
// Error: 500 Internal Server Error if creation fails
func (h *MortgageHandler) CreateMortgage(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateMortgageRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateMortgage(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)

	mortgage, err := h.mortgageService.CreateMortgage(r.Context(), model.Mortgage{
		PropertyID:        req.PropertyID,
		Lender:            req.Lender,
		OriginalAmount:    req.OriginalAmount,
		InterestRate:      req.InterestRate,
		RateType:          model.RateType(req.RateType),
		TermMonths:        req.TermMonths,
		AmortizationYears: req.AmortizationYears,
		PaymentFrequency:  req.PaymentFrequency,
		StartDate:         startDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPropertyNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPropertyNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrMortgageExists):
			response.RespondError(w, http.StatusConflict, apperrors.ErrMortgageExists.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to create mortgage", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusCreated, toMortgageResponse(mortgage))
}

// UpdateMortgage handles PUT requests to update an existing mortgage.
// Only fields present in the request body are changed.
//
// Endpoint: PUT /api/mortgage/{uuid}
// Request Body: UpdateMortgageRequest (all fields optional)
// Response: 200 OK with updated MortgageResponse
// Error: 400 Bad Request if mortgage ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if mortgage not found
// Error: 500 Internal Server Error if update fails
func (h *MortgageHandler) UpdateMortgage(w http.ResponseWriter, r *http.Request) {
	mortgageID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateMortgageRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateMortgage(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	m, err := h.mortgageService.GetMortgage(mortgageID)
	if err != nil {
		if errors.Is(err, apperrors.ErrMortgageNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrMortgageNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve mortgage", err.Error())
		return
	}

	if req.Lender != nil {
		m.Lender = *req.Lender
	}
	if req.OriginalAmount != nil {
		m.OriginalAmount = *req.OriginalAmount
	}
	if req.InterestRate != nil {
		m.InterestRate = *req.InterestRate
	}
	if req.RateType != nil {
		m.RateType = model.RateType(*req.RateType)
	}
	if req.TermMonths != nil {
		m.TermMonths = *req.TermMonths
	}
	if req.AmortizationYears != nil {
		m.AmortizationYears = *req.AmortizationYears
	}
	if req.PaymentFrequency != nil {
		m.PaymentFrequency = *req.PaymentFrequency
	}
	if req.StartDate != nil {
		m.StartDate, _ = time.Parse("2006-01-02", *req.StartDate)
	}

	mortgage, err := h.mortgageService.UpdateMortgage(r.Context(), m)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to update mortgage", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, toMortgageResponse(mortgage))
}

// DeleteMortgage handles DELETE requests to remove a mortgage.
//
// Endpoint: DELETE /api/mortgage/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if mortgage ID is invalid (validated by middleware)
// Error: 404 Not Found if mortgage not found
// Error: 500 Internal Server Error if deletion fails
func (h *MortgageHandler) DeleteMortgage(w http.ResponseWriter, r *http.Request) {
	mortgageID := chi.URLParam(r, "uuid")

	err := h.mortgageService.DeleteMortgage(r.Context(), mortgageID)
	if err != nil {
		if errors.Is(err, apperrors.ErrMortgageNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrMortgageNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete mortgage", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
