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

// PropertyHandler handles HTTP requests for property endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the propertyService.
type PropertyHandler struct {
	propertyService *service.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler with the provided service dependency.
func NewPropertyHandler(propertyService *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
	}
}

// PropertyResponse represents an enriched property in API responses.
// Monetary figures are the derived values, not raw stored rows: the land
// transfer tax is resolved (override or computed) and the expense summary
// and metrics are recomputed on every read.
type PropertyResponse struct {
	ID                 string                 `json:"id"`
	AccountID          string                 `json:"accountId"`
	Name               string                 `json:"name"`
	Address            string                 `json:"address"`
	City               string                 `json:"city"`
	Province           string                 `json:"province"`
	Type               string                 `json:"type"`
	UnitConfiguration  string                 `json:"unitConfiguration"`
	SizeSqFt           float64                `json:"sizeSqFt"`
	YearBuilt          int                    `json:"yearBuilt"`
	PurchaseDate       string                 `json:"purchaseDate,omitempty"`
	PurchasePrice      float64                `json:"purchasePrice"`
	ClosingCosts       float64                `json:"closingCosts"`
	RenovationCosts    float64                `json:"renovationCosts"`
	InitialRenovations float64                `json:"initialRenovations"`
	LandTransferTax    float64                `json:"landTransferTax"`
	CurrentMarketValue float64                `json:"currentMarketValue"`
	MonthlyRent        float64                `json:"monthlyRent"`
	AnnualRent         float64                `json:"annualRent"`
	Mortgage           *MortgageResponse      `json:"mortgage,omitempty"`
	MonthlyExpenses    MonthlyExpensesResponse `json:"monthlyExpenses"`
	Metrics            finance.Metrics        `json:"metrics"`
}

// MonthlyExpensesResponse represents the monthly expense summary of a property.
type MonthlyExpensesResponse struct {
	Categories        map[finance.ExpenseCategory]float64 `json:"categories"`
	MortgagePayment   float64                             `json:"mortgagePayment"`
	MortgageInterest  float64                             `json:"mortgageInterest"`
	MortgagePrincipal float64                             `json:"mortgagePrincipal"`
	Total             float64                             `json:"total"`
}

func toPropertyResponse(p service.EnrichedProperty) PropertyResponse {
	resp := PropertyResponse{
		ID:                 p.ID,
		AccountID:          p.AccountID,
		Name:               p.Name,
		Address:            p.Address,
		City:               p.City,
		Province:           p.Province,
		Type:               p.Type,
		UnitConfiguration:  p.UnitConfiguration,
		SizeSqFt:           p.SizeSqFt,
		YearBuilt:          p.YearBuilt,
		PurchasePrice:      p.PurchasePrice,
		ClosingCosts:       p.ClosingCosts,
		RenovationCosts:    p.RenovationCosts,
		InitialRenovations: p.InitialRenovations,
		LandTransferTax:    p.LandTransferTax,
		CurrentMarketValue: p.CurrentMarketValue,
		MonthlyRent:        p.MonthlyRent,
		AnnualRent:         p.AnnualRent,
		MonthlyExpenses: MonthlyExpensesResponse{
			Categories:        p.MonthlyExpenses.Categories,
			MortgagePayment:   p.MonthlyExpenses.MortgagePayment,
			MortgageInterest:  p.MonthlyExpenses.MortgageInterest,
			MortgagePrincipal: p.MonthlyExpenses.MortgagePrincipal,
			Total:             p.MonthlyExpenses.Total,
		},
		Metrics: p.Metrics,
	}

	if !p.PurchaseDate.IsZero() {
		resp.PurchaseDate = p.PurchaseDate.Format("2006-01-02")
	}
	if p.Mortgage != nil {
		m := toMortgageResponse(*p.Mortgage)
		resp.Mortgage = &m
	}

	return resp
}

// Properties handles GET requests to retrieve properties, optionally scoped
// to one account via the account_id query parameter.
//
// Endpoint: GET /api/property
// Response: 200 OK with array of PropertyResponse
// Error: 400 Bad Request if account_id is present but not a valid UUID
// Error: 500 Internal Server Error if retrieval fails
func (h *PropertyHandler) Properties(w http.ResponseWriter, r *http.Request) {
	filter := model.PropertyFilter{}

	if accountID := r.URL.Query().Get("account_id"); accountID != "" {
		if err := validation.ValidateUUID(accountID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid account_id", err.Error())
			return
		}
		filter.AccountID = accountID
	}

	properties, err := h.propertyService.GetEnrichedProperties(filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve properties", err.Error())
		return
	}

	resp := make([]PropertyResponse, len(properties))
	for i, p := range properties {
		resp[i] = toPropertyResponse(p)
	}

	response.RespondJSON(w, http.StatusOK, resp)
}

// GetProperty handles GET requests to retrieve a single enriched property.
//
// Endpoint: GET /api/property/{uuid}
// Response: 200 OK with PropertyResponse
// Error: 400 Bad Request if property ID is invalid (validated by middleware)
// Error: 404 Not Found if property not found
// Error: 500 Internal Server Error if retrieval fails
func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "uuid")

	property, err := h.propertyService.GetEnrichedProperty(propertyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPropertyNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve property", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, toPropertyResponse(property))
}

// CreateProperty handles POST requests to create a new property.
//
// Endpoint: POST /api/property
// Request Body: CreatePropertyRequest
// Response: 201 Created with PropertyResponse
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the target account does not exist
// Error: 500 Internal Server Error if creation fails
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreatePropertyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateProperty(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	p := model.Property{
		AccountID:          req.AccountID,
		Name:               req.Name,
		Address:            req.Address,
		City:               req.City,
		Province:           req.Province,
		Type:               req.Type,
		UnitConfiguration:  req.UnitConfiguration,
		SizeSqFt:           req.SizeSqFt,
		YearBuilt:          req.YearBuilt,
		PurchasePrice:      req.PurchasePrice,
		ClosingCosts:       req.ClosingCosts,
		RenovationCosts:    req.RenovationCosts,
		InitialRenovations: req.InitialRenovations,
		LandTransferTax:    req.LandTransferTax,
		CurrentMarketValue: req.CurrentMarketValue,
		MonthlyRent:        req.EffectiveMonthlyRent(),
	}

	if req.PurchaseDate != "" {
		p.PurchaseDate, _ = time.Parse("2006-01-02", req.PurchaseDate)
	}

	property, err := h.propertyService.CreateProperty(r.Context(), p)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAccountNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create property", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, toPropertyResponse(property))
}

// UpdateProperty handles PUT requests to update an existing property.
// Only fields present in the request body are changed.
//
// Endpoint: PUT /api/property/{uuid}
// Request Body: UpdatePropertyRequest (all fields optional)
// Response: 200 OK with updated PropertyResponse
// Error: 400 Bad Request if property ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if property not found
// Error: 500 Internal Server Error if update fails
func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdatePropertyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateProperty(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	p, err := h.propertyService.GetProperty(propertyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPropertyNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve property", err.Error())
		return
	}

	applyPropertyUpdate(&p, req)

	property, err := h.propertyService.UpdateProperty(r.Context(), p)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to update property", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, toPropertyResponse(property))
}

// DeleteProperty handles DELETE requests to remove a property.
// Its mortgage and expenses cascade.
//
// Endpoint: DELETE /api/property/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if property ID is invalid (validated by middleware)
// Error: 404 Not Found if property not found
// Error: 500 Internal Server Error if deletion fails
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "uuid")

	err := h.propertyService.DeleteProperty(r.Context(), propertyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPropertyNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete property", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

//nolint:gocyclo // Straight field-by-field merge; each branch is trivial
func applyPropertyUpdate(p *model.Property, req request.UpdatePropertyRequest) {
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.City != nil {
		p.City = *req.City
	}
	if req.Province != nil {
		p.Province = *req.Province
	}
	if req.Type != nil {
		p.Type = *req.Type
	}
	if req.UnitConfiguration != nil {
		p.UnitConfiguration = *req.UnitConfiguration
	}
	if req.SizeSqFt != nil {
		p.SizeSqFt = *req.SizeSqFt
	}
	if req.YearBuilt != nil {
		p.YearBuilt = *req.YearBuilt
	}
	if req.PurchaseDate != nil {
		p.PurchaseDate, _ = time.Parse("2006-01-02", *req.PurchaseDate)
	}
	if req.PurchasePrice != nil {
		p.PurchasePrice = *req.PurchasePrice
	}
	if req.ClosingCosts != nil {
		p.ClosingCosts = *req.ClosingCosts
	}
	if req.RenovationCosts != nil {
		p.RenovationCosts = *req.RenovationCosts
	}
	if req.InitialRenovations != nil {
		p.InitialRenovations = *req.InitialRenovations
	}
	if req.LandTransferTax != nil {
		p.LandTransferTax = req.LandTransferTax
	}
	if req.CurrentMarketValue != nil {
		p.CurrentMarketValue = *req.CurrentMarketValue
	}
	if req.MonthlyRent != nil {
		p.MonthlyRent = *req.MonthlyRent
	} else if req.AnnualRent != nil {
		p.MonthlyRent = *req.AnnualRent / 12
	}
}
