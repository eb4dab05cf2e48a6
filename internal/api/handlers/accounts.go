package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/api/request"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/api/response"
	apperrors "github.com/tvandenberg/Property-Investment-Manager-Backend/internal/errors"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/model"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/service"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/validation"
)

// AccountHandler handles HTTP requests for account endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the accountService.
type AccountHandler struct {
	accountService  *service.AccountService
	snapshotService *service.SnapshotService
}

// NewAccountHandler creates a new AccountHandler with the provided service dependencies.
func NewAccountHandler(accountService *service.AccountService, snapshotService *service.SnapshotService) *AccountHandler {
	return &AccountHandler{
		accountService:  accountService,
		snapshotService: snapshotService,
	}
}

// Accounts handles GET requests to retrieve all accounts.
// Archived accounts are excluded unless include_archived=true.
//
// Endpoint: GET /api/account
// Response: 200 OK with array of Account
// Error: 500 Internal Server Error if retrieval fails
func (h *AccountHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	filter := model.AccountFilter{
		IncludeArchived: r.URL.Query().Get("include_archived") == "true",
	}

	accounts, err := h.accountService.GetAccounts(r.Context(), filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve accounts", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, accounts)
}

// GetAccount handles GET requests to retrieve a single account by ID.
//
// Endpoint: GET /api/account/{uuid}
// Response: 200 OK with Account
// Error: 400 Bad Request if account ID is invalid (validated by middleware)
// Error: 404 Not Found if account not found
// Error: 500 Internal Server Error if retrieval fails
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "uuid")

	account, err := h.accountService.GetAccount(accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAccountNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve account", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, account)
}

// CreateAccount handles POST requests to create a new account.
//
// Endpoint: POST /api/account
// Request Body: CreateAccountRequest (name, description, currency)
// Response: 201 Created with Account
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateAccountRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateAccount(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	account, err := h.accountService.CreateAccount(r.Context(), model.Account{
		Name:        req.Name,
		Description: req.Description,
		Currency:    req.Currency,
	})
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create account", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, account)
}

// UpdateAccount handles PUT requests to update an existing account.
// Only fields present in the request body are changed.
//
// Endpoint: PUT /api/account/{uuid}
// Request Body: UpdateAccountRequest (all fields optional)
// Response: 200 OK with updated Account
// Error: 400 Bad Request if account ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if account not found
// Error: 500 Internal Server Error if update fails
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateAccountRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateAccount(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	account, err := h.accountService.GetAccount(accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAccountNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve account", err.Error())
		return
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.Currency != nil {
		account.Currency = *req.Currency
	}
	if req.IsArchived != nil {
		account.IsArchived = *req.IsArchived
	}

	updated, err := h.accountService.UpdateAccount(r.Context(), account)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to update account", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, updated)
}

// DeleteAccount handles DELETE requests to remove an account.
// Properties, mortgages, and expenses under the account cascade.
//
// Endpoint: DELETE /api/account/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if account ID is invalid (validated by middleware)
// Error: 404 Not Found if account not found
// Error: 500 Internal Server Error if deletion fails
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "uuid")

	err := h.accountService.DeleteAccount(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAccountNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete account", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// AccountSummary handles GET requests to retrieve the aggregated portfolio
// state of one account.
//
// Endpoint: GET /api/account/{uuid}/summary
// Response: 200 OK with AccountSummary
// Error: 400 Bad Request if account ID is invalid (validated by middleware)
// Error: 404 Not Found if account not found
// Error: 500 Internal Server Error if aggregation fails
func (h *AccountHandler) AccountSummary(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "uuid")

	summary, err := h.accountService.GetAccountSummary(accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAccountNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to get account summary", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// AccountHistoryResponse represents one valuation snapshot in the history response.
type AccountHistoryResponse struct {
	Date           string  `json:"date"`
	PropertyCount  int     `json:"propertyCount"`
	TotalValue     float64 `json:"totalValue"`
	TotalInvested  float64 `json:"totalInvested"`
	AnnualCashFlow float64 `json:"annualCashFlow"`
}

// AccountHistory handles GET requests to retrieve the materialized valuation
// history of one account within a date range.
//
// Endpoint: GET /api/account/{uuid}/history?start_date=...&end_date=...
// Response: 200 OK with array of AccountHistoryResponse
// Error: 400 Bad Request if the dates are missing or malformed
// Error: 404 Not Found if account not found
// Error: 500 Internal Server Error if retrieval fails
func (h *AccountHandler) AccountHistory(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "uuid")

	var startDate, endDate time.Time
	var err error

	if r.URL.Query().Get("start_date") == "" {
		startDate, _ = time.Parse("2006-01-02", "1970-01-01")
	} else {
		startDate, err = parseQueryDate(r.URL.Query().Get("start_date"))
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "failed to parse start_date", err.Error())
			return
		}
	}

	if r.URL.Query().Get("end_date") == "" {
		endDate = time.Now()
	} else {
		endDate, err = parseQueryDate(r.URL.Query().Get("end_date"))
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "failed to parse end_date", err.Error())
			return
		}
	}

	snapshots, err := h.snapshotService.GetHistory(accountID, startDate, endDate)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrAccountNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAccountNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrInvalidDateRange):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDateRange.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to get account history", err.Error())
		}
		return
	}

	history := make([]AccountHistoryResponse, len(snapshots))
	for i, s := range snapshots {
		history[i] = AccountHistoryResponse{
			Date:           s.Date.Format("2006-01-02"),
			PropertyCount:  s.PropertyCount,
			TotalValue:     s.TotalValue,
			TotalInvested:  s.TotalInvested,
			AnnualCashFlow: s.AnnualCashFlow,
		}
	}

	response.RespondJSON(w, http.StatusOK, history)
}

// parseQueryDate accepts YYYY-MM-DD or RFC3339 date query parameters.
func parseQueryDate(str string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", str)
	if err != nil {
		return time.Parse(time.RFC3339, str)
	}
	return t, nil
}
