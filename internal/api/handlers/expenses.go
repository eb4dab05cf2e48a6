package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/api/request"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/api/response"
	apperrors "github.com/tvandenberg/Property-Investment-Manager-Backend/internal/errors"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/model"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/service"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/validation"
)

// ExpenseHandler handles HTTP requests for expense endpoints.
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler with the provided service dependency.
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
	}
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID          string  `json:"id"`
	PropertyID  string  `json:"propertyId"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

func toExpenseResponse(e model.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		PropertyID:  e.PropertyID,
		Date:        e.Date.Format("2006-01-02"),
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
	}
}

// ExpensesPerProperty handles GET requests to retrieve the expenses of a
// property, optionally filtered by category and year.
//
// Endpoint: GET /api/expense/property/{uuid}?category=...&year=...
// Response: 200 OK with array of ExpenseResponse
// Error: 400 Bad Request if property ID is invalid (validated by middleware) or year is malformed
// Error: 500 Internal Server Error if retrieval fails
func (h *ExpenseHandler) ExpensesPerProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "uuid")

	filter := model.ExpenseFilter{
		PropertyID: propertyID,
		Category:   r.URL.Query().Get("category"),
	}

	if yearParam := r.URL.Query().Get("year"); yearParam != "" {
		year, err := strconv.Atoi(yearParam)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid year", err.Error())
			return
		}
		filter.Year = year
	}

	expenses, err := h.expenseService.GetExpenses(filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve expenses", err.Error())
		return
	}

	resp := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		resp[i] = toExpenseResponse(e)
	}

	response.RespondJSON(w, http.StatusOK, resp)
}

// GetExpense handles GET requests to retrieve a single expense by ID.
//
// Endpoint: GET /api/expense/{uuid}
// Response: 200 OK with ExpenseResponse
// Error: 400 Bad Request if expense ID is invalid (validated by middleware)
// Error: 404 Not Found if expense not found
// Error: 500 Internal Server Error if retrieval fails
func (h *ExpenseHandler) GetExpense(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "uuid")

	expense, err := h.expenseService.GetExpense(expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrExpenseNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrExpenseNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve expense", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, toExpenseResponse(expense))
}

// CreateExpense handles POST requests to record a new expense.
//
// Endpoint: POST /api/expense
// Request Body: CreateExpenseRequest (propertyId, date, amount, category, description)
// Response: 201 Created with ExpenseResponse
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the target property does not exist
// Error: 500 Internal Server Error if creation fails
func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateExpenseRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateExpense(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	expense, err := h.expenseService.CreateExpense(r.Context(), model.Expense{
		PropertyID:  req.PropertyID,
		Date:        date,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPropertyNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create expense", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, toExpenseResponse(expense))
}

// UpdateExpense handles PUT requests to update an existing expense.
// Only fields present in the request body are changed.
//
// Endpoint: PUT /api/expense/{uuid}
// Request Body: UpdateExpenseRequest (all fields optional)
// Response: 200 OK with updated ExpenseResponse
// Error: 400 Bad Request if expense ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if expense not found
// Error: 500 Internal Server Error if update fails
func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateExpenseRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateExpense(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	e, err := h.expenseService.GetExpense(expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrExpenseNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrExpenseNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve expense", err.Error())
		return
	}

	if req.Date != nil {
		e.Date, _ = time.Parse("2006-01-02", *req.Date)
	}
	if req.Amount != nil {
		e.Amount = *req.Amount
	}
	if req.Category != nil {
		e.Category = *req.Category
	}
	if req.Description != nil {
		e.Description = *req.Description
	}

	expense, err := h.expenseService.UpdateExpense(r.Context(), e)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to update expense", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, toExpenseResponse(expense))
}

// DeleteExpense handles DELETE requests to remove an expense.
//
// Endpoint: DELETE /api/expense/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if expense ID is invalid (validated by middleware)
// Error: 404 Not Found if expense not found
// Error: 500 Internal Server Error if deletion fails
func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "uuid")

	err := h.expenseService.DeleteExpense(r.Context(), expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrExpenseNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrExpenseNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete expense", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
