package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/api/request"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/api/response"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/apperrors"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/model"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/service"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/validation"
)

// ExpenseHandler handles HTTP requests for expense endpoints.
type ExpenseHandler struct {
	expenseService   *service.ExpenseService
	recurringService *service.RecurringExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler with the provided service dependencies.
func NewExpenseHandler(expenseService *service.ExpenseService, recurringService *service.RecurringExpenseService) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService:   expenseService,
		recurringService: recurringService,
	}
}

// Expenses handles GET requests to list a user's expenses, optionally within a date range.
//
// Endpoint: GET /api/expense?user_uid={id}&start_date=YYYY-MM-DD&end_date=YYYY-MM-DD
// Response: 200 OK with array of model.Expense
// Error: 400 Bad Request if user_uid is missing or a date is invalid
// Error: 500 Internal Server Error if retrieval fails
func (h *ExpenseHandler) Expenses(w http.ResponseWriter, r *http.Request) {
	userUID := r.URL.Query().Get("user_uid")
	if userUID == "" {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidUserUID.Error(), "")
		return
	}

	startDate, err := parseOptionalDate(r, "start_date")
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDate.Error(), err.Error())
		return
	}
	endDate, err := parseOptionalDate(r, "end_date")
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDate.Error(), err.Error())
		return
	}

	expenses, err := h.expenseService.GetExpenses(model.ExpenseFilter{
		UserUID:   userUID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveExpenses.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, expenses)
}

// GetExpense handles GET requests to retrieve a single expense by ID.
//
// Endpoint: GET /api/expense/{uuid}
// Response: 200 OK with model.Expense
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
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveExpense.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, expense)
}

// CreateExpense handles POST requests to create a new expense.
//
// Endpoint: POST /api/expense
// Request Body: CreateExpenseRequest
// Response: 201 Created with model.Expense
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateExpenseRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateExpense(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", validationDetails(err))
		return
	}

	expense, err := h.expenseService.CreateExpense(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create expense", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, expense)
}

// UpdateExpense handles PUT requests to update an existing expense.
//
// Endpoint: PUT /api/expense/{uuid}
// Request Body: UpdateExpenseRequest (all fields optional)
// Response: 200 OK with updated model.Expense
// Error: 400 Bad Request if validation fails
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
		response.RespondError(w, http.StatusBadRequest, "validation failed", validationDetails(err))
		return
	}

	expense, err := h.expenseService.UpdateExpense(r.Context(), expenseID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrExpenseNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrExpenseNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update expense", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, expense)
}

// DeleteExpense handles DELETE requests to remove an expense.
//
// Endpoint: DELETE /api/expense/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if expense not found
// Error: 500 Internal Server Error if deletion fails
func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "uuid")

	if err := h.expenseService.DeleteExpense(r.Context(), expenseID); err != nil {
		if errors.Is(err, apperrors.ErrExpenseNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrExpenseNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete expense", err.Error())
		return
	}

	response.RespondNoContent(w)
}

// ProcessRecurringResponse reports the outcome of a manual recurring expense run.
type ProcessRecurringResponse struct {
	Month   string `json:"month"`
	Created int    `json:"created"`
}

// ProcessRecurring handles POST requests that clone last month's recurring expenses
// into the month of as_of (default: now). The monthly scheduler runs the same job.
//
// Endpoint: POST /api/expense/recurring/process?as_of=YYYY-MM-DD
// Response: 200 OK with ProcessRecurringResponse
// Error: 400 Bad Request if as_of is invalid
// Error: 500 Internal Server Error if the run fails
func (h *ExpenseHandler) ProcessRecurring(w http.ResponseWriter, r *http.Request) {
	asOf, err := parseAsOf(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDate.Error(), err.Error())
		return
	}

	created, err := h.recurringService.ProcessRecurring(r.Context(), asOf)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToProcessRecurrings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, ProcessRecurringResponse{
		Month:   asOf.Format("2006-01"),
		Created: created,
	})
}
