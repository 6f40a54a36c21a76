package validation

import (
	"strings"

	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/api/request"
)

// ValidateCreateExpense validates an expense creation request.
//
// Required fields:
//   - user_uid: non-empty
//   - date: YYYY-MM-DD or RFC3339
//   - amount: positive
//   - expenseType: non-empty, 100 characters or less
//
// dollarRate may be 0 (no conversion) but not negative.
func ValidateCreateExpense(req request.CreateExpenseRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.UserUID) == "" {
		errors["user_uid"] = "user_uid is required"
	}

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else {
		validateOptionalDate(errors, "date", req.Date)
	}

	if req.Amount <= 0 {
		errors["amount"] = "amount must be positive"
	}

	if req.DollarRate < 0 {
		errors["dollarRate"] = "dollarRate cannot be negative"
	}

	if strings.TrimSpace(req.ExpenseType) == "" {
		errors["expenseType"] = "expenseType is required"
	} else if len(req.ExpenseType) > 100 {
		errors["expenseType"] = "expenseType must be 100 characters or less"
	}

	if len(req.Description) > 500 {
		errors["description"] = "description must be 500 characters or less"
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
		if strings.TrimSpace(*req.Date) == "" {
			errors["date"] = "date cannot be empty"
		} else {
			validateOptionalDate(errors, "date", *req.Date)
		}
	}
	if req.Amount != nil && *req.Amount <= 0 {
		errors["amount"] = "amount must be positive"
	}
	if req.DollarRate != nil && *req.DollarRate < 0 {
		errors["dollarRate"] = "dollarRate cannot be negative"
	}
	if req.ExpenseType != nil {
		if strings.TrimSpace(*req.ExpenseType) == "" {
			errors["expenseType"] = "expenseType cannot be empty"
		} else if len(*req.ExpenseType) > 100 {
			errors["expenseType"] = "expenseType must be 100 characters or less"
		}
	}
	if req.Description != nil && len(*req.Description) > 500 {
		errors["description"] = "description must be 500 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
