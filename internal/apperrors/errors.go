package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrOperationNotFound indicates that an operation with the given ID does not exist.
	ErrOperationNotFound = errors.New("operation not found")

	// ErrExpenseNotFound indicates that an expense with the given ID does not exist.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrUserNotFound indicates that a user with the given ID does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrStatusNotTogglable indicates that only "En Curso" and "Cerrada" operations
	// can switch status; fallen operations stay as they are.
	ErrStatusNotTogglable = errors.New("operation status cannot be toggled")

	// Validation errors for required parameters
	ErrInvalidUserUID = errors.New("user_uid parameter is required")
	ErrInvalidYear    = errors.New("year parameter must be a valid year")
	ErrInvalidDate    = errors.New("date parameter must be YYYY-MM-DD or RFC3339")
	ErrInvalidAmount  = errors.New("amount parameter must be a number")
	ErrInvalidPage    = errors.New("page parameter must be a positive integer")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
// These errors indicate that an operation failed, but not due to missing entities or validation issues.
var (
	ErrFailedToRetrieveOperations = errors.New("failed to retrieve operations")
	ErrFailedToRetrieveOperation  = errors.New("failed to retrieve operation")
	ErrFailedToRetrieveExpenses   = errors.New("failed to retrieve expenses")
	ErrFailedToRetrieveExpense    = errors.New("failed to retrieve expense")
	ErrFailedToRetrieveTeam       = errors.New("failed to retrieve team")

	ErrFailedToCalculateTotals   = errors.New("failed to calculate totals")
	ErrFailedToCalculateMonthly  = errors.New("failed to calculate monthly fees")
	ErrFailedToCalculateProfit   = errors.New("failed to calculate operation profit")
	ErrFailedToCalculateCartera  = errors.New("failed to calculate active portfolio")
	ErrFailedToGetVersionInfo    = errors.New("failed to get version information")
	ErrFailedToProcessRecurrings = errors.New("failed to process recurring expenses")
)
