package model

import "time"

// Expense represents a cost recorded by an advisor.
// AmountInDollars is derived from Amount and DollarRate when the expense is saved.
type Expense struct {
	ID              string    `json:"id"`
	UserUID         string    `json:"user_uid"`
	Date            time.Time `json:"date"`
	Amount          float64   `json:"amount"`
	AmountInDollars float64   `json:"amountInDollars"`
	DollarRate      float64   `json:"dollarRate"`
	ExpenseType     string    `json:"expenseType"`
	Description     string    `json:"description"`
	IsRecurring     bool      `json:"isRecurring"`
	// RecurringSourceID links a monthly clone to the expense it was copied from.
	RecurringSourceID string    `json:"recurringSourceId,omitempty"`
	CreatedAt         time.Time `json:"createdAt,omitempty"`
}

// ExpenseFilter for querying expenses. Zero dates leave the range open.
type ExpenseFilter struct {
	UserUID   string
	StartDate time.Time
	EndDate   time.Time
}
