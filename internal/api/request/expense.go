package request

type CreateExpenseRequest struct {
	UserUID     string  `json:"user_uid"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	DollarRate  float64 `json:"dollarRate"`
	ExpenseType string  `json:"expenseType"`
	Description string  `json:"description"`
	IsRecurring bool    `json:"isRecurring"`
}

type UpdateExpenseRequest struct {
	Date        *string  `json:"date,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	DollarRate  *float64 `json:"dollarRate,omitempty"`
	ExpenseType *string  `json:"expenseType,omitempty"`
	Description *string  `json:"description,omitempty"`
	IsRecurring *bool    `json:"isRecurring,omitempty"`
}
