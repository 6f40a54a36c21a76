package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/api/request"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/model"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/repository"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/validation"
)

// ExpenseService handles expense-related business logic.
type ExpenseService struct {
	expenseRepo *repository.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService with the provided repository dependencies.
func NewExpenseService(expenseRepo *repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
	}
}

// GetExpenses retrieves expenses for a user, optionally limited to a date range.
func (s *ExpenseService) GetExpenses(filter model.ExpenseFilter) ([]model.Expense, error) {
	return s.expenseRepo.GetExpenses(filter)
}

// GetExpense retrieves a single expense by ID.
func (s *ExpenseService) GetExpense(expenseID string) (model.Expense, error) {
	return s.expenseRepo.GetExpense(expenseID)
}

// CreateExpense stores a new expense, converting the amount to dollars.
func (s *ExpenseService) CreateExpense(ctx context.Context, req request.CreateExpenseRequest) (*model.Expense, error) {
	date, err := validation.ParseTime(req.Date)
	if err != nil {
		return nil, err
	}

	expense := &model.Expense{
		ID:              uuid.New().String(),
		UserUID:         req.UserUID,
		Date:            date,
		Amount:          req.Amount,
		AmountInDollars: amountInDollars(req.Amount, req.DollarRate),
		DollarRate:      req.DollarRate,
		ExpenseType:     req.ExpenseType,
		Description:     req.Description,
		IsRecurring:     req.IsRecurring,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.expenseRepo.InsertExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return expense, nil
}

// UpdateExpense applies the non-nil request fields to an existing expense.
func (s *ExpenseService) UpdateExpense(ctx context.Context, expenseID string, req request.UpdateExpenseRequest) (*model.Expense, error) {
	expense, err := s.expenseRepo.GetExpense(expenseID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := validation.ParseTime(*req.Date)
		if err != nil {
			return nil, err
		}
		expense.Date = date
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.DollarRate != nil {
		expense.DollarRate = *req.DollarRate
	}
	if req.ExpenseType != nil {
		expense.ExpenseType = *req.ExpenseType
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.IsRecurring != nil {
		expense.IsRecurring = *req.IsRecurring
	}
	expense.AmountInDollars = amountInDollars(expense.Amount, expense.DollarRate)

	if err := s.expenseRepo.UpdateExpense(ctx, &expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &expense, nil
}

// DeleteExpense removes an expense by ID.
func (s *ExpenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	return s.expenseRepo.DeleteExpense(ctx, expenseID)
}

// amountInDollars converts amount at rate, rounded to cents. A zero rate yields 0.
func amountInDollars(amount, rate float64) float64 {
	if rate == 0 {
		return 0
	}
	return round(amount / rate)
}
