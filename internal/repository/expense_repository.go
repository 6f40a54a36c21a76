package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/apperrors"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/model"
)

const expenseColumns = `id, user_uid, date, amount, amount_in_dollars, dollar_rate, expense_type, description, is_recurring, recurring_source_id, created_at`

// ExpenseRepository provides data access methods for the expense table.
type ExpenseRepository struct {
	db *sql.DB
}

// NewExpenseRepository creates a new ExpenseRepository with the provided database connection.
func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func scanExpense(row rowScanner) (model.Expense, error) {
	var e model.Expense
	var dateStr string
	var description, sourceID, createdAtStr sql.NullString

	err := row.Scan(
		&e.ID,
		&e.UserUID,
		&dateStr,
		&e.Amount,
		&e.AmountInDollars,
		&e.DollarRate,
		&e.ExpenseType,
		&description,
		&e.IsRecurring,
		&sourceID,
		&createdAtStr,
	)
	if err != nil {
		return model.Expense{}, err
	}

	e.Date, err = ParseTime(dateStr)
	if err != nil {
		return model.Expense{}, err
	}
	e.Description = description.String
	e.RecurringSourceID = sourceID.String

	if createdAtStr.Valid {
		e.CreatedAt, _ = ParseTime(createdAtStr.String)
	}

	return e, nil
}

func (r *ExpenseRepository) queryExpenses(query string, args ...any) ([]model.Expense, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense table: %w", err)
	}
	defer rows.Close()

	expenses := []model.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense table results: %w", err)
		}
		expenses = append(expenses, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense table: %w", err)
	}

	return expenses, nil
}

// GetExpenses retrieves expenses matching the filter, oldest first.
// Zero start or end dates leave that side of the range open.
func (r *ExpenseRepository) GetExpenses(filter model.ExpenseFilter) ([]model.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expense WHERE 1=1`
	var args []any

	if filter.UserUID != "" {
		query += " AND user_uid = ?"
		args = append(args, filter.UserUID)
	}
	if !filter.StartDate.IsZero() {
		query += " AND date >= ?"
		args = append(args, filter.StartDate.Format("2006-01-02"))
	}
	if !filter.EndDate.IsZero() {
		query += " AND date <= ?"
		args = append(args, filter.EndDate.Format("2006-01-02"))
	}

	query += " ORDER BY date ASC, rowid ASC"

	return r.queryExpenses(query, args...)
}

// GetRecurringExpenses retrieves recurring expenses dated within [startDate, endDate].
func (r *ExpenseRepository) GetRecurringExpenses(startDate, endDate time.Time) ([]model.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expense
		WHERE is_recurring = 1 AND date >= ? AND date <= ?
		ORDER BY date ASC, rowid ASC`

	return r.queryExpenses(query, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
}

// HasRecurringClone reports whether sourceID was already cloned into [startDate, endDate].
func (r *ExpenseRepository) HasRecurringClone(ctx context.Context, sourceID string, startDate, endDate time.Time) (bool, error) {
	query := `SELECT COUNT(*) FROM expense WHERE recurring_source_id = ? AND date >= ? AND date <= ?`

	var count int
	err := r.db.QueryRowContext(ctx, query, sourceID, startDate.Format("2006-01-02"), endDate.Format("2006-01-02")).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to count recurring clones: %w", err)
	}

	return count > 0, nil
}

// GetExpense retrieves a single expense by ID.
// Returns apperrors.ErrExpenseNotFound if it does not exist.
func (r *ExpenseRepository) GetExpense(expenseID string) (model.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expense WHERE id = ?`

	e, err := scanExpense(r.db.QueryRow(query, expenseID))
	if err == sql.ErrNoRows {
		return model.Expense{}, apperrors.ErrExpenseNotFound
	}
	if err != nil {
		return model.Expense{}, fmt.Errorf("failed to query expense: %w", err)
	}

	return e, nil
}

// InsertExpense stores a new expense.
func (r *ExpenseRepository) InsertExpense(ctx context.Context, e *model.Expense) error {
	query := `
		INSERT INTO expense (id, user_uid, date, amount, amount_in_dollars, dollar_rate, expense_type, description, is_recurring, recurring_source_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.UserUID,
		e.Date.Format("2006-01-02"),
		e.Amount,
		e.AmountInDollars,
		e.DollarRate,
		e.ExpenseType,
		nullString(e.Description),
		e.IsRecurring,
		nullString(e.RecurringSourceID),
		e.CreatedAt.UTC().Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	return nil
}

// UpdateExpense overwrites the mutable columns of an existing expense.
// Returns apperrors.ErrExpenseNotFound if no row was updated.
func (r *ExpenseRepository) UpdateExpense(ctx context.Context, e *model.Expense) error {
	query := `
		UPDATE expense
		SET date = ?, amount = ?, amount_in_dollars = ?, dollar_rate = ?, expense_type = ?, description = ?, is_recurring = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		e.Date.Format("2006-01-02"),
		e.Amount,
		e.AmountInDollars,
		e.DollarRate,
		e.ExpenseType,
		nullString(e.Description),
		e.IsRecurring,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}

	return requireAffected(result, apperrors.ErrExpenseNotFound)
}

// DeleteExpense removes an expense.
// Returns apperrors.ErrExpenseNotFound if it does not exist.
func (r *ExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expense WHERE id = ?`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	return requireAffected(result, apperrors.ErrExpenseNotFound)
}
