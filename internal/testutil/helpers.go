package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/repository"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/service"
)

func NewTestOperationService(t *testing.T, db *sql.DB) *service.OperationService {
	t.Helper()

	return service.NewOperationService(
		repository.NewOperationRepository(db),
	)
}

func NewTestExpenseService(t *testing.T, db *sql.DB) *service.ExpenseService {
	t.Helper()

	return service.NewExpenseService(
		repository.NewExpenseRepository(db),
	)
}

func NewTestRecurringExpenseService(t *testing.T, db *sql.DB) *service.RecurringExpenseService {
	t.Helper()

	return service.NewRecurringExpenseService(
		repository.NewExpenseRepository(db),
	)
}

func NewTestReportService(t *testing.T, db *sql.DB) *service.ReportService {
	t.Helper()

	return service.NewReportService(
		repository.NewOperationRepository(db),
	)
}

func NewTestTeamService(t *testing.T, db *sql.DB) *service.TeamService {
	t.Helper()

	return service.NewTeamService(
		repository.NewUserRepository(db),
		repository.NewOperationRepository(db),
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db, map[string]bool{"recurring_expenses": true})
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeEmail generates a unique email address for testing.
//
// Example usage:
//
//	email := testutil.MakeEmail("agent")
//	// Returns: "agent.ab12cd@example.com"
func MakeEmail(base string) string {
	if base == "" {
		base = "user"
	}
	return base + "." + randomAlphanumeric(6) + "@example.com"
}

// MakeAddress generates a unique street address for testing.
func MakeAddress(base string) string {
	if base == "" {
		base = "Calle"
	}
	return base + " " + randomAlphanumeric(4)
}

// randomAlphanumeric generates a random lowercase alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
