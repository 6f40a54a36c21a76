package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/model"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/service"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/testutil"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// TestRecurringExpenseService_ProcessRecurring tests the monthly clone job.
//
// WHY: recurring costs (rent, subscriptions) must appear once per month without
// manual entry, and re-running the job must never duplicate them.
func TestRecurringExpenseService_ProcessRecurring(t *testing.T) {
	t.Run("clones last month's recurring expenses", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestRecurringExpenseService(t, db)
		expenses := testutil.NewTestExpenseService(t, db)

		src := testutil.NewExpense("agent-1").WithDate(date(2024, 3, 10)).Recurring().Build(t, db)
		testutil.NewExpense("agent-1").WithDate(date(2024, 3, 12)).Build(t, db)

		created, err := svc.ProcessRecurring(context.Background(), date(2024, 4, 1))
		if err != nil {
			t.Fatalf("ProcessRecurring() returned unexpected error: %v", err)
		}
		if created != 1 {
			t.Fatalf("Expected 1 clone, got %d", created)
		}

		april, err := expenses.GetExpenses(model.ExpenseFilter{
			UserUID:   "agent-1",
			StartDate: date(2024, 4, 1),
			EndDate:   date(2024, 4, 30),
		})
		if err != nil {
			t.Fatalf("GetExpenses() returned unexpected error: %v", err)
		}
		if len(april) != 1 {
			t.Fatalf("Expected 1 April expense, got %d", len(april))
		}

		clone := april[0]
		if !clone.Date.Equal(date(2024, 4, 10)) {
			t.Errorf("Expected clone on 2024-04-10, got %v", clone.Date)
		}
		if clone.RecurringSourceID != src.ID {
			t.Errorf("Expected source %s, got %s", src.ID, clone.RecurringSourceID)
		}
		if !clone.IsRecurring || clone.Amount != src.Amount {
			t.Errorf("Expected recurring clone with same amount, got %+v", clone)
		}
	})

	t.Run("second run for the same month is a no-op", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestRecurringExpenseService(t, db)

		testutil.NewExpense("agent-1").WithDate(date(2024, 3, 10)).Recurring().Build(t, db)

		if _, err := svc.ProcessRecurring(context.Background(), date(2024, 4, 1)); err != nil {
			t.Fatalf("first run failed: %v", err)
		}
		created, err := svc.ProcessRecurring(context.Background(), date(2024, 4, 20))
		if err != nil {
			t.Fatalf("second run failed: %v", err)
		}

		if created != 0 {
			t.Errorf("Expected 0 clones on second run, got %d", created)
		}
		testutil.AssertRowCount(t, db, "expense", 2)
	})

	t.Run("clamps day to end of shorter month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestRecurringExpenseService(t, db)
		expenses := testutil.NewTestExpenseService(t, db)

		testutil.NewExpense("agent-1").WithDate(date(2024, 1, 31)).Recurring().Build(t, db)

		if _, err := svc.ProcessRecurring(context.Background(), date(2024, 2, 1)); err != nil {
			t.Fatalf("ProcessRecurring() returned unexpected error: %v", err)
		}

		feb, err := expenses.GetExpenses(model.ExpenseFilter{StartDate: date(2024, 2, 1), EndDate: date(2024, 2, 29)})
		if err != nil {
			t.Fatalf("GetExpenses() returned unexpected error: %v", err)
		}
		if len(feb) != 1 || !feb[0].Date.Equal(date(2024, 2, 29)) {
			t.Errorf("Expected one clone on 2024-02-29, got %+v", feb)
		}
	})

	t.Run("chain continues from the clone", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestRecurringExpenseService(t, db)

		testutil.NewExpense("agent-1").WithDate(date(2023, 12, 5)).Recurring().Build(t, db)

		for _, asOf := range []time.Time{date(2024, 1, 1), date(2024, 2, 1), date(2024, 3, 1)} {
			created, err := svc.ProcessRecurring(context.Background(), asOf)
			if err != nil {
				t.Fatalf("ProcessRecurring(%v) returned unexpected error: %v", asOf, err)
			}
			if created != 1 {
				t.Errorf("Expected 1 clone for %s, got %d", asOf.Format("2006-01"), created)
			}
		}

		testutil.AssertRowCount(t, db, "expense", 4)
	})
}

func TestNewRecurringScheduler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestRecurringExpenseService(t, db)

	t.Run("accepts a monthly schedule", func(t *testing.T) {
		scheduler, err := service.NewRecurringScheduler(svc, "5 0 1 * *")
		if err != nil {
			t.Fatalf("Expected valid schedule, got %v", err)
		}
		scheduler.Start()
		<-scheduler.Stop().Done()
	})

	t.Run("rejects an invalid schedule", func(t *testing.T) {
		if _, err := service.NewRecurringScheduler(svc, "every month"); err == nil {
			t.Error("Expected error for invalid schedule")
		}
	})
}
