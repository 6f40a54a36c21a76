package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/model"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/testutil"
)

func newExpenseHandler(t *testing.T) (*ExpenseHandler, *sql.DB, string) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	user := testutil.NewUser().Build(t, db)
	handler := NewExpenseHandler(
		testutil.NewTestExpenseService(t, db),
		testutil.NewTestRecurringExpenseService(t, db),
	)
	return handler, db, user.ID
}

func TestExpenseHandler_Expenses(t *testing.T) {
	t.Run("requires user_uid", func(t *testing.T) {
		handler, _, _ := newExpenseHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/expense", nil)
		w := httptest.NewRecorder()

		handler.Expenses(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("filters by date range", func(t *testing.T) {
		handler, db, userID := newExpenseHandler(t)
		testutil.NewExpense(userID).WithDate(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)).Build(t, db)
		testutil.NewExpense(userID).WithDate(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)).Build(t, db)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/expense", map[string]string{
			"user_uid":   userID,
			"start_date": "2024-03-01",
			"end_date":   "2024-03-31",
		})
		w := httptest.NewRecorder()

		handler.Expenses(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var expenses []model.Expense
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&expenses)
		if len(expenses) != 1 {
			t.Errorf("Expected 1 expense, got %d", len(expenses))
		}
	})

	t.Run("rejects malformed start_date", func(t *testing.T) {
		handler, _, userID := newExpenseHandler(t)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/expense", map[string]string{
			"user_uid":   userID,
			"start_date": "03/01/2024",
		})
		w := httptest.NewRecorder()

		handler.Expenses(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}

func TestExpenseHandler_CreateExpense(t *testing.T) {
	t.Run("converts to dollars and returns 201", func(t *testing.T) {
		handler, _, userID := newExpenseHandler(t)

		body := `{"user_uid": "` + userID + `", "date": "2024-03-15", "amount": 150000, "dollarRate": 1000, "expenseType": "Publicidad", "description": "Portal listing"}`
		req := httptest.NewRequest(http.MethodPost, "/api/expense", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.CreateExpense(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var expense model.Expense
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&expense)
		if expense.AmountInDollars != 150 {
			t.Errorf("Expected 150 dollars, got %v", expense.AmountInDollars)
		}
	})

	t.Run("returns 400 for non-positive amount", func(t *testing.T) {
		handler, _, userID := newExpenseHandler(t)

		body := `{"user_uid": "` + userID + `", "date": "2024-03-15", "amount": 0, "expenseType": "Publicidad"}`
		req := httptest.NewRequest(http.MethodPost, "/api/expense", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.CreateExpense(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestExpenseHandler_GetExpense(t *testing.T) {
	handler, _, _ := newExpenseHandler(t)

	id := testutil.MakeID()
	req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/expense/"+id, map[string]string{"uuid": id})
	w := httptest.NewRecorder()

	handler.GetExpense(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestExpenseHandler_ProcessRecurring(t *testing.T) {
	handler, db, userID := newExpenseHandler(t)
	testutil.NewExpense(userID).WithDate(time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)).Recurring().Build(t, db)

	req := testutil.NewRequestWithQueryParams(http.MethodPost, "/api/expense/recurring/process", map[string]string{"as_of": "2024-03-01"})
	w := httptest.NewRecorder()

	handler.ProcessRecurring(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp ProcessRecurringResponse
	//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Month != "2024-03" || resp.Created != 1 {
		t.Errorf("Expected 1 clone for 2024-03, got %+v", resp)
	}
	testutil.AssertRowCount(t, db, "expense", 2)
}
