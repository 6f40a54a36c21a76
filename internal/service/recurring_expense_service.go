package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/model"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/repository"
	"github.com/robfig/cron/v3"
)

// RecurringExpenseService copies recurring expenses forward one month at a time.
type RecurringExpenseService struct {
	expenseRepo *repository.ExpenseRepository
}

// NewRecurringExpenseService creates a new RecurringExpenseService with the provided repository dependencies.
func NewRecurringExpenseService(expenseRepo *repository.ExpenseRepository) *RecurringExpenseService {
	return &RecurringExpenseService{
		expenseRepo: expenseRepo,
	}
}

// ProcessRecurring clones every recurring expense dated in the month before asOf
// into asOf's month and returns how many clones were created.
//
// The clone keeps the source's day of month, clamped to the last day of the
// target month (a 31 January expense lands on 28 or 29 February). Clones stay
// recurring, so the chain continues the following month. A source that was
// already cloned into the target month is skipped, which makes repeated runs
// for the same month harmless.
func (s *RecurringExpenseService) ProcessRecurring(ctx context.Context, asOf time.Time) (int, error) {
	targetStart := firstOfMonth(asOf)
	targetEnd := lastOfMonth(asOf)
	sourceStart := targetStart.AddDate(0, -1, 0)

	sources, err := s.expenseRepo.GetRecurringExpenses(sourceStart, lastOfMonth(sourceStart))
	if err != nil {
		return 0, fmt.Errorf("failed to load recurring expenses: %w", err)
	}

	created := 0
	for _, src := range sources {
		exists, err := s.expenseRepo.HasRecurringClone(ctx, src.ID, targetStart, targetEnd)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}

		day := min(src.Date.Day(), targetEnd.Day())
		clone := &model.Expense{
			ID:                uuid.New().String(),
			UserUID:           src.UserUID,
			Date:              time.Date(targetStart.Year(), targetStart.Month(), day, 0, 0, 0, 0, time.UTC),
			Amount:            src.Amount,
			AmountInDollars:   src.AmountInDollars,
			DollarRate:        src.DollarRate,
			ExpenseType:       src.ExpenseType,
			Description:       src.Description,
			IsRecurring:       true,
			RecurringSourceID: src.ID,
			CreatedAt:         time.Now().UTC(),
		}

		if err := s.expenseRepo.InsertExpense(ctx, clone); err != nil {
			return created, fmt.Errorf("failed to clone recurring expense %s: %w", src.ID, err)
		}
		created++
	}

	return created, nil
}

// RecurringScheduler runs ProcessRecurring on a cron schedule.
type RecurringScheduler struct {
	cron    *cron.Cron
	service *RecurringExpenseService
}

// NewRecurringScheduler registers the recurring expense job under the given
// five-field cron expression (for example "5 0 1 * *", shortly after midnight on the
// first of every month). Schedules are evaluated in UTC.
func NewRecurringScheduler(svc *RecurringExpenseService, schedule string) (*RecurringScheduler, error) {
	c := cron.New(cron.WithLocation(time.UTC))
	s := &RecurringScheduler{cron: c, service: svc}

	if _, err := c.AddFunc(schedule, s.run); err != nil {
		return nil, fmt.Errorf("invalid recurring expense schedule %q: %w", schedule, err)
	}

	return s, nil
}

func (s *RecurringScheduler) run() {
	now := time.Now().UTC()
	created, err := s.service.ProcessRecurring(context.Background(), now)
	if err != nil {
		log.Printf("Recurring expense run failed: %v", err)
		return
	}
	log.Printf("Recurring expense run for %s created %d expenses", now.Format("2006-01"), created)
}

// Start begins running the schedule in its own goroutine.
func (s *RecurringScheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule and returns a context that is done once a running job finishes.
func (s *RecurringScheduler) Stop() context.Context {
	return s.cron.Stop()
}
