package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/apperrors"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/testutil"
)

// TestTeamService_GetTeamReport tests the team ranking.
//
// WHY: leaders compare agents by their share of the team's broker fees; the
// leader's own sales count, shared operations are half credited, and agents
// outside the team never appear.
func TestTeamService_GetTeamReport(t *testing.T) {
	t.Run("ranks leader and members by share of broker fees", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTeamService(t, db)

		leader := testutil.NewUser().WithName("Laura", "Leader").Build(t, db)
		ana := testutil.NewUser().WithName("Ana", "Alvarez").WithTeamLeader(leader.ID).Build(t, db)
		bruno := testutil.NewUser().WithName("Bruno", "Benitez").WithTeamLeader(leader.ID).Build(t, db)
		outsider := testutil.NewUser().WithName("Otto", "Outsider").Build(t, db)

		testutil.NewOperation(leader.ID).WithHonorarios(3000, 1200).Build(t, db)
		testutil.NewOperation(ana.ID).WithHonorarios(7000, 2800).Build(t, db)
		testutil.NewOperation(outsider.ID).WithHonorarios(50000, 1).Build(t, db)

		report, err := svc.GetTeamReport(context.Background(), leader.ID, "", 1)
		if err != nil {
			t.Fatalf("GetTeamReport() returned unexpected error: %v", err)
		}

		if !almostEqual(report.HonorariosBrokerTotales, 10000) {
			t.Errorf("Expected straight total 10000, got %v", report.HonorariosBrokerTotales)
		}
		if !almostEqual(report.HonorariosBrokerAdjusted, 10000) {
			t.Errorf("Expected adjusted total 10000, got %v", report.HonorariosBrokerAdjusted)
		}

		items := report.Agents.Items
		if len(items) != 3 {
			t.Fatalf("Expected 3 agents, got %d", len(items))
		}
		wantOrder := []string{ana.ID, leader.ID, bruno.ID}
		wantPct := []float64{0.7, 0.3, 0}
		for i := range wantOrder {
			if items[i].ID != wantOrder[i] {
				t.Errorf("Expected agent %d to be %s, got %s", i, wantOrder[i], items[i].ID)
			}
			if !almostEqual(items[i].Percentage, wantPct[i]) {
				t.Errorf("Expected agent %d percentage %v, got %v", i, wantPct[i], items[i].Percentage)
			}
		}
	})

	t.Run("shared operation counts for both agents", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTeamService(t, db)

		leader := testutil.NewUser().Build(t, db)
		ana := testutil.NewUser().WithTeamLeader(leader.ID).Build(t, db)
		bruno := testutil.NewUser().WithTeamLeader(leader.ID).Build(t, db)

		testutil.NewOperation(ana.ID).WithAdicional(bruno.ID).WithHonorarios(4000, 1600).Build(t, db)

		report, err := svc.GetTeamReport(context.Background(), leader.ID, "", 1)
		if err != nil {
			t.Fatalf("GetTeamReport() returned unexpected error: %v", err)
		}

		if !almostEqual(report.HonorariosBrokerTotales, 8000) {
			t.Errorf("Expected straight total 8000, got %v", report.HonorariosBrokerTotales)
		}
		if !almostEqual(report.HonorariosBrokerAdjusted, 4000) {
			t.Errorf("Expected adjusted total 4000, got %v", report.HonorariosBrokerAdjusted)
		}
		for _, item := range report.Agents.Items {
			if item.ID == leader.ID {
				continue
			}
			if item.CantidadOperaciones != 1 || !almostEqual(item.Percentage, 0.25) {
				t.Errorf("Expected 1 operation at 0.25 for %s, got %d at %v", item.ID, item.CantidadOperaciones, item.Percentage)
			}
		}
	})

	t.Run("search keeps team-wide percentages", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTeamService(t, db)

		leader := testutil.NewUser().WithName("Laura", "Leader").Build(t, db)
		ana := testutil.NewUser().WithName("Ana", "Alvarez").WithTeamLeader(leader.ID).Build(t, db)

		testutil.NewOperation(leader.ID).WithHonorarios(1000, 400).Build(t, db)
		testutil.NewOperation(ana.ID).WithHonorarios(3000, 1200).Build(t, db)

		report, err := svc.GetTeamReport(context.Background(), leader.ID, "ALV", 1)
		if err != nil {
			t.Fatalf("GetTeamReport() returned unexpected error: %v", err)
		}

		if len(report.Agents.Items) != 1 || report.Agents.Items[0].ID != ana.ID {
			t.Fatalf("Expected only Ana, got %+v", report.Agents.Items)
		}
		if !almostEqual(report.Agents.Items[0].Percentage, 0.75) {
			t.Errorf("Expected 0.75, got %v", report.Agents.Items[0].Percentage)
		}
	})

	t.Run("paginates ten agents per page", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTeamService(t, db)

		leader := testutil.NewUser().Build(t, db)
		for i := 0; i < 11; i++ {
			testutil.NewUser().WithEmail(fmt.Sprintf("agent%02d@example.com", i)).WithTeamLeader(leader.ID).Build(t, db)
		}

		report, err := svc.GetTeamReport(context.Background(), leader.ID, "", 2)
		if err != nil {
			t.Fatalf("GetTeamReport() returned unexpected error: %v", err)
		}

		page := report.Agents
		if page.TotalItems != 12 || page.TotalPages != 2 {
			t.Errorf("Expected 12 items on 2 pages, got %d on %d", page.TotalItems, page.TotalPages)
		}
		if len(page.Items) != 2 || !page.HasPrev || page.HasNext {
			t.Errorf("Unexpected second page: %+v", page)
		}
	})

	t.Run("cancelled request", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTeamService(t, db)
		leader := testutil.NewUser().Build(t, db)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := svc.GetTeamReport(ctx, leader.ID, "", 1)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	})

	t.Run("unknown leader", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTeamService(t, db)

		_, err := svc.GetTeamReport(context.Background(), "missing", "", 1)
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			t.Errorf("Expected ErrUserNotFound, got %v", err)
		}
	})
}
