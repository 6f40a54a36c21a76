package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/model"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/testutil"
)

func TestTeamHandler_Agents(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewTeamHandler(testutil.NewTestTeamService(t, db))

	leader := testutil.NewUser().Build(t, db)
	member := testutil.NewUser().WithTeamLeader(leader.ID).Build(t, db)
	testutil.NewOperation(member.ID).Build(t, db)

	t.Run("returns ranked agents", func(t *testing.T) {
		req := reportRequest("/api/team/"+leader.ID+"/agents", "leaderUid", leader.ID, url.Values{})
		w := httptest.NewRecorder()

		handler.Agents(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var report model.TeamReport
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&report)
		if len(report.Agents.Items) != 2 {
			t.Fatalf("Expected 2 agents, got %d", len(report.Agents.Items))
		}
		if report.Agents.Items[0].ID != member.ID || report.Agents.Items[0].Percentage != 1 {
			t.Errorf("Expected member first with full share, got %+v", report.Agents.Items[0])
		}
	})

	t.Run("rejects invalid page", func(t *testing.T) {
		req := reportRequest("/api/team/"+leader.ID+"/agents", "leaderUid", leader.ID, url.Values{"page": {"0"}})
		w := httptest.NewRecorder()

		handler.Agents(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown leader", func(t *testing.T) {
		req := reportRequest("/api/team/nobody/agents", "leaderUid", "nobody", url.Values{})
		w := httptest.NewRecorder()

		handler.Agents(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}
