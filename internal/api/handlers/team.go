package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/api/response"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/apperrors"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/service"
)

// TeamHandler serves the team leader's agent ranking.
type TeamHandler struct {
	teamService *service.TeamService
}

// NewTeamHandler creates a new TeamHandler with the provided service dependency.
func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// Agents handles GET requests for the ranked, searchable and paginated agent list.
//
// Endpoint: GET /api/team/{leaderUid}/agents?q=search&page=1
// Response: 200 OK with model.TeamReport
// Error: 400 Bad Request if page is not a positive integer
// Error: 404 Not Found if the leader does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *TeamHandler) Agents(w http.ResponseWriter, r *http.Request) {
	leaderID := chi.URLParam(r, "leaderUid")

	page, err := parsePositiveInt(r, "page", 1, apperrors.ErrInvalidPage)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidPage.Error(), err.Error())
		return
	}

	report, err := h.teamService.GetTeamReport(r.Context(), leaderID, r.URL.Query().Get("q"), page)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrUserNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTeam.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, report)
}
