package service

import (
	"context"
	"fmt"

	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/calculation"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/model"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/repository"
	"golang.org/x/sync/errgroup"
)

// TeamService builds the team leader's agent ranking.
type TeamService struct {
	userRepo      *repository.UserRepository
	operationRepo *repository.OperationRepository
}

// NewTeamService creates a new TeamService with the provided repository dependencies.
func NewTeamService(userRepo *repository.UserRepository, operationRepo *repository.OperationRepository) *TeamService {
	return &TeamService{
		userRepo:      userRepo,
		operationRepo: operationRepo,
	}
}

// GetTeamReport ranks the leader and every team member by adjusted broker fees,
// filters by query (first or last name, case-insensitive) and returns the requested page.
//
// The leader's own record and operations are loaded concurrently with the member
// list; member operations are then fetched in a single query. The leader is the
// first agent, so ties keep the leader ahead of members. A cancelled ctx
// returns its error before the member operations are queried.
func (s *TeamService) GetTeamReport(ctx context.Context, leaderID, query string, page int) (model.TeamReport, error) {
	var (
		leader    model.User
		leaderOps []model.Operation
		members   []model.User
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		leader, err = s.userRepo.GetUser(leaderID)
		if err != nil {
			return err
		}
		leaderOps, err = s.operationRepo.GetOperations(model.OperationFilter{UserUID: leaderID})
		return err
	})
	g.Go(func() error {
		var err error
		members, err = s.userRepo.GetTeamMembers(leaderID)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.TeamReport{}, err
	}

	if err := ctx.Err(); err != nil {
		return model.TeamReport{}, err
	}

	memberIDs := make([]string, len(members))
	for i, m := range members {
		memberIDs[i] = m.ID
	}
	opsByUser, err := s.operationRepo.GetOperationsForUsers(memberIDs)
	if err != nil {
		return model.TeamReport{}, fmt.Errorf("failed to load team operations: %w", err)
	}

	agents := make([]model.Agent, 0, len(members)+1)
	agents = append(agents, toAgent(leader, leaderOps))
	for _, m := range members {
		agents = append(agents, toAgent(m, opsByUser[m.ID]))
	}

	rankings := calculation.RankAgents(agents, query)

	return model.TeamReport{
		LeaderID:                 leaderID,
		HonorariosBrokerTotales:  calculation.TeamHonorariosBroker(agents),
		HonorariosBrokerAdjusted: calculation.TeamHonorariosBrokerAdjusted(agents),
		Agents:                   calculation.Paginate(rankings, page, calculation.DefaultPageSize),
	}, nil
}

func toAgent(u model.User, ops []model.Operation) model.Agent {
	if ops == nil {
		ops = []model.Operation{}
	}
	return model.Agent{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Operaciones: ops,
	}
}
