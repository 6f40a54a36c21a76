package calculation

import (
	"cmp"
	"slices"
	"strings"

	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/model"
)

// DefaultPageSize is the number of agents per page in team reports.
const DefaultPageSize = 10

// TeamHonorariosBroker is the straight sum of broker fees over every agent's
// operations. An operation shared by two agents of the team is counted once
// per agent.
func TeamHonorariosBroker(agents []model.Agent) float64 {
	var total float64
	for _, agent := range agents {
		total += SumHonorariosBroker(agent.Operaciones)
	}
	return total
}

// TeamHonorariosBrokerAdjusted sums each agent's half-credit adjusted broker fees.
func TeamHonorariosBrokerAdjusted(agents []model.Agent) float64 {
	var total float64
	for _, agent := range agents {
		total += CalculateTotalHonorariosBroker(agent.Operaciones)
	}
	return total
}

// FilterAgents keeps agents whose first or last name contains query,
// case-insensitively. An empty query keeps every agent.
func FilterAgents(agents []model.Agent, query string) []model.Agent {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return agents
	}

	filtered := make([]model.Agent, 0, len(agents))
	for _, agent := range agents {
		if strings.Contains(strings.ToLower(agent.FirstName), query) ||
			strings.Contains(strings.ToLower(agent.LastName), query) {
			filtered = append(filtered, agent)
		}
	}
	return filtered
}

// RankAgents computes each matching agent's adjusted broker fees as a ratio of
// the team's straight broker fee total and sorts descending by that ratio.
//
// The denominator always covers the whole team, so filtering by name does not
// change an agent's percentage. When the team total is 0 every percentage is 0.
// Agents with equal percentages keep their input order.
func RankAgents(agents []model.Agent, query string) []model.AgentRanking {
	total := TeamHonorariosBroker(agents)
	filtered := FilterAgents(agents, query)

	rankings := make([]model.AgentRanking, 0, len(filtered))
	for _, agent := range filtered {
		adjusted := CalculateTotalHonorariosBroker(agent.Operaciones)

		percentage := 0.0
		if total != 0 {
			percentage = adjusted / total
		}

		rankings = append(rankings, model.AgentRanking{
			ID:                       agent.ID,
			FirstName:                agent.FirstName,
			LastName:                 agent.LastName,
			Email:                    agent.Email,
			CantidadOperaciones:      len(agent.Operaciones),
			HonorariosBrokerAdjusted: adjusted,
			Percentage:               percentage,
		})
	}

	slices.SortStableFunc(rankings, func(a, b model.AgentRanking) int {
		return cmp.Compare(b.Percentage, a.Percentage)
	})

	return rankings
}

// Paginate returns one page of items. Pages are 1-based and out-of-range page
// numbers are clamped to the first or last page; an empty list has one empty page.
// A non-positive size falls back to DefaultPageSize.
func Paginate[T any](items []T, page, size int) model.Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}

	totalPages := (len(items) + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	page = max(1, min(page, totalPages))

	start := (page - 1) * size
	end := min(start+size, len(items))

	pageItems := make([]T, 0, end-start)
	pageItems = append(pageItems, items[start:end]...)

	return model.Page[T]{
		Items:      pageItems,
		Page:       page,
		PageSize:   size,
		TotalItems: len(items),
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}
