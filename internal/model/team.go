package model

// AgentRanking is an agent's share of the team's broker fees.
// Percentage is a ratio (0.3 means 30%).
type AgentRanking struct {
	ID                       string  `json:"id"`
	FirstName                string  `json:"firstName"`
	LastName                 string  `json:"lastName"`
	Email                    string  `json:"email"`
	CantidadOperaciones      int     `json:"cantidadOperaciones"`
	HonorariosBrokerAdjusted float64 `json:"honorariosBrokerAdjusted"`
	Percentage               float64 `json:"percentage"`
}

// Page is one page of a list. Page numbers start at 1.
type Page[T any] struct {
	Items      []T  `json:"items"`
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	TotalItems int  `json:"totalItems"`
	TotalPages int  `json:"totalPages"`
	HasPrev    bool `json:"hasPrev"`
	HasNext    bool `json:"hasNext"`
}

// TeamReport is the ranked agent page together with both team totals.
// HonorariosBrokerTotales is the straight sum used as the ranking denominator;
// HonorariosBrokerAdjusted applies the half-credit rule across the same operations.
type TeamReport struct {
	LeaderID                 string             `json:"leaderId"`
	HonorariosBrokerTotales  float64            `json:"honorariosBrokerTotales"`
	HonorariosBrokerAdjusted float64            `json:"honorariosBrokerAdjusted"`
	Agents                   Page[AgentRanking] `json:"agents"`
}
