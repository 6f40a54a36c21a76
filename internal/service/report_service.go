package service

import (
	"fmt"
	"time"

	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/calculation"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/model"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/repository"
)

// ReportService assembles per-advisor reports from stored operations.
// All arithmetic is delegated to the calculation package.
type ReportService struct {
	operationRepo *repository.OperationRepository
}

// NewReportService creates a new ReportService with the provided repository dependencies.
func NewReportService(operationRepo *repository.OperationRepository) *ReportService {
	return &ReportService{
		operationRepo: operationRepo,
	}
}

func (s *ReportService) loadOperations(userUID string) ([]model.Operation, error) {
	ops, err := s.operationRepo.GetOperations(model.OperationFilter{UserUID: userUID})
	if err != nil {
		return nil, fmt.Errorf("failed to load operations for %s: %w", userUID, err)
	}
	return ops, nil
}

// GetTotals computes the dashboard totals for an advisor as of the given instant.
func (s *ReportService) GetTotals(userUID string, asOf time.Time) (model.Totals, error) {
	ops, err := s.loadOperations(userUID)
	if err != nil {
		return model.Totals{}, err
	}
	return calculation.CalculateTotals(ops, asOf), nil
}

// GetGrossByMonth computes the monthly gross fee percentage for an advisor in one year.
func (s *ReportService) GetGrossByMonth(userUID string, year int) (model.GrossByMonth, error) {
	ops, err := s.loadOperations(userUID)
	if err != nil {
		return model.GrossByMonth{}, err
	}
	return calculation.CalculateGrossByMonth(ops, year), nil
}

// GetCarteraActiva lists the advisor's in-progress operations with their active value.
func (s *ReportService) GetCarteraActiva(userUID string) (model.CarteraActiva, error) {
	ops, err := s.loadOperations(userUID)
	if err != nil {
		return model.CarteraActiva{}, err
	}
	return calculation.CalculateCarteraActiva(ops), nil
}

// GetOperationProfit computes the net profit of one operation after the assigned expenses.
func (s *ReportService) GetOperationProfit(operationID string, gastos float64) (model.OperationProfit, error) {
	op, err := s.operationRepo.GetOperation(operationID)
	if err != nil {
		return model.OperationProfit{}, err
	}
	return calculation.CalculateOperationProfit(calculation.AssignExpense(op, gastos)), nil
}
