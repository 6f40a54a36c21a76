package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/api/request"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/apperrors"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/calculation"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/model"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/repository"
)

// OperationService handles operation-related business logic.
// Stored fee amounts are derived from the reservation value and fee
// percentages unless the caller supplies them explicitly.
type OperationService struct {
	operationRepo *repository.OperationRepository
}

// NewOperationService creates a new OperationService with the provided repository dependencies.
func NewOperationService(operationRepo *repository.OperationRepository) *OperationService {
	return &OperationService{
		operationRepo: operationRepo,
	}
}

// GetOperations retrieves operations matching the filter. A UserUID matches
// operations where the user is the primary or additional advisor; an empty
// filter returns all operations.
func (s *OperationService) GetOperations(filter model.OperationFilter) ([]model.Operation, error) {
	return s.operationRepo.GetOperations(filter)
}

// GetOperation retrieves a single operation by ID.
func (s *OperationService) GetOperation(operationID string) (model.Operation, error) {
	return s.operationRepo.GetOperation(operationID)
}

// CreateOperation stores a new operation built from the request.
func (s *OperationService) CreateOperation(ctx context.Context, req request.CreateOperationRequest) (*model.Operation, error) {
	op := &model.Operation{
		ID:                         uuid.New().String(),
		TipoOperacion:              req.TipoOperacion,
		Estado:                     req.Estado,
		ValorReserva:               req.ValorReserva,
		PorcentajeHonorariosBroker: req.PorcentajeHonorariosBroker,
		PorcentajeHonorariosAsesor: req.PorcentajeHonorariosAsesor,
		PorcentajeCompartido:       req.PorcentajeCompartido,
		PorcentajeReferido:         req.PorcentajeReferido,
		UserUID:                    req.UserUID,
		UserUIDAdicional:           req.UserUIDAdicional,
		RealizadorVenta:            req.RealizadorVenta,
		Exclusiva:                  req.Exclusiva,
		PuntaCompradora:            req.PuntaCompradora,
		PuntaVendedora:             req.PuntaVendedora,
		PorcentajePuntaCompradora:  req.PorcentajePuntaCompradora,
		PorcentajePuntaVendedora:   req.PorcentajePuntaVendedora,
		FechaOperacion:             req.FechaOperacion,
		FechaCierre:                req.FechaCierre,
		FechaReserva:               req.FechaReserva,
		DireccionReserva:           req.DireccionReserva,
		LocalidadReserva:           req.LocalidadReserva,
		CreatedAt:                  time.Now().UTC(),
	}
	applyHonorarios(op, req.HonorariosBroker, req.HonorariosAsesor)

	if err := s.operationRepo.InsertOperation(ctx, op); err != nil {
		return nil, fmt.Errorf("failed to create operation: %w", err)
	}

	return op, nil
}

// UpdateOperation applies the non-nil request fields to an existing operation.
// Fee amounts are recomputed whenever the value or a fee percentage changes
// and the request does not carry explicit amounts.
func (s *OperationService) UpdateOperation(ctx context.Context, operationID string, req request.UpdateOperationRequest) (*model.Operation, error) {
	op, err := s.operationRepo.GetOperation(operationID)
	if err != nil {
		return nil, err
	}

	if req.TipoOperacion != nil {
		op.TipoOperacion = *req.TipoOperacion
	}
	if req.Estado != nil {
		op.Estado = *req.Estado
	}
	if req.ValorReserva != nil {
		op.ValorReserva = *req.ValorReserva
	}
	if req.PorcentajeHonorariosBroker != nil {
		op.PorcentajeHonorariosBroker = *req.PorcentajeHonorariosBroker
	}
	if req.PorcentajeHonorariosAsesor != nil {
		op.PorcentajeHonorariosAsesor = *req.PorcentajeHonorariosAsesor
	}
	if req.PorcentajeCompartido != nil {
		op.PorcentajeCompartido = req.PorcentajeCompartido
	}
	if req.PorcentajeReferido != nil {
		op.PorcentajeReferido = req.PorcentajeReferido
	}
	if req.UserUIDAdicional != nil {
		op.UserUIDAdicional = *req.UserUIDAdicional
	}
	if req.RealizadorVenta != nil {
		op.RealizadorVenta = *req.RealizadorVenta
	}
	if req.Exclusiva != nil {
		op.Exclusiva = *req.Exclusiva
	}
	if req.PuntaCompradora != nil {
		op.PuntaCompradora = *req.PuntaCompradora
	}
	if req.PuntaVendedora != nil {
		op.PuntaVendedora = *req.PuntaVendedora
	}
	if req.PorcentajePuntaCompradora != nil {
		op.PorcentajePuntaCompradora = req.PorcentajePuntaCompradora
	}
	if req.PorcentajePuntaVendedora != nil {
		op.PorcentajePuntaVendedora = req.PorcentajePuntaVendedora
	}
	if req.FechaOperacion != nil {
		op.FechaOperacion = *req.FechaOperacion
	}
	if req.FechaCierre != nil {
		op.FechaCierre = *req.FechaCierre
	}
	if req.FechaReserva != nil {
		op.FechaReserva = *req.FechaReserva
	}
	if req.DireccionReserva != nil {
		op.DireccionReserva = *req.DireccionReserva
	}
	if req.LocalidadReserva != nil {
		op.LocalidadReserva = *req.LocalidadReserva
	}

	feesChanged := req.ValorReserva != nil || req.PorcentajeHonorariosBroker != nil || req.PorcentajeHonorariosAsesor != nil
	if feesChanged || req.HonorariosBroker != nil || req.HonorariosAsesor != nil {
		broker, asesor := req.HonorariosBroker, req.HonorariosAsesor
		if !feesChanged {
			// Keep the stored amount for whichever side was not supplied.
			if broker == nil {
				stored := op.HonorariosBroker
				broker = &stored
			}
			if asesor == nil {
				stored := op.HonorariosAsesor
				asesor = &stored
			}
		}
		applyHonorarios(&op, broker, asesor)
	}

	if err := s.operationRepo.UpdateOperation(ctx, &op); err != nil {
		return nil, fmt.Errorf("failed to update operation: %w", err)
	}

	return &op, nil
}

// ToggleEstado flips an operation between En Curso and Cerrada.
// Fallen operations (Caída) return apperrors.ErrStatusNotTogglable.
func (s *OperationService) ToggleEstado(ctx context.Context, operationID string) (*model.Operation, error) {
	op, err := s.operationRepo.GetOperation(operationID)
	if err != nil {
		return nil, err
	}

	switch op.Estado {
	case model.EstadoEnCurso:
		op.Estado = model.EstadoCerrada
	case model.EstadoCerrada:
		op.Estado = model.EstadoEnCurso
	default:
		return nil, fmt.Errorf("%w: %s", apperrors.ErrStatusNotTogglable, op.Estado)
	}

	if err := s.operationRepo.UpdateEstado(ctx, op.ID, op.Estado); err != nil {
		return nil, fmt.Errorf("failed to update operation status: %w", err)
	}

	return &op, nil
}

// DeleteOperation removes an operation by ID.
func (s *OperationService) DeleteOperation(ctx context.Context, operationID string) error {
	return s.operationRepo.DeleteOperation(ctx, operationID)
}

// applyHonorarios sets the stored fee amounts, deriving any nil amount from
// the operation's value and fee percentages.
func applyHonorarios(op *model.Operation, broker, asesor *float64) {
	fees := calculation.CalculateHonorarios(op.ValorReserva, op.PorcentajeHonorariosAsesor, op.PorcentajeHonorariosBroker)
	if broker != nil {
		fees.HonorariosBroker = *broker
	}
	if asesor != nil {
		fees.HonorariosAsesor = *asesor
	}

	op.HonorariosBroker = fees.HonorariosBroker
	op.HonorariosAsesor = fees.HonorariosAsesor
}
