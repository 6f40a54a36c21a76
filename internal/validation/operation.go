package validation

import (
	"fmt"
	"strings"

	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/api/request"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/model"
)

// ValidEstado contains the allowed operation status values.
var ValidEstado = map[string]bool{
	model.EstadoEnCurso: true, model.EstadoCerrada: true, model.EstadoCaida: true,
}

// ValidateCreateOperation validates an operation creation request.
//
// Required fields:
//   - tipo_operacion: non-empty, 50 characters or less
//   - estado: one of En Curso, Cerrada, Caída
//   - valor_reserva: zero or positive
//   - user_uid: non-empty
//   - fecha_operacion: YYYY-MM-DD or RFC3339
//
// Percentages, when provided, must be between 0 and 100.
func ValidateCreateOperation(req request.CreateOperationRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.TipoOperacion) == "" {
		errors["tipo_operacion"] = "tipo_operacion is required"
	} else if len(req.TipoOperacion) > 50 {
		errors["tipo_operacion"] = "tipo_operacion must be 50 characters or less"
	}

	if !ValidEstado[req.Estado] {
		errors["estado"] = fmt.Sprintf("invalid estado: %s", req.Estado)
	}

	if req.ValorReserva < 0 {
		errors["valor_reserva"] = "valor_reserva cannot be negative"
	}

	if strings.TrimSpace(req.UserUID) == "" {
		errors["user_uid"] = "user_uid is required"
	}

	if strings.TrimSpace(req.FechaOperacion) == "" {
		errors["fecha_operacion"] = "fecha_operacion is required"
	} else {
		validateOptionalDate(errors, "fecha_operacion", req.FechaOperacion)
	}
	validateOptionalDate(errors, "fecha_cierre", req.FechaCierre)
	validateOptionalDate(errors, "fecha_reserva", req.FechaReserva)

	validatePercentage(errors, "porcentaje_honorarios_broker", &req.PorcentajeHonorariosBroker)
	validatePercentage(errors, "porcentaje_honorarios_asesor", &req.PorcentajeHonorariosAsesor)
	validatePercentage(errors, "porcentaje_compartido", req.PorcentajeCompartido)
	validatePercentage(errors, "porcentaje_referido", req.PorcentajeReferido)
	validatePercentage(errors, "porcentaje_punta_compradora", req.PorcentajePuntaCompradora)
	validatePercentage(errors, "porcentaje_punta_vendedora", req.PorcentajePuntaVendedora)

	if req.HonorariosBroker != nil && *req.HonorariosBroker < 0 {
		errors["honorarios_broker"] = "honorarios_broker cannot be negative"
	}
	if req.HonorariosAsesor != nil && *req.HonorariosAsesor < 0 {
		errors["honorarios_asesor"] = "honorarios_asesor cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateOperation validates an operation update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
func ValidateUpdateOperation(req request.UpdateOperationRequest) error {
	errors := make(map[string]string)

	if req.TipoOperacion != nil {
		if strings.TrimSpace(*req.TipoOperacion) == "" {
			errors["tipo_operacion"] = "tipo_operacion cannot be empty"
		} else if len(*req.TipoOperacion) > 50 {
			errors["tipo_operacion"] = "tipo_operacion must be 50 characters or less"
		}
	}

	if req.Estado != nil && !ValidEstado[*req.Estado] {
		errors["estado"] = fmt.Sprintf("invalid estado: %s", *req.Estado)
	}

	if req.ValorReserva != nil && *req.ValorReserva < 0 {
		errors["valor_reserva"] = "valor_reserva cannot be negative"
	}

	if req.FechaOperacion != nil {
		if strings.TrimSpace(*req.FechaOperacion) == "" {
			errors["fecha_operacion"] = "fecha_operacion cannot be empty"
		} else {
			validateOptionalDate(errors, "fecha_operacion", *req.FechaOperacion)
		}
	}
	if req.FechaCierre != nil {
		validateOptionalDate(errors, "fecha_cierre", *req.FechaCierre)
	}
	if req.FechaReserva != nil {
		validateOptionalDate(errors, "fecha_reserva", *req.FechaReserva)
	}

	validatePercentage(errors, "porcentaje_honorarios_broker", req.PorcentajeHonorariosBroker)
	validatePercentage(errors, "porcentaje_honorarios_asesor", req.PorcentajeHonorariosAsesor)
	validatePercentage(errors, "porcentaje_compartido", req.PorcentajeCompartido)
	validatePercentage(errors, "porcentaje_referido", req.PorcentajeReferido)
	validatePercentage(errors, "porcentaje_punta_compradora", req.PorcentajePuntaCompradora)
	validatePercentage(errors, "porcentaje_punta_vendedora", req.PorcentajePuntaVendedora)

	if req.HonorariosBroker != nil && *req.HonorariosBroker < 0 {
		errors["honorarios_broker"] = "honorarios_broker cannot be negative"
	}
	if req.HonorariosAsesor != nil && *req.HonorariosAsesor < 0 {
		errors["honorarios_asesor"] = "honorarios_asesor cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
