package model

import "time"

// Operation lifecycle states.
const (
	EstadoEnCurso = "En Curso"
	EstadoCerrada = "Cerrada"
	EstadoCaida   = "Caída"
)

// Operation types that carry special meaning in aggregations.
// Rental types share the "Alquiler" prefix (Alquiler Temporal, Alquiler Comercial, ...).
const (
	TipoVenta                  = "Venta"
	TipoDesarrolloInmobiliario = "Desarrollo Inmobiliario"
	TipoAlquilerPrefix         = "Alquiler"
)

// Operation represents one real-estate transaction (sale, rental, development).
// Fee amounts are stored precomputed; aggregations trust the stored values.
type Operation struct {
	ID                         string    `json:"id"`
	TipoOperacion              string    `json:"tipo_operacion"`
	Estado                     string    `json:"estado"`
	ValorReserva               float64   `json:"valor_reserva"`
	HonorariosBroker           float64   `json:"honorarios_broker"`
	HonorariosAsesor           float64   `json:"honorarios_asesor"`
	PorcentajeHonorariosBroker float64   `json:"porcentaje_honorarios_broker"`
	PorcentajeHonorariosAsesor float64   `json:"porcentaje_honorarios_asesor"`
	PorcentajeCompartido       *float64  `json:"porcentaje_compartido,omitempty"`
	PorcentajeReferido         *float64  `json:"porcentaje_referido,omitempty"`
	UserUID                    string    `json:"user_uid"`
	UserUIDAdicional           string    `json:"user_uid_adicional,omitempty"`
	RealizadorVenta            string    `json:"realizador_venta"`
	Exclusiva                  bool      `json:"exclusiva"`
	PuntaCompradora            bool      `json:"punta_compradora"`
	PuntaVendedora             bool      `json:"punta_vendedora"`
	PorcentajePuntaCompradora  *float64  `json:"porcentaje_punta_compradora,omitempty"`
	PorcentajePuntaVendedora   *float64  `json:"porcentaje_punta_vendedora,omitempty"`
	FechaOperacion             string    `json:"fecha_operacion"`
	FechaCierre                string    `json:"fecha_cierre,omitempty"`
	FechaReserva               string    `json:"fecha_reserva,omitempty"`
	DireccionReserva           string    `json:"direccion_reserva"`
	LocalidadReserva           string    `json:"localidad_reserva,omitempty"`
	CreatedAt                  time.Time `json:"createdAt,omitempty"`
}

// IsShared reports whether the operation is split with a different co-advisor.
// Shared operations are credited at half value in adjusted fee totals.
func (o Operation) IsShared() bool {
	return o.UserUID != "" && o.UserUIDAdicional != "" && o.UserUIDAdicional != o.UserUID
}

// OperationWithAssignedExpense pairs an operation with the expense amount
// attributed to it for profitability reporting.
type OperationWithAssignedExpense struct {
	Operation       Operation `json:"operation"`
	GastosOperacion float64   `json:"gastos_operacion"`
}

// OperationFilter for querying operations
type OperationFilter struct {
	UserUID string
	Estado  string
}
