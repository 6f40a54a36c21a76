package request

// CreateOperationRequest represents the request body for creating an operation.
// When honorarios_broker or honorarios_asesor are omitted they are derived from
// the reservation value and fee percentages.
type CreateOperationRequest struct {
	TipoOperacion              string   `json:"tipo_operacion"`
	Estado                     string   `json:"estado"`
	ValorReserva               float64  `json:"valor_reserva"`
	HonorariosBroker           *float64 `json:"honorarios_broker,omitempty"`
	HonorariosAsesor           *float64 `json:"honorarios_asesor,omitempty"`
	PorcentajeHonorariosBroker float64  `json:"porcentaje_honorarios_broker"`
	PorcentajeHonorariosAsesor float64  `json:"porcentaje_honorarios_asesor"`
	PorcentajeCompartido       *float64 `json:"porcentaje_compartido,omitempty"`
	PorcentajeReferido         *float64 `json:"porcentaje_referido,omitempty"`
	UserUID                    string   `json:"user_uid"`
	UserUIDAdicional           string   `json:"user_uid_adicional,omitempty"`
	RealizadorVenta            string   `json:"realizador_venta"`
	Exclusiva                  bool     `json:"exclusiva"`
	PuntaCompradora            bool     `json:"punta_compradora"`
	PuntaVendedora             bool     `json:"punta_vendedora"`
	PorcentajePuntaCompradora  *float64 `json:"porcentaje_punta_compradora,omitempty"`
	PorcentajePuntaVendedora   *float64 `json:"porcentaje_punta_vendedora,omitempty"`
	FechaOperacion             string   `json:"fecha_operacion"`
	FechaCierre                string   `json:"fecha_cierre,omitempty"`
	FechaReserva               string   `json:"fecha_reserva,omitempty"`
	DireccionReserva           string   `json:"direccion_reserva"`
	LocalidadReserva           string   `json:"localidad_reserva,omitempty"`
}

type UpdateOperationRequest struct {
	TipoOperacion              *string  `json:"tipo_operacion,omitempty"`
	Estado                     *string  `json:"estado,omitempty"`
	ValorReserva               *float64 `json:"valor_reserva,omitempty"`
	HonorariosBroker           *float64 `json:"honorarios_broker,omitempty"`
	HonorariosAsesor           *float64 `json:"honorarios_asesor,omitempty"`
	PorcentajeHonorariosBroker *float64 `json:"porcentaje_honorarios_broker,omitempty"`
	PorcentajeHonorariosAsesor *float64 `json:"porcentaje_honorarios_asesor,omitempty"`
	PorcentajeCompartido       *float64 `json:"porcentaje_compartido,omitempty"`
	PorcentajeReferido         *float64 `json:"porcentaje_referido,omitempty"`
	UserUIDAdicional           *string  `json:"user_uid_adicional,omitempty"`
	RealizadorVenta            *string  `json:"realizador_venta,omitempty"`
	Exclusiva                  *bool    `json:"exclusiva,omitempty"`
	PuntaCompradora            *bool    `json:"punta_compradora,omitempty"`
	PuntaVendedora             *bool    `json:"punta_vendedora,omitempty"`
	PorcentajePuntaCompradora  *float64 `json:"porcentaje_punta_compradora,omitempty"`
	PorcentajePuntaVendedora   *float64 `json:"porcentaje_punta_vendedora,omitempty"`
	FechaOperacion             *string  `json:"fecha_operacion,omitempty"`
	FechaCierre                *string  `json:"fecha_cierre,omitempty"`
	FechaReserva               *string  `json:"fecha_reserva,omitempty"`
	DireccionReserva           *string  `json:"direccion_reserva,omitempty"`
	LocalidadReserva           *string  `json:"localidad_reserva,omitempty"`
}
