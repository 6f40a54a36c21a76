package model

// Totals is the portfolio-wide summary over one operation set.
// Empty input zeroes every numeric field. The Year of each monthly map is a
// label naming the compared year, not an aggregate, and is always set.
type Totals struct {
	ValorReserva                            float64      `json:"valor_reserva"`
	ValorReservaCerradas                    float64      `json:"valor_reserva_cerradas"`
	ValorReservaEnCurso                     float64      `json:"valor_reserva_en_curso"`
	TotalValorVentasDesarrollos             float64      `json:"total_valor_ventas_desarrollos"`
	PorcentajeHonorariosAsesor              float64      `json:"porcentaje_honorarios_asesor"`
	PorcentajeHonorariosBroker              float64      `json:"porcentaje_honorarios_broker"`
	HonorariosBroker                        float64      `json:"honorarios_broker"`
	HonorariosAsesor                        float64      `json:"honorarios_asesor"`
	HonorariosBrokerCerradas                float64      `json:"honorarios_broker_cerradas"`
	HonorariosAsesorCerradas                float64      `json:"honorarios_asesor_cerradas"`
	HonorariosBrokerAbiertas                float64      `json:"honorarios_broker_abiertas"`
	HonorariosAsesorAbiertas                float64      `json:"honorarios_asesor_abiertas"`
	TotalHonorariosAsesorMesVencidoPromedio float64      `json:"total_honorarios_asesor_mes_vencido_promedio"`
	MayorVentaEfectuada                     float64      `json:"mayor_venta_efectuada"`
	PromedioValorReserva                    float64      `json:"promedio_valor_reserva"`
	PuntaCompradora                         int          `json:"punta_compradora"`
	PuntaVendedora                          int          `json:"punta_vendedora"`
	SumaTotalDePuntas                       int          `json:"suma_total_de_puntas"`
	CantidadOperaciones                     int          `json:"cantidad_operaciones"`
	PromedioPuntaCompradoraPorcentaje       float64      `json:"promedio_punta_compradora_porcentaje"`
	PromedioPuntaVendedoraPorcentaje        float64      `json:"promedio_punta_vendedora_porcentaje"`
	TotalPromedioPorcentajePuntasValidas    float64      `json:"total_promedio_porcentaje_puntas_validas"`
	TotalHonorariosBrokerAdjusted           float64      `json:"total_honorarios_broker_adjusted"`
	PromedioMensualHonorariosAsesor         float64      `json:"promedio_mensual_honorarios_asesor"`
	PromedioSumaPuntas                      float64      `json:"promedio_suma_puntas"`
	TotalPuntaCompradoraDevVentas           float64      `json:"total_punta_compradora_dev_ventas"`
	TotalPuntaVendedoraDevVentas            float64      `json:"total_punta_vendedora_dev_ventas"`
	CantidadOperacionesDevVentas            int          `json:"cantidad_operaciones_dev_ventas"`
	PorcentajeHonorariosBrokerPorMes2024    GrossByMonth `json:"porcentaje_honorarios_broker_por_mes_2024"`
	PorcentajeHonorariosBrokerPorMes2023    GrossByMonth `json:"porcentaje_honorarios_broker_por_mes_2023"`
}

// CarteraActivaItem is one in-progress exclusive listing and its contingent value.
type CarteraActivaItem struct {
	OperationID     string  `json:"operationId"`
	Direccion       string  `json:"direccion"`
	ValorOperacion  float64 `json:"valorOperacion"`
	PorcentajeVenta float64 `json:"porcentajeVenta"`
	ValorActivo     float64 `json:"valorActivo"`
}

// CarteraActiva holds the active portfolio rows and their straight sums.
// TotalPorcentajeVenta is a sum of percentages, not an average.
type CarteraActiva struct {
	Items                []CarteraActivaItem `json:"items"`
	TotalValorOperacion  float64             `json:"totalValorOperacion"`
	TotalPorcentajeVenta float64             `json:"totalPorcentajeVenta"`
	TotalValorActivo     float64             `json:"totalValorActivo"`
}

// OperationProfit is the net result of one operation after assigned expenses.
type OperationProfit struct {
	HonorariosBrutos       float64 `json:"honorariosBrutos"`
	GastosAsignados        float64 `json:"gastosAsignados"`
	BeneficioNeto          float64 `json:"beneficioNeto"`
	PorcentajeRentabilidad float64 `json:"porcentajeRentabilidad"`
}
