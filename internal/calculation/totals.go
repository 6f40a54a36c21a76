package calculation

import (
	"time"

	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/model"
)

// Years reported in the fixed monthly comparison fields of Totals.
const (
	ComparisonYearCurrent  = 2024
	ComparisonYearPrevious = 2023
)

// CalculateTotals summarizes an operation set.
//
// Filtering differs per field:
//   - valor_reserva, fee percentage means, stored fee sums, the adjusted broker
//     total and mayor_venta_efectuada use every operation regardless of status.
//   - *_cerradas, punta counts and cantidad_operaciones use closed operations only.
//   - *_abiertas and valor_reserva_en_curso use in-progress operations.
//   - punta percentage averages use closed Venta/Desarrollo operations and only
//     count entries whose side percentage is non-zero.
//   - the Dev-Ventas fields and the monthly maps use closed, non-rental
//     operations where the advisor holds both puntas.
//
// asOf supplies the current month and year. The mes-vencido average is 0 in
// January because there is no completed month to divide by.
func CalculateTotals(operations []model.Operation, asOf time.Time) model.Totals {
	totals := model.Totals{
		PorcentajeHonorariosBrokerPorMes2024: model.GrossByMonth{Year: ComparisonYearCurrent},
		PorcentajeHonorariosBrokerPorMes2023: model.GrossByMonth{Year: ComparisonYearPrevious},
	}
	if len(operations) == 0 {
		return totals
	}

	var (
		sumPctAsesor, sumPctBroker float64
		mesVencidoAsesor           float64
		ventasDesarrollos          []model.Operation
		validOperations            []model.Operation
	)

	for i, op := range operations {
		valor := orZero(op.ValorReserva)
		broker := orZero(op.HonorariosBroker)
		asesor := orZero(op.HonorariosAsesor)

		totals.ValorReserva += valor
		totals.HonorariosBroker += broker
		totals.HonorariosAsesor += asesor
		sumPctAsesor += orZero(op.PorcentajeHonorariosAsesor)
		sumPctBroker += orZero(op.PorcentajeHonorariosBroker)

		if i == 0 || valor > totals.MayorVentaEfectuada {
			totals.MayorVentaEfectuada = valor
		}

		switch {
		case isClosed(op):
			totals.ValorReservaCerradas += valor
			totals.HonorariosBrokerCerradas += broker
			totals.HonorariosAsesorCerradas += asesor
			totals.CantidadOperaciones++

			if valueOf(op.PorcentajePuntaCompradora) != 0 {
				totals.PuntaCompradora++
			}
			if valueOf(op.PorcentajePuntaVendedora) != 0 {
				totals.PuntaVendedora++
			}

			if date, ok := OperationDate(op); ok &&
				date.Year() == asOf.Year() && date.Month() < asOf.Month() {
				mesVencidoAsesor += asesor
			}

			if isVentaOrDesarrollo(op) {
				ventasDesarrollos = append(ventasDesarrollos, op)
			}
			if !IsRental(op) && representsBothSides(op) {
				validOperations = append(validOperations, op)
			}
		case isInProgress(op):
			totals.ValorReservaEnCurso += valor
			totals.HonorariosBrokerAbiertas += broker
			totals.HonorariosAsesorAbiertas += asesor
		}
	}

	count := len(operations)
	totals.PorcentajeHonorariosAsesor = average(sumPctAsesor, count)
	totals.PorcentajeHonorariosBroker = average(sumPctBroker, count)
	totals.PromedioValorReserva = average(totals.ValorReserva, count)
	totals.SumaTotalDePuntas = totals.PuntaCompradora + totals.PuntaVendedora
	totals.TotalHonorariosBrokerAdjusted = CalculateTotalHonorariosBroker(operations)

	currentMonth := int(asOf.Month())
	totals.PromedioMensualHonorariosAsesor = totals.HonorariosAsesorCerradas / float64(currentMonth)
	if completedMonths := currentMonth - 1; completedMonths > 0 {
		totals.TotalHonorariosAsesorMesVencidoPromedio = mesVencidoAsesor / float64(completedMonths)
	}

	applyVentasDesarrollos(&totals, ventasDesarrollos)
	applyDevVentas(&totals, validOperations)

	totals.PorcentajeHonorariosBrokerPorMes2024 = CalculateGrossByMonth(validOperations, ComparisonYearCurrent)
	totals.PorcentajeHonorariosBrokerPorMes2023 = CalculateGrossByMonth(validOperations, ComparisonYearPrevious)

	return totals
}

// applyVentasDesarrollos fills the fields computed over closed Venta and
// Desarrollo Inmobiliario operations.
func applyVentasDesarrollos(totals *model.Totals, operations []model.Operation) {
	var sumValor, sumCompradora, sumVendedora float64
	var countCompradora, countVendedora int

	for _, op := range operations {
		sumValor += orZero(op.ValorReserva)

		if pc := valueOf(op.PorcentajePuntaCompradora); pc != 0 {
			sumCompradora += pc
			countCompradora++
		}
		if pv := valueOf(op.PorcentajePuntaVendedora); pv != 0 {
			sumVendedora += pv
			countVendedora++
		}
	}

	totals.TotalValorVentasDesarrollos = average(sumValor, len(operations))
	totals.PromedioPuntaCompradoraPorcentaje = average(sumCompradora, countCompradora)
	totals.PromedioPuntaVendedoraPorcentaje = average(sumVendedora, countVendedora)
	totals.TotalPromedioPorcentajePuntasValidas = totals.PromedioPuntaCompradoraPorcentaje + totals.PromedioPuntaVendedoraPorcentaje
}

// applyDevVentas fills the fields computed over closed, non-rental operations
// where the advisor represents both sides.
func applyDevVentas(totals *model.Totals, operations []model.Operation) {
	var sumCompradora, sumVendedora float64
	for _, op := range operations {
		sumCompradora += valueOf(op.PorcentajePuntaCompradora)
		sumVendedora += valueOf(op.PorcentajePuntaVendedora)
	}

	totals.CantidadOperacionesDevVentas = len(operations)
	totals.TotalPuntaCompradoraDevVentas = sumCompradora
	totals.TotalPuntaVendedoraDevVentas = sumVendedora
	totals.PromedioSumaPuntas = average(sumCompradora+sumVendedora, len(operations))
}
