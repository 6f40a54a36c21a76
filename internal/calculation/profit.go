package calculation

import "github.com/ndewijer/Brokerage-Backoffice-Backend/internal/model"

// AssignExpense joins an operation with the expense amount attributed to it.
func AssignExpense(op model.Operation, gastos float64) model.OperationWithAssignedExpense {
	return model.OperationWithAssignedExpense{
		Operation:       op,
		GastosOperacion: orZero(gastos),
	}
}

// CalculateOperationProfit computes net profit and profitability for one operation.
// Gross fees are recomputed from the operation's percentages; the stored
// honorarios_broker is ignored. Profitability is 0 when gross fees are not
// positive and negative when expenses exceed the fee.
func CalculateOperationProfit(op model.OperationWithAssignedExpense) model.OperationProfit {
	fees := CalculateHonorarios(
		orZero(op.Operation.ValorReserva),
		orZero(op.Operation.PorcentajeHonorariosAsesor),
		orZero(op.Operation.PorcentajeHonorariosBroker),
	)
	brutos := fees.HonorariosBroker
	gastos := orZero(op.GastosOperacion)
	neto := brutos - gastos

	var rentabilidad float64
	if brutos > 0 {
		rentabilidad = neto / brutos * 100
	}

	return model.OperationProfit{
		HonorariosBrutos:       brutos,
		GastosAsignados:        gastos,
		BeneficioNeto:          neto,
		PorcentajeRentabilidad: rentabilidad,
	}
}

// FormatProfitabilityPercentage renders a profitability ratio with its sign,
// two decimals and a trailing percent sign: -25.5 becomes "-25.50%".
func FormatProfitabilityPercentage(value float64) string {
	return newPrinter().Sprintf("%.2f%%", orZero(value))
}
