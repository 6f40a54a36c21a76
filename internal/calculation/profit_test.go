package calculation_test

import (
	"strings"
	"testing"

	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/calculation"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/model"
)

// TestCalculateOperationProfit tests net profit and profitability per operation.
//
// WHY: Profitability is shown next to each operation; it must recompute the
// gross fee from percentages and keep a negative sign when expenses exceed it.
func TestCalculateOperationProfit(t *testing.T) {
	op := model.Operation{
		ValorReserva:               100000,
		PorcentajeHonorariosBroker: 6,
		PorcentajeHonorariosAsesor: 45,
		HonorariosBroker:           1, // stale stored value is ignored
	}

	t.Run("profitable operation", func(t *testing.T) {
		got := calculation.CalculateOperationProfit(calculation.AssignExpense(op, 1500))

		assertFloat(t, "honorariosBrutos", got.HonorariosBrutos, 6000)
		assertFloat(t, "gastosAsignados", got.GastosAsignados, 1500)
		assertFloat(t, "beneficioNeto", got.BeneficioNeto, 4500)
		assertFloat(t, "porcentajeRentabilidad", got.PorcentajeRentabilidad, 75)
	})

	t.Run("no assigned expense", func(t *testing.T) {
		got := calculation.CalculateOperationProfit(calculation.AssignExpense(op, 0))

		assertFloat(t, "beneficioNeto", got.BeneficioNeto, 6000)
		assertFloat(t, "porcentajeRentabilidad", got.PorcentajeRentabilidad, 100)
	})

	t.Run("expenses exceeding fee yield negative profitability", func(t *testing.T) {
		got := calculation.CalculateOperationProfit(calculation.AssignExpense(op, 7500))

		if got.PorcentajeRentabilidad >= 0 {
			t.Fatalf("Expected negative profitability, got %v", got.PorcentajeRentabilidad)
		}
		assertFloat(t, "porcentajeRentabilidad", got.PorcentajeRentabilidad, -25)

		formatted := calculation.FormatProfitabilityPercentage(got.PorcentajeRentabilidad)
		if !strings.HasPrefix(formatted, "-") || !strings.HasSuffix(formatted, "%") {
			t.Errorf("Expected signed percentage, got %q", formatted)
		}
		if formatted != "-25.00%" {
			t.Errorf("Expected '-25.00%%', got %q", formatted)
		}
	})

	t.Run("zero gross fee yields zero profitability", func(t *testing.T) {
		got := calculation.CalculateOperationProfit(calculation.AssignExpense(model.Operation{ValorReserva: 50000}, 200))

		assertFloat(t, "beneficioNeto", got.BeneficioNeto, -200)
		if got.PorcentajeRentabilidad != 0 {
			t.Errorf("Expected 0 profitability, got %v", got.PorcentajeRentabilidad)
		}
	})
}
