package calculation_test

import (
	"testing"

	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/calculation"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/model"
)

// TestCalculateHonorarios tests the broker/advisor fee split.
//
// WHY: Every stored fee amount is derived from this formula when an operation
// is saved. The advisor fee is a percentage of the broker percentage, so both
// the literal order of operations and the simplified form must agree.
func TestCalculateHonorarios(t *testing.T) {
	t.Run("closed sale example", func(t *testing.T) {
		got := calculation.CalculateHonorarios(100000, 45, 6)

		assertFloat(t, "honorariosBroker", got.HonorariosBroker, 6000)
		assertFloat(t, "honorariosAsesor", got.HonorariosAsesor, 2700)
	})

	tests := []struct {
		name      string
		valor     float64
		pctAsesor float64
		pctBroker float64
	}{
		{name: "zero value", valor: 0, pctAsesor: 50, pctBroker: 3},
		{name: "zero percentages", valor: 250000, pctAsesor: 0, pctBroker: 0},
		{name: "typical rental", valor: 1200, pctAsesor: 40, pctBroker: 4.5},
		{name: "full share", valor: 87654.32, pctAsesor: 100, pctBroker: 100},
		{name: "fractional inputs", valor: 123456.78, pctAsesor: 33.3, pctBroker: 2.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculation.CalculateHonorarios(tt.valor, tt.pctAsesor, tt.pctBroker)

			assertFloat(t, "honorariosBroker", got.HonorariosBroker, tt.valor*tt.pctBroker/100)
			assertFloat(t, "honorariosAsesor", got.HonorariosAsesor, tt.valor*tt.pctBroker*tt.pctAsesor/10000)
		})
	}

	t.Run("advisor fee equals advisor share of broker fee", func(t *testing.T) {
		for _, tt := range tests {
			got := calculation.CalculateHonorarios(tt.valor, tt.pctAsesor, tt.pctBroker)
			simplified := got.HonorariosBroker * tt.pctAsesor / 100

			assertFloat(t, tt.name, got.HonorariosAsesor, simplified)
		}
	})

	t.Run("out of range percentages pass through", func(t *testing.T) {
		got := calculation.CalculateHonorarios(1000, -10, 150)

		assertFloat(t, "honorariosBroker", got.HonorariosBroker, 1500)
		assertFloat(t, "honorariosAsesor", got.HonorariosAsesor, -150)
	})
}

// TestCalculateTotalHonorariosBroker tests the half-credit adjusted sum.
//
// WHY: Team rankings and the displayed totals must agree on how shared deals
// are credited; a regression here silently reorders agents.
func TestCalculateTotalHonorariosBroker(t *testing.T) {
	tests := []struct {
		name      string
		adicional string
		expected  float64
	}{
		{name: "shared with different co-advisor counts half", adicional: "B", expected: 500},
		{name: "co-advisor equal to advisor counts full", adicional: "A", expected: 1000},
		{name: "no co-advisor counts full", adicional: "", expected: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := []model.Operation{{UserUID: "A", UserUIDAdicional: tt.adicional, HonorariosBroker: 1000}}

			assertFloat(t, "adjusted", calculation.CalculateTotalHonorariosBroker(ops), tt.expected)
			assertFloat(t, "straight", calculation.SumHonorariosBroker(ops), 1000)
		})
	}

	t.Run("empty input is zero", func(t *testing.T) {
		if got := calculation.CalculateTotalHonorariosBroker(nil); got != 0 {
			t.Errorf("Expected 0, got %v", got)
		}
	})
}
