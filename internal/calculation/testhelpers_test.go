package calculation_test

import (
	"math"
	"testing"

	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/model"
)

const tolerance = 1e-9

func ptr(v float64) *float64 {
	return &v
}

func assertFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("Expected %s %v, got %v", name, want, got)
	}
}

func closedSale(id string, valor, broker float64, fecha string) model.Operation {
	return model.Operation{
		ID:               id,
		TipoOperacion:    model.TipoVenta,
		Estado:           model.EstadoCerrada,
		ValorReserva:     valor,
		HonorariosBroker: broker,
		UserUID:          "agent-1",
		FechaOperacion:   fecha,
	}
}
