package calculation

import "github.com/ndewijer/Brokerage-Backoffice-Backend/internal/model"

// Honorarios is the gross fee split of a single operation.
type Honorarios struct {
	HonorariosBroker float64 `json:"honorariosBroker"`
	HonorariosAsesor float64 `json:"honorariosAsesor"`
}

// CalculateHonorarios computes the broker and advisor fees for a reservation value.
//
// The broker fee is pctBroker percent of the reservation value. The advisor fee
// is pctAsesor percent of the broker's share, evaluated as v*b*a/10000 in that
// order. Inputs are not bounded; the caller is responsible for 0-100 percentages.
//
// Example:
//
//	CalculateHonorarios(100000, 45, 6) // {HonorariosBroker: 6000, HonorariosAsesor: 2700}
func CalculateHonorarios(valorReserva, pctAsesor, pctBroker float64) Honorarios {
	return Honorarios{
		HonorariosBroker: valorReserva * pctBroker / 100,
		HonorariosAsesor: valorReserva * pctBroker * pctAsesor / 10000,
	}
}

// CalculateTotalHonorariosBroker sums the stored broker fees, crediting shared
// operations (a co-advisor different from the primary advisor) at half value.
func CalculateTotalHonorariosBroker(operations []model.Operation) float64 {
	var total float64
	for _, op := range operations {
		factor := 1.0
		if op.IsShared() {
			factor = 0.5
		}
		total += orZero(op.HonorariosBroker) * factor
	}
	return total
}

// SumHonorariosBroker is the straight sum of stored broker fees with no
// half-credit adjustment.
func SumHonorariosBroker(operations []model.Operation) float64 {
	var total float64
	for _, op := range operations {
		total += orZero(op.HonorariosBroker)
	}
	return total
}
