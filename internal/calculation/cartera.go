package calculation

import "github.com/ndewijer/Brokerage-Backoffice-Backend/internal/model"

// DefaultPorcentajeVenta is the seller-side percentage assumed when an
// operation has none recorded.
const DefaultPorcentajeVenta = 3.0

// CalculateCarteraActiva values the active portfolio: exclusive, in-progress,
// non-rental operations. Each row's contingent value is
// valorOperacion * porcentajeVenta / 100.
func CalculateCarteraActiva(operations []model.Operation) model.CarteraActiva {
	cartera := model.CarteraActiva{Items: []model.CarteraActivaItem{}}

	for _, op := range operations {
		if !op.Exclusiva || !isInProgress(op) || IsRental(op) {
			continue
		}

		porcentaje := valueOf(op.PorcentajePuntaVendedora)
		if porcentaje == 0 {
			porcentaje = DefaultPorcentajeVenta
		}
		valor := orZero(op.ValorReserva)

		item := model.CarteraActivaItem{
			OperationID:     op.ID,
			Direccion:       op.DireccionReserva,
			ValorOperacion:  valor,
			PorcentajeVenta: porcentaje,
			ValorActivo:     valor * porcentaje / 100,
		}

		cartera.Items = append(cartera.Items, item)
		cartera.TotalValorOperacion += item.ValorOperacion
		cartera.TotalPorcentajeVenta += item.PorcentajeVenta
		cartera.TotalValorActivo += item.ValorActivo
	}

	return cartera
}
