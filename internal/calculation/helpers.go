package calculation

import (
	"math"
	"strings"
	"time"

	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/model"
)

// dateLayouts are tried in order when resolving operation dates.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// orZero maps NaN to 0 so a single malformed amount cannot poison a sum.
func orZero(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// valueOf dereferences an optional percentage, treating nil as 0.
func valueOf(p *float64) float64 {
	if p == nil {
		return 0
	}
	return orZero(*p)
}

// parseDate parses an ISO date or timestamp. Unparsable input reports false.
func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// OperationDate resolves the date an operation is reported under:
// fecha_operacion, or fecha_reserva when fecha_operacion is empty.
func OperationDate(op model.Operation) (time.Time, bool) {
	raw := op.FechaOperacion
	if strings.TrimSpace(raw) == "" {
		raw = op.FechaReserva
	}
	return parseDate(raw)
}

func isClosed(op model.Operation) bool {
	return op.Estado == model.EstadoCerrada
}

func isInProgress(op model.Operation) bool {
	return op.Estado == model.EstadoEnCurso
}

// IsRental reports whether the operation type is any rental variant.
func IsRental(op model.Operation) bool {
	return strings.HasPrefix(op.TipoOperacion, model.TipoAlquilerPrefix)
}

func isVentaOrDesarrollo(op model.Operation) bool {
	return op.TipoOperacion == model.TipoVenta || op.TipoOperacion == model.TipoDesarrolloInmobiliario
}

// representsBothSides reports whether the advisor holds both puntas of the deal.
func representsBothSides(op model.Operation) bool {
	puntas := 0
	if op.PuntaCompradora {
		puntas++
	}
	if op.PuntaVendedora {
		puntas++
	}
	return puntas == 2
}

// average returns sum/count, or 0 when count is 0.
func average(sum float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
