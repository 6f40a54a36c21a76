package calculation

import (
	"math"
	"time"

	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/model"
)

// CalculateGrossByMonth buckets operations of the given year by calendar month
// and computes, per month, the adjusted broker fee total as a percentage of the
// reservation value total, rounded to two decimals.
//
// Operations from other years or with unparsable dates are skipped. Status is
// not filtered: open and closed operations contribute equally. Months without
// operations are left absent, and a month whose reservation total is 0 reports 0.
func CalculateGrossByMonth(operations []model.Operation, year int) model.GrossByMonth {
	result := model.GrossByMonth{Year: year}

	var buckets [12][]model.Operation
	for _, op := range operations {
		date, ok := OperationDate(op)
		if !ok || date.Year() != year {
			continue
		}
		buckets[date.Month()-1] = append(buckets[date.Month()-1], op)
	}

	for i, bucket := range buckets {
		if len(bucket) == 0 {
			continue
		}

		var totalReserva float64
		for _, op := range bucket {
			totalReserva += orZero(op.ValorReserva)
		}
		totalBroker := CalculateTotalHonorariosBroker(bucket)

		percentage := 0.0
		if totalReserva > 0 {
			percentage = math.Round((totalBroker*100/totalReserva)*100) / 100
		}
		result.Set(time.Month(i+1), percentage)
	}

	return result
}
