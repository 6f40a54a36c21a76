package calculation

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func newPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}

// FormatNumber renders an amount for the operations table: thousands
// separators, two decimals, magnitude only (the sign is dropped).
func FormatNumber(value float64) string {
	return newPrinter().Sprintf("%.2f", math.Abs(orZero(value)))
}

// FormatPercentage renders a percentage for the operations table, magnitude only.
func FormatPercentage(value float64) string {
	return newPrinter().Sprintf("%.2f%%", math.Abs(orZero(value)))
}
