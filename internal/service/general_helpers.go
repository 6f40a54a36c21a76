package service

import (
	"math"
	"time"
)

// RoundingPrecision is the scale used by round (two decimal places).
const RoundingPrecision = 100

// round rounds a float64 value to two decimal places.
// The rounding uses the standard "round half up" approach via math.Round.
//
// Example:
//
//	round(123.456789)  // returns 123.46
//	round(1.994)       // returns 1.99
func round(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}

// firstOfMonth returns midnight UTC on the first day of t's month.
func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// lastOfMonth returns midnight UTC on the last day of t's month.
func lastOfMonth(t time.Time) time.Time {
	return firstOfMonth(t).AddDate(0, 1, -1)
}
