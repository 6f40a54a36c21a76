package model

import (
	"encoding/json"
	"strconv"
	"time"
)

// MonthPercentage is the broker fee percentage for one month.
// Present is false when the month had no operations, which is distinct from a 0% month.
type MonthPercentage struct {
	Value   float64
	Present bool
}

// GrossByMonth holds per-month broker fee percentages for a single year.
type GrossByMonth struct {
	Year   int
	Months [12]MonthPercentage
}

// Month returns the percentage for month m and whether that month had data.
func (g GrossByMonth) Month(m time.Month) (float64, bool) {
	if m < time.January || m > time.December {
		return 0, false
	}
	mp := g.Months[m-1]
	return mp.Value, mp.Present
}

// Set stores a percentage for month m.
func (g *GrossByMonth) Set(m time.Month, value float64) {
	if m < time.January || m > time.December {
		return
	}
	g.Months[m-1] = MonthPercentage{Value: value, Present: true}
}

// Len returns the number of months with data.
func (g GrossByMonth) Len() int {
	n := 0
	for _, mp := range g.Months {
		if mp.Present {
			n++
		}
	}
	return n
}

// MarshalJSON encodes only the months with data, keyed by month number.
func (g GrossByMonth) MarshalJSON() ([]byte, error) {
	months := make(map[string]float64, g.Len())
	for i, mp := range g.Months {
		if mp.Present {
			months[strconv.Itoa(i+1)] = mp.Value
		}
	}
	return json.Marshal(struct {
		Year   int                `json:"year"`
		Months map[string]float64 `json:"months"`
	}{
		Year:   g.Year,
		Months: months,
	})
}
