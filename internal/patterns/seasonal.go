// Package patterns models the seasonal shape of US auto retail demand
// as per-month volume multipliers.
package patterns

import (
	"fmt"
	"time"
)

// SeasonalPattern maps each calendar month to a demand multiplier.
// Monthly record counts are the configured base volume scaled by the
// month's multiplier.
type SeasonalPattern struct {
	// Multipliers indexed 0-11 for January-December
	multipliers [12]float64
}

// NewUSAutoPattern returns the default US auto industry seasonal curve.
// Spring and early summer peak, winter trough, year-end clearance bump.
func NewUSAutoPattern() *SeasonalPattern {
	return &SeasonalPattern{
		multipliers: [12]float64{
			0.75, // January - post-holiday low
			0.80, // February - winter low
			1.10, // March - spring, tax refunds
			1.15, // April - spring
			1.25, // May - spring peak
			1.30, // June - summer peak
			1.25, // July - summer
			1.10, // August - back-to-school
			0.95, // September - model year transition
			1.00, // October
			1.05, // November
			1.20, // December - year-end clearance
		},
	}
}

// NewFlatPattern returns a pattern with every month at 1.0.
func NewFlatPattern() *SeasonalPattern {
	p := &SeasonalPattern{}
	for i := range p.multipliers {
		p.multipliers[i] = 1.0
	}
	return p
}

// FromMultipliers builds a pattern from a month-number keyed table.
// The table must cover all 12 months with positive values.
func FromMultipliers(table map[int]float64) (*SeasonalPattern, error) {
	p := &SeasonalPattern{}
	for m := 1; m <= 12; m++ {
		mult, ok := table[m]
		if !ok {
			return nil, fmt.Errorf("multiplier table missing month %d", m)
		}
		if mult <= 0 {
			return nil, fmt.Errorf("multiplier for month %d must be positive, got %g", m, mult)
		}
		p.multipliers[m-1] = mult
	}
	return p, nil
}

// Multiplier returns the demand multiplier for a month.
func (p *SeasonalPattern) Multiplier(month time.Month) float64 {
	if month < time.January || month > time.December {
		return 1.0
	}
	return p.multipliers[month-1]
}

// RecordsForMonth scales the base volume by the month's multiplier.
// The product is truncated, not rounded: base 10 at 0.75 yields 7.
func (p *SeasonalPattern) RecordsForMonth(base int, month time.Month) int {
	return int(float64(base) * p.Multiplier(month))
}

// Quarter returns the calendar quarter (1-4) a month belongs to.
func Quarter(month time.Month) int {
	return (int(month)-1)/3 + 1
}
