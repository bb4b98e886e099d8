package generator

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spatsahani4100-alt/salesgen/internal/patterns"
)

// MonthlyStat records one generated batch. Append-only: entries are
// never modified after the batch completes.
type MonthlyStat struct {
	Year    int
	Month   time.Month
	Records int
	Revenue decimal.Decimal
}

// RunStats accumulates per-month statistics across a generation run
// and answers the aggregate questions the final report asks.
type RunStats struct {
	months []MonthlyStat
}

// Add appends one completed month.
func (s *RunStats) Add(stat MonthlyStat) {
	s.months = append(s.months, stat)
}

// Months returns the per-month stats in generation order.
func (s *RunStats) Months() []MonthlyStat {
	return s.months
}

// FileCount returns the number of generated monthly files.
func (s *RunStats) FileCount() int {
	return len(s.months)
}

// TotalRecords sums record counts across all months.
func (s *RunStats) TotalRecords() int64 {
	var total int64
	for _, m := range s.months {
		total += int64(m.Records)
	}
	return total
}

// TotalRevenue sums revenue across all months.
func (s *RunStats) TotalRevenue() decimal.Decimal {
	total := decimal.Zero
	for _, m := range s.months {
		total = total.Add(m.Revenue)
	}
	return total
}

// AverageSalePrice is total revenue over total records.
func (s *RunStats) AverageSalePrice() decimal.Decimal {
	records := s.TotalRecords()
	if records == 0 {
		return decimal.Zero
	}
	return s.TotalRevenue().Div(decimal.NewFromInt(records)).Round(2)
}

// AverageRecordsByMonth returns, for each calendar month, the average
// record count across all generated years. Months never generated
// report zero.
func (s *RunStats) AverageRecordsByMonth() [12]float64 {
	var sums [12]int64
	var counts [12]int64
	for _, m := range s.months {
		sums[m.Month-1] += int64(m.Records)
		counts[m.Month-1]++
	}

	var avgs [12]float64
	for i := range sums {
		if counts[i] > 0 {
			avgs[i] = float64(sums[i]) / float64(counts[i])
		}
	}
	return avgs
}

// YearTotal pairs a year with its record count.
type YearTotal struct {
	Year    int
	Records int64
}

// RecordsByYear returns per-year totals in ascending year order.
func (s *RunStats) RecordsByYear() []YearTotal {
	byYear := make(map[int]int64)
	for _, m := range s.months {
		byYear[m.Year] += int64(m.Records)
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	totals := make([]YearTotal, 0, len(years))
	for _, y := range years {
		totals = append(totals, YearTotal{Year: y, Records: byYear[y]})
	}
	return totals
}

// RecordsByQuarter returns total records per calendar quarter, all
// years combined. Index 0 is Q1.
func (s *RunStats) RecordsByQuarter() [4]int64 {
	var totals [4]int64
	for _, m := range s.months {
		totals[patterns.Quarter(m.Month)-1] += int64(m.Records)
	}
	return totals
}
