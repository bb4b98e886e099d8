package generator

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spatsahani4100-alt/salesgen/internal/data"
	"github.com/spatsahani4100-alt/salesgen/internal/models"
	"github.com/spatsahani4100-alt/salesgen/internal/utils"
)

// BatchResult holds one month of generated sales, sorted by sale date,
// plus the batch revenue.
type BatchResult struct {
	Sales   []models.Sale
	Revenue decimal.Decimal
}

// BatchGenerator produces one month's worth of sales records at a time.
type BatchGenerator struct {
	sampler *Sampler
}

// NewBatchGenerator creates a batch generator drawing from the catalog.
func NewBatchGenerator(rng *utils.Random, catalog *data.Catalog) *BatchGenerator {
	return &BatchGenerator{
		sampler: NewSampler(rng, catalog),
	}
}

// Generate samples recordCount independent sales for the given month,
// sorts them by sale date and sums the revenue. The sort is stable:
// same-day records keep their original sample order.
func (g *BatchGenerator) Generate(year int, month time.Month, recordCount int, ids IDContext) BatchResult {
	daysInMonth := DaysInMonth(year, month)

	sales := make([]models.Sale, 0, recordCount)
	for i := 0; i < recordCount; i++ {
		sales = append(sales, g.sampler.SampleSale(year, month, daysInMonth, int64(i), ids))
	}

	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].SaleDate.Before(sales[j].SaleDate)
	})

	revenue := decimal.Zero
	for i := range sales {
		revenue = revenue.Add(sales[i].SalePrice)
	}

	return BatchResult{Sales: sales, Revenue: revenue}
}
