package generator

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spatsahani4100-alt/salesgen/internal/config"
	"github.com/spatsahani4100-alt/salesgen/internal/data"
	"github.com/spatsahani4100-alt/salesgen/internal/models"
	"github.com/spatsahani4100-alt/salesgen/internal/utils"
)

// IDContext carries the running sequence offsets a batch assigns its
// customer and sale IDs from. The driver owns the counters and passes
// the current offsets by value into each batch.
type IDContext struct {
	CustomerOffset int64
	SaleOffset     int64
}

// Sampler draws one fully populated sale record at a time from the
// reference catalog. Every draw domain is fixed and non-empty, so
// sampling cannot fail.
type Sampler struct {
	rng     *utils.Random
	catalog *data.Catalog

	// cached weight tables so per-record sampling allocates nothing
	paymentWeights []float64
	carYearWeights []float64
}

// NewSampler creates a sampler drawing from the given catalog.
func NewSampler(rng *utils.Random, catalog *data.Catalog) *Sampler {
	return &Sampler{
		rng:            rng,
		catalog:        catalog,
		paymentWeights: catalog.PaymentWeights(),
		carYearWeights: []float64{config.PriorYearWeight, config.CurrentYearWeight},
	}
}

// SampleSale generates one record for the given month. seq is the
// record's position within its batch; IDs are the batch offsets plus
// seq, keeping them unique and contiguous across the run.
func (s *Sampler) SampleSale(year int, month time.Month, daysInMonth int, seq int64, ids IDContext) models.Sale {
	day := s.rng.IntRange(1, daysInMonth)
	saleDate := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	vehicle := s.catalog.Vehicles[s.rng.IntN(len(s.catalog.Vehicles))]

	// Markup between -5% and +15% of base price
	variation := s.rng.Float64Range(config.PriceVariationMin, config.PriceVariationMax)
	basePrice := decimal.NewFromInt(vehicle.BasePrice)
	salePrice := utils.RoundCents(basePrice.Mul(decimal.NewFromFloat(1 + variation)))

	color := s.rng.PickString(s.catalog.Colors)
	dealership := s.rng.PickString(s.catalog.Dealerships)
	payment := s.catalog.PaymentMethods[s.rng.WeightedPickFloat(s.paymentWeights)].Name
	salesperson := s.rng.PickString(s.catalog.Salespeople)
	state := s.rng.PickString(s.catalog.States)

	// Model year: mostly current-year stock, a minority prior-year.
	// The weighting is identical across the whole supported range.
	carYear := year - 1 + s.rng.WeightedPickFloat(s.carYearWeights)

	mileage := s.rng.IntRange(config.MileageMin, config.MileageMax)

	rate := s.rng.Float64Range(config.CommissionRateMin, config.CommissionRateMax)
	commission := utils.RoundCents(salePrice.Mul(decimal.NewFromFloat(rate)))

	return models.Sale{
		SaleID:        FormatSaleID(ids.SaleOffset + seq),
		CustomerID:    FormatCustomerID(ids.CustomerOffset + seq),
		SaleDate:      saleDate,
		Dealership:    dealership,
		State:         state,
		CarMake:       vehicle.Make,
		CarModel:      vehicle.Model,
		CarYear:       carYear,
		Category:      vehicle.Category,
		Color:         color,
		Mileage:       mileage,
		SalePrice:     salePrice,
		PaymentMethod: payment,
		Commission:    commission,
		Salesperson:   salesperson,
	}
}

// FormatCustomerID renders a customer sequence number as CUST%07d.
func FormatCustomerID(n int64) string {
	return fmt.Sprintf("CUST%07d", n)
}

// FormatSaleID renders a sale sequence number as SALE%08d.
func FormatSaleID(n int64) string {
	return fmt.Sprintf("SALE%08d", n)
}
