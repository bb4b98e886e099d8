// Package config contains runtime configuration and compile-time
// defaults for the sales data generator. Edit the constants here and
// recompile to tune sampling behavior.
package config

// Generation range and volume defaults
const (
	// DefaultStartYear is the first year of generated history
	DefaultStartYear = 2015

	// DefaultEndYear is the last year of generated history (inclusive)
	DefaultEndYear = 2024

	// DefaultBaseRecordsPerMonth is the unscaled monthly sales volume,
	// before the seasonal multiplier is applied
	DefaultBaseRecordsPerMonth = 100000

	// DefaultOutputDir is where monthly CSV files are written
	DefaultOutputDir = "./car_sales_data"
)

// ID sequence starting offsets. Customer and sale IDs are assigned
// sequentially from these values across the whole run.
const (
	// CustomerIDStart seeds the CUST counter (rendered as CUST%07d)
	CustomerIDStart = 1000000

	// SaleIDStart seeds the SALE counter (rendered as SALE%08d)
	SaleIDStart = 20000000
)

// Per-record sampling parameters
const (
	// PriceVariationMin/Max bound the markup applied to a vehicle's
	// base price: sale price = base * (1 + U[min, max])
	PriceVariationMin = -0.05
	PriceVariationMax = 0.15

	// CommissionRateMin/Max bound the salesperson commission as a
	// fraction of the sale price
	CommissionRateMin = 0.02
	CommissionRateMax = 0.05

	// MileageMin/Max bound delivery miles on a new vehicle
	MileageMin = 5
	MileageMax = 50

	// PriorYearWeight/CurrentYearWeight bias the model year draw:
	// most sales are current-year stock, a minority are prior-year
	PriorYearWeight   = 0.3
	CurrentYearWeight = 0.7
)
