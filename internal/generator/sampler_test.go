package generator

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatsahani4100-alt/salesgen/internal/data"
	"github.com/spatsahani4100-alt/salesgen/internal/utils"
)

func TestSampleSaleBounds(t *testing.T) {
	catalog, err := data.Load()
	require.NoError(t, err)

	// Base price lookup by make+model for bound checks
	basePrices := make(map[string]decimal.Decimal)
	for _, v := range catalog.Vehicles {
		basePrices[v.Make+"|"+v.Model] = decimal.NewFromInt(v.BasePrice)
	}

	s := NewSampler(utils.NewRandom(42), catalog)
	ids := IDContext{CustomerOffset: 1000000, SaleOffset: 20000000}
	days := DaysInMonth(2020, time.March)

	// Rounding to cents can push the price a hair past the exact
	// bounds, so allow half a cent of slack on either side.
	slack := decimal.NewFromFloat(0.005)

	for i := 0; i < 5000; i++ {
		sale := s.SampleSale(2020, time.March, days, int64(i), ids)

		base, ok := basePrices[sale.CarMake+"|"+sale.CarModel]
		require.True(t, ok, "unknown vehicle %s %s", sale.CarMake, sale.CarModel)

		lo := base.Mul(decimal.NewFromFloat(0.95)).Sub(slack)
		hi := base.Mul(decimal.NewFromFloat(1.15)).Add(slack)
		assert.True(t, sale.SalePrice.GreaterThanOrEqual(lo),
			"price %s below 0.95x base %s", sale.SalePrice, base)
		assert.True(t, sale.SalePrice.LessThanOrEqual(hi),
			"price %s above 1.15x base %s", sale.SalePrice, base)

		commLo := sale.SalePrice.Mul(decimal.NewFromFloat(0.02)).Sub(slack)
		commHi := sale.SalePrice.Mul(decimal.NewFromFloat(0.05)).Add(slack)
		assert.True(t, sale.Commission.GreaterThanOrEqual(commLo),
			"commission %s below 2%% of %s", sale.Commission, sale.SalePrice)
		assert.True(t, sale.Commission.LessThanOrEqual(commHi),
			"commission %s above 5%% of %s", sale.Commission, sale.SalePrice)

		assert.GreaterOrEqual(t, sale.Mileage, 5)
		assert.LessOrEqual(t, sale.Mileage, 50)

		assert.True(t, sale.CarYear == 2019 || sale.CarYear == 2020,
			"car year %d outside {2019, 2020}", sale.CarYear)

		assert.Equal(t, 2020, sale.SaleDate.Year())
		assert.Equal(t, time.March, sale.SaleDate.Month())
		assert.GreaterOrEqual(t, sale.SaleDate.Day(), 1)
		assert.LessOrEqual(t, sale.SaleDate.Day(), days)

		assert.Contains(t, []string{"Cash", "Finance", "Lease"}, sale.PaymentMethod)
		assert.Contains(t, catalog.Colors, sale.Color)
		assert.Contains(t, catalog.Dealerships, sale.Dealership)
		assert.Contains(t, catalog.Salespeople, sale.Salesperson)
		assert.Contains(t, catalog.States, sale.State)
	}
}

func TestSampleSaleIDs(t *testing.T) {
	catalog, err := data.Load()
	require.NoError(t, err)

	s := NewSampler(utils.NewRandom(1), catalog)
	ids := IDContext{CustomerOffset: 1000000, SaleOffset: 20000000}

	sale := s.SampleSale(2020, time.January, 31, 0, ids)
	assert.Equal(t, "CUST1000000", sale.CustomerID)
	assert.Equal(t, "SALE20000000", sale.SaleID)

	sale = s.SampleSale(2020, time.January, 31, 6, ids)
	assert.Equal(t, "CUST1000006", sale.CustomerID)
	assert.Equal(t, "SALE20000006", sale.SaleID)
}

func TestIDFormatting(t *testing.T) {
	// Small offsets are zero-padded to the fixed widths
	assert.Equal(t, "CUST0000042", FormatCustomerID(42))
	assert.Equal(t, "SALE00000042", FormatSaleID(42))
	assert.Equal(t, "CUST1000000", FormatCustomerID(1000000))
	assert.Equal(t, "SALE20000000", FormatSaleID(20000000))
}

func TestSampleSaleDeterminism(t *testing.T) {
	catalog, err := data.Load()
	require.NoError(t, err)

	s1 := NewSampler(utils.NewRandom(99), catalog)
	s2 := NewSampler(utils.NewRandom(99), catalog)
	ids := IDContext{}

	for i := 0; i < 500; i++ {
		a := s1.SampleSale(2021, time.July, 31, int64(i), ids)
		b := s2.SampleSale(2021, time.July, 31, int64(i), ids)
		assert.Equal(t, a, b)
	}
}
