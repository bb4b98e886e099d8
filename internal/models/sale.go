package models

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Sale represents a single vehicle sale record. Records are created
// fully populated by the sampler and never mutated afterwards.
type Sale struct {
	// Identifiers - zero-padded sequential strings, globally unique
	// and strictly increasing across the whole run
	SaleID     string
	CustomerID string

	// When and where
	SaleDate   time.Time
	Dealership string
	State      string

	// What was sold
	CarMake  string
	CarModel string
	CarYear  int
	Category string
	Color    string
	Mileage  int // delivery miles on a new vehicle

	// Financials - rounded to cents
	SalePrice     decimal.Decimal
	PaymentMethod string
	Commission    decimal.Decimal

	// Who sold it
	Salesperson string
}

// SaleCSVHeaders returns the fixed output column order.
func SaleCSVHeaders() []string {
	return []string{
		"sale_id", "sale_date", "customer_id", "car_make", "car_model",
		"car_year", "category", "color", "mileage", "sale_price",
		"payment_method", "dealership", "salesperson", "state", "commission",
	}
}

// CSVRow renders the sale in header order. Dates are YYYY-MM-DD and
// monetary fields always carry two decimal places.
func (s *Sale) CSVRow() []string {
	return []string{
		s.SaleID,
		s.SaleDate.Format("2006-01-02"),
		s.CustomerID,
		s.CarMake,
		s.CarModel,
		strconv.Itoa(s.CarYear),
		s.Category,
		s.Color,
		strconv.Itoa(s.Mileage),
		s.SalePrice.StringFixed(2),
		s.PaymentMethod,
		s.Dealership,
		s.Salesperson,
		s.State,
		s.Commission.StringFixed(2),
	}
}
