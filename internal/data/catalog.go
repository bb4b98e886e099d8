// Package data loads the embedded reference catalog the sampler draws
// from: the vehicle inventory with base prices, the categorical
// attribute sets, and the payment method weights.
package data

import (
	"embed"
	"encoding/json"
	"fmt"
	"math"
)

//go:embed catalog/catalog.json
var catalogFiles embed.FS

// Vehicle is one sellable entry in the inventory.
type Vehicle struct {
	Make      string `json:"make"`
	Model     string `json:"model"`
	BasePrice int64  `json:"base_price"` // whole dollars, MSRP before markup
	Category  string `json:"category"`
}

// PaymentMethod pairs a payment type with its draw weight.
type PaymentMethod struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// Catalog holds all reference data. Loaded once at startup and treated
// as immutable afterwards.
type Catalog struct {
	Vehicles       []Vehicle       `json:"vehicles"`
	Colors         []string        `json:"colors"`
	Dealerships    []string        `json:"dealerships"`
	Salespeople    []string        `json:"salespeople"`
	States         []string        `json:"states"`
	PaymentMethods []PaymentMethod `json:"payment_methods"`
}

// Load parses and validates the embedded catalog.
func Load() (*Catalog, error) {
	raw, err := catalogFiles.ReadFile("catalog/catalog.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded catalog: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return &c, nil
}

// validate ensures every draw domain is non-empty and the payment
// weights form a proper distribution.
func (c *Catalog) validate() error {
	if len(c.Vehicles) == 0 {
		return fmt.Errorf("no vehicles defined")
	}
	for i, v := range c.Vehicles {
		if v.Make == "" || v.Model == "" {
			return fmt.Errorf("vehicle %d missing make or model", i)
		}
		if v.BasePrice <= 0 {
			return fmt.Errorf("vehicle %s %s has non-positive base price", v.Make, v.Model)
		}
	}

	if len(c.Colors) == 0 {
		return fmt.Errorf("no colors defined")
	}
	if len(c.Dealerships) == 0 {
		return fmt.Errorf("no dealerships defined")
	}
	if len(c.Salespeople) == 0 {
		return fmt.Errorf("no salespeople defined")
	}
	if len(c.States) == 0 {
		return fmt.Errorf("no states defined")
	}

	if len(c.PaymentMethods) == 0 {
		return fmt.Errorf("no payment methods defined")
	}
	var sum float64
	for _, pm := range c.PaymentMethods {
		if pm.Weight <= 0 {
			return fmt.Errorf("payment method %q has non-positive weight", pm.Name)
		}
		sum += pm.Weight
	}
	if math.Abs(sum-1.0) > 0.001 {
		return fmt.Errorf("payment method weights sum to %.3f, expected 1.0", sum)
	}

	return nil
}

// PaymentWeights returns the payment method weights in catalog order,
// for use with weighted picks.
func (c *Catalog) PaymentWeights() []float64 {
	weights := make([]float64, len(c.PaymentMethods))
	for i, pm := range c.PaymentMethods {
		weights[i] = pm.Weight
	}
	return weights
}
