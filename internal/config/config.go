package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all settings for a generation run.
type Config struct {
	// Random seed for reproducibility (0 = random)
	Seed int64 `mapstructure:"seed"`

	// Year range, inclusive on both ends
	StartYear int `mapstructure:"start_year"`
	EndYear   int `mapstructure:"end_year"`

	// Unscaled monthly volume before the seasonal multiplier
	BaseRecordsPerMonth int `mapstructure:"base_records_per_month"`

	// Output directory for monthly CSV files (created if absent)
	OutputDir string `mapstructure:"output_dir"`

	// ID sequence starting offsets
	CustomerIDStart int64 `mapstructure:"customer_id_start"`
	SaleIDStart     int64 `mapstructure:"sale_id_start"`

	// Optional seasonal multiplier overrides, keyed by month number
	// 1-12. When set, all 12 months must be present and positive.
	// When empty, the built-in US auto industry curve is used.
	MonthlyMultipliers map[int]float64 `mapstructure:"monthly_multipliers"`

	// Logging
	Verbose bool `mapstructure:"verbose"`
}

// DefaultConfig returns a configuration with the compile-time defaults.
func DefaultConfig() *Config {
	return &Config{
		Seed:                0,
		StartYear:           DefaultStartYear,
		EndYear:             DefaultEndYear,
		BaseRecordsPerMonth: DefaultBaseRecordsPerMonth,
		OutputDir:           DefaultOutputDir,
		CustomerIDStart:     CustomerIDStart,
		SaleIDStart:         SaleIDStart,
	}
}

// Load reads configuration from viper into a Config struct.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration before generation starts. All
// problems are reported together rather than one at a time.
func (c *Config) Validate() error {
	var errs []string

	if c.StartYear < 1 {
		errs = append(errs, "start_year must be positive")
	}
	if c.EndYear < c.StartYear {
		errs = append(errs, fmt.Sprintf("end_year (%d) must not precede start_year (%d)", c.EndYear, c.StartYear))
	}
	if c.BaseRecordsPerMonth <= 0 {
		errs = append(errs, "base_records_per_month must be positive")
	}
	if c.OutputDir == "" {
		errs = append(errs, "output_dir must not be empty")
	}
	if c.CustomerIDStart < 0 {
		errs = append(errs, "customer_id_start must be non-negative")
	}
	if c.SaleIDStart < 0 {
		errs = append(errs, "sale_id_start must be non-negative")
	}

	if len(c.MonthlyMultipliers) > 0 {
		for m := 1; m <= 12; m++ {
			mult, ok := c.MonthlyMultipliers[m]
			if !ok {
				errs = append(errs, fmt.Sprintf("monthly_multipliers missing month %d", m))
				continue
			}
			if mult <= 0 {
				errs = append(errs, fmt.Sprintf("monthly_multipliers[%d] must be positive, got %g", m, mult))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation errors:\n  - %s", joinErrors(errs))
	}

	return nil
}

// joinErrors joins error messages with newline and bullet points
func joinErrors(errs []string) string {
	result := errs[0]
	for i := 1; i < len(errs); i++ {
		result += "\n  - " + errs[i]
	}
	return result
}
