package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultStartYear, cfg.StartYear)
	assert.Equal(t, DefaultEndYear, cfg.EndYear)
	assert.Equal(t, DefaultBaseRecordsPerMonth, cfg.BaseRecordsPerMonth)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, int64(CustomerIDStart), cfg.CustomerIDStart)
	assert.Equal(t, int64(SaleIDStart), cfg.SaleIDStart)
	assert.Zero(t, cfg.Seed)
}

func TestValidate(t *testing.T) {
	fullMultipliers := func() map[int]float64 {
		m := make(map[int]float64, 12)
		for i := 1; i <= 12; i++ {
			m[i] = 1.0
		}
		return m
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults pass",
			mutate: func(c *Config) {},
		},
		{
			name:    "end year before start year",
			mutate:  func(c *Config) { c.StartYear = 2024; c.EndYear = 2015 },
			wantErr: "end_year",
		},
		{
			name:    "zero base records",
			mutate:  func(c *Config) { c.BaseRecordsPerMonth = 0 },
			wantErr: "base_records_per_month",
		},
		{
			name:    "empty output dir",
			mutate:  func(c *Config) { c.OutputDir = "" },
			wantErr: "output_dir",
		},
		{
			name:    "negative id offsets",
			mutate:  func(c *Config) { c.CustomerIDStart = -1; c.SaleIDStart = -1 },
			wantErr: "customer_id_start",
		},
		{
			name: "multipliers missing a month",
			mutate: func(c *Config) {
				m := fullMultipliers()
				delete(m, 7)
				c.MonthlyMultipliers = m
			},
			wantErr: "missing month 7",
		},
		{
			name: "non-positive multiplier",
			mutate: func(c *Config) {
				m := fullMultipliers()
				m[3] = 0
				c.MonthlyMultipliers = m
			},
			wantErr: "monthly_multipliers[3]",
		},
		{
			name:   "complete multipliers pass",
			mutate: func(c *Config) { c.MonthlyMultipliers = fullMultipliers() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateReportsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartYear = 0
	cfg.BaseRecordsPerMonth = -5
	cfg.OutputDir = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start_year")
	assert.Contains(t, err.Error(), "base_records_per_month")
	assert.Contains(t, err.Error(), "output_dir")
}
