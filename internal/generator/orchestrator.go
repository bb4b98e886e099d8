package generator

import (
	"fmt"
	"time"

	"github.com/spatsahani4100-alt/salesgen/internal/data"
	"github.com/spatsahani4100-alt/salesgen/internal/patterns"
	"github.com/spatsahani4100-alt/salesgen/internal/utils"
)

// Orchestrator drives a full generation run: one batch per (year,
// month) pair in the configured range, one CSV file per batch, with
// running ID counters and aggregate statistics.
type Orchestrator struct {
	rng     *utils.Random
	catalog *data.Catalog
	pattern *patterns.SeasonalPattern
	config  OrchestratorConfig
	opts    OrchestratorOptions
}

// OrchestratorConfig holds settings for a generation run.
type OrchestratorConfig struct {
	StartYear           int
	EndYear             int
	BaseRecordsPerMonth int
	OutputDir           string
	Seed                int64

	// ID sequence starting offsets
	CustomerIDStart int64
	SaleIDStart     int64

	// Seasonal pattern; nil selects the default US auto curve
	Pattern *patterns.SeasonalPattern
}

// OrchestratorOptions holds optional settings for the orchestrator.
type OrchestratorOptions struct {
	// MonthDone, when set, is called after each month's file is
	// written. Used by the CLI for per-month progress lines.
	MonthDone func(stat MonthlyStat, path string)
}

// GenerationResult holds the outcome of a completed run.
type GenerationResult struct {
	Stats    *RunStats
	Seed     uint64
	Duration time.Duration
}

// NewOrchestrator loads the reference catalog and seeds the RNG.
func NewOrchestrator(config OrchestratorConfig, opts OrchestratorOptions) (*Orchestrator, error) {
	catalog, err := data.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load reference catalog: %w", err)
	}

	pattern := config.Pattern
	if pattern == nil {
		pattern = patterns.NewUSAutoPattern()
	}

	return &Orchestrator{
		rng:     utils.NewRandom(config.Seed),
		catalog: catalog,
		pattern: pattern,
		config:  config,
		opts:    opts,
	}, nil
}

// Seed returns the effective RNG seed, useful for echoing auto-picked
// seeds so a run can be reproduced.
func (o *Orchestrator) Seed() uint64 {
	return o.rng.Seed()
}

// Pattern returns the seasonal pattern in effect.
func (o *Orchestrator) Pattern() *patterns.SeasonalPattern {
	return o.pattern
}

// Run generates every month in the configured range in order. The
// first persistence failure aborts the run; files already written stay
// on disk and the error names the last month that completed.
func (o *Orchestrator) Run() (*GenerationResult, error) {
	startTime := time.Now()
	stats := &RunStats{}

	customerOffset := o.config.CustomerIDStart
	saleOffset := o.config.SaleIDStart
	lastCompleted := "none"

	for year := o.config.StartYear; year <= o.config.EndYear; year++ {
		for month := time.January; month <= time.December; month++ {
			recordCount := o.pattern.RecordsForMonth(o.config.BaseRecordsPerMonth, month)

			batch := NewBatchGenerator(o.rng.Fork(), o.catalog).Generate(year, month, recordCount, IDContext{
				CustomerOffset: customerOffset,
				SaleOffset:     saleOffset,
			})

			path, err := WriteMonthCSV(batch.Sales, o.config.OutputDir, year, month)
			if err != nil {
				return nil, fmt.Errorf("persisting %d-%02d: %w (last completed month: %s)",
					year, int(month), err, lastCompleted)
			}

			stat := MonthlyStat{
				Year:    year,
				Month:   month,
				Records: recordCount,
				Revenue: batch.Revenue,
			}
			stats.Add(stat)

			customerOffset += int64(recordCount)
			saleOffset += int64(recordCount)
			lastCompleted = fmt.Sprintf("%d-%02d", year, int(month))

			if o.opts.MonthDone != nil {
				o.opts.MonthDone(stat, path)
			}
		}
	}

	return &GenerationResult{
		Stats:    stats,
		Seed:     o.rng.Seed(),
		Duration: time.Since(startTime),
	}, nil
}
