package generator

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatsahani4100-alt/salesgen/internal/models"
	"github.com/spatsahani4100-alt/salesgen/internal/patterns"
)

func readMonthFile(t *testing.T, dir string, year int, month time.Month) [][]string {
	t.Helper()
	f, err := os.Open(filepath.Join(dir, MonthFilename(year, month) + ".csv"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestOrchestratorSingleYear(t *testing.T) {
	outputDir := t.TempDir()

	o, err := NewOrchestrator(OrchestratorConfig{
		StartYear:           2020,
		EndYear:             2020,
		BaseRecordsPerMonth: 10,
		OutputDir:           outputDir,
		Seed:                42,
		CustomerIDStart:     1000000,
		SaleIDStart:         20000000,
	}, OrchestratorOptions{})
	require.NoError(t, err)

	result, err := o.Run()
	require.NoError(t, err)

	t.Run("one file per month", func(t *testing.T) {
		assert.Equal(t, 12, result.Stats.FileCount())
		for month := time.January; month <= time.December; month++ {
			_, err := os.Stat(filepath.Join(outputDir, MonthFilename(2020, month) + ".csv"))
			assert.NoError(t, err, "missing file for %s", month)
		}
	})

	t.Run("record counts follow the seasonal curve", func(t *testing.T) {
		// base 10 with the default curve: January 10*0.75 truncates to 7
		rows := readMonthFile(t, outputDir, 2020, time.January)
		require.Len(t, rows, 8) // header + 7 records
		assert.Equal(t, models.SaleCSVHeaders(), rows[0])

		rows = readMonthFile(t, outputDir, 2020, time.June)
		assert.Len(t, rows, 14) // header + int(10*1.30)
	})

	t.Run("ids are contiguous across months", func(t *testing.T) {
		jan := readMonthFile(t, outputDir, 2020, time.January)
		custs := make(map[string]bool)
		for _, row := range jan[1:] {
			custs[row[2]] = true
		}
		for i := 0; i < 7; i++ {
			assert.True(t, custs[fmt.Sprintf("CUST%07d", 1000000+i)])
		}

		// February continues where January left off
		feb := readMonthFile(t, outputDir, 2020, time.February)
		febCusts := make(map[string]bool)
		for _, row := range feb[1:] {
			febCusts[row[2]] = true
		}
		assert.True(t, febCusts["CUST1000007"])
		assert.False(t, febCusts["CUST1000006"])
	})

	t.Run("stats match the files", func(t *testing.T) {
		var total int64
		for month := time.January; month <= time.December; month++ {
			rows := readMonthFile(t, outputDir, 2020, month)
			total += int64(len(rows) - 1)
		}
		assert.Equal(t, total, result.Stats.TotalRecords())

		byYear := result.Stats.RecordsByYear()
		require.Len(t, byYear, 1)
		assert.Equal(t, 2020, byYear[0].Year)
		assert.Equal(t, total, byYear[0].Records)
	})
}

func TestOrchestratorDeterminism(t *testing.T) {
	run := func(dir string) {
		o, err := NewOrchestrator(OrchestratorConfig{
			StartYear:           2021,
			EndYear:             2021,
			BaseRecordsPerMonth: 50,
			OutputDir:           dir,
			Seed:                42,
			CustomerIDStart:     1000000,
			SaleIDStart:         20000000,
		}, OrchestratorOptions{})
		require.NoError(t, err)
		_, err = o.Run()
		require.NoError(t, err)
	}

	dirA := t.TempDir()
	dirB := t.TempDir()
	run(dirA)
	run(dirB)

	for month := time.January; month <= time.December; month++ {
		a, err := os.ReadFile(filepath.Join(dirA, MonthFilename(2021, month) + ".csv"))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dirB, MonthFilename(2021, month) + ".csv"))
		require.NoError(t, err)
		assert.Equal(t, a, b, "files for %s differ between same-seed runs", month)
	}
}

func TestOrchestratorFlatPattern(t *testing.T) {
	o, err := NewOrchestrator(OrchestratorConfig{
		StartYear:           2018,
		EndYear:             2019,
		BaseRecordsPerMonth: 100,
		OutputDir:           t.TempDir(),
		Seed:                7,
		CustomerIDStart:     1,
		SaleIDStart:         1,
		Pattern:             patterns.NewFlatPattern(),
	}, OrchestratorOptions{})
	require.NoError(t, err)

	result, err := o.Run()
	require.NoError(t, err)

	assert.Equal(t, int64(2400), result.Stats.TotalRecords())
	for q, records := range result.Stats.RecordsByQuarter() {
		assert.Equal(t, int64(600), records, "Q%d", q+1)
	}

	avgs := result.Stats.AverageRecordsByMonth()
	for i, avg := range avgs {
		assert.Equal(t, 100.0, avg, "month %d", i+1)
	}
}

func TestOrchestratorMonthDoneCallback(t *testing.T) {
	var calls []MonthlyStat
	o, err := NewOrchestrator(OrchestratorConfig{
		StartYear:           2022,
		EndYear:             2022,
		BaseRecordsPerMonth: 5,
		OutputDir:           t.TempDir(),
		Seed:                1,
	}, OrchestratorOptions{
		MonthDone: func(stat MonthlyStat, path string) {
			calls = append(calls, stat)
			assert.FileExists(t, path)
		},
	})
	require.NoError(t, err)

	_, err = o.Run()
	require.NoError(t, err)

	require.Len(t, calls, 12)
	assert.Equal(t, time.January, calls[0].Month)
	assert.Equal(t, time.December, calls[11].Month)
}

func TestOrchestratorBadOutputDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	o, err := NewOrchestrator(OrchestratorConfig{
		StartYear:           2020,
		EndYear:             2020,
		BaseRecordsPerMonth: 5,
		OutputDir:           blocker,
		Seed:                1,
	}, OrchestratorOptions{})
	require.NoError(t, err)

	_, err = o.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2020-01")
}
