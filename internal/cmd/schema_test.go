package cmd

import (
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatsahani4100-alt/salesgen/internal/config"
	"github.com/spatsahani4100-alt/salesgen/internal/generator"
	"github.com/spatsahani4100-alt/salesgen/internal/models"
	"github.com/spatsahani4100-alt/salesgen/internal/patterns"
)

// columnWidth extracts the declared width of a CHAR/VARCHAR column.
func columnWidth(t *testing.T, ddl, column string) int {
	t.Helper()
	re := regexp.MustCompile(column + `\s+(?:VAR)?CHAR\((\d+)\)`)
	m := re.FindStringSubmatch(ddl)
	require.NotNil(t, m, "no CHAR/VARCHAR declaration for %s", column)
	width, err := strconv.Atoi(m[1])
	require.NoError(t, err)
	return width
}

// The ID columns must hold the highest IDs a default-configuration run
// assigns. MariaDB demotes CHAR overflow during LOAD DATA to a warning,
// so a too-narrow column truncates IDs silently instead of failing.
func TestSchemaIDColumnsHoldDefaultRun(t *testing.T) {
	raw, err := schemaFS.ReadFile("schemas/car_sales.sql")
	require.NoError(t, err)
	ddl := string(raw)

	pattern := patterns.NewUSAutoPattern()
	var perYear int64
	for month := time.January; month <= time.December; month++ {
		perYear += int64(pattern.RecordsForMonth(config.DefaultBaseRecordsPerMonth, month))
	}
	years := int64(config.DefaultEndYear - config.DefaultStartYear + 1)
	total := perYear * years

	lastCustomer := generator.FormatCustomerID(config.CustomerIDStart + total - 1)
	lastSale := generator.FormatSaleID(config.SaleIDStart + total - 1)

	assert.GreaterOrEqual(t, columnWidth(t, ddl, "customer_id"), len(lastCustomer),
		"customer_id column too narrow for %s", lastCustomer)
	assert.GreaterOrEqual(t, columnWidth(t, ddl, "sale_id"), len(lastSale),
		"sale_id column too narrow for %s", lastSale)
}

func TestSchemaCoversAllCSVColumns(t *testing.T) {
	raw, err := schemaFS.ReadFile("schemas/car_sales.sql")
	require.NoError(t, err)
	ddl := string(raw)

	for _, header := range models.SaleCSVHeaders() {
		assert.Contains(t, ddl, header, "missing column for CSV header %s", header)
	}
}
