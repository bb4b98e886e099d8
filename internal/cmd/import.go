package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/cobra"

	"github.com/spatsahani4100-alt/salesgen/internal/ui"
	"github.com/spatsahani4100-alt/salesgen/internal/utils"
)

var (
	importDBConnection string
	importInputDir     string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import generated CSV files into MySQL/MariaDB",
	Long: `Bulk load the generated monthly CSV files into a MySQL/MariaDB
database using LOAD DATA LOCAL INFILE.

The import process:
1. Creates the car_sales table if it doesn't exist
2. Loads every sales_YYYY_MM.csv file from the input directory in order
3. Reports per-file and total row counts

Examples:
  salesgen import --db "user:pass@tcp(localhost:3306)/sales"
  salesgen import --db "user:pass@tcp(localhost:3306)/sales" --input ./car_sales_data`,
	Run: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importDBConnection, "db", "", "database connection string (required)")
	importCmd.Flags().StringVar(&importInputDir, "input", "./car_sales_data", "input directory containing sales CSV files")

	importCmd.MarkFlagRequired("db")
}

// loadSalesSQL is the LOAD DATA statement for one monthly file. The
// column list matches the generated CSV header order exactly.
const loadSalesSQL = `LOAD DATA LOCAL INFILE '%s'
INTO TABLE car_sales
FIELDS TERMINATED BY ','
ENCLOSED BY '"'
LINES TERMINATED BY '\n'
IGNORE 1 LINES
(sale_id, sale_date, customer_id, car_make, car_model, car_year, category,
 color, mileage, sale_price, payment_method, dealership, salesperson, state,
 commission)`

func runImport(cmd *cobra.Command, args []string) {
	u := ui.New()
	if noColor {
		u.SetNoColor(true)
	}

	files, err := findMonthlyFiles(importInputDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error(err.Error()))
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, u.Error(fmt.Sprintf("no sales_*.csv files found in %s", importInputDir)))
		os.Exit(1)
	}

	fmt.Println(u.Header("Car Sales Data Import"))
	fmt.Println()
	fmt.Println(u.KeyValue("Database", maskDSN(importDBConnection)))
	fmt.Println(u.KeyValue("Input", importInputDir))
	fmt.Println(u.KeyValue("Files", fmt.Sprintf("%d", len(files))))
	fmt.Println()

	ctx := context.Background()

	spinner := u.NewSpinner("Connecting")
	spinner.Start()

	db, err := sql.Open("mysql", ensureLocalInfileEnabled(importDBConnection))
	if err != nil {
		spinner.Error(err.Error())
		os.Exit(1)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		spinner.Error(err.Error())
		os.Exit(1)
	}
	spinner.Success("connected")

	if err := createSalesTable(ctx, db); err != nil {
		fmt.Fprintln(os.Stderr, u.Error("failed to create car_sales table: "+err.Error()))
		os.Exit(1)
	}

	start := time.Now()
	bar := u.NewProgressBar("Loading files", int64(len(files)))
	var totalRows int64

	for i, path := range files {
		rows, err := loadSalesFile(ctx, db, path)
		if err != nil {
			fmt.Println()
			fmt.Fprintln(os.Stderr, u.Error(fmt.Sprintf("%s: %v", filepath.Base(path), err)))
			os.Exit(1)
		}
		totalRows += rows
		bar.Update(int64(i + 1))
	}
	bar.Complete()

	items := []ui.KV{
		{Key: "Files loaded", Value: fmt.Sprintf("%d", len(files))},
		{Key: "Rows loaded", Value: utils.FormatCount(totalRows)},
		{Key: "Duration", Value: time.Since(start).Round(time.Millisecond).String()},
		{Key: "Status", Value: "Success"},
	}
	fmt.Println(u.SummaryBox("Import Complete", items))
}

// findMonthlyFiles lists the generated monthly CSVs in load order.
func findMonthlyFiles(inputDir string) ([]string, error) {
	pattern := filepath.Join(inputDir, "sales_*.csv")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", inputDir, err)
	}

	// sales_YYYY_MM naming sorts chronologically
	sort.Strings(files)
	return files, nil
}

// createSalesTable applies the embedded DDL.
func createSalesTable(ctx context.Context, db *sql.DB) error {
	schema, err := schemaFS.ReadFile("schemas/car_sales.sql")
	if err != nil {
		return fmt.Errorf("failed to read embedded schema: %w", err)
	}

	for _, stmt := range strings.Split(string(schema), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// loadSalesFile bulk loads one monthly CSV file.
func loadSalesFile(ctx context.Context, db *sql.DB, path string) (int64, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return 0, fmt.Errorf("failed to get absolute path: %w", err)
	}

	mysql.RegisterLocalFile(absPath)
	defer mysql.DeregisterLocalFile(absPath)

	res, err := db.ExecContext(ctx, fmt.Sprintf(loadSalesSQL, absPath))
	if err != nil {
		return 0, fmt.Errorf("LOAD DATA failed: %w", err)
	}

	rows, _ := res.RowsAffected()
	return rows, nil
}

// ensureLocalInfileEnabled appends the DSN parameter LOAD DATA LOCAL
// requires, unless already present.
func ensureLocalInfileEnabled(dsn string) string {
	if strings.Contains(dsn, "allowAllFiles") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&allowAllFiles=true"
	}
	return dsn + "?allowAllFiles=true"
}

// maskDSN hides the password portion of a DSN for display.
func maskDSN(dsn string) string {
	colonIdx := strings.Index(dsn, ":")
	atIdx := strings.Index(dsn, "@")
	if colonIdx > 0 && atIdx > colonIdx {
		return dsn[:colonIdx+1] + "****" + dsn[atIdx:]
	}
	return dsn
}
