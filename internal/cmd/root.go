package cmd

import (
	"github.com/spf13/cobra"
)

var verbose bool
var noColor bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "salesgen",
	Short: "Seasonal car sales dataset generator for analytics demos",
	Long: `A synthetic car sales data generator with a US auto industry
seasonal demand pattern.

The generator produces one CSV file per calendar month across a
configurable year range. Record volume follows a per-month demand
multiplier table, and every record is drawn from a fixed reference
catalog of makes, models, dealerships and salespeople.

Sampling parameters are in internal/config/defaults.go - edit and recompile.

Example usage:
  salesgen generate --start-year 2015 --end-year 2024 --records 100000
  salesgen preview --records 100000
  salesgen import --db "user:pass@tcp(host:3306)/sales"`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colors and animations")

	// Silence usage on error - we'll print our own messages
	rootCmd.SilenceUsage = true
}
