package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spatsahani4100-alt/salesgen/internal/config"
	"github.com/spatsahani4100-alt/salesgen/internal/ui"
	"github.com/spatsahani4100-alt/salesgen/internal/utils"
)

var (
	previewBaseRecords int
	previewConfigFile  string
)

// previewCmd shows the seasonal curve without generating anything.
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the seasonal multiplier table",
	Long: `Show the per-month demand multipliers and the record counts they
yield at a given base volume, without generating any data.

The same config file generate accepts can be passed here, so the table
reflects any multiplier overrides a run would actually use.

Example:
  salesgen preview
  salesgen preview --records 50000
  salesgen preview --config salesgen.yaml`,
	Run: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().IntVar(&previewBaseRecords, "records", config.DefaultBaseRecordsPerMonth, "base records per month before seasonal scaling")
	previewCmd.Flags().StringVar(&previewConfigFile, "config", "", "config file (YAML), flags override its values")
}

// loadPreviewConfig merges the optional config file with the --records
// flag, mirroring how generate resolves its settings.
func loadPreviewConfig(cmd *cobra.Command) (*config.Config, error) {
	if previewConfigFile != "" {
		viper.SetConfigFile(previewConfigFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("records") {
		cfg.BaseRecordsPerMonth = previewBaseRecords
	}

	return cfg, nil
}

func runPreview(cmd *cobra.Command, args []string) {
	u := ui.New()
	if noColor {
		u.SetNoColor(true)
	}

	cfg, err := loadPreviewConfig(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error(err.Error()))
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, u.Error(err.Error()))
		os.Exit(1)
	}

	pattern, err := buildPattern(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error(err.Error()))
		os.Exit(1)
	}

	annual := 0
	for m := time.January; m <= time.December; m++ {
		annual += pattern.RecordsForMonth(cfg.BaseRecordsPerMonth, m)
	}

	fmt.Println(u.Header("Seasonal Demand Pattern"))
	fmt.Println()
	fmt.Println(u.KeyValue("Base/month", utils.FormatCount(int64(cfg.BaseRecordsPerMonth))))
	fmt.Println(u.KeyValue("Per year", utils.FormatCount(int64(annual))))
	fmt.Println(u.SectionTitle("Monthly multipliers"))
	printMultiplierTable(u, pattern, cfg.BaseRecordsPerMonth)
}
