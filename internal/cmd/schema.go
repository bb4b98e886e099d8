package cmd

import (
	"embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spatsahani4100-alt/salesgen/internal/ui"
)

//go:embed schemas/*.sql
var schemaFS embed.FS

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Output the car_sales database schema",
	Long: `Output the SQL schema for the car_sales table.

The schema matches the CSV column order produced by generate, so the
files can be bulk loaded directly with the import command or with
LOAD DATA INFILE.

Examples:
  salesgen schema                       # Print schema to stdout
  salesgen schema -o schema.sql         # Save schema to a file
  salesgen schema | mysql -u root sales # Create the table`,
	Run: runSchema,
}

var schemaOutputFile string

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVarP(&schemaOutputFile, "output", "o", "", "output file (default: stdout)")
}

func runSchema(cmd *cobra.Command, args []string) {
	u := ui.New()
	if noColor {
		u.SetNoColor(true)
	}

	schema, err := schemaFS.ReadFile("schemas/car_sales.sql")
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error("failed to read embedded schema: "+err.Error()))
		os.Exit(1)
	}

	if schemaOutputFile == "" {
		fmt.Print(string(schema))
		return
	}

	if err := os.WriteFile(schemaOutputFile, schema, 0644); err != nil {
		fmt.Fprintln(os.Stderr, u.Error("failed to write schema file: "+err.Error()))
		os.Exit(1)
	}
	fmt.Println(u.Success("Schema written to: " + schemaOutputFile))
}
