package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/StinkyLord/spdx-sbom-parser/internal/output"
	"github.com/StinkyLord/spdx-sbom-parser/internal/parser"
)

var (
	flagOutput string
	flagFormat string
)

var convertCmd = &cobra.Command{
	Use:   "convert <sbom-file>",
	Short: "Parse an SPDX SBOM and export the component table",
	Long: `Parse an SPDX SBOM file (.json, .spdx, .tv, or .xml) and export its
packages as a ten-column component table.

Examples:
  spdx-sbom-parser convert sbom.json --output components.csv
  spdx-sbom-parser convert sbom.spdx --format xlsx --output components.xlsx
  spdx-sbom-parser convert sbom.xml --output -`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&flagOutput, "output", "o", "components.csv", "Output file path (use '-' for stdout)")
	convertCmd.Flags().StringVarP(&flagFormat, "format", "f", "csv", "Output format: csv, json, xlsx")
}

func runConvert(cmd *cobra.Command, args []string) error {
	// Config file / env values fill in flags the user did not set.
	if !cmd.Flags().Changed("format") {
		if v := viper.GetString("format"); v != "" {
			flagFormat = v
		}
	}
	if !cmd.Flags().Changed("output") {
		if v := viper.GetString("output"); v != "" {
			flagOutput = v
		}
	}

	records, err := parser.Parse(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse %q: %w", args[0], err)
	}
	fmt.Fprintf(os.Stderr, "Parsed %d component(s) from %s\n", len(records), args[0])

	switch flagFormat {
	case "csv":
		err = output.WriteCSV(records, flagOutput)
	case "json":
		err = output.WriteJSON(records, flagOutput)
	case "xlsx":
		if flagOutput == "-" {
			return fmt.Errorf("xlsx output cannot be written to stdout")
		}
		err = output.WriteXLSX(records, flagOutput)
	default:
		return fmt.Errorf("unsupported output format %q (supported: csv, json, xlsx)", flagFormat)
	}
	if err != nil {
		return err
	}

	if flagOutput != "-" {
		fmt.Fprintf(os.Stderr, "Component table written to: %s\n", flagOutput)
	}
	return nil
}
