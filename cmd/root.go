package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const toolVersion = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "spdx-sbom-parser",
	Short: "SPDX SBOM normalizer",
	Long: `spdx-sbom-parser reads Software Bill of Materials documents in the three
SPDX on-disk encodings and normalizes their packages into one canonical
ten-column component table.

Input format is chosen by file extension:
  • .json         — SPDX JSON (packages array)
  • .spdx / .tv   — SPDX tag-value (line-oriented Tag: value)
  • .xml          — SPDX XML (optionally namespaced)

The table can be exported as CSV, JSON, or XLSX, or rendered in the
terminal with filtering, sorting, and summary statistics.`,
	Version: toolVersion,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
}

// initConfig loads ~/.spdx-sbom-parser.yaml (if present) and environment
// overrides. The config supplies defaults for export format and output path.
func initConfig() {
	home, err := os.UserHomeDir()
	if err == nil {
		viper.SetConfigFile(filepath.Join(home, ".spdx-sbom-parser.yaml"))
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("SPDX_SBOM_PARSER")
	viper.AutomaticEnv()
	viper.ReadInConfig()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
