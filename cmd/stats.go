package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/StinkyLord/spdx-sbom-parser/internal/model"
	"github.com/StinkyLord/spdx-sbom-parser/internal/parser"
)

var statsCmd = &cobra.Command{
	Use:   "stats <sbom-file>",
	Short: "Parse an SPDX SBOM and print summary statistics",
	Long: `Parse an SPDX SBOM file and print aggregate counts: total packages,
packages with and without a package-manager locator, and the number of
distinct declared licenses and suppliers.`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	records, err := parser.Parse(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse %q: %w", args[0], err)
	}

	s := model.Summarize(records)
	fmt.Println(headerStyle.Render(fmt.Sprintf("SBOM STATISTICS — %s", args[0])))
	fmt.Printf("  Total components:     %d\n", s.Total)
	fmt.Printf("  With PM locator:      %d\n", s.WithLocator)
	fmt.Printf("  Without PM locator:   %d\n", s.WithoutLocator)
	fmt.Printf("  Distinct licenses:    %d\n", s.UniqueLicenses)
	fmt.Printf("  Distinct suppliers:   %d\n", s.UniqueSuppliers)
	return nil
}
