package cmd

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/StinkyLord/spdx-sbom-parser/internal/model"
	"github.com/StinkyLord/spdx-sbom-parser/internal/parser"
)

var (
	flagFilter string
	flagColumn string
	flagSort   string
	flagDesc   bool
)

// maxCellWidth keeps wide fields (descriptions, copyright text) from blowing
// up the terminal table; longer values are truncated with an ellipsis.
const maxCellWidth = 36

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FF99"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))
)

var listCmd = &cobra.Command{
	Use:   "list <sbom-file>",
	Short: "Parse an SPDX SBOM and print the component table",
	Long: `Parse an SPDX SBOM file and render its packages as a table in the terminal.

Examples:
  spdx-sbom-parser list sbom.json
  spdx-sbom-parser list sbom.spdx --filter openssl
  spdx-sbom-parser list sbom.xml --filter MIT --column License_Declared
  spdx-sbom-parser list sbom.json --sort Name --desc`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagFilter, "filter", "", "Show only rows containing this text (case-insensitive)")
	listCmd.Flags().StringVar(&flagColumn, "column", model.AllColumns, "Restrict --filter to one column")
	listCmd.Flags().StringVar(&flagSort, "sort", "", "Sort rows by this column")
	listCmd.Flags().BoolVar(&flagDesc, "desc", false, "Sort in descending order")
}

func runList(cmd *cobra.Command, args []string) error {
	records, err := parser.Parse(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse %q: %w", args[0], err)
	}
	total := len(records)

	if flagFilter != "" {
		records, err = model.Filter(records, flagFilter, flagColumn)
		if err != nil {
			return err
		}
	}
	if flagSort != "" {
		records, err = model.SortBy(records, flagSort, flagDesc)
		if err != nil {
			return err
		}
	}

	renderTable(records)
	if len(records) != total {
		fmt.Fprintln(os.Stderr, dimStyle.Render(fmt.Sprintf("Filter: %d of %d component(s) shown.", len(records), total)))
	} else {
		fmt.Fprintln(os.Stderr, dimStyle.Render(fmt.Sprintf("Showing all %d component(s).", total)))
	}
	return nil
}

// renderTable prints records as a fixed-width table, one column per record
// field, sized to the widest cell up to maxCellWidth.
func renderTable(records []model.ComponentRecord) {
	columns := model.Columns()

	widths := make([]int, len(columns))
	for i, name := range columns {
		widths[i] = len(name)
	}
	// Widths are measured in runes: fmt pads string verbs by rune count, and
	// byte lengths would misalign non-ASCII cells.
	for _, r := range records {
		for i, v := range r.Row() {
			if w := utf8.RuneCountInString(truncateCell(v)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var header strings.Builder
	for i, name := range columns {
		fmt.Fprintf(&header, "%-*s  ", widths[i], name)
	}
	fmt.Println(headerStyle.Render(strings.TrimRight(header.String(), " ")))

	for _, r := range records {
		var row strings.Builder
		for i, v := range r.Row() {
			fmt.Fprintf(&row, "%-*s  ", widths[i], truncateCell(v))
		}
		fmt.Println(strings.TrimRight(row.String(), " "))
	}
}

// truncateCell shortens a value to maxCellWidth runes. Cutting on runes
// rather than bytes keeps a multi-byte character at the boundary intact.
func truncateCell(value string) string {
	if utf8.RuneCountInString(value) <= maxCellWidth {
		return value
	}
	return string([]rune(value)[:maxCellWidth-1]) + "…"
}
