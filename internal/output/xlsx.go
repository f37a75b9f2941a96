package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/StinkyLord/spdx-sbom-parser/internal/model"
)

// WriteXLSX writes records to a single-sheet spreadsheet with the same header
// and column order as the CSV output.
func WriteXLSX(records []model.ComponentRecord, path string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, name := range model.Columns() {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("failed to write header cell %s: %w", cell, err)
		}
	}

	for i, r := range records {
		for j, value := range r.Row() {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	return nil
}
