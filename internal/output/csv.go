// Package output provides serializers for parsed component records.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/StinkyLord/spdx-sbom-parser/internal/model"
)

// WriteCSV writes records as UTF-8 CSV: one header row with the canonical
// column names, then one row per record in input order. If path is "-", the
// CSV is written to stdout.
func WriteCSV(records []model.ComponentRecord, path string) error {
	if path == "-" {
		return writeCSVTo(os.Stdout, records)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot open %q for writing: %w", path, err)
	}
	if err := writeCSVTo(f, records); err != nil {
		f.Close()
		return fmt.Errorf("failed to write CSV to %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write CSV to %q: %w", path, err)
	}
	return nil
}

func writeCSVTo(dst io.Writer, records []model.ComponentRecord) error {
	w := csv.NewWriter(dst)
	if err := w.Write(model.Columns()); err != nil {
		return err
	}
	for _, r := range records {
		if err := w.Write(r.Row()); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
