package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/StinkyLord/spdx-sbom-parser/internal/model"
)

// jsonRecord mirrors ComponentRecord with the canonical column names as keys.
type jsonRecord struct {
	SPDXID                string `json:"SPDX_ID"`
	Name                  string `json:"Name"`
	Version               string `json:"Version"`
	Supplier              string `json:"Supplier"`
	LicenseDeclared       string `json:"License_Declared"`
	CopyrightText         string `json:"Copyright_Text"`
	DownloadLocation      string `json:"Download_Location"`
	Homepage              string `json:"Homepage"`
	Description           string `json:"Description"`
	PackageManagerLocator string `json:"Package_Manager_Locator"`
}

// WriteJSON writes records as an indented JSON array in input order.
// If path is "-", the JSON is written to stdout.
func WriteJSON(records []model.ComponentRecord, path string) error {
	items := make([]jsonRecord, 0, len(records))
	for _, r := range records {
		items = append(items, jsonRecord{
			SPDXID:                r.SPDXID,
			Name:                  r.Name,
			Version:               r.Version,
			Supplier:              r.Supplier,
			LicenseDeclared:       r.LicenseDeclared,
			CopyrightText:         r.CopyrightText,
			DownloadLocation:      r.DownloadLocation,
			Homepage:              r.Homepage,
			Description:           r.Description,
			PackageManagerLocator: r.PackageManagerLocator,
		})
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	if path == "-" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	return nil
}
