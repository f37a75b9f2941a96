// Package model defines the internal data structures used by the SBOM parser.
package model

// NA is the placeholder stored for every package field that is absent in the
// source document. Downstream consumers rely on every field being populated,
// so absence is always this value and never a missing key.
const NA = "N/A"

// ComponentRecord is one SPDX package flattened to ten fixed fields.
// The field order here is the canonical column order for all tabular output.
// A record is built once by an extractor and never mutated afterwards;
// supplier cleanup and locator aggregation happen before construction.
type ComponentRecord struct {
	SPDXID                string // SPDX identifier (e.g., "SPDXRef-Package-zlib")
	Name                  string // Package name
	Version               string // Version string from versionInfo
	Supplier              string // Supplier with Organization:/Person:/Tool: prefix stripped
	LicenseDeclared       string // Declared license expression
	CopyrightText         string // Copyright statement
	DownloadLocation      string // Where the package was obtained
	Homepage              string // Project homepage
	Description           string // Free-text description
	PackageManagerLocator string // PACKAGE-MANAGER locators joined with "; "
}

// ExternalRef is one external reference entry of a package, consumed during
// extraction to build the PackageManagerLocator field. It does not appear in
// the final record.
type ExternalRef struct {
	Category string // e.g. "PACKAGE-MANAGER", "PACKAGE_MANAGER", "SECURITY"
	RefType  string // e.g. "purl" — carried through but not used for aggregation
	Locator  string // e.g. "pkg:npm/left-pad@1.3.0"
}

// Columns returns the canonical column names in record-field order.
// The spelling matches the CSV header emitted by the serializer.
func Columns() []string {
	return []string{
		"SPDX_ID",
		"Name",
		"Version",
		"Supplier",
		"License_Declared",
		"Copyright_Text",
		"Download_Location",
		"Homepage",
		"Description",
		"Package_Manager_Locator",
	}
}

// Row returns the record's ten values in canonical column order.
func (r ComponentRecord) Row() []string {
	return []string{
		r.SPDXID,
		r.Name,
		r.Version,
		r.Supplier,
		r.LicenseDeclared,
		r.CopyrightText,
		r.DownloadLocation,
		r.Homepage,
		r.Description,
		r.PackageManagerLocator,
	}
}

// Blank returns a record with every field set to the NA placeholder.
// Extractors start from this and overwrite whatever the source provides.
func Blank() ComponentRecord {
	return ComponentRecord{
		SPDXID:                NA,
		Name:                  NA,
		Version:               NA,
		Supplier:              NA,
		LicenseDeclared:       NA,
		CopyrightText:         NA,
		DownloadLocation:      NA,
		Homepage:              NA,
		Description:           NA,
		PackageManagerLocator: NA,
	}
}
