package parser

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/StinkyLord/spdx-sbom-parser/internal/model"
)

// ---- SPDX JSON document structures (package-level fields only) ----

type spdxJSONDocument struct {
	Packages []spdxJSONPackage `json:"packages"`
}

type spdxJSONPackage struct {
	SPDXID           string           `json:"SPDXID"`
	Name             string           `json:"name"`
	VersionInfo      string           `json:"versionInfo"`
	Supplier         string           `json:"supplier"`
	LicenseDeclared  string           `json:"licenseDeclared"`
	CopyrightText    string           `json:"copyrightText"`
	DownloadLocation string           `json:"downloadLocation"`
	Homepage         string           `json:"homepage"`
	Description      string           `json:"description"`
	ExternalRefs     []spdxJSONExtRef `json:"externalRefs"`
}

type spdxJSONExtRef struct {
	ReferenceCategory string `json:"referenceCategory"`
	ReferenceType     string `json:"referenceType"`
	ReferenceLocator  string `json:"referenceLocator"`
}

// parseJSON extracts component records from an SPDX JSON document.
// Records come out in the order of the packages array. A package with every
// field absent still yields a fully placeholder-filled record.
func parseJSON(path string) ([]model.ComponentRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", path, err)
	}

	// Probe the top level first: anything but a JSON object (including a bare
	// null, which unmarshals into a zero document without error) is malformed.
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("%w: %q is not valid SPDX JSON: %v", ErrMalformedInput, path, err)
	}
	if top == nil {
		return nil, fmt.Errorf("%w: %q has no top-level object", ErrMalformedInput, path)
	}

	var doc spdxJSONDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %q is not valid SPDX JSON: %v", ErrMalformedInput, path, err)
	}

	records := make([]model.ComponentRecord, 0, len(doc.Packages))
	for _, pkg := range doc.Packages {
		refs := make([]model.ExternalRef, 0, len(pkg.ExternalRefs))
		for _, ref := range pkg.ExternalRefs {
			refs = append(refs, model.ExternalRef{
				Category: ref.ReferenceCategory,
				RefType:  ref.ReferenceType,
				Locator:  ref.ReferenceLocator,
			})
		}

		records = append(records, model.ComponentRecord{
			SPDXID:                orNA(pkg.SPDXID),
			Name:                  orNA(pkg.Name),
			Version:               orNA(pkg.VersionInfo),
			Supplier:              NormalizeSupplier(orNA(pkg.Supplier)),
			LicenseDeclared:       orNA(pkg.LicenseDeclared),
			CopyrightText:         orNA(pkg.CopyrightText),
			DownloadLocation:      orNA(pkg.DownloadLocation),
			Homepage:              orNA(pkg.Homepage),
			Description:           orNA(pkg.Description),
			PackageManagerLocator: AggregateLocators(refs),
		})
	}
	return records, nil
}

// orNA substitutes the N/A placeholder for a value the source did not provide.
func orNA(value string) string {
	if value == "" {
		return model.NA
	}
	return value
}
