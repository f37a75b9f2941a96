package parser

import (
	"strings"

	"github.com/StinkyLord/spdx-sbom-parser/internal/model"
)

// supplierPrefixes are the SPDX supplier-type prefixes, tried in this order.
var supplierPrefixes = []string{"Organization:", "Person:", "Tool:"}

// NormalizeSupplier strips the SPDX supplier-type prefix from a raw supplier
// string. Empty input and the N/A placeholder pass through unchanged; input
// without a recognized prefix is returned trimmed, since a bare name is still
// a real supplier.
func NormalizeSupplier(raw string) string {
	if raw == "" || raw == model.NA {
		return raw
	}
	for _, prefix := range supplierPrefixes {
		if strings.HasPrefix(raw, prefix) {
			return strings.TrimSpace(raw[len(prefix):])
		}
	}
	return strings.TrimSpace(raw)
}

// AggregateLocators selects the PACKAGE-MANAGER references from refs and
// joins their locators, in input order, with "; ". Categories are compared
// after uppercasing and converting underscores to hyphens, so
// "package_manager" and "PACKAGE-MANAGER" are the same category. Returns the
// N/A placeholder when no reference qualifies.
//
// Every extractor must route its references through here — this is the one
// place locator aggregation is defined.
func AggregateLocators(refs []model.ExternalRef) string {
	var locators []string
	for _, ref := range refs {
		category := strings.ReplaceAll(strings.ToUpper(ref.Category), "_", "-")
		if category != "PACKAGE-MANAGER" {
			continue
		}
		locator := ref.Locator
		if locator == "" {
			locator = model.NA
		}
		locators = append(locators, locator)
	}
	if len(locators) == 0 {
		return model.NA
	}
	return strings.Join(locators, "; ")
}
