package parser

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/StinkyLord/spdx-sbom-parser/internal/model"
)

// xmlNode is a generic element-tree node. SPDX XML producers disagree on
// element naming and namespacing, so the document is decoded into a plain
// tree and probed by name instead of into a fixed schema.
type xmlNode struct {
	XMLName  xml.Name
	Text     string    `xml:",chardata"`
	Children []xmlNode `xml:",any"`
}

// parseXML extracts component records from an SPDX XML document.
//
// The root element's namespace (possibly none) is applied to every descendant
// lookup; documents mixing namespaced and plain elements are not supported.
// Package elements are probed under the plural name first, then the singular,
// and likewise for external reference entries.
func parseXML(path string) ([]model.ComponentRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", path, err)
	}

	var root xmlNode
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %q is not well-formed XML: %v", ErrMalformedInput, path, err)
	}
	ns := root.XMLName.Space

	packages := root.childrenNamed(ns, "packages")
	if len(packages) == 0 {
		packages = root.childrenNamed(ns, "package")
	}

	records := make([]model.ComponentRecord, 0, len(packages))
	for _, pkg := range packages {
		refNodes := pkg.childrenNamed(ns, "externalRefs")
		if len(refNodes) == 0 {
			refNodes = pkg.childrenNamed(ns, "externalRef")
		}
		refs := make([]model.ExternalRef, 0, len(refNodes))
		for _, ref := range refNodes {
			refs = append(refs, model.ExternalRef{
				Category: ref.childText(ns, "referenceCategory"),
				Locator:  ref.childText(ns, "referenceLocator"),
			})
		}

		records = append(records, model.ComponentRecord{
			SPDXID:                pkg.fieldText(ns, "SPDXID"),
			Name:                  pkg.fieldText(ns, "name"),
			Version:               pkg.fieldText(ns, "versionInfo"),
			Supplier:              NormalizeSupplier(pkg.fieldText(ns, "supplier")),
			LicenseDeclared:       pkg.fieldText(ns, "licenseDeclared"),
			CopyrightText:         pkg.fieldText(ns, "copyrightText"),
			DownloadLocation:      pkg.fieldText(ns, "downloadLocation"),
			Homepage:              pkg.fieldText(ns, "homepage"),
			Description:           pkg.fieldText(ns, "description"),
			PackageManagerLocator: AggregateLocators(refs),
		})
	}
	return records, nil
}

// childrenNamed returns the direct children matching the namespace and local name.
func (n *xmlNode) childrenNamed(ns, local string) []*xmlNode {
	var matched []*xmlNode
	for i := range n.Children {
		c := &n.Children[i]
		if c.XMLName.Local == local && c.XMLName.Space == ns {
			matched = append(matched, c)
		}
	}
	return matched
}

// childText returns the trimmed text of the first matching child, or "" when
// the child is absent. Used for reference sub-fields, where absence is an
// empty string rather than the placeholder.
func (n *xmlNode) childText(ns, local string) string {
	children := n.childrenNamed(ns, local)
	if len(children) == 0 {
		return ""
	}
	return strings.TrimSpace(children[0].Text)
}

// fieldText returns the trimmed text of the first matching child, or the N/A
// placeholder when the child is absent or empty.
func (n *xmlNode) fieldText(ns, local string) string {
	return orNA(n.childText(ns, local))
}
