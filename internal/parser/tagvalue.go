package parser

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/StinkyLord/spdx-sbom-parser/internal/model"
)

// Tag-value scanning tags. tagPackageName opens a package; tagExternalRef
// accumulates reference entries; everything else fills one record field.
const (
	tagPackageName = "PackageName:"
	tagExternalRef = "ExternalRef:"
)

// fieldTags maps tag-value tags to record fields, in lookup order.
// Matching is first-hit-wins, so this must stay an ordered slice: the order
// is part of the format contract and the tags must not be prefixes of each
// other.
var fieldTags = []struct {
	tag string
	set func(*model.ComponentRecord, string)
}{
	{"SPDXID:", func(r *model.ComponentRecord, v string) { r.SPDXID = v }},
	{"PackageVersion:", func(r *model.ComponentRecord, v string) { r.Version = v }},
	{"PackageSupplier:", func(r *model.ComponentRecord, v string) { r.Supplier = NormalizeSupplier(v) }},
	{"PackageLicenseDeclared:", func(r *model.ComponentRecord, v string) { r.LicenseDeclared = v }},
	{"PackageCopyrightText:", func(r *model.ComponentRecord, v string) { r.CopyrightText = v }},
	{"PackageDownloadLocation:", func(r *model.ComponentRecord, v string) { r.DownloadLocation = v }},
	{"PackageHomePage:", func(r *model.ComponentRecord, v string) { r.Homepage = v }},
	{"PackageDescription:", func(r *model.ComponentRecord, v string) { r.Description = v }},
}

// parseTagValue extracts component records from an SPDX tag-value stream.
//
// The scan is stateful: a PackageName: line opens a new record (finalizing
// any record already open), field tags fill the open record, and ExternalRef:
// lines accumulate until the record is finalized. Blank lines, comment lines,
// and anything before the first PackageName: are ignored.
func parseTagValue(path string) ([]model.ComponentRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", path, err)
	}
	defer f.Close()

	var (
		records []model.ComponentRecord
		current *model.ComponentRecord
		refs    []model.ExternalRef
	)

	finalize := func() {
		current.PackageManagerLocator = AggregateLocators(refs)
		records = append(records, *current)
		current = nil
		refs = nil
	}

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, tagPackageName) {
			if current != nil {
				finalize()
			}
			r := model.Blank()
			r.Name = tagValue(line)
			current = &r
			continue
		}
		if current == nil {
			continue
		}

		matched := false
		for _, ft := range fieldTags {
			if strings.HasPrefix(line, ft.tag) {
				ft.set(current, tagValue(line))
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		if strings.HasPrefix(line, tagExternalRef) {
			// ExternalRef: <category> <type> <locator>
			tokens := strings.Fields(tagValue(line))
			if len(tokens) >= 3 {
				refs = append(refs, model.ExternalRef{
					Category: tokens[0],
					RefType:  tokens[1],
					Locator:  tokens[2],
				})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", path, err)
	}

	if current != nil {
		finalize()
	}
	return records, nil
}

// tagValue returns the text after the first colon, trimmed.
func tagValue(line string) string {
	_, value, _ := strings.Cut(line, ":")
	return strings.TrimSpace(value)
}
