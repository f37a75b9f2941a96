package parser

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/StinkyLord/spdx-sbom-parser/internal/model"
)

// writeTV writes tag-value content to a scratch .spdx file.
func writeTV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.spdx")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("cannot write temp file: %v", err)
	}
	return path
}

func TestParseTagValue_FullPackage(t *testing.T) {
	records, err := parseTagValue(filepath.Join(testdataDir(), "sample.spdx"))
	if err != nil {
		t.Fatalf("parseTagValue failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("record count = %d, want 3", len(records))
	}
	if !reflect.DeepEqual(records[0], wantLibcurl) {
		t.Errorf("records[0] = %+v, want %+v", records[0], wantLibcurl)
	}
}

func TestParseTagValue_ConsecutivePackages(t *testing.T) {
	// Two PackageName: lines with no blank line between them: the first
	// record must be closed off and none of its fields may leak into the
	// second.
	records, err := parseTagValue(writeTV(t, `PackageName: first
PackageVersion: 1.0.0
PackageSupplier: Organization: First Corp
ExternalRef: PACKAGE-MANAGER purl pkg:npm/first@1.0.0
PackageName: second
`))
	if err != nil {
		t.Fatalf("parseTagValue failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("record count = %d, want 2", len(records))
	}

	first, second := records[0], records[1]
	if first.Name != "first" || first.Version != "1.0.0" || first.Supplier != "First Corp" {
		t.Errorf("first record = %+v", first)
	}
	if first.PackageManagerLocator != "pkg:npm/first@1.0.0" {
		t.Errorf("first locator = %q, want the purl", first.PackageManagerLocator)
	}

	if second.Name != "second" {
		t.Errorf("second.Name = %q, want %q", second.Name, "second")
	}
	if second.Version != model.NA || second.Supplier != model.NA || second.PackageManagerLocator != model.NA {
		t.Errorf("fields leaked from first into second: %+v", second)
	}
}

func TestParseTagValue_SkipsCommentsAndBlankLines(t *testing.T) {
	records, err := parseTagValue(writeTV(t, `# leading comment

PackageName: zlib

# comment inside a package
PackageVersion: 1.3
`))
	if err != nil {
		t.Fatalf("parseTagValue failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("record count = %d, want 1", len(records))
	}
	if records[0].Name != "zlib" || records[0].Version != "1.3" {
		t.Errorf("record = %+v", records[0])
	}
}

func TestParseTagValue_LinesBeforeFirstPackageIgnored(t *testing.T) {
	records, err := parseTagValue(writeTV(t, `SPDXVersion: SPDX-2.3
PackageVersion: 9.9.9
ExternalRef: PACKAGE-MANAGER purl pkg:npm/stray@9.9.9
PackageName: real
`))
	if err != nil {
		t.Fatalf("parseTagValue failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("record count = %d, want 1", len(records))
	}
	// The stray version and ref before PackageName: must not attach.
	if records[0].Version != model.NA {
		t.Errorf("Version = %q, want %q", records[0].Version, model.NA)
	}
	if records[0].PackageManagerLocator != model.NA {
		t.Errorf("locator = %q, want %q", records[0].PackageManagerLocator, model.NA)
	}
}

func TestParseTagValue_ExternalRefTooFewTokens(t *testing.T) {
	records, err := parseTagValue(writeTV(t, `PackageName: thing
ExternalRef: PACKAGE-MANAGER purl
`))
	if err != nil {
		t.Fatalf("parseTagValue failed: %v", err)
	}
	if records[0].PackageManagerLocator != model.NA {
		t.Errorf("two-token ExternalRef should be ignored, locator = %q", records[0].PackageManagerLocator)
	}
}

func TestParseTagValue_ValueAfterFirstColon(t *testing.T) {
	// The supplier value itself contains a colon; the tag split must cut at
	// the first colon only, then the supplier prefix is stripped.
	records, err := parseTagValue(writeTV(t, `PackageName: thing
PackageSupplier: Organization: Acme Corp
PackageDownloadLocation: https://example.com/thing.tar.gz
`))
	if err != nil {
		t.Fatalf("parseTagValue failed: %v", err)
	}
	if records[0].Supplier != "Acme Corp" {
		t.Errorf("Supplier = %q, want %q", records[0].Supplier, "Acme Corp")
	}
	if records[0].DownloadLocation != "https://example.com/thing.tar.gz" {
		t.Errorf("DownloadLocation = %q", records[0].DownloadLocation)
	}
}

func TestParseTagValue_FinalizesAtEOF(t *testing.T) {
	// No trailing newline, no following package: the open record must still
	// be finalized with its accumulated refs.
	records, err := parseTagValue(writeTV(t, `PackageName: last
ExternalRef: PACKAGE_MANAGER purl pkg:npm/last@1.0.0`))
	if err != nil {
		t.Fatalf("parseTagValue failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("record count = %d, want 1", len(records))
	}
	if records[0].PackageManagerLocator != "pkg:npm/last@1.0.0" {
		t.Errorf("locator = %q, want the purl", records[0].PackageManagerLocator)
	}
}

func TestParseTagValue_EmptyDocument(t *testing.T) {
	records, err := parseTagValue(writeTV(t, "# only a comment\n"))
	if err != nil {
		t.Fatalf("parseTagValue failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("record count = %d, want 0", len(records))
	}
}
