package parser

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"github.com/StinkyLord/spdx-sbom-parser/internal/model"
)

// testdataDir returns the absolute path to testdata/sboms.
func testdataDir() string {
	_, file, _, _ := runtime.Caller(0)
	// file = .../internal/parser/parser_test.go
	// go up two levels to repo root, then into testdata/sboms
	root := filepath.Join(filepath.Dir(file), "..", "..")
	return filepath.Join(root, "testdata", "sboms")
}

// wantLibcurl is the fully-populated first record of every sample document.
var wantLibcurl = model.ComponentRecord{
	SPDXID:                "SPDXRef-Package-libcurl",
	Name:                  "libcurl",
	Version:               "8.4.0",
	Supplier:              "curl project",
	LicenseDeclared:       "curl",
	CopyrightText:         "Copyright (c) 1996 - 2023, Daniel Stenberg",
	DownloadLocation:      "https://curl.se/download/curl-8.4.0.tar.gz",
	Homepage:              "https://curl.se",
	Description:           "A command line tool and library for transferring data with URLs",
	PackageManagerLocator: "pkg:generic/curl@8.4.0",
}

func TestParse_DispatchByExtension(t *testing.T) {
	cases := []struct {
		file string
		want int
	}{
		{"sample.json", 3},
		{"sample.spdx", 3},
		{"sample.xml", 3},
		{"sample-namespaced.xml", 2},
	}

	for _, tc := range cases {
		records, err := Parse(filepath.Join(testdataDir(), tc.file))
		if err != nil {
			t.Errorf("Parse(%s) failed: %v", tc.file, err)
			continue
		}
		if len(records) != tc.want {
			t.Errorf("Parse(%s) returned %d record(s), want %d", tc.file, len(records), tc.want)
		}
	}
}

// TestParse_CrossFormatConsistency is the core guarantee: the three sample
// documents describe the same packages, so all three extractors must produce
// identical record sequences — including supplier cleanup and locator
// aggregation.
func TestParse_CrossFormatConsistency(t *testing.T) {
	jsonRecords, err := Parse(filepath.Join(testdataDir(), "sample.json"))
	if err != nil {
		t.Fatalf("Parse(sample.json) failed: %v", err)
	}
	tvRecords, err := Parse(filepath.Join(testdataDir(), "sample.spdx"))
	if err != nil {
		t.Fatalf("Parse(sample.spdx) failed: %v", err)
	}
	xmlRecords, err := Parse(filepath.Join(testdataDir(), "sample.xml"))
	if err != nil {
		t.Fatalf("Parse(sample.xml) failed: %v", err)
	}

	if !reflect.DeepEqual(jsonRecords, tvRecords) {
		t.Errorf("JSON and tag-value records differ:\njson: %+v\ntv:   %+v", jsonRecords, tvRecords)
	}
	if !reflect.DeepEqual(jsonRecords, xmlRecords) {
		t.Errorf("JSON and XML records differ:\njson: %+v\nxml:  %+v", jsonRecords, xmlRecords)
	}

	if len(jsonRecords) > 0 && !reflect.DeepEqual(jsonRecords[0], wantLibcurl) {
		t.Errorf("first record = %+v, want %+v", jsonRecords[0], wantLibcurl)
	}
}

func TestParse_ExtensionCaseInsensitive(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(testdataDir(), "sample.json"))
	if err != nil {
		t.Fatalf("cannot read fixture: %v", err)
	}
	upper := filepath.Join(t.TempDir(), "SAMPLE.JSON")
	if err := os.WriteFile(upper, data, 0644); err != nil {
		t.Fatalf("cannot write temp file: %v", err)
	}

	records, err := Parse(upper)
	if err != nil {
		t.Fatalf("Parse(SAMPLE.JSON) failed: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("record count = %d, want 3", len(records))
	}
}

func TestParse_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sbom.yaml")
	if err := os.WriteFile(path, []byte("packages: []\n"), 0644); err != nil {
		t.Fatalf("cannot write temp file: %v", err)
	}

	_, err := Parse(path)
	if err == nil {
		t.Fatal("Parse(.yaml) should fail")
	}
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("error = %v, want ErrUnsupportedFormat", err)
	}
	if !strings.Contains(err.Error(), ".yaml") {
		t.Errorf("error %q should name the offending extension", err)
	}
}

func TestParse_MissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err == nil {
		t.Fatal("Parse of a missing file should fail")
	}
	if errors.Is(err, ErrMalformedInput) || errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("missing file should surface as an I/O error, got %v", err)
	}
}
