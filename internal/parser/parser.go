// Package parser extracts component records from SPDX documents in their
// three on-disk encodings: JSON, tag-value, and XML. Format selection happens
// once, in Parse, on the file extension; the extractors themselves never look
// at the path. All three extractors produce the same ordered
// []model.ComponentRecord and run the supplier and external-reference
// normalization identically.
package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/StinkyLord/spdx-sbom-parser/internal/model"
)

// Sentinel errors for the two document-level failure modes. I/O failures
// (unreadable source) are returned as the wrapped os error.
var (
	// ErrUnsupportedFormat means the file extension maps to no known SPDX encoding.
	ErrUnsupportedFormat = errors.New("unsupported SBOM format")

	// ErrMalformedInput means the document could not be parsed at all as its
	// claimed format. Field-level problems never produce this error; a package
	// with missing fields is healed with the N/A placeholder instead.
	ErrMalformedInput = errors.New("malformed SBOM document")
)

// Parse reads the SPDX document at path and returns its packages as component
// records in document order. The encoding is chosen by extension,
// case-insensitively: .json, .spdx/.tv (tag-value), or .xml.
func Parse(path string) ([]model.ComponentRecord, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return parseJSON(path)
	case ".spdx", ".tv":
		return parseTagValue(path)
	case ".xml":
		return parseXML(path)
	default:
		return nil, fmt.Errorf("%w: extension %q (supported: .json, .spdx, .tv, .xml)", ErrUnsupportedFormat, ext)
	}
}
