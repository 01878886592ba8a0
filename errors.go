package tgschema

import (
	"errors"

	"github.com/brunobiangulo/tgschema/parser"
	"github.com/brunobiangulo/tgschema/transform"
)

var (
	// ErrBoundaryNotFound is returned when a section's start or stop marker
	// is missing from the documentation page.
	ErrBoundaryNotFound = parser.ErrBoundaryNotFound

	// ErrMalformedRow is returned for a table row with too few cells.
	ErrMalformedRow = transform.ErrMalformedRow

	// ErrFetchFailed is returned when the documentation page cannot be downloaded.
	ErrFetchFailed = parser.ErrFetchFailed

	// ErrUnsupportedSource is returned for a source location with no loader.
	ErrUnsupportedSource = errors.New("tgschema: unsupported source")

	// ErrInvalidConfig is returned for invalid configuration values.
	ErrInvalidConfig = errors.New("tgschema: invalid configuration")
)
