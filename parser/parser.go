// Package parser turns the HTML of the Bot API documentation into raw,
// string-only records: one per documented type, method or changelog entry.
package parser

import (
	"context"
	"io"
)

// Loader retrieves the documentation page from some location.
type Loader interface {
	// Load opens the document at location. The caller closes the reader.
	Load(ctx context.Context, location string) (io.ReadCloser, error)
	SupportedSchemes() []string
}

// LoadDocument loads location through l and parses it.
func LoadDocument(ctx context.Context, l Loader, location string) (*Document, error) {
	rc, err := l.Load(ctx, location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Parse(rc)
}
