package parser

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// FileLoader reads a saved copy of the documentation page from disk.
type FileLoader struct{}

func (l *FileLoader) SupportedSchemes() []string { return []string{"file", ""} }

func (l *FileLoader) Load(ctx context.Context, location string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := strings.TrimPrefix(location, "file://")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	return f, nil
}
