// Package tgschema extracts a typed schema of the Telegram Bot API from its
// HTML documentation page.
//
// Extraction runs in two stages. The parser package segments the page into
// raw per-entity records bounded by section headings; the transform package
// interprets their free-text cells into schema types. A run is a pure
// function of the page: nothing is cached or shared between runs.
package tgschema

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/brunobiangulo/tgschema/parser"
	"github.com/brunobiangulo/tgschema/schema"
	"github.com/brunobiangulo/tgschema/transform"
)

// Extractor wires document retrieval to the extraction pipeline.
type Extractor struct {
	cfg     Config
	loaders *parser.Registry
}

// New creates an Extractor with the given configuration.
func New(cfg Config) (*Extractor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Extractor{
		cfg: cfg,
		loaders: parser.NewRegistry(parser.HTTPConfig{
			Timeout:   cfg.HTTPTimeout,
			UserAgent: cfg.UserAgent,
		}),
	}, nil
}

// Config returns the configuration the Extractor was built with.
func (e *Extractor) Config() Config { return e.cfg }

// RegisterLoader makes an additional location scheme available to Extract.
func (e *Extractor) RegisterLoader(scheme string, l parser.Loader) {
	e.loaders.Register(scheme, l)
}

// Extract retrieves the page at location (Config.Source when empty) and
// extracts its schema.
func (e *Extractor) Extract(ctx context.Context, location string) (*schema.Schema, error) {
	if location == "" {
		location = e.cfg.Source
	}

	l, err := e.loaders.Get(parser.Scheme(location))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedSource, location, err)
	}

	start := time.Now()
	doc, err := parser.LoadDocument(ctx, l, location)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", location, err)
	}
	slog.Debug("extract: document loaded",
		"source", location,
		"nodes", doc.Len(),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	return e.ExtractDocument(doc)
}

// ExtractReader parses an HTML page from r and extracts its schema.
func (e *Extractor) ExtractReader(r io.Reader) (*schema.Schema, error) {
	doc, err := parser.Parse(r)
	if err != nil {
		return nil, err
	}
	return e.ExtractDocument(doc)
}

// ExtractDocument extracts the schema of an already parsed page. The first
// missing boundary or malformed row aborts the whole run.
func (e *Extractor) ExtractDocument(doc *parser.Document) (*schema.Schema, error) {
	rawChanges, err := parser.SegmentChanges(doc, e.cfg.Changes)
	if err != nil {
		return nil, fmt.Errorf("recent changes: %w", err)
	}

	rawTypes, err := parser.Segment(doc, e.cfg.Types)
	if err != nil {
		return nil, fmt.Errorf("available types: %w", err)
	}
	types, err := transform.Types(rawTypes)
	if err != nil {
		return nil, fmt.Errorf("available types: %w", err)
	}

	methods := []schema.Method{}
	if !e.cfg.SkipMethods {
		rawMethods, err := parser.Segment(doc, e.cfg.Methods)
		if err != nil {
			return nil, fmt.Errorf("available methods: %w", err)
		}
		methods, err = transform.Methods(rawMethods)
		if err != nil {
			return nil, fmt.Errorf("available methods: %w", err)
		}
	}

	s := &schema.Schema{
		RecentChanges: transform.RecentChanges(rawChanges),
		Primitives:    schema.PrimitiveNames(),
		Types:         types,
		Methods:       methods,
	}
	slog.Info("extract: schema built",
		"changes", len(s.RecentChanges),
		"types", len(s.Types),
		"methods", len(s.Methods),
	)
	return s, nil
}
