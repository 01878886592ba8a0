package parser

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrBoundaryNotFound is returned when a section's start or stop marker is
// missing from the document.
var ErrBoundaryNotFound = errors.New("tgschema: section boundary not found")

// Selector bounds a region of the document: it starts at the first StartTag
// element whose text is exactly StartText and ends before the first StopTag
// element whose text is exactly StopText.
type Selector struct {
	StartTag  string `json:"start_tag" yaml:"start_tag"`
	StartText string `json:"start_text" yaml:"start_text"`
	StopTag   string `json:"stop_tag" yaml:"stop_tag"`
	StopText  string `json:"stop_text" yaml:"stop_text"`
}

// The boundaries below mirror the headings of https://core.telegram.org/bots/api
// and must follow its wording.
var (
	// TypesSelector ends at InputFile, which is documented in prose rather
	// than with a field table.
	TypesSelector = Selector{
		StartTag: "h3", StartText: "Available types",
		StopTag: "h4", StopText: "InputFile",
	}
	ChangesSelector = Selector{
		StartTag: "h3", StartText: "Recent changes",
		StopTag: "a", StopText: "See earlier changes »",
	}
	MethodsSelector = Selector{
		StartTag: "h3", StartText: "Available methods",
		StopTag: "h3", StopText: "Updating messages",
	}
)

// Bounds locates the selector's start and stop positions in doc.
func (s Selector) Bounds(doc *Document) (start, stop int, err error) {
	first, ok := doc.first(s.StartTag, s.StartText)
	if !ok {
		return 0, 0, fmt.Errorf("%w: start <%s> %q", ErrBoundaryNotFound, s.StartTag, s.StartText)
	}
	last, ok := doc.first(s.StopTag, s.StopText)
	if !ok {
		return 0, 0, fmt.Errorf("%w: stop <%s> %q", ErrBoundaryNotFound, s.StopTag, s.StopText)
	}
	return first.Index(), last.Index(), nil
}

// Validate reports whether every selector field is set.
func (s Selector) Validate() error {
	if s.StartTag == "" || s.StartText == "" || s.StopTag == "" || s.StopText == "" {
		return fmt.Errorf("selector %+v: tags and texts must be non-empty", s)
	}
	return nil
}

// RawRecord is one entity (type or method) as found in the document:
// its heading, the paragraphs under it, and the cell texts of its tables.
type RawRecord struct {
	Heading     string
	Description *string
	Rows        [][]string
}

// Segment splits the region bounded by sel into one RawRecord per <h4>.
//
// Paragraphs are concatenated into the open record's description and table
// rows are appended to its Rows. Content seen before the first <h4> has no
// record to belong to; it is logged and dropped.
func Segment(doc *Document, sel Selector) ([]RawRecord, error) {
	start, stop, err := sel.Bounds(doc)
	if err != nil {
		return nil, err
	}

	var records []RawRecord
	for i := start; i < stop; i++ {
		node, ok := doc.Nth(i)
		if !ok {
			continue
		}

		switch node.Tag() {
		case "h4":
			records = append(records, RawRecord{Heading: node.Text()})

		case "p":
			if len(records) == 0 {
				slog.Warn("segment: skipped paragraph before first heading", "text", abbreviate(node.Text()))
				continue
			}
			appendDescription(&records[len(records)-1].Description, node.Text())

		case "table":
			if len(records) == 0 {
				slog.Warn("segment: skipped table before first heading", "index", node.Index())
				continue
			}
			last := &records[len(records)-1]
			last.Rows = append(last.Rows, tableRows(node)...)
		}
	}
	return records, nil
}

// tableRows returns the td texts of every row of table. Header rows made of
// <th> cells yield no texts and are dropped.
func tableRows(table *Node) [][]string {
	var rows [][]string
	for _, tr := range table.Descendants("tr") {
		cells := tr.Children("td")
		if len(cells) == 0 {
			continue
		}
		row := make([]string, len(cells))
		for i, td := range cells {
			row[i] = td.Text()
		}
		rows = append(rows, row)
	}
	return rows
}

func appendDescription(dst **string, text string) {
	if *dst == nil {
		*dst = &text
		return
	}
	joined := **dst + text
	*dst = &joined
}

func abbreviate(s string) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= 80 {
		return string(r)
	}
	return string(r[:77]) + "..."
}
