// Package transform turns the raw records produced by the parser package
// into typed schema values.
package transform

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/brunobiangulo/tgschema/parser"
	"github.com/brunobiangulo/tgschema/schema"
)

// ErrMalformedRow is returned for a table row that lacks a required cell or
// carries an unknown "Required" marker.
var ErrMalformedRow = errors.New("tgschema: malformed table row")

const (
	fieldCells = 3 // name, type, description
	paramCells = 4 // name, type, required, description
)

// Types converts type records into Types. Every row must have at least
// three cells; extra cells are ignored.
func Types(records []parser.RawRecord) ([]schema.Type, error) {
	types := make([]schema.Type, 0, len(records))
	for _, rec := range records {
		fields := make([]schema.Field, 0, len(rec.Rows))
		for i, row := range rec.Rows {
			if len(row) < fieldCells {
				return nil, fmt.Errorf("%w: type %s row %d has %d cells, want %d",
					ErrMalformedRow, rec.Heading, i, len(row), fieldCells)
			}
			name := row[0]
			ty, descr := Resolve(name, row[1], row[2])
			fields = append(fields, schema.Field{Name: name, Type: ty, Description: descr})
		}
		types = append(types, schema.Type{
			Name:        rec.Heading,
			Description: deref(rec.Description),
			Fields:      fields,
		})
	}
	return types, nil
}

// Methods converts method records into Methods. Records whose heading is not
// a method name, such as the "Formatting options" prose subsection, are
// skipped.
func Methods(records []parser.RawRecord) ([]schema.Method, error) {
	methods := make([]schema.Method, 0, len(records))
	for _, rec := range records {
		if !isMethodName(rec.Heading) {
			slog.Debug("transform: skipped non-method heading", "heading", rec.Heading)
			continue
		}

		params := make([]schema.Param, 0, len(rec.Rows))
		for i, row := range rec.Rows {
			if len(row) < paramCells {
				return nil, fmt.Errorf("%w: method %s row %d has %d cells, want %d",
					ErrMalformedRow, rec.Heading, i, len(row), paramCells)
			}
			required, err := parseRequired(row[2])
			if err != nil {
				return nil, fmt.Errorf("method %s row %d: %w", rec.Heading, i, err)
			}
			name := row[0]
			ty, descr := Resolve(name, row[1], row[3])
			params = append(params, schema.Param{
				Name:        name,
				Type:        ty,
				Required:    required,
				Description: descr,
			})
		}

		descr := deref(rec.Description)
		ret, ok := ReturnType(descr)
		if !ok {
			slog.Warn("transform: no return type in description, assuming True", "method", rec.Heading)
		}
		methods = append(methods, schema.Method{
			Name:        rec.Heading,
			Description: descr,
			Params:      params,
			ReturnType:  ret,
		})
	}
	return methods, nil
}

// RecentChanges converts changelog records; no type resolution is involved.
func RecentChanges(records []parser.RawChange) []schema.Change {
	changes := make([]schema.Change, 0, len(records))
	for _, rec := range records {
		changes = append(changes, schema.Change{
			Date:    rec.Heading,
			Version: deref(rec.Description),
			Changes: rec.Items,
		})
	}
	return changes
}

func parseRequired(marker string) (schema.Required, error) {
	switch strings.TrimSpace(marker) {
	case "Yes":
		return schema.RequiredYes, nil
	case "Optional":
		return schema.RequiredOptional, nil
	default:
		return 0, fmt.Errorf("%w: unknown required marker %q", ErrMalformedRow, marker)
	}
}

// isMethodName reports whether heading is a lowerCamelCase identifier.
func isMethodName(heading string) bool {
	first, _ := utf8.DecodeRuneInString(heading)
	if heading == "" || !unicode.IsLower(first) {
		return false
	}
	for _, r := range heading {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
