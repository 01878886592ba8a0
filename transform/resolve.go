package transform

import (
	"regexp"
	"strings"

	"github.com/brunobiangulo/tgschema/schema"
)

const (
	optionalPrefix = "Optional. "
	arrayPrefix    = "Array of "
)

// Resolve interprets the free-text type cell of a field or parameter.
//
// The documentation encodes more than the type column says: optionality
// lives in an "Optional. " description prefix, 64-bit integers are only
// marked in prose, and parse_mode is a String restricted to a few values.
// Resolve returns the description with the "Optional. " prefix removed.
// Unknown type names become Struct references; nothing is rejected.
func Resolve(name, typeText, description string) (schema.Primitive, string) {
	if rest, ok := strings.CutPrefix(description, optionalPrefix); ok {
		p, descr := Resolve(name, typeText, rest)
		return schema.OptionalOf(p), descr
	}

	if rest, ok := strings.CutPrefix(typeText, " "); ok {
		return Resolve(name, rest, description)
	}

	if strings.HasPrefix(typeText, arrayPrefix) {
		// Slicing one byte short keeps the separating space, which the
		// leading-space rule above then consumes.
		p, descr := Resolve(name, typeText[len(arrayPrefix)-1:], description)
		return schema.ArrayOf(p), descr
	}

	return named(name, typeText, description), description
}

// named dispatches on a bare type name.
func named(name, typeText, description string) schema.Primitive {
	switch typeText {
	case "Integer":
		if strings.Contains(description, "64") {
			return schema.Int64()
		}
		return schema.Int32()
	case "String":
		if name == "parse_mode" {
			return schema.ParseMode()
		}
		return schema.String()
	case "Boolean":
		return schema.Bool()
	case "True":
		return schema.True()
	case "Integer or String":
		return schema.ChatID()
	case "Float", "Float number":
		return schema.Float32()
	case "InputFile or String":
		return schema.InputFile()
	default:
		return schema.StructOf(typeText)
	}
}

// Return-type phrases of method descriptions, most specific first.
var returnPatterns = []struct {
	re     *regexp.Regexp
	array  bool
	plural bool
}{
	{re: regexp.MustCompile(`(?i)\breturns an? array of (\w+)`), array: true},
	{re: regexp.MustCompile(`(?i)\ban? array of (\w+) objects? is returned`), array: true},
	{re: regexp.MustCompile(`(?i)\ban? array of (\w+) of\b`), array: true},
	{re: regexp.MustCompile(`(?i)\ban? array of (\w+)s\b`), array: true, plural: true},
	{re: regexp.MustCompile(`\bin (?:the )?form of an? (\w+) object`)},
	{re: regexp.MustCompile(`\bas (?:an? )?(\w+)(?: object| on success)`)},
	{re: regexp.MustCompile(`On success, (?:the |an? )?(?:\w+ )??(\w+)(?: object)? is returned`)},
	{re: regexp.MustCompile(`\bReturns (?:the |an? )?(?:\w+ )??(\w+)(?: object)?(?: on success|\.)`)},
	{re: regexp.MustCompile(`\bReturns the (\w+) of\b`)},
	{re: regexp.MustCompile(`\b(?:the |an? )(?:\w+ )??(\w+)(?: object)? is returned`)},
}

// ReturnType extracts a method's result type from its description. It
// reports false when no known phrasing matches; the result is then True,
// the most common result of Bot API methods.
func ReturnType(description string) (schema.Primitive, bool) {
	for _, rp := range returnPatterns {
		m := rp.re.FindStringSubmatch(description)
		if m == nil {
			continue
		}
		word := m[1]
		if rp.plural {
			word = strings.TrimSuffix(word, "s")
		}
		if !isTypeName(word) {
			continue
		}
		p := named("", normalizeReturnWord(word), description)
		if rp.array {
			p = schema.ArrayOf(p)
		}
		return p, true
	}
	return schema.True(), false
}

// isTypeName reports whether word looks like a documented type: the
// documentation capitalizes type names, so lower-case words are prose.
func isTypeName(word string) bool {
	return word != "" && word[0] >= 'A' && word[0] <= 'Z'
}

func normalizeReturnWord(word string) string {
	if word == "Int" {
		return "Integer"
	}
	return word
}
