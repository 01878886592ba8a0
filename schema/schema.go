// Package schema holds the typed description of the Telegram Bot API that
// the extraction pipeline produces.
package schema

import "sort"

// Schema is the result of one extraction run.
type Schema struct {
	RecentChanges []Change `json:"recent_changes"`
	Primitives    []string `json:"primitives"`
	Types         []Type   `json:"types"`
	Methods       []Method `json:"methods"`
}

// Change is one dated entry of the "Recent changes" section.
type Change struct {
	Date    string   `json:"date"`
	Version string   `json:"version"`
	Changes []string `json:"changes"`
}

// Type is a documented object type. Fields keep the documentation's row order.
type Type struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Fields      []Field `json:"fields"`
}

// Field is one row of a type's field table.
type Field struct {
	Name        string    `json:"name"`
	Type        Primitive `json:"type"`
	Description string    `json:"description"`
}

// Method is a documented Bot API method. Params keep the documentation's row order.
type Method struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Params      []Param   `json:"params"`
	ReturnType  Primitive `json:"return_type"`
}

// Param is one row of a method's parameter table.
type Param struct {
	Name        string    `json:"name"`
	Type        Primitive `json:"type"`
	Required    Required  `json:"required"`
	Description string    `json:"description"`
}

// Required is the value of the "Required" column of a parameter table.
type Required int

const (
	RequiredYes Required = iota
	RequiredOptional
)

func (r Required) String() string {
	if r == RequiredYes {
		return "Yes"
	}
	return "Optional"
}

func (r Required) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// Type returns the type with the given name.
func (s *Schema) Type(name string) (*Type, bool) {
	for i := range s.Types {
		if s.Types[i].Name == name {
			return &s.Types[i], true
		}
	}
	return nil, false
}

// Method returns the method with the given name.
func (s *Schema) Method(name string) (*Method, bool) {
	for i := range s.Methods {
		if s.Methods[i].Name == name {
			return &s.Methods[i], true
		}
	}
	return nil, false
}

// Lookup resolves the Struct reference at the core of p, looking through
// any Array and Optional wrappers.
func (s *Schema) Lookup(p Primitive) (*Type, bool) {
	inner := p.Innermost()
	if inner.Kind != KindStruct {
		return nil, false
	}
	return s.Type(inner.Name)
}

// UnresolvedReferences lists the distinct Struct names used by fields,
// params or return types that have no matching Type, sorted.
func (s *Schema) UnresolvedReferences() []string {
	defined := make(map[string]bool, len(s.Types))
	for _, t := range s.Types {
		defined[t.Name] = true
	}

	missing := make(map[string]bool)
	check := func(p Primitive) {
		inner := p.Innermost()
		if inner.Kind == KindStruct && !defined[inner.Name] {
			missing[inner.Name] = true
		}
	}
	for _, t := range s.Types {
		for _, f := range t.Fields {
			check(f.Type)
		}
	}
	for _, m := range s.Methods {
		for _, p := range m.Params {
			check(p.Type)
		}
		check(m.ReturnType)
	}

	out := make([]string, 0, len(missing))
	for name := range missing {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
