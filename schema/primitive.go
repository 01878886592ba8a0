package schema

import (
	"encoding/json"
	"fmt"
)

// Kind identifies a Primitive variant.
type Kind int

const (
	KindInt32 Kind = iota
	KindInt64
	KindFloat32
	KindString
	KindBool
	// KindTrue is the literal "True" type used by methods that only ever
	// report success.
	KindTrue
	KindStruct
	KindArray
	KindOptional
	// KindChatID is the "Integer or String" union of a numeric chat id and
	// a channel username.
	KindChatID
	// KindParseMode is documented as String but only accepts the
	// formatting modes (HTML, Markdown, MarkdownV2).
	KindParseMode
	// KindInputFile is "InputFile or String": a file_id, a URL or an upload
	// sent as multipart/form-data.
	KindInputFile
)

var kindNames = [...]string{
	KindInt32:     "Int32",
	KindInt64:     "Int64",
	KindFloat32:   "Float32",
	KindString:    "String",
	KindBool:      "Bool",
	KindTrue:      "True",
	KindStruct:    "Struct",
	KindArray:     "Array",
	KindOptional:  "Optional",
	KindChatID:    "ChatId",
	KindParseMode: "ParseMode",
	KindInputFile: "InputFile",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// PrimitiveNames returns the name of every Primitive kind in declaration order.
func PrimitiveNames() []string {
	out := make([]string, len(kindNames))
	copy(out, kindNames[:])
	return out
}

// Primitive describes the type of a field, parameter or method result.
//
// Array and Optional wrap exactly one element in Elem. Struct refers to
// another entity by Name; the reference is resolved by whoever consumes the
// Schema, not here.
type Primitive struct {
	Kind Kind
	Name string
	Elem *Primitive
}

func Int32() Primitive     { return Primitive{Kind: KindInt32} }
func Int64() Primitive     { return Primitive{Kind: KindInt64} }
func Float32() Primitive   { return Primitive{Kind: KindFloat32} }
func String() Primitive    { return Primitive{Kind: KindString} }
func Bool() Primitive      { return Primitive{Kind: KindBool} }
func True() Primitive      { return Primitive{Kind: KindTrue} }
func ChatID() Primitive    { return Primitive{Kind: KindChatID} }
func ParseMode() Primitive { return Primitive{Kind: KindParseMode} }
func InputFile() Primitive { return Primitive{Kind: KindInputFile} }

// StructOf returns a by-name reference to another documented type.
func StructOf(name string) Primitive { return Primitive{Kind: KindStruct, Name: name} }

// ArrayOf wraps elem in an Array.
func ArrayOf(elem Primitive) Primitive { return Primitive{Kind: KindArray, Elem: &elem} }

// OptionalOf wraps elem in an Optional.
func OptionalOf(elem Primitive) Primitive { return Primitive{Kind: KindOptional, Elem: &elem} }

// Equal reports whether p and o describe the same type tree.
func (p Primitive) Equal(o Primitive) bool {
	if p.Kind != o.Kind || p.Name != o.Name {
		return false
	}
	if p.Elem == nil || o.Elem == nil {
		return p.Elem == nil && o.Elem == nil
	}
	return p.Elem.Equal(*o.Elem)
}

// Innermost strips every Array and Optional wrapper.
func (p Primitive) Innermost() Primitive {
	for (p.Kind == KindArray || p.Kind == KindOptional) && p.Elem != nil {
		p = *p.Elem
	}
	return p
}

// IsOptional reports whether the outermost wrapper is Optional.
func (p Primitive) IsOptional() bool { return p.Kind == KindOptional }

func (p Primitive) String() string {
	switch p.Kind {
	case KindStruct:
		return "Struct(" + p.Name + ")"
	case KindArray, KindOptional:
		if p.Elem == nil {
			return p.Kind.String() + "<?>"
		}
		return p.Kind.String() + "<" + p.Elem.String() + ">"
	default:
		return p.Kind.String()
	}
}

type primitiveJSON struct {
	Kind string         `json:"kind"`
	Name string         `json:"name,omitempty"`
	Elem *primitiveJSON `json:"elem,omitempty"`
}

func (p Primitive) toJSON() *primitiveJSON {
	out := &primitiveJSON{Kind: p.Kind.String(), Name: p.Name}
	if p.Elem != nil {
		out.Elem = p.Elem.toJSON()
	}
	return out
}

// MarshalJSON encodes p as a nested {"kind", "name", "elem"} object.
func (p Primitive) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.toJSON())
}
