// Package schema holds the closed set of message variants a contract accepts
// and derives the advertised JSON Schema documents from them. The validator
// enforces the same descriptors, so the advertised and accepted shapes
// cannot drift apart.
package schema

import (
	"encoding/json"
	"regexp"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// FieldType is the declared JSON type of a field.
type FieldType string

const (
	String  FieldType = "string"
	Number  FieldType = "number"
	Boolean FieldType = "boolean"
	Object  FieldType = "object"
	Array   FieldType = "array"
)

func (t FieldType) valid() bool {
	switch t {
	case String, Number, Boolean, Object, Array:
		return true
	}
	return false
}

// Field describes one member of a variant body or nested object.
type Field struct {
	Name        string
	Type        FieldType
	Required    bool
	Description string

	// Items is the element type when Type is Array. Its Name is ignored.
	Items *Field
	// Fields are the members when Type is Object.
	Fields []Field

	// Pattern, when set on a string field, is a regular expression the value
	// must match.
	Pattern string
	// Example is the value used for this string field in generated payloads.
	Example string
}

// Patterns for CosmWasm Uint128 and Uint64, which serialize as decimal strings.
const (
	Uint128Pattern = `^[0-9]{1,39}$`
	Uint64Pattern  = `^[0-9]{1,20}$`
)

var patterns sync.Map // pattern -> *regexp.Regexp

// MatchString reports whether s satisfies the field's pattern, if any.
// Patterns are checked by New, so compilation cannot fail here.
func (f Field) MatchString(s string) bool {
	if f.Pattern == "" {
		return true
	}
	rx, ok := patterns.Load(f.Pattern)
	if !ok {
		rx, _ = patterns.LoadOrStore(f.Pattern, regexp.MustCompile(f.Pattern))
	}
	return rx.(*regexp.Regexp).MatchString(s)
}

// Optional returns a copy of f that may be omitted (or null).
func (f Field) Optional() Field {
	f.Required = false
	return f
}

// Str declares a required string field.
func Str(name, desc string) Field {
	return Field{Name: name, Type: String, Required: true, Description: desc}
}

// Uint128 declares a required Uint128 field: a decimal string.
func Uint128(name, desc string) Field {
	return Field{Name: name, Type: String, Required: true, Description: desc, Pattern: Uint128Pattern, Example: "0"}
}

// Uint64 declares a required Uint64 field: a decimal string.
func Uint64(name, desc string) Field {
	return Field{Name: name, Type: String, Required: true, Description: desc, Pattern: Uint64Pattern, Example: "0"}
}

// Num declares a required number field.
func Num(name, desc string) Field {
	return Field{Name: name, Type: Number, Required: true, Description: desc}
}

// Bool declares a required boolean field.
func Bool(name, desc string) Field {
	return Field{Name: name, Type: Boolean, Required: true, Description: desc}
}

// Obj declares a required nested object field.
func Obj(name, desc string, fields ...Field) Field {
	return Field{Name: name, Type: Object, Required: true, Description: desc, Fields: fields}
}

// Arr declares a required array field whose elements match items.
func Arr(name, desc string, items Field) Field {
	items.Required = true
	return Field{Name: name, Type: Array, Required: true, Description: desc, Items: &items}
}

// Variant is one named alternative of a tagged-union message.
type Variant struct {
	Name        string
	Description string
	Fields      []Field
	// Payable marks entry points that accept native funds. Execute variants
	// that are not payable must be built with zero funds.
	Payable bool
}

// Example returns the minimal well-formed payload selecting v: every required
// field set to the zero value of its type, optional fields omitted.
func (v Variant) Example() json.RawMessage {
	wrap := orderedmap.New[string, any]()
	wrap.Set(v.Name, exampleObject(v.Fields))
	b, _ := json.Marshal(wrap)
	return b
}

func exampleObject(fields []Field) *orderedmap.OrderedMap[string, any] {
	out := orderedmap.New[string, any]()
	for _, f := range fields {
		if f.Required {
			out.Set(f.Name, exampleValue(f))
		}
	}
	return out
}

func exampleValue(f Field) any {
	switch f.Type {
	case String:
		return f.Example
	case Number:
		return json.Number("0")
	case Boolean:
		return false
	case Object:
		return exampleObject(f.Fields)
	default:
		return []any{}
	}
}
