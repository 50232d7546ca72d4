// Package validate checks caller-supplied JSON against a message schema and
// produces the canonical form handed to the envelope builder.
package validate

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	cwerrors "github.com/archway-network/cosmwasm-mcp-template/contract/errors"
	"github.com/archway-network/cosmwasm-mcp-template/contract/schema"
)

// Message is a payload confirmed to match exactly one schema variant.
// It can only be obtained from Validate.
type Message struct {
	variant   string
	payable   bool
	fields    *orderedmap.OrderedMap[string, any]
	canonical []byte
}

// Variant is the matched variant tag.
func (m *Message) Variant() string { return m.variant }

// Payable reports whether the matched variant accepts native funds.
func (m *Message) Payable() bool { return m.payable }

// FieldNames lists the fields present, in schema order.
func (m *Message) FieldNames() []string {
	out := make([]string, 0, m.fields.Len())
	for p := m.fields.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}

// Field returns a normalized field value: string, json.Number, bool, []any,
// or *orderedmap.OrderedMap[string, any] for nested objects.
func (m *Message) Field(name string) (any, bool) {
	return m.fields.Get(name)
}

// Canonical returns the compact schema-ordered encoding of the message.
func (m *Message) Canonical() json.RawMessage {
	return append(json.RawMessage(nil), m.canonical...)
}

// String returns the canonical encoding.
func (m *Message) String() string { return string(m.canonical) }

// MarshalJSON emits the canonical encoding.
func (m *Message) MarshalJSON() ([]byte, error) { return m.Canonical(), nil }

// Validate matches payload against s. Failures are *errors.Error values of
// kind NoMatchingVariant, AmbiguousVariant, MissingField, TypeMismatch or
// UnknownField. Validate is pure and safe for concurrent use.
func Validate(payload json.RawMessage, s *schema.Schema) (*Message, error) {
	doc, err := decode(payload)
	if err != nil {
		e := cwerrors.NewNoMatchingVariant("", s.Names())
		e.Message = fmt.Sprintf("payload is not valid JSON (%v); expected an object keyed by one of the variants", err)
		return nil, e
	}

	obj, ok := doc.value.(map[string]any)
	if !ok || len(obj) == 0 {
		return nil, cwerrors.NewNoMatchingVariant("", s.Names())
	}
	if doc.dupTag != "" {
		e := cwerrors.NewAmbiguousVariant([]string{doc.dupTag, doc.dupTag})
		e.Message = fmt.Sprintf("variant %q appears more than once; the payload must have exactly one top-level key", doc.dupTag)
		return nil, e
	}
	if len(obj) > 1 {
		return nil, cwerrors.NewAmbiguousVariant(sortedKeys(obj))
	}

	var tag string
	var body any
	for k, v := range obj {
		tag, body = k, v
	}
	v, ok := s.Variant(tag)
	if !ok {
		return nil, cwerrors.NewNoMatchingVariant(tag, s.Names())
	}

	if doc.dupField != "" {
		field := strings.TrimPrefix(strings.TrimPrefix(doc.dupField, tag), ".")
		e := cwerrors.NewUnknownField(v.Name, field)
		e.Message = fmt.Sprintf("variant %q field %q appears more than once", v.Name, field)
		return nil, e
	}

	fields, err := checkObject(v.Name, "", v.Fields, body)
	if err != nil {
		return nil, err
	}

	wrap := orderedmap.New[string, any]()
	wrap.Set(v.Name, fields)
	canonical, err := encodeCanonical(wrap)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", v.Name, err)
	}

	return &Message{
		variant:   v.Name,
		payable:   v.Payable,
		fields:    fields,
		canonical: canonical,
	}, nil
}

func checkObject(variant, path string, decl []schema.Field, value any) (*orderedmap.OrderedMap[string, any], error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, cwerrors.NewTypeMismatch(variant, path, string(schema.Object), typeName(value))
	}

	out := orderedmap.New[string, any]()
	known := make(map[string]struct{}, len(decl))
	for _, f := range decl {
		known[f.Name] = struct{}{}
		fp := join(path, f.Name)

		raw, present := obj[f.Name]
		switch {
		case !present && f.Required:
			return nil, cwerrors.NewMissingField(variant, fp)
		case raw == nil && f.Required:
			return nil, cwerrors.NewTypeMismatch(variant, fp, string(f.Type), "null")
		case raw == nil:
			// optional and absent or null: dropped from the canonical form
			continue
		}

		val, err := checkValue(variant, fp, f, raw)
		if err != nil {
			return nil, err
		}
		out.Set(f.Name, val)
	}

	for _, k := range sortedKeys(obj) {
		if _, ok := known[k]; !ok {
			return nil, cwerrors.NewUnknownField(variant, join(path, k))
		}
	}
	return out, nil
}

func checkValue(variant, path string, f schema.Field, raw any) (any, error) {
	mismatch := func() error {
		return cwerrors.NewTypeMismatch(variant, path, string(f.Type), typeName(raw))
	}

	switch f.Type {
	case schema.String:
		if s, ok := raw.(string); ok {
			if !f.MatchString(s) {
				return nil, cwerrors.NewTypeMismatch(variant, path, "string matching "+f.Pattern, strconv.Quote(s))
			}
			return s, nil
		}
	case schema.Number:
		if n, ok := raw.(json.Number); ok {
			return n, nil
		}
	case schema.Boolean:
		if b, ok := raw.(bool); ok {
			return b, nil
		}
	case schema.Object:
		return checkObject(variant, path, f.Fields, raw)
	case schema.Array:
		arr, ok := raw.([]any)
		if !ok {
			return nil, mismatch()
		}
		out := make([]any, len(arr))
		for i, item := range arr {
			ip := fmt.Sprintf("%s[%d]", path, i)
			if item == nil {
				return nil, cwerrors.NewTypeMismatch(variant, ip, string(f.Items.Type), "null")
			}
			v, err := checkValue(variant, ip, *f.Items, item)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}
	return nil, mismatch()
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case json.Number, float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
