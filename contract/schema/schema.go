package schema

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/invopop/jsonschema"

	cwerrors "github.com/archway-network/cosmwasm-mcp-template/contract/errors"
)

// Schema is an immutable tagged union of message variants.
type Schema struct {
	name        string
	description string
	variants    []Variant
	index       map[string]int
}

// New builds a Schema and checks that the descriptors are well formed.
// A malformed schema is a configuration error.
func New(name, description string, variants ...Variant) (*Schema, error) {
	if name == "" {
		return nil, cwerrors.NewInvalidConfig("schema name is required")
	}
	if len(variants) == 0 {
		return nil, cwerrors.NewInvalidConfig("schema %s declares no variants", name)
	}

	s := &Schema{
		name:        name,
		description: description,
		variants:    make([]Variant, len(variants)),
		index:       make(map[string]int, len(variants)),
	}
	for i, v := range variants {
		if v.Name == "" {
			return nil, cwerrors.NewInvalidConfig("schema %s: variant %d has no name", name, i)
		}
		if _, dup := s.index[v.Name]; dup {
			return nil, cwerrors.NewInvalidConfig("schema %s: duplicate variant %q", name, v.Name)
		}
		if err := checkFields(name+"."+v.Name, v.Fields); err != nil {
			return nil, err
		}
		s.index[v.Name] = i
		s.variants[i] = v
	}
	return s, nil
}

// MustNew is New for compiled-in schemas; it panics on malformed descriptors.
func MustNew(name, description string, variants ...Variant) *Schema {
	s, err := New(name, description, variants...)
	if err != nil {
		panic(err)
	}
	return s
}

func checkFields(path string, fields []Field) error {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return cwerrors.NewInvalidConfig("%s: field without a name", path)
		}
		if _, dup := seen[f.Name]; dup {
			return cwerrors.NewInvalidConfig("%s: duplicate field %q", path, f.Name)
		}
		seen[f.Name] = struct{}{}
		if err := checkField(path+"."+f.Name, f); err != nil {
			return err
		}
	}
	return nil
}

func checkField(path string, f Field) error {
	if !f.Type.valid() {
		return cwerrors.NewInvalidConfig("%s: unsupported type %q", path, f.Type)
	}
	if f.Pattern != "" {
		if f.Type != String {
			return cwerrors.NewInvalidConfig("%s: pattern is only allowed on string fields", path)
		}
		if _, err := regexp.Compile(f.Pattern); err != nil {
			return cwerrors.NewInvalidConfig("%s: invalid pattern: %v", path, err)
		}
		if !f.MatchString(f.Example) {
			return cwerrors.NewInvalidConfig("%s: example %q does not match pattern", path, f.Example)
		}
	}
	switch f.Type {
	case Array:
		if f.Items == nil {
			return cwerrors.NewInvalidConfig("%s: array field must declare items", path)
		}
		return checkField(path+"[]", *f.Items)
	case Object:
		return checkFields(path, f.Fields)
	}
	return nil
}

// Name is the message type name, e.g. QueryMsg.
func (s *Schema) Name() string { return s.name }

// Variants returns the variants in declaration order.
func (s *Schema) Variants() []Variant {
	return append([]Variant(nil), s.variants...)
}

// Variant looks up a variant by its tag.
func (s *Schema) Variant(name string) (Variant, bool) {
	i, ok := s.index[name]
	if !ok {
		return Variant{}, false
	}
	return s.variants[i], true
}

// Names returns the legal variant tags in declaration order.
func (s *Schema) Names() []string {
	out := make([]string, len(s.variants))
	for i, v := range s.variants {
		out[i] = v.Name
	}
	return out
}

// Document derives the JSON Schema for the union. Each variant is an object
// with exactly one required property named after the tag, matching the
// externally tagged encoding CosmWasm contracts use.
func (s *Schema) Document() *jsonschema.Schema {
	doc := &jsonschema.Schema{
		Version:     jsonschema.Version,
		Title:       s.name,
		Description: s.description,
	}
	for _, v := range s.variants {
		doc.OneOf = append(doc.OneOf, variantDocument(v))
	}
	return doc
}

// MarshalJSON renders the derived JSON Schema document.
func (s *Schema) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(s.Document())
	if err != nil {
		return nil, fmt.Errorf("marshal %s schema: %w", s.name, err)
	}
	return b, nil
}

func variantDocument(v Variant) *jsonschema.Schema {
	props := jsonschema.NewProperties()
	props.Set(v.Name, objectDocument("", v.Fields))
	return &jsonschema.Schema{
		Type:                 "object",
		Description:          v.Description,
		Required:             []string{v.Name},
		Properties:           props,
		AdditionalProperties: jsonschema.FalseSchema,
		Examples:             []any{v.Example()},
		Extras:               map[string]any{"x-payable": v.Payable},
	}
}

func objectDocument(desc string, fields []Field) *jsonschema.Schema {
	props := jsonschema.NewProperties()
	var required []string
	for _, f := range fields {
		props.Set(f.Name, fieldDocument(f))
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return &jsonschema.Schema{
		Type:                 "object",
		Description:          desc,
		Required:             required,
		Properties:           props,
		AdditionalProperties: jsonschema.FalseSchema,
	}
}

func fieldDocument(f Field) *jsonschema.Schema {
	switch f.Type {
	case Object:
		return objectDocument(f.Description, f.Fields)
	case Array:
		return &jsonschema.Schema{
			Type:        "array",
			Description: f.Description,
			Items:       fieldDocument(*f.Items),
		}
	default:
		return &jsonschema.Schema{Type: string(f.Type), Description: f.Description, Pattern: f.Pattern}
	}
}
